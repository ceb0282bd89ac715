package familyRepository

const (
	queryCreateFamily = `
INSERT INTO families (id, name, head_id, invite_code, created_at)
VALUES (:id, :name, :head_id, :invite_code, :created_at)`

	queryGetFamilyById = `
SELECT id, name, head_id, invite_code, created_at
FROM families
    WHERE id = :id`

	queryGetFamilyByHead = `
SELECT id, name, head_id, invite_code, created_at
FROM families
    WHERE head_id = :head_id`

	queryGetFamilyByInviteCode = `
SELECT id, name, head_id, invite_code, created_at
FROM families
    WHERE invite_code = :invite_code`

	queryUpdateInviteCode = `
UPDATE families
SET invite_code = :invite_code
WHERE id = :id`
)
