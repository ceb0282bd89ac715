package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, name, email, password, role, created_at, updated_at)
VALUES (:id, :name, :email, :password, :role, :created_at, :updated_at)`

	queryGetUserById = `
SELECT id, name, email, password, role, family_id, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetUserByEmail = `
SELECT id, name, email, password, role, family_id, created_at, updated_at
FROM users
    WHERE email = :email`

	queryGetUsersByFamily = `
SELECT id, name, email, password, role, family_id, created_at, updated_at
FROM users
    WHERE family_id = :family_id
ORDER BY created_at`

	queryUpdateUserPassword = `
UPDATE users
SET password = :password, updated_at = :updated_at
WHERE email = :email`

	queryUpdateUserFamily = `
UPDATE users
SET family_id = :family_id, role = :role, updated_at = :updated_at
WHERE id = :id`
)
