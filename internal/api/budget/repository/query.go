package budgetRepository

const (
	queryCreateBudget = `
INSERT INTO budgets (id, family_id, limit_amount, period, created_at)
VALUES (:id, :family_id, :limit_amount, :period, :created_at)`

	queryGetBudgetById = `
SELECT id, family_id, limit_amount, period, created_at
FROM budgets
    WHERE id = :id`

	queryGetLatestBudgetByFamily = `
SELECT id, family_id, limit_amount, period, created_at
FROM budgets
    WHERE family_id = :family_id
ORDER BY created_at DESC
LIMIT 1`

	queryUpdateBudget = `
UPDATE budgets
SET limit_amount = :limit_amount,
    period       = :period
WHERE id = :id`

	queryDeleteBudget = `
DELETE FROM budgets
WHERE id = :id`
)
