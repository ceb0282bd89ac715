package expenseRepository

const (
	queryCreateExpense = `
INSERT INTO expenses (id, user_id, family_id, amount, category, description, date, created_at, updated_at)
VALUES (:id, :user_id, :family_id, :amount, :category, :description, :date, :created_at, :updated_at)`

	queryGetExpenseById = `
SELECT id, user_id, family_id, amount, category, description, date, created_at, updated_at
FROM expenses
    WHERE id = :id`

	queryUpdateExpense = `
UPDATE expenses
SET amount = :amount,
    category = :category,
    description = :description,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteExpense = `
DELETE FROM expenses
WHERE id = :id`

	queryGetExpensesByUser = `
SELECT id, user_id, family_id, amount, category, description, date, created_at, updated_at
FROM expenses
    WHERE user_id = :user_id
ORDER BY date DESC`

	queryGetExpensesByFamily = `
SELECT e.id, e.user_id, e.family_id, e.amount, e.category, e.description, e.date, e.created_at, e.updated_at,
       u.name AS user_name
FROM expenses e
    LEFT JOIN users u ON u.id = e.user_id
WHERE e.family_id = :family_id
ORDER BY e.date DESC`

	queryGetExpensesByFamilyBetween = `
SELECT id, user_id, family_id, amount, category, description, date, created_at, updated_at
FROM expenses
    WHERE family_id = :family_id
    AND date >= :from AND date < :to
ORDER BY date DESC`

	queryGetExpensesByFamilySince = `
SELECT id, user_id, family_id, amount, category, description, date, created_at, updated_at
FROM expenses
    WHERE family_id = :family_id
    AND date >= :since
ORDER BY date DESC
LIMIT :limit`

	queryGetExpensesByCategoryBetween = `
SELECT id, user_id, family_id, amount, category, description, date, created_at, updated_at
FROM expenses
    WHERE family_id = :family_id
    AND LOWER(category) = LOWER(:category)
    AND date >= :from AND date < :to
ORDER BY date DESC
LIMIT :limit`

	queryGetTopExpensesByAmount = `
SELECT id, user_id, family_id, amount, category, description, date, created_at, updated_at
FROM expenses
    WHERE family_id = :family_id
    AND date >= :from AND date < :to
ORDER BY amount DESC
LIMIT :limit`

	querySumByFamily = `
SELECT COALESCE(SUM(amount), 0) AS total
FROM expenses
    WHERE family_id = :family_id`

	querySumByFamilyBetween = `
SELECT COALESCE(SUM(amount), 0) AS total
FROM expenses
    WHERE family_id = :family_id
    AND date >= :from AND date < :to`

	queryAggregateBetween = `
SELECT COALESCE(SUM(amount), 0) AS total,
       COUNT(*) AS count,
       COALESCE(AVG(amount), 0) AS average
FROM expenses
    WHERE family_id = :family_id
    AND date >= :from AND date < :to`

	queryCategoryBreakdown = `
SELECT category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
FROM expenses
    WHERE family_id = :family_id
    AND date >= :from AND date < :to
GROUP BY category
ORDER BY total DESC`

	queryDailyTotals = `
SELECT date_trunc('day', date) AS day, COALESCE(SUM(amount), 0) AS total
FROM expenses
    WHERE family_id = :family_id
    AND date >= :from AND date < :to
GROUP BY day
ORDER BY day`
)
