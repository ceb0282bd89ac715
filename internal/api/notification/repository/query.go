package notificationRepository

const (
	queryCreateNotification = `
INSERT INTO notifications (id, family_id, user_id, recipient_id, message, expense_id, date, seen)
VALUES (:id, :family_id, :user_id, :recipient_id, :message, :expense_id, :date, :seen)`

	queryGetNotificationById = `
SELECT id, family_id, user_id, recipient_id, message, expense_id, date, seen
FROM notifications
    WHERE id = :id`

	queryGetNotificationsByFamily = `
SELECT n.id, n.family_id, n.user_id, n.recipient_id, n.message, n.expense_id, n.date, n.seen,
       u.name AS user_name, u.email AS user_email
FROM notifications n
    LEFT JOIN users u ON u.id = n.user_id
WHERE n.family_id = :family_id
ORDER BY n.date DESC`

	queryCountUnread = `
SELECT COUNT(*) AS count
FROM notifications
    WHERE recipient_id = :recipient_id AND seen = FALSE`

	queryMarkSeen = `
UPDATE notifications
SET seen = TRUE
WHERE id = :id`

	queryMarkAllSeen = `
UPDATE notifications
SET seen = TRUE
WHERE recipient_id = :recipient_id AND seen = FALSE`
)
