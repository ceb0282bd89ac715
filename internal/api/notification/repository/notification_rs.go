package notificationRepository

import (
	"context"
	"database/sql"
	"errors"

	"parivar/internal/api/notification"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type NotificationDB struct {
	ID          sql.NullString `db:"id"`
	FamilyID    sql.NullString `db:"family_id"`
	UserID      sql.NullString `db:"user_id"`
	RecipientID sql.NullString `db:"recipient_id"`
	UserName    sql.NullString `db:"user_name"`
	UserEmail   sql.NullString `db:"user_email"`
	Message     sql.NullString `db:"message"`
	ExpenseID   sql.NullString `db:"expense_id"`
	Date        sql.NullTime   `db:"date"`
	Seen        bool           `db:"seen"`
}

func (r *notificationRepository) CreateNotification(c context.Context, notif entity.Notification) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           notif.ID,
		"family_id":    notif.FamilyID,
		"user_id":      notif.UserID,
		"recipient_id": notif.RecipientID,
		"message":      notif.Message,
		"expense_id":   notif.ExpenseID,
		"date":         notif.Date,
		"seen":         notif.Seen,
	}

	query, args, err := sqlx.Named(queryCreateNotification, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateNotification")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating notification")
		return err
	}

	return nil
}

func (r *notificationRepository) GetByID(c context.Context, id string) (entity.Notification, error) {
	requestID := contextPkg.GetRequestID(c)
	var notif NotificationDB

	query, args, err := sqlx.Named(queryGetNotificationById, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Notification{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&notif); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetByID no rows found")
			return entity.Notification{}, notification.ErrNotificationNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Notification{}, err
	}

	return r.makeNotification(notif), nil
}

func (r *notificationRepository) GetByFamily(c context.Context, familyID string) ([]entity.Notification, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetNotificationsByFamily, map[string]interface{}{"family_id": familyID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByFamily named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByFamily execution err")
		return nil, err
	}
	defer rows.Close()

	var notifs []entity.Notification
	for rows.Next() {
		var notif NotificationDB
		if err := rows.StructScan(&notif); err != nil {
			return nil, err
		}
		notifs = append(notifs, r.makeNotification(notif))
	}

	return notifs, rows.Err()
}

func (r *notificationRepository) CountUnread(c context.Context, recipientID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryCountUnread, map[string]interface{}{"recipient_id": recipientID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountUnread named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountUnread execution err")
		return 0, err
	}

	return count, nil
}

func (r *notificationRepository) MarkSeen(c context.Context, id string) error {
	return r.exec(c, queryMarkSeen, map[string]interface{}{"id": id}, "MarkSeen")
}

func (r *notificationRepository) MarkAllSeen(c context.Context, recipientID string) error {
	return r.exec(c, queryMarkAllSeen, map[string]interface{}{"recipient_id": recipientID}, "MarkAllSeen")
}

func (r *notificationRepository) exec(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Query execution err")
		return err
	}

	return nil
}

func (r *notificationRepository) makeNotification(notif NotificationDB) entity.Notification {
	return entity.Notification{
		ID:          notif.ID.String,
		FamilyID:    notif.FamilyID.String,
		UserID:      notif.UserID.String,
		RecipientID: notif.RecipientID.String,
		UserName:    notif.UserName.String,
		UserEmail:   notif.UserEmail.String,
		Message:     notif.Message.String,
		ExpenseID:   notif.ExpenseID.String,
		Date:        notif.Date.Time,
		Seen:        notif.Seen,
	}
}
