package familyRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parivar/internal/api/family"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type FamilyDB struct {
	ID         sql.NullString `db:"id"`
	Name       sql.NullString `db:"name"`
	HeadID     sql.NullString `db:"head_id"`
	InviteCode sql.NullString `db:"invite_code"`
	CreatedAt  sql.NullTime   `db:"created_at"`
}

func (r *familyRepository) CreateFamily(c context.Context, fam entity.Family) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          fam.ID,
		"name":        fam.Name,
		"head_id":     fam.HeadID,
		"invite_code": fam.InviteCode,
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateFamily, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateFamily")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating family")
		return err
	}

	return nil
}

func (r *familyRepository) GetByID(c context.Context, id string) (entity.Family, error) {
	return r.getOne(c, queryGetFamilyById, map[string]interface{}{"id": id}, "GetByID")
}

func (r *familyRepository) GetByHead(c context.Context, headID string) (entity.Family, error) {
	return r.getOne(c, queryGetFamilyByHead, map[string]interface{}{"head_id": headID}, "GetByHead")
}

func (r *familyRepository) GetByInviteCode(c context.Context, inviteCode string) (entity.Family, error) {
	fam, err := r.getOne(c, queryGetFamilyByInviteCode, map[string]interface{}{"invite_code": inviteCode}, "GetByInviteCode")
	if errors.Is(err, family.ErrFamilyNotFound) {
		return entity.Family{}, family.ErrInvalidInviteCode
	}
	return fam, err
}

func (r *familyRepository) UpdateInviteCode(c context.Context, id string, inviteCode string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          id,
		"invite_code": inviteCode,
	}

	query, args, err := sqlx.Named(queryUpdateInviteCode, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateInviteCode named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateInviteCode execution err")
		return err
	}

	return nil
}

func (r *familyRepository) getOne(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (entity.Family, error) {
	requestID := contextPkg.GetRequestID(c)
	var fam FamilyDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Named query preparation err")
		return entity.Family{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&fam); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"operation":  operation,
			}).Warn("Family not found")
			return entity.Family{}, family.ErrFamilyNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Query execution err")
		return entity.Family{}, err
	}

	return r.makeFamily(fam), nil
}

func (r *familyRepository) makeFamily(fam FamilyDB) entity.Family {
	return entity.Family{
		ID:         fam.ID.String,
		Name:       fam.Name.String,
		HeadID:     fam.HeadID.String,
		InviteCode: fam.InviteCode.String,
		CreatedAt:  fam.CreatedAt.Time,
	}
}
