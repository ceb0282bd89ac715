package budgetRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parivar/internal/api/budget"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BudgetDB struct {
	ID          sql.NullString  `db:"id"`
	FamilyID    sql.NullString  `db:"family_id"`
	LimitAmount sql.NullFloat64 `db:"limit_amount"`
	Period      sql.NullString  `db:"period"`
	CreatedAt   sql.NullTime    `db:"created_at"`
}

func (r *budgetRepository) CreateBudget(c context.Context, bgt entity.Budget) error {
	argsKV := map[string]interface{}{
		"id":           bgt.ID,
		"family_id":    bgt.FamilyID,
		"limit_amount": bgt.LimitAmount,
		"period":       bgt.Period,
		"created_at":   time.Now(),
	}

	return r.exec(c, queryCreateBudget, argsKV, "CreateBudget")
}

func (r *budgetRepository) GetByID(c context.Context, id string) (entity.Budget, error) {
	return r.getOne(c, queryGetBudgetById, map[string]interface{}{"id": id}, "GetByID")
}

func (r *budgetRepository) GetLatestByFamily(c context.Context, familyID string) (entity.Budget, error) {
	return r.getOne(c, queryGetLatestBudgetByFamily, map[string]interface{}{"family_id": familyID}, "GetLatestByFamily")
}

func (r *budgetRepository) getOne(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var bgt BudgetDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&bgt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Query execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(bgt), nil
}

func (r *budgetRepository) UpdateBudget(c context.Context, bgt entity.Budget) error {
	argsKV := map[string]interface{}{
		"id":           bgt.ID,
		"limit_amount": bgt.LimitAmount,
		"period":       bgt.Period,
	}

	return r.exec(c, queryUpdateBudget, argsKV, "UpdateBudget")
}

func (r *budgetRepository) DeleteBudget(c context.Context, id string) error {
	return r.exec(c, queryDeleteBudget, map[string]interface{}{"id": id}, "DeleteBudget")
}

func (r *budgetRepository) exec(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) error {
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

func (r *budgetRepository) makeBudget(bgt BudgetDB) entity.Budget {
	return entity.Budget{
		ID:          bgt.ID.String,
		FamilyID:    bgt.FamilyID.String,
		LimitAmount: bgt.LimitAmount.Float64,
		Period:      bgt.Period.String,
		CreatedAt:   bgt.CreatedAt.Time,
	}
}
