package expenseRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parivar/internal/api/expense"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ExpenseDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	FamilyID    sql.NullString  `db:"family_id"`
	Amount      sql.NullFloat64 `db:"amount"`
	Category    sql.NullString  `db:"category"`
	Description sql.NullString  `db:"description"`
	UserName    sql.NullString  `db:"user_name"`
	Date        sql.NullTime    `db:"date"`
	CreatedAt   sql.NullTime    `db:"created_at"`
	UpdatedAt   sql.NullTime    `db:"updated_at"`
}

func (r *expenseRepository) CreateExpense(c context.Context, exp entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          exp.ID,
		"user_id":     exp.UserID,
		"family_id":   exp.FamilyID,
		"amount":      exp.Amount,
		"category":    exp.Category,
		"description": exp.Description,
		"date":        exp.Date,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateExpense")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating expense")
		return err
	}

	return nil
}

func (r *expenseRepository) GetByID(c context.Context, id string) (entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)
	var exp ExpenseDB

	query, args, err := sqlx.Named(queryGetExpenseById, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Expense{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&exp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetByID no rows found")
			return entity.Expense{}, expense.ErrExpenseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Expense{}, err
	}

	return r.makeExpense(exp), nil
}

func (r *expenseRepository) UpdateExpense(c context.Context, exp entity.Expense) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          exp.ID,
		"amount":      exp.Amount,
		"category":    exp.Category,
		"description": exp.Description,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateExpense, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateExpense execution err")
		return err
	}

	return nil
}

func (r *expenseRepository) DeleteExpense(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteExpense, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteExpense execution err")
		return err
	}

	return nil
}

func (r *expenseRepository) GetByUser(c context.Context, userID string) ([]entity.Expense, error) {
	return r.getMany(c, queryGetExpensesByUser, map[string]interface{}{"user_id": userID}, "GetByUser")
}

func (r *expenseRepository) GetByFamily(c context.Context, familyID string) ([]entity.Expense, error) {
	return r.getMany(c, queryGetExpensesByFamily, map[string]interface{}{"family_id": familyID}, "GetByFamily")
}

func (r *expenseRepository) GetByFamilyBetween(c context.Context, familyID string, from, to time.Time) ([]entity.Expense, error) {
	return r.getMany(c, queryGetExpensesByFamilyBetween, map[string]interface{}{
		"family_id": familyID,
		"from":      from,
		"to":        to,
	}, "GetByFamilyBetween")
}

func (r *expenseRepository) GetByFamilySince(c context.Context, familyID string, since time.Time, limit int) ([]entity.Expense, error) {
	return r.getMany(c, queryGetExpensesByFamilySince, map[string]interface{}{
		"family_id": familyID,
		"since":     since,
		"limit":     limit,
	}, "GetByFamilySince")
}

func (r *expenseRepository) GetByCategoryBetween(c context.Context, familyID, category string, from, to time.Time, limit int) ([]entity.Expense, error) {
	return r.getMany(c, queryGetExpensesByCategoryBetween, map[string]interface{}{
		"family_id": familyID,
		"category":  category,
		"from":      from,
		"to":        to,
		"limit":     limit,
	}, "GetByCategoryBetween")
}

func (r *expenseRepository) GetTopByAmount(c context.Context, familyID string, from, to time.Time, limit int) ([]entity.Expense, error) {
	return r.getMany(c, queryGetTopExpensesByAmount, map[string]interface{}{
		"family_id": familyID,
		"from":      from,
		"to":        to,
		"limit":     limit,
	}, "GetTopByAmount")
}

func (r *expenseRepository) SumByFamily(c context.Context, familyID string) (float64, error) {
	return r.sum(c, querySumByFamily, map[string]interface{}{"family_id": familyID}, "SumByFamily")
}

func (r *expenseRepository) SumByFamilyBetween(c context.Context, familyID string, from, to time.Time) (float64, error) {
	return r.sum(c, querySumByFamilyBetween, map[string]interface{}{
		"family_id": familyID,
		"from":      from,
		"to":        to,
	}, "SumByFamilyBetween")
}

func (r *expenseRepository) AggregateBetween(c context.Context, familyID string, from, to time.Time) (expense.Aggregate, error) {
	requestID := contextPkg.GetRequestID(c)

	var row struct {
		Total   float64 `db:"total"`
		Count   int     `db:"count"`
		Average float64 `db:"average"`
	}

	query, args, err := sqlx.Named(queryAggregateBetween, map[string]interface{}{
		"family_id": familyID,
		"from":      from,
		"to":        to,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AggregateBetween named query preparation err")
		return expense.Aggregate{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AggregateBetween execution err")
		return expense.Aggregate{}, err
	}

	return expense.Aggregate{Total: row.Total, Count: row.Count, Average: row.Average}, nil
}

func (r *expenseRepository) CategoryBreakdown(c context.Context, familyID string, from, to time.Time) ([]expense.CategoryTotal, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryCategoryBreakdown, map[string]interface{}{
		"family_id": familyID,
		"from":      from,
		"to":        to,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CategoryBreakdown named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CategoryBreakdown execution err")
		return nil, err
	}
	defer rows.Close()

	var breakdown []expense.CategoryTotal
	for rows.Next() {
		var row struct {
			Category string  `db:"category"`
			Total    float64 `db:"total"`
			Count    int     `db:"count"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, expense.CategoryTotal{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		})
	}

	return breakdown, rows.Err()
}

func (r *expenseRepository) DailyTotals(c context.Context, familyID string, from, to time.Time) ([]expense.DailyTotal, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDailyTotals, map[string]interface{}{
		"family_id": familyID,
		"from":      from,
		"to":        to,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DailyTotals named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DailyTotals execution err")
		return nil, err
	}
	defer rows.Close()

	var totals []expense.DailyTotal
	for rows.Next() {
		var row struct {
			Day   time.Time `db:"day"`
			Total float64   `db:"total"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		totals = append(totals, expense.DailyTotal{Day: row.Day, Total: row.Total})
	}

	return totals, rows.Err()
}

func (r *expenseRepository) getMany(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) ([]entity.Expense, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	rows, err := r.q.QueryxContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Query execution err")
		return nil, err
	}
	defer rows.Close()

	var expenses []entity.Expense
	for rows.Next() {
		var exp ExpenseDB
		if err := rows.StructScan(&exp); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
				"operation":  operation,
			}).Error("Row scan err")
			return nil, err
		}
		expenses = append(expenses, r.makeExpense(exp))
	}

	return expenses, rows.Err()
}

func (r *expenseRepository) sum(c context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (float64, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total float64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Query execution err")
		return 0, err
	}

	return total, nil
}

func (r *expenseRepository) makeExpense(exp ExpenseDB) entity.Expense {
	return entity.Expense{
		ID:          exp.ID.String,
		UserID:      exp.UserID.String,
		FamilyID:    exp.FamilyID.String,
		Amount:      exp.Amount.Float64,
		Category:    exp.Category.String,
		Description: exp.Description.String,
		UserName:    exp.UserName.String,
		Date:        exp.Date.Time,
		CreatedAt:   exp.CreatedAt.Time,
		UpdatedAt:   exp.UpdatedAt.Time,
	}
}
