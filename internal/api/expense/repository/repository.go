package expenseRepository

import (
	"time"

	"parivar/internal/api/expense"
	"parivar/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Expenses: &expenseRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Expenses interface {
		CreateExpense(ctx context.Context, exp entity.Expense) error
		GetByID(ctx context.Context, id string) (entity.Expense, error)
		UpdateExpense(ctx context.Context, exp entity.Expense) error
		DeleteExpense(ctx context.Context, id string) error
		GetByUser(ctx context.Context, userID string) ([]entity.Expense, error)
		GetByFamily(ctx context.Context, familyID string) ([]entity.Expense, error)
		GetByFamilyBetween(ctx context.Context, familyID string, from, to time.Time) ([]entity.Expense, error)
		GetByFamilySince(ctx context.Context, familyID string, since time.Time, limit int) ([]entity.Expense, error)
		GetByCategoryBetween(ctx context.Context, familyID, category string, from, to time.Time, limit int) ([]entity.Expense, error)
		GetTopByAmount(ctx context.Context, familyID string, from, to time.Time, limit int) ([]entity.Expense, error)
		SumByFamily(ctx context.Context, familyID string) (float64, error)
		SumByFamilyBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error)
		AggregateBetween(ctx context.Context, familyID string, from, to time.Time) (expense.Aggregate, error)
		CategoryBreakdown(ctx context.Context, familyID string, from, to time.Time) ([]expense.CategoryTotal, error)
		DailyTotals(ctx context.Context, familyID string, from, to time.Time) ([]expense.DailyTotal, error)
	}

	Commit   func() error
	Rollback func() error
}

type expenseRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
