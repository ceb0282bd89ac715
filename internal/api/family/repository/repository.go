package familyRepository

import (
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
		Families: &familyRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Families interface {
		CreateFamily(ctx context.Context, family entity.Family) error
		GetByID(ctx context.Context, id string) (entity.Family, error)
		GetByHead(ctx context.Context, headID string) (entity.Family, error)
		GetByInviteCode(ctx context.Context, inviteCode string) (entity.Family, error)
		UpdateInviteCode(ctx context.Context, id string, inviteCode string) error
	}

	Commit   func() error
	Rollback func() error
}

type familyRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
