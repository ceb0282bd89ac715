package familyService

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	authRepository "parivar/internal/api/auth/repository"
	expenseRepository "parivar/internal/api/expense/repository"
	"parivar/internal/api/family"
	familyRepository "parivar/internal/api/family/repository"
	"parivar/pkg/utils"

	"github.com/sirupsen/logrus"
)

type FamilyService interface {
	CreateFamily(c context.Context, userID string, req family.CreateFamilyRequest) (family.CreateFamilyResponse, error)
	JoinFamily(c context.Context, userID string, req family.JoinFamilyRequest) (family.FamilyResponse, error)
	GetFamily(c context.Context, userID string) (family.FamilyResponse, error)
	GetInviteCode(c context.Context, userID string) (family.InviteCodeResponse, error)
	RegenerateInviteCode(c context.Context, userID string) (family.InviteCodeResponse, error)
	GetTotalSpending(c context.Context, userID string) (family.TotalSpendingResponse, error)
}

type familyService struct {
	log         *logrus.Logger
	familyRepo  familyRepository.Repository
	authRepo    authRepository.Repository
	expenseRepo expenseRepository.Repository
	utils       utils.IUtils
}

func NewFamilyService(log *logrus.Logger,
	familyRepo familyRepository.Repository,
	authRepo authRepository.Repository,
	expenseRepo expenseRepository.Repository,
	utils utils.IUtils,
) FamilyService {
	return &familyService{
		log:         log,
		familyRepo:  familyRepo,
		authRepo:    authRepo,
		expenseRepo: expenseRepo,
		utils:       utils,
	}
}

// newInviteCode returns an 8-character uppercase hex code, e.g. "A3F7B2E1".
func newInviteCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
