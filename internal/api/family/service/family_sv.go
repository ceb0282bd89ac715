package familyService

import (
	"fmt"
	"strings"
	"time"

	"parivar/internal/api/family"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *familyService) CreateFamily(c context.Context, userID string, req family.CreateFamilyRequest) (family.CreateFamilyResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return family.CreateFamilyResponse{}, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return family.CreateFamilyResponse{}, err
	}
	if user.FamilyID != "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("User already part of a family")
		return family.CreateFamilyResponse{}, family.ErrAlreadyInFamily
	}

	inviteCode, err := newInviteCode()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate invite code")
		return family.CreateFamilyResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate family id")
		return family.CreateFamilyResponse{}, err
	}

	fam := entity.Family{
		ID:         id,
		Name:       req.Name,
		HeadID:     userID,
		InviteCode: inviteCode,
	}

	familyRepo, err := s.familyRepo.NewClient(false)
	if err != nil {
		return family.CreateFamilyResponse{}, err
	}

	if err := familyRepo.Families.CreateFamily(c, fam); err != nil {
		return family.CreateFamilyResponse{}, err
	}

	if err := authRepo.Users.UpdateFamily(c, userID, fam.ID, string(entity.RoleHead)); err != nil {
		return family.CreateFamilyResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"family_id":  fam.ID,
	}).Info("Family created")

	res, err := s.makeFamilyResponse(c, fam)
	if err != nil {
		return family.CreateFamilyResponse{}, err
	}

	return family.CreateFamilyResponse{
		Family:  res,
		Message: fmt.Sprintf("Family created! Share this invite code: %s", inviteCode),
	}, nil
}

func (s *familyService) JoinFamily(c context.Context, userID string, req family.JoinFamilyRequest) (family.FamilyResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return family.FamilyResponse{}, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return family.FamilyResponse{}, err
	}
	if user.FamilyID != "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("User already part of a family")
		return family.FamilyResponse{}, family.ErrAlreadyInFamily
	}

	familyRepo, err := s.familyRepo.NewClient(false)
	if err != nil {
		return family.FamilyResponse{}, err
	}

	fam, err := familyRepo.Families.GetByInviteCode(c, strings.ToUpper(req.InviteCode))
	if err != nil {
		return family.FamilyResponse{}, err
	}

	if err := authRepo.Users.UpdateFamily(c, userID, fam.ID, string(entity.RoleMember)); err != nil {
		return family.FamilyResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"family_id":  fam.ID,
		"user_id":    userID,
	}).Info("User joined family")

	return s.makeFamilyResponse(c, fam)
}

func (s *familyService) GetFamily(c context.Context, userID string) (family.FamilyResponse, error) {
	fam, err := s.familyForUser(c, userID)
	if err != nil {
		return family.FamilyResponse{}, err
	}

	return s.makeFamilyResponse(c, fam)
}

func (s *familyService) GetInviteCode(c context.Context, userID string) (family.InviteCodeResponse, error) {
	familyRepo, err := s.familyRepo.NewClient(false)
	if err != nil {
		return family.InviteCodeResponse{}, err
	}

	fam, err := familyRepo.Families.GetByHead(c, userID)
	if err != nil {
		return family.InviteCodeResponse{}, err
	}

	if fam.InviteCode == "" {
		code, err := newInviteCode()
		if err != nil {
			return family.InviteCodeResponse{}, err
		}
		if err := familyRepo.Families.UpdateInviteCode(c, fam.ID, code); err != nil {
			return family.InviteCodeResponse{}, err
		}
		fam.InviteCode = code
	}

	return family.InviteCodeResponse{InviteCode: fam.InviteCode}, nil
}

func (s *familyService) RegenerateInviteCode(c context.Context, userID string) (family.InviteCodeResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	familyRepo, err := s.familyRepo.NewClient(false)
	if err != nil {
		return family.InviteCodeResponse{}, err
	}

	fam, err := familyRepo.Families.GetByHead(c, userID)
	if err != nil {
		return family.InviteCodeResponse{}, err
	}

	code, err := newInviteCode()
	if err != nil {
		return family.InviteCodeResponse{}, err
	}

	if err := familyRepo.Families.UpdateInviteCode(c, fam.ID, code); err != nil {
		return family.InviteCodeResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"family_id":  fam.ID,
	}).Info("Invite code regenerated")

	return family.InviteCodeResponse{InviteCode: code, Message: "Invite code regenerated"}, nil
}

func (s *familyService) GetTotalSpending(c context.Context, userID string) (family.TotalSpendingResponse, error) {
	fam, err := s.familyForUser(c, userID)
	if err != nil {
		return family.TotalSpendingResponse{}, err
	}

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return family.TotalSpendingResponse{}, err
	}

	total, err := expenseRepo.Expenses.SumByFamily(c, fam.ID)
	if err != nil {
		return family.TotalSpendingResponse{}, err
	}

	return family.TotalSpendingResponse{FamilyID: fam.ID, Total: total}, nil
}

func (s *familyService) familyForUser(c context.Context, userID string) (entity.Family, error) {
	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return entity.Family{}, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return entity.Family{}, err
	}
	if user.FamilyID == "" {
		return entity.Family{}, family.ErrFamilyNotFound
	}

	familyRepo, err := s.familyRepo.NewClient(false)
	if err != nil {
		return entity.Family{}, err
	}

	return familyRepo.Families.GetByID(c, user.FamilyID)
}

func (s *familyService) makeFamilyResponse(c context.Context, fam entity.Family) (family.FamilyResponse, error) {
	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return family.FamilyResponse{}, err
	}

	members, err := authRepo.Users.GetByFamily(c, fam.ID)
	if err != nil {
		return family.FamilyResponse{}, err
	}

	res := family.FamilyResponse{
		ID:        fam.ID,
		Name:      fam.Name,
		HeadID:    fam.HeadID,
		CreatedAt: fam.CreatedAt,
		Members:   make([]family.MemberResponse, 0, len(members)),
	}
	for _, member := range members {
		res.Members = append(res.Members, family.MemberResponse{
			ID:    member.ID,
			Name:  member.Name,
			Email: member.Email,
			Role:  member.Role,
		})
	}

	return res, nil
}
