package chatService

import (
	"fmt"
	"math/rand"

	"parivar/internal/api/chat"
	"parivar/internal/api/family"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"
	"parivar/pkg/nlp"
	"parivar/pkg/translator"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var confirmationTemplates = []string{
	"✅ Added ₹%g to %s. Family total: ₹%g",
	"Got it! ₹%g for %s recorded. Total: ₹%g",
	"Expense saved: ₹%g in %s. Running total: ₹%g",
	"✓ ₹%g tracked under %s. Family spent: ₹%g",
}

func (s *chatService) Query(c context.Context, userID string, req chat.QueryRequest) (chat.QueryResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	user, err := s.memberForUser(c, userID)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	intent := nlp.AnalyzeIntent(req.Message)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     intent.Type,
		"family_id":  user.FamilyID,
	}).Info("Chat query classified")

	res, err := s.ProcessIntent(c, intent, userID, user.FamilyID)
	if err != nil {
		return chat.QueryResponse{}, err
	}

	res.Success = true
	return res, nil
}

func (s *chatService) LogExpense(c context.Context, userID string, req chat.LogExpenseRequest) (chat.LogExpenseResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	user, err := s.memberForUser(c, userID)
	if err != nil {
		return chat.LogExpenseResponse{}, err
	}

	result := s.translator.TranslateToEnglish(c, req.Message)
	language := &chat.LanguageInfo{
		Detected: result.DetectedLanguage,
		Name:     translator.LanguageName(result.DetectedLanguage),
	}

	parsed := nlp.Parse(result.Text, false)

	if !nlp.IsExpenseEntry(result.Text) {
		localized := s.translator.TranslateFromEnglish(c, parsed.ClarificationQuestion, result.DetectedLanguage)
		return chat.LogExpenseResponse{
			Message:            localized,
			NeedsClarification: true,
			Language:           language,
		}, nil
	}

	parsedData := &chat.ParsedData{
		Amount:           parsed.Amount,
		Category:         parsed.Category,
		Confidence:       parsed.Confidence,
		Parser:           "nlp",
		DetectedLanguage: result.DetectedLanguage,
		TranslatedInput:  result.Text,
	}

	if parsed.Amount <= 0 {
		errMsg := "Could not determine the amount. Please mention how much you spent (e.g., '200 rupees for food')"
		localized := s.translator.TranslateFromEnglish(c, errMsg, result.DetectedLanguage)
		return chat.LogExpenseResponse{
			Message:          localized,
			OriginalLanguage: result.DetectedLanguage,
			ParsedData:       parsedData,
		}, chat.ErrAmountNotFound
	}

	id, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		return chat.LogExpenseResponse{}, err
	}

	date := s.now()
	if mentioned, ok := nlp.ExtractDate(result.Text, s.now()); ok {
		date = mentioned
	}

	// Description keeps the message in the user's own language.
	exp := entity.Expense{
		ID:          id,
		UserID:      userID,
		FamilyID:    user.FamilyID,
		Amount:      parsed.Amount,
		Category:    parsed.Category,
		Description: req.Message,
		Date:        date,
	}

	expenseRepo, err := s.expenseRepo.NewClient(false)
	if err != nil {
		return chat.LogExpenseResponse{}, err
	}

	if err := expenseRepo.Expenses.CreateExpense(c, exp); err != nil {
		return chat.LogExpenseResponse{}, err
	}

	familyTotal, err := expenseRepo.Expenses.SumByFamily(c, user.FamilyID)
	if err != nil {
		return chat.LogExpenseResponse{}, err
	}

	english := fmt.Sprintf(confirmationTemplates[rand.Intn(len(confirmationTemplates))],
		parsed.Amount, parsed.Category, familyTotal)
	localized := s.translator.TranslateFromEnglish(c, english, result.DetectedLanguage)

	s.recordChatNotification(c, user, exp, localized)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"expense_id": exp.ID,
		"confidence": parsed.Confidence,
		"language":   result.DetectedLanguage,
	}).Info("Expense logged from chat")

	return chat.LogExpenseResponse{
		Success: true,
		Expense: &chat.LoggedExpense{
			ID:          exp.ID,
			Description: exp.Description,
			Amount:      exp.Amount,
			Category:    exp.Category,
			Date:        exp.Date,
		},
		Message:     localized,
		ParsedData:  parsedData,
		FamilyTotal: familyTotal,
		Language:    language,
	}, nil
}

func (s *chatService) ParsePreview(req chat.ParsePreviewRequest) nlp.ParsedExpense {
	return nlp.ParseLenient(req.Message)
}

// recordChatNotification keeps a record of the logged expense in the user's
// own feed. Failures are logged and swallowed.
func (s *chatService) recordChatNotification(c context.Context, user entity.User, exp entity.Expense, message string) {
	requestID := contextPkg.GetRequestID(c)

	id, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		return
	}

	notificationRepo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		return
	}

	notif := entity.Notification{
		ID:          id,
		FamilyID:    user.FamilyID,
		UserID:      user.ID,
		RecipientID: user.ID,
		Message:     message,
		ExpenseID:   exp.ID,
		Date:        s.now(),
		Seen:        false,
	}

	if err := notificationRepo.Notifications.CreateNotification(c, notif); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to create chat notification")
	}
}

func (s *chatService) memberForUser(c context.Context, userID string) (entity.User, error) {
	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return entity.User{}, err
	}
	if user.FamilyID == "" {
		return entity.User{}, family.ErrNotInFamily
	}

	return user, nil
}
