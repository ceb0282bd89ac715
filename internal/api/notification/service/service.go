package notificationService

import (
	"context"
	"errors"

	authRepository "parivar/internal/api/auth/repository"
	"parivar/internal/api/family"
	"parivar/internal/api/notification"
	notificationRepository "parivar/internal/api/notification/repository"
	"parivar/internal/entity"
	contextPkg "parivar/pkg/context"

	"github.com/sirupsen/logrus"
)

type NotificationService interface {
	GetNotifications(c context.Context, userID string) ([]entity.Notification, error)
	GetUnreadCount(c context.Context, userID string) (notification.UnreadCountResponse, error)
	MarkAsSeen(c context.Context, userID string, notificationID string) (entity.Notification, error)
	MarkAllAsSeen(c context.Context, userID string) error
}

type notificationService struct {
	log              *logrus.Logger
	notificationRepo notificationRepository.Repository
	authRepo         authRepository.Repository
}

func NewNotificationService(log *logrus.Logger,
	notificationRepo notificationRepository.Repository,
	authRepo authRepository.Repository,
) NotificationService {
	return &notificationService{
		log:              log,
		notificationRepo: notificationRepo,
		authRepo:         authRepo,
	}
}

func (s *notificationService) GetNotifications(c context.Context, userID string) ([]entity.Notification, error) {
	requestID := contextPkg.GetRequestID(c)

	authRepo, err := s.authRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	user, err := authRepo.Users.GetByID(c, userID)
	if err != nil {
		return nil, err
	}
	if user.FamilyID == "" {
		return nil, family.ErrNotInFamily
	}

	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	notifs, err := repo.Notifications.GetByFamily(c, user.FamilyID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get notifications by family")
		return nil, err
	}

	if notifs == nil {
		notifs = []entity.Notification{}
	}

	return notifs, nil
}

func (s *notificationService) GetUnreadCount(c context.Context, userID string) (notification.UnreadCountResponse, error) {
	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		return notification.UnreadCountResponse{}, err
	}

	count, err := repo.Notifications.CountUnread(c, userID)
	if err != nil {
		return notification.UnreadCountResponse{}, err
	}

	return notification.UnreadCountResponse{Count: count}, nil
}

func (s *notificationService) MarkAsSeen(c context.Context, userID string, notificationID string) (entity.Notification, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		return entity.Notification{}, err
	}

	notif, err := repo.Notifications.GetByID(c, notificationID)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			return entity.Notification{}, notification.ErrNotificationNotFound
		}
		return entity.Notification{}, err
	}

	if notif.RecipientID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"notification_id": notificationID,
			"user_id":         userID,
		}).Warn("User is not the notification recipient")
		return entity.Notification{}, notification.ErrNotRecipient
	}

	if err := repo.Notifications.MarkSeen(c, notificationID); err != nil {
		return entity.Notification{}, err
	}

	notif.Seen = true
	return notif, nil
}

func (s *notificationService) MarkAllAsSeen(c context.Context, userID string) error {
	repo, err := s.notificationRepo.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Notifications.MarkAllSeen(c, userID)
}
