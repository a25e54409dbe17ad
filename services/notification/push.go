package notification

import (
	"context"
	"fmt"

	userRepo "grindsphere/database/repository/user"
	"grindsphere/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService sends pushes over Firebase Cloud Messaging.
type DefaultNotificationService struct {
	Repo userRepo.UserRepository
	FCM  *messaging.Client
}

// SendPushNotification looks up the user's device token and delivers the
// notification. Users without a registered token are skipped silently.
func (s *DefaultNotificationService) SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("push: failed to fetch user %s: %w", userID, err)
	}
	if usr.FCMToken == "" {
		utils.GetLogger().Debug("push: user has no FCM token, skipping",
			zap.String("userID", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: usr.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		return fmt.Errorf("push: failed to send to user %s: %w", userID, err)
	}
	return nil
}
