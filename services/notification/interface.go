package notification

import "context"

// NotificationService delivers push notifications to user devices.
type NotificationService interface {
	SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}
