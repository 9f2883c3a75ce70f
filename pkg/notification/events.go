package notification

import (
	"context"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

type EventLog struct {
	log *logger.Logger
}

// Events binds the notification event helpers to l.
func Events(l *logger.Logger) EventLog {
	return EventLog{log: l.WithArea("notification")}
}

func (e EventLog) Sent(ctx context.Context, notificationID, channel string, recipients int) {
	e.log.Info(ctx, "notification sent", logger.Fields{
		"notificationId": notificationID,
		"channel":        channel,
		"recipients":     recipients,
	})
}

func (e EventLog) Read(ctx context.Context, notificationID, userID string) {
	e.log.Debug(ctx, "notification read", logger.Fields{"notificationId": notificationID, "userId": userID})
}

// DeliveryFailed logs a failed attempt. The final attempt is logged as an
// error, earlier ones as warnings.
func (e EventLog) DeliveryFailed(ctx context.Context, notificationID, channel string, attempt int, final bool, err error) {
	fields := logger.Fields{"notificationId": notificationID, "channel": channel, "attempt": attempt}
	if err != nil {
		fields["error"] = err.Error()
	}
	if final {
		e.log.Error(ctx, "notification delivery failed", fields)
		return
	}
	e.log.Warning(ctx, "notification delivery retry", fields)
}

func (e EventLog) PushTokenRevoked(ctx context.Context, userID, deviceID string) {
	e.log.Info(ctx, "push token revoked", logger.Fields{"userId": userID, "deviceId": deviceID})
}

func (e EventLog) RateLimitExceeded(ctx context.Context, senderID string, sentLastMinute int) {
	e.log.Warning(ctx, "rate limit exceeded", logger.Fields{"senderId": senderID, "action": "send_notification", "sentLastMinute": sentLastMinute})
}

func (e EventLog) SpamSuspected(ctx context.Context, err error) {
	e.log.LogError(ctx, err)
}
