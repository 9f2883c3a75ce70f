package profile

import (
	"context"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// EventLog pre-fills message and area for recurring profile events.
type EventLog struct {
	log *logger.Logger
}

func Events(l *logger.Logger) EventLog {
	return EventLog{log: l.WithArea("profile")}
}

// ProfileUpdated logs the names of the changed fields, not their values.
func (e EventLog) ProfileUpdated(ctx context.Context, userID string, changed []string) {
	e.log.Info(ctx, "profile updated", logger.Fields{"userId": userID, "changedFields": changed})
}

func (e EventLog) AvatarUploaded(ctx context.Context, userID string, size int64, contentType string) {
	e.log.Info(ctx, "avatar uploaded", logger.Fields{"userId": userID, "size": size, "contentType": contentType})
}

func (e EventLog) RateLimitExceeded(ctx context.Context, userID, action string, attempts int) {
	e.log.Warning(ctx, "rate limit exceeded", logger.Fields{"userId": userID, "action": action, "attempts": attempts})
}

func (e EventLog) PasswordChangeFailed(ctx context.Context, userID string, attempts int) {
	e.log.Security(ctx, "password change failed", logger.Fields{"userId": userID, "attempts": attempts})
}
