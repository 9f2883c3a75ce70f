package chat

import (
	"context"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// EventLog pre-fills message and area for recurring chat events.
type EventLog struct {
	log *logger.Logger
}

// Events binds the chat event helpers to l.
func Events(l *logger.Logger) EventLog {
	return EventLog{log: l.WithArea("chat")}
}

func (e EventLog) MessageSent(ctx context.Context, roomID, messageID string, length int) {
	e.log.Debug(ctx, "message sent", logger.Fields{"roomId": roomID, "messageId": messageID, "length": length})
}

func (e EventLog) MessageDeleted(ctx context.Context, roomID, messageID, actorID string) {
	e.log.Info(ctx, "message deleted", logger.Fields{"roomId": roomID, "messageId": messageID, "actorId": actorID})
}

// MessageBlocked records a message rejected by content filters. It goes to
// the security sink.
func (e EventLog) MessageBlocked(ctx context.Context, roomID, userID, reason string) {
	e.log.Security(ctx, "message blocked", logger.Fields{"roomId": roomID, "userId": userID, "reason": reason})
}

func (e EventLog) UserMuted(ctx context.Context, roomID, userID, actorID string) {
	e.log.Warning(ctx, "user muted", logger.Fields{"roomId": roomID, "userId": userID, "actorId": actorID})
}

func (e EventLog) RateLimitExceeded(ctx context.Context, userID string, perMinute int) {
	e.log.Warning(ctx, "rate limit exceeded", logger.Fields{"userId": userID, "action": "send_message", "perMinute": perMinute})
}

func (e EventLog) ConnectionDropped(ctx context.Context, connID string, err error) {
	fields := logger.Fields{"connectionId": connID}
	if err != nil {
		fields["error"] = err.Error()
	}
	e.log.Warning(ctx, "connection dropped", fields)
}
