package group

import (
	"context"

	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// EventLog pre-fills message and area for recurring group events.
type EventLog struct {
	log *logger.Logger
}

// Events binds the group event helpers to l.
func Events(l *logger.Logger) EventLog {
	return EventLog{log: l.WithArea("group")}
}

func (e EventLog) GroupCreated(ctx context.Context, groupID, ownerID string) {
	e.log.Info(ctx, "group created", logger.Fields{"groupId": groupID, "ownerId": ownerID})
}

func (e EventLog) MemberJoined(ctx context.Context, groupID, userID string) {
	e.log.Info(ctx, "member joined", logger.Fields{"groupId": groupID, "userId": userID})
}

func (e EventLog) MemberLeft(ctx context.Context, groupID, userID string) {
	e.log.Info(ctx, "member left", logger.Fields{"groupId": groupID, "userId": userID})
}

func (e EventLog) MemberKicked(ctx context.Context, groupID, userID, actorID string) {
	e.log.Warning(ctx, "member kicked", logger.Fields{"groupId": groupID, "userId": userID, "actorId": actorID})
}

func (e EventLog) OwnershipTransferred(ctx context.Context, groupID, fromID, toID string) {
	e.log.Info(ctx, "ownership transferred", logger.Fields{"groupId": groupID, "fromId": fromID, "toId": toID})
}

func (e EventLog) RateLimitExceeded(ctx context.Context, userID, action string, attempts int) {
	e.log.Warning(ctx, "rate limit exceeded", logger.Fields{"userId": userID, "action": action, "attempts": attempts})
}

// SuspiciousInput escalates rejected input to the security sink.
func (e EventLog) SuspiciousInput(ctx context.Context, err error) {
	e.log.LogError(ctx, err)
}
