package chat

import (
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

func MessageEmpty(roomID string) *apperr.Error {
	return KindMessageEmpty.New(
		apperr.Detail("message body is blank"),
		apperr.Field("roomId", roomID),
	)
}

func MessageTooLong(maxLen, actual int) *apperr.Error {
	return KindMessageTooLong.New(
		apperr.Detailf("message has %d characters, limit %d", actual, maxLen),
		apperr.Limit("max", maxLen),
		apperr.Field("length", actual),
	)
}

func MessageNotFound(messageID string) *apperr.Error {
	return KindMessageNotFound.New(
		apperr.Detailf("message %s not found", messageID),
		apperr.Field("messageId", messageID),
	)
}

func RoomNotFound(roomID string) *apperr.Error {
	return KindRoomNotFound.New(
		apperr.Detailf("room %s not found", roomID),
		apperr.Field("roomId", roomID),
	)
}

// AttachmentTooLarge takes sizes in bytes; the limit is shown in MB.
func AttachmentTooLarge(size, maxSize int64) *apperr.Error {
	return KindAttachmentTooLarge.New(
		apperr.Detailf("attachment is %d bytes, limit %d", size, maxSize),
		apperr.Limit("maxMb", int(maxSize/(1<<20))),
		apperr.Field("size", size),
	)
}

func AttachmentTypeUnsupported(contentType string) *apperr.Error {
	return KindAttachmentTypeUnsupported.New(
		apperr.Detailf("content type %q not allowed", contentType),
		apperr.Field("contentType", contentType),
	)
}

func RateLimited(userID string, retryAfterSeconds int) *apperr.Error {
	return KindRateLimited.New(
		apperr.Detailf("message rate limit hit by %s", userID),
		apperr.Field("userId", userID),
		apperr.Field("retryAfterSeconds", retryAfterSeconds),
	)
}

func RoomClosed(roomID string) *apperr.Error {
	return KindRoomClosed.New(
		apperr.Detailf("room %s is closed", roomID),
		apperr.Field("roomId", roomID),
	)
}

func MessageAlreadyDeleted(messageID string) *apperr.Error {
	return KindMessageAlreadyDeleted.New(
		apperr.Detailf("message %s already deleted", messageID),
		apperr.Field("messageId", messageID),
	)
}

func EditWindowExpired(messageID string, window time.Duration) *apperr.Error {
	return KindEditWindowExpired.New(
		apperr.Detailf("edit window of %s passed for message %s", window, messageID),
		apperr.Limit("minutes", int(window.Minutes())),
		apperr.Field("messageId", messageID),
	)
}

func NotRoomMember(roomID, userID string) *apperr.Error {
	return KindNotRoomMember.New(
		apperr.Detailf("user %s is not in room %s", userID, roomID),
		apperr.Field("roomId", roomID),
		apperr.Field("userId", userID),
	)
}

func NotMessageAuthor(messageID, userID string) *apperr.Error {
	return KindNotMessageAuthor.New(
		apperr.Detailf("user %s did not write message %s", userID, messageID),
		apperr.Field("messageId", messageID),
		apperr.Field("userId", userID),
	)
}

func Unauthenticated() *apperr.Error {
	return KindUnauthenticated.New(apperr.Detail("no authenticated user on chat request"))
}

func UserMuted(roomID, userID string, until time.Time) *apperr.Error {
	return KindUserMuted.New(
		apperr.Detailf("user %s muted in room %s until %s", userID, roomID, until.UTC().Format(time.RFC3339)),
		apperr.Field("roomId", roomID),
		apperr.Field("userId", userID),
		apperr.Field("mutedUntil", until.UTC()),
	)
}

func UserBanned(roomID, userID string) *apperr.Error {
	return KindUserBanned.New(
		apperr.Detailf("banned user %s tried to access room %s", userID, roomID),
		apperr.Field("roomId", roomID),
		apperr.Field("userId", userID),
	)
}

func XSSDetected(roomID string) *apperr.Error {
	return KindXSSDetected.New(
		apperr.Detail("script pattern in chat message"),
		apperr.Field("roomId", roomID),
	)
}

func SQLInjectionDetected(roomID string) *apperr.Error {
	return KindSQLInjectionDetected.New(
		apperr.Detail("sql injection pattern in chat message"),
		apperr.Field("roomId", roomID),
	)
}

func SpamDetected(userID string, score float64) *apperr.Error {
	return KindSpamDetected.New(
		apperr.Detailf("spam score %.2f for user %s", score, userID),
		apperr.Field("userId", userID),
		apperr.Field("score", score),
	)
}

func DatabaseError(op string, err error) *apperr.Error {
	return KindDatabaseError.New(
		apperr.Detailf("chat %s failed", op),
		apperr.Field("operation", op),
		apperr.Cause(err),
	)
}

func NetworkError(err error) *apperr.Error {
	return KindNetworkError.New(apperr.Detail("chat upstream unreachable"), apperr.Cause(err))
}

func Timeout(op string, elapsed time.Duration) *apperr.Error {
	return KindTimeout.New(
		apperr.Detailf("chat %s timed out after %s", op, elapsed),
		apperr.Field("operation", op),
		apperr.Field("elapsedMs", elapsed.Milliseconds()),
	)
}

func ConnectionLost(connID string, err error) *apperr.Error {
	return KindConnectionLost.New(
		apperr.Detailf("realtime connection %s dropped", connID),
		apperr.Field("connectionId", connID),
		apperr.Cause(err),
	)
}

func MessageQueueFull(roomID string, depth int) *apperr.Error {
	return KindMessageQueueFull.New(
		apperr.Detailf("outbound queue for room %s full at %d", roomID, depth),
		apperr.Field("roomId", roomID),
		apperr.Field("depth", depth),
	)
}

func UnknownError(err error) *apperr.Error {
	return KindUnknownError.New(apperr.Detail("unexpected chat error"), apperr.Cause(err))
}

func RoomLimitExceeded(userID string, maxRooms int) *apperr.Error {
	return KindRoomLimitExceeded.New(
		apperr.Detailf("user %s joined the maximum of %d rooms", userID, maxRooms),
		apperr.Limit("max", maxRooms),
		apperr.Field("userId", userID),
	)
}

func ReactionInvalid(reaction string) *apperr.Error {
	return KindReactionInvalid.New(
		apperr.Detailf("unknown reaction %q", reaction),
		apperr.Field("reaction", reaction),
	)
}

func MessageAlreadyPinned(messageID string) *apperr.Error {
	return KindMessageAlreadyPinned.New(
		apperr.Detailf("message %s already pinned", messageID),
		apperr.Field("messageId", messageID),
	)
}

func PinLimitExceeded(roomID string, maxPins int) *apperr.Error {
	return KindPinLimitExceeded.New(
		apperr.Detailf("room %s has %d pinned messages", roomID, maxPins),
		apperr.Limit("max", maxPins),
		apperr.Field("roomId", roomID),
	)
}

func HistoryCorrupted(roomID string, err error) *apperr.Error {
	return KindHistoryCorrupted.New(
		apperr.Detailf("history of room %s cannot be decoded", roomID),
		apperr.Field("roomId", roomID),
		apperr.Cause(err),
	)
}

// DuplicateMessage is raised when a client resends a message with an
// idempotency key that was already accepted.
func DuplicateMessage(clientMessageID string) *apperr.Error {
	return KindDuplicateMessage.New(
		apperr.Detailf("client message %s already stored", clientMessageID),
		apperr.Field("clientMessageId", clientMessageID),
	)
}
