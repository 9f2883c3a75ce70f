package chat

import (
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

var (
	ErrValidation = apperr.ClassOf(apperr.DomainChat, apperr.CategoryValidation)
	ErrPermission = apperr.ClassOf(apperr.DomainChat, apperr.CategoryPermission)
	ErrBusiness   = apperr.ClassOf(apperr.DomainChat, apperr.CategoryBusiness)
	ErrSystem     = apperr.ClassOf(apperr.DomainChat, apperr.CategorySystem)
	ErrSecurity   = apperr.ClassOf(apperr.DomainChat, apperr.CategorySecurity)
)

// Chat's category sets re-export the base factories of their category and
// add conditions of their own, coded CHAT-VAL-, CHAT-PERM- and CHAT-BIZ-.
var (
	Validation validationSet
	Permission permissionSet
	Business   businessSet
)

type validationSet struct{}

func (validationSet) MessageEmpty(roomID string) *apperr.Error { return MessageEmpty(roomID) }
func (validationSet) MessageTooLong(maxLen, actual int) *apperr.Error {
	return MessageTooLong(maxLen, actual)
}
func (validationSet) AttachmentTooLarge(size, maxSize int64) *apperr.Error {
	return AttachmentTooLarge(size, maxSize)
}
func (validationSet) AttachmentTypeUnsupported(contentType string) *apperr.Error {
	return AttachmentTypeUnsupported(contentType)
}
func (validationSet) ReactionInvalid(reaction string) *apperr.Error { return ReactionInvalid(reaction) }

func (validationSet) MentionInvalid(userID string) *apperr.Error {
	return KindMentionInvalid.New(
		apperr.Detailf("mentioned user %s cannot be resolved", userID),
		apperr.Field("mentionedUserId", userID),
	)
}

func (validationSet) MentionsTooMany(maxMentions, actual int) *apperr.Error {
	return KindMentionsTooMany.New(
		apperr.Detailf("%d mentions, limit %d", actual, maxMentions),
		apperr.Limit("max", maxMentions),
		apperr.Field("count", actual),
	)
}

func (validationSet) LinkNotAllowed(roomID string) *apperr.Error {
	return KindLinkNotAllowed.New(
		apperr.Detailf("room %s does not accept links", roomID),
		apperr.Field("roomId", roomID),
	)
}

func (validationSet) ReplyTargetInvalid(messageID string) *apperr.Error {
	return KindReplyTargetInvalid.New(
		apperr.Detailf("reply target %s is not in this room", messageID),
		apperr.Field("replyTo", messageID),
	)
}

func (validationSet) SearchQueryTooShort(minLen int) *apperr.Error {
	return KindSearchQueryTooShort.New(
		apperr.Detailf("search query shorter than %d", minLen),
		apperr.Limit("min", minLen),
	)
}

type permissionSet struct{}

func (permissionSet) NotRoomMember(roomID, userID string) *apperr.Error {
	return NotRoomMember(roomID, userID)
}
func (permissionSet) NotMessageAuthor(messageID, userID string) *apperr.Error {
	return NotMessageAuthor(messageID, userID)
}
func (permissionSet) Unauthenticated() *apperr.Error { return Unauthenticated() }
func (permissionSet) UserMuted(roomID, userID string, until time.Time) *apperr.Error {
	return UserMuted(roomID, userID, until)
}
func (permissionSet) UserBanned(roomID, userID string) *apperr.Error { return UserBanned(roomID, userID) }

func (permissionSet) NotRoomAdmin(roomID, userID string) *apperr.Error {
	return KindNotRoomAdmin.New(
		apperr.Detailf("user %s is not an admin of room %s", userID, roomID),
		apperr.Field("roomId", roomID),
		apperr.Field("userId", userID),
	)
}

func (permissionSet) CannotDeleteOthersMessage(messageID, userID string) *apperr.Error {
	return KindCannotDeleteOthers.New(
		apperr.Detailf("user %s tried to delete message %s", userID, messageID),
		apperr.Field("messageId", messageID),
		apperr.Field("userId", userID),
	)
}

func (permissionSet) ReadOnlyRoom(roomID string) *apperr.Error {
	return KindReadOnlyRoom.New(
		apperr.Detailf("room %s is read-only", roomID),
		apperr.Field("roomId", roomID),
	)
}

// NotStudyMember rejects a user who is not a member of the study that owns
// the room.
func (permissionSet) NotStudyMember(studyID string) *apperr.Error {
	return KindNotStudyMember.New(
		apperr.Detailf("user is not a member of study %s", studyID),
		apperr.Field("studyId", studyID),
	)
}

func (permissionSet) AnnouncementRestricted(roomID, userID string) *apperr.Error {
	return KindAnnouncementRestrict.New(
		apperr.Detailf("user %s cannot post announcements in %s", userID, roomID),
		apperr.Field("roomId", roomID),
		apperr.Field("userId", userID),
	)
}

type businessSet struct{}

func (businessSet) MessageNotFound(messageID string) *apperr.Error { return MessageNotFound(messageID) }
func (businessSet) RoomNotFound(roomID string) *apperr.Error { return RoomNotFound(roomID) }
func (businessSet) RateLimited(userID string, retryAfterSeconds int) *apperr.Error {
	return RateLimited(userID, retryAfterSeconds)
}
func (businessSet) RoomClosed(roomID string) *apperr.Error { return RoomClosed(roomID) }
func (businessSet) MessageAlreadyDeleted(messageID string) *apperr.Error {
	return MessageAlreadyDeleted(messageID)
}
func (businessSet) EditWindowExpired(messageID string, window time.Duration) *apperr.Error {
	return EditWindowExpired(messageID, window)
}
func (businessSet) RoomLimitExceeded(userID string, maxRooms int) *apperr.Error {
	return RoomLimitExceeded(userID, maxRooms)
}
func (businessSet) MessageAlreadyPinned(messageID string) *apperr.Error {
	return MessageAlreadyPinned(messageID)
}
func (businessSet) PinLimitExceeded(roomID string, maxPins int) *apperr.Error {
	return PinLimitExceeded(roomID, maxPins)
}
func (businessSet) DuplicateMessage(clientMessageID string) *apperr.Error {
	return DuplicateMessage(clientMessageID)
}

func (businessSet) ThreadLocked(threadID string) *apperr.Error {
	return KindThreadLocked.New(
		apperr.Detailf("thread %s is locked", threadID),
		apperr.Field("threadId", threadID),
	)
}

func (businessSet) PollClosed(pollID string) *apperr.Error {
	return KindPollClosed.New(
		apperr.Detailf("poll %s is closed", pollID),
		apperr.Field("pollId", pollID),
	)
}

func (businessSet) AlreadyVoted(pollID, userID string) *apperr.Error {
	return KindAlreadyVoted.New(
		apperr.Detailf("user %s already voted in poll %s", userID, pollID),
		apperr.Field("pollId", pollID),
		apperr.Field("userId", userID),
	)
}

func (businessSet) PollNotFound(pollID string) *apperr.Error {
	return KindPollNotFound.New(
		apperr.Detailf("poll %s not found", pollID),
		apperr.Field("pollId", pollID),
	)
}

func (businessSet) SlowModeActive(roomID string, wait time.Duration) *apperr.Error {
	secs := int(wait.Round(time.Second) / time.Second)
	return KindSlowModeActive.New(
		apperr.Detailf("slow mode in room %s, %s left", roomID, wait),
		apperr.Limit("seconds", secs),
		apperr.Field("roomId", roomID),
		apperr.Field("retryAfterSeconds", secs),
	)
}
