package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

var mutedUntil = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// factories holds one call per condition, base and subtype-local.
var factories = map[string]func() *apperr.Error{
	"MessageEmpty":              func() *apperr.Error { return MessageEmpty("r-1") },
	"MessageTooLong":            func() *apperr.Error { return MessageTooLong(2000, 2400) },
	"MessageNotFound":           func() *apperr.Error { return MessageNotFound("m-1") },
	"RoomNotFound":              func() *apperr.Error { return RoomNotFound("r-1") },
	"AttachmentTooLarge":        func() *apperr.Error { return AttachmentTooLarge(12<<20, 10<<20) },
	"AttachmentTypeUnsupported": func() *apperr.Error { return AttachmentTypeUnsupported("application/x-msdownload") },
	"RateLimited":               func() *apperr.Error { return RateLimited("u-1", 5) },
	"RoomClosed":                func() *apperr.Error { return RoomClosed("r-1") },
	"MessageAlreadyDeleted":     func() *apperr.Error { return MessageAlreadyDeleted("m-1") },
	"EditWindowExpired":         func() *apperr.Error { return EditWindowExpired("m-1", 15*time.Minute) },
	"NotRoomMember":             func() *apperr.Error { return NotRoomMember("r-1", "u-1") },
	"NotMessageAuthor":          func() *apperr.Error { return NotMessageAuthor("m-1", "u-1") },
	"Unauthenticated":           func() *apperr.Error { return Unauthenticated() },
	"UserMuted":                 func() *apperr.Error { return UserMuted("r-1", "u-1", mutedUntil) },
	"UserBanned":                func() *apperr.Error { return UserBanned("r-1", "u-1") },
	"XSSDetected":               func() *apperr.Error { return XSSDetected("r-1") },
	"SQLInjectionDetected":      func() *apperr.Error { return SQLInjectionDetected("r-1") },
	"SpamDetected":              func() *apperr.Error { return SpamDetected("u-1", 0.97) },
	"DatabaseError":             func() *apperr.Error { return DatabaseError("insert message", errors.New("deadlock")) },
	"NetworkError":              func() *apperr.Error { return NetworkError(errors.New("reset")) },
	"Timeout":                   func() *apperr.Error { return Timeout("history", 2*time.Second) },
	"ConnectionLost":            func() *apperr.Error { return ConnectionLost("c-1", errors.New("eof")) },
	"MessageQueueFull":          func() *apperr.Error { return MessageQueueFull("r-1", 512) },
	"UnknownError":              func() *apperr.Error { return UnknownError(errors.New("boom")) },
	"RoomLimitExceeded":         func() *apperr.Error { return RoomLimitExceeded("u-1", 20) },
	"ReactionInvalid":           func() *apperr.Error { return ReactionInvalid(":nope:") },
	"MessageAlreadyPinned":      func() *apperr.Error { return MessageAlreadyPinned("m-1") },
	"PinLimitExceeded":          func() *apperr.Error { return PinLimitExceeded("r-1", 3) },
	"HistoryCorrupted":          func() *apperr.Error { return HistoryCorrupted("r-1", errors.New("bad json")) },
	"DuplicateMessage":          func() *apperr.Error { return DuplicateMessage("cm-1") },

	"Validation.MentionInvalid":      func() *apperr.Error { return Validation.MentionInvalid("u-9") },
	"Validation.MentionsTooMany":     func() *apperr.Error { return Validation.MentionsTooMany(10, 12) },
	"Validation.LinkNotAllowed":      func() *apperr.Error { return Validation.LinkNotAllowed("r-1") },
	"Validation.ReplyTargetInvalid":  func() *apperr.Error { return Validation.ReplyTargetInvalid("m-2") },
	"Validation.SearchQueryTooShort": func() *apperr.Error { return Validation.SearchQueryTooShort(2) },
	"Permission.NotRoomAdmin":        func() *apperr.Error { return Permission.NotRoomAdmin("r-1", "u-1") },
	"Permission.CannotDeleteOthers":  func() *apperr.Error { return Permission.CannotDeleteOthersMessage("m-1", "u-1") },
	"Permission.ReadOnlyRoom":        func() *apperr.Error { return Permission.ReadOnlyRoom("r-1") },
	"Permission.NotStudyMember":      func() *apperr.Error { return Permission.NotStudyMember("study-42") },
	"Permission.AnnouncementRestrict": func() *apperr.Error {
		return Permission.AnnouncementRestricted("r-1", "u-1")
	},
	"Business.ThreadLocked":   func() *apperr.Error { return Business.ThreadLocked("t-1") },
	"Business.PollClosed":     func() *apperr.Error { return Business.PollClosed("p-1") },
	"Business.AlreadyVoted":   func() *apperr.Error { return Business.AlreadyVoted("p-1", "u-1") },
	"Business.PollNotFound":   func() *apperr.Error { return Business.PollNotFound("p-1") },
	"Business.SlowModeActive": func() *apperr.Error { return Business.SlowModeActive("r-1", 30*time.Second) },
}

func TestNotStudyMember(t *testing.T) {
	err := Permission.NotStudyMember("study-42")

	require.Equal(t, "CHAT-PERM-004", err.Code())
	require.Equal(t, 403, err.HTTPStatus())
	require.False(t, err.Retryable())
	require.Equal(t, apperr.CategoryPermission, err.Category())
	require.Equal(t, "study-42", err.Context()["studyId"])
	require.NotContains(t, err.UserMessage(), "study-42")
	require.ErrorIs(t, err, ErrPermission)
	require.ErrorIs(t, err, apperr.ErrPermission)
}

func TestFactories_CoverCatalog(t *testing.T) {
	seen := make(map[string]string)
	for name, fn := range factories {
		code := fn().Code()
		prev, dup := seen[code]
		require.False(t, dup, "%s and %s produce %s", name, prev, code)
		seen[code] = name
	}
	for _, k := range Catalog().Kinds() {
		assert.Contains(t, seen, k.Code, "no factory for %s", k.Name)
	}
	assert.Len(t, seen, len(Catalog().Kinds()))
}

func TestFactories_SatisfyPolicy(t *testing.T) {
	for name, fn := range factories {
		t.Run(name, func(t *testing.T) {
			err := fn()
			require.NoError(t, apperr.CheckPolicy(err.Kind()))
			require.Equal(t, apperr.DomainChat, err.Domain())
			require.NotContains(t, err.UserMessage(), "{")
		})
	}
}

func TestSubtypeLocalCodesMatchCategory(t *testing.T) {
	tests := []struct {
		err  *apperr.Error
		want *apperr.Class
	}{
		{err: Validation.MentionsTooMany(10, 11), want: ErrValidation},
		{err: Permission.ReadOnlyRoom("r"), want: ErrPermission},
		{err: Business.PollClosed("p"), want: ErrBusiness},
	}
	for _, tt := range tests {
		require.ErrorIs(t, tt.err, tt.want, tt.err.Code())
	}
}

func TestLimitsRenderedForUser(t *testing.T) {
	tests := []struct {
		err  *apperr.Error
		want string
	}{
		{err: MessageTooLong(2000, 2001), want: "메시지는 최대 2000자까지 입력할 수 있습니다."},
		{err: AttachmentTooLarge(11<<20, 10<<20), want: "첨부 파일은 최대 10MB까지 업로드할 수 있습니다."},
		{err: EditWindowExpired("m", 15*time.Minute), want: "메시지는 작성 후 15분 이내에만 수정할 수 있습니다."},
		{err: Business.SlowModeActive("r", 30*time.Second), want: "슬로우 모드가 켜져 있습니다. 30초 후에 다시 보내주세요."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.UserMessage(), tt.err.Code())
	}
}

func TestEvents_MessageBlockedReachesSecuritySink(t *testing.T) {
	sec := &captureSink{}
	l := logger.New(logger.Config{Environment: logger.Production, Level: "error"}, logger.WithSecuritySink(sec))

	Events(l).MessageBlocked(context.Background(), "r-1", "u-1", "xss")
	require.NoError(t, l.Close(context.Background()))

	require.Len(t, sec.entries, 1)
	assert.Equal(t, "chat", sec.entries[0].Area)
	assert.Equal(t, logger.LevelSecurity, sec.entries[0].Level)
}

type captureSink struct {
	entries []logger.Entry
}

func (s *captureSink) Name() string { return "capture" }

func (s *captureSink) Forward(_ context.Context, e logger.Entry) error {
	s.entries = append(s.entries, e)
	return nil
}
