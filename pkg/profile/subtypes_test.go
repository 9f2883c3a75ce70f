package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

func TestSubtypes_DelegateLosslessly(t *testing.T) {
	tests := []struct {
		name string
		sub  func() *apperr.Error
		base func() *apperr.Error
	}{
		{"NicknameRequired", Validation.NicknameRequired, NicknameRequired},
		{"NicknameTooShort", func() *apperr.Error { return Validation.NicknameTooShort(2) }, func() *apperr.Error { return NicknameTooShort(2) }},
		{"NicknameTooLong", func() *apperr.Error { return Validation.NicknameTooLong(9) }, func() *apperr.Error { return NicknameTooLong(9) }},
		{"NicknameInvalidCharacters", func() *apperr.Error { return Validation.NicknameInvalidCharacters("x") }, func() *apperr.Error { return NicknameInvalidCharacters("x") }},
		{"BioTooLong", func() *apperr.Error { return Validation.BioTooLong(5, 6) }, func() *apperr.Error { return BioTooLong(5, 6) }},
		{"EmailInvalid", func() *apperr.Error { return Validation.EmailInvalid("e") }, func() *apperr.Error { return EmailInvalid("e") }},
		{"PhoneInvalid", func() *apperr.Error { return Validation.PhoneInvalid("p") }, func() *apperr.Error { return PhoneInvalid("p") }},
		{"BirthdateInvalid", func() *apperr.Error { return Validation.BirthdateInvalid("b") }, func() *apperr.Error { return BirthdateInvalid("b") }},
		{"URLInvalid", func() *apperr.Error { return Validation.URLInvalid("f", "u") }, func() *apperr.Error { return URLInvalid("f", "u") }},
		{"InterestsTooMany", func() *apperr.Error { return Validation.InterestsTooMany(3, 4) }, func() *apperr.Error { return InterestsTooMany(3, 4) }},
		{"PasswordTooWeak", func() *apperr.Error { return Validation.PasswordTooWeak(8, []string{"upper"}) }, func() *apperr.Error { return PasswordTooWeak(8, []string{"upper"}) }},
		{"PasswordMismatch", Validation.PasswordMismatch, PasswordMismatch},
		{"FileRequired", Validation.FileRequired, FileRequired},
		{"FileTooLarge", func() *apperr.Error { return Validation.FileTooLarge(9<<20, 5<<20) }, func() *apperr.Error { return FileTooLarge(9<<20, 5<<20) }},
		{"FileTypeUnsupported", func() *apperr.Error { return Validation.FileTypeUnsupported("t") }, func() *apperr.Error { return FileTypeUnsupported("t") }},
		{"ImageDimensionsInvalid", func() *apperr.Error { return Validation.ImageDimensionsInvalid(1, 2, 3) }, func() *apperr.Error { return ImageDimensionsInvalid(1, 2, 3) }},
		{"SettingsInvalid", func() *apperr.Error { return Validation.SettingsInvalid("k") }, func() *apperr.Error { return SettingsInvalid("k") }},
		{"CurrentPasswordIncorrect", func() *apperr.Error { return Permission.CurrentPasswordIncorrect("u") }, func() *apperr.Error { return CurrentPasswordIncorrect("u") }},
		{"NotOwner", func() *apperr.Error { return Permission.NotOwner("p", "u") }, func() *apperr.Error { return NotOwner("p", "u") }},
		{"PrivateProfile", func() *apperr.Error { return Permission.PrivateProfile("p", "u") }, func() *apperr.Error { return PrivateProfile("p", "u") }},
		{"Unauthenticated", Permission.Unauthenticated, Unauthenticated},
		{"NicknameDuplicate", func() *apperr.Error { return Business.NicknameDuplicate("n") }, func() *apperr.Error { return NicknameDuplicate("n") }},
		{"NicknameChangeTooFrequent", func() *apperr.Error { return Business.NicknameChangeTooFrequent("u", 30, lastChanged) }, func() *apperr.Error { return NicknameChangeTooFrequent("u", 30, lastChanged) }},
		{"EmailDuplicate", func() *apperr.Error { return Business.EmailDuplicate("e") }, func() *apperr.Error { return EmailDuplicate("e") }},
		{"ProfileNotFound", func() *apperr.Error { return Business.ProfileNotFound("u") }, func() *apperr.Error { return ProfileNotFound("u") }},
		{"UserNotFound", func() *apperr.Error { return Business.UserNotFound("u") }, func() *apperr.Error { return UserNotFound("u") }},
		{"AccountDeactivated", func() *apperr.Error { return Business.AccountDeactivated("u") }, func() *apperr.Error { return AccountDeactivated("u") }},
		{"AvatarNotFound", func() *apperr.Error { return Business.AvatarNotFound("u") }, func() *apperr.Error { return AvatarNotFound("u") }},
		{"UpdateRateLimited", func() *apperr.Error { return Business.UpdateRateLimited("u", 5) }, func() *apperr.Error { return UpdateRateLimited("u", 5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, got := tt.base(), tt.sub()
			w, g := want.Record(), got.Record()
			w.Timestamp, g.Timestamp = time.Time{}, time.Time{}
			require.Equal(t, w, g)
			require.Same(t, want.Kind(), got.Kind())
		})
	}
}
