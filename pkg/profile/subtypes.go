package profile

import (
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

var (
	ErrValidation = apperr.ClassOf(apperr.DomainProfile, apperr.CategoryValidation)
	ErrPermission = apperr.ClassOf(apperr.DomainProfile, apperr.CategoryPermission)
	ErrBusiness   = apperr.ClassOf(apperr.DomainProfile, apperr.CategoryBusiness)
	ErrSystem     = apperr.ClassOf(apperr.DomainProfile, apperr.CategorySystem)
	ErrSecurity   = apperr.ClassOf(apperr.DomainProfile, apperr.CategorySecurity)
)

// Category views over the profile factories.
var (
	Validation validationSet
	Permission permissionSet
	Business   businessSet
)

type validationSet struct{}

func (validationSet) NicknameRequired() *apperr.Error { return NicknameRequired() }
func (validationSet) NicknameTooShort(minLen int) *apperr.Error { return NicknameTooShort(minLen) }
func (validationSet) NicknameTooLong(maxLen int) *apperr.Error { return NicknameTooLong(maxLen) }
func (validationSet) NicknameInvalidCharacters(nickname string) *apperr.Error {
	return NicknameInvalidCharacters(nickname)
}
func (validationSet) BioTooLong(maxLen, actual int) *apperr.Error { return BioTooLong(maxLen, actual) }
func (validationSet) EmailInvalid(email string) *apperr.Error { return EmailInvalid(email) }
func (validationSet) PhoneInvalid(phone string) *apperr.Error { return PhoneInvalid(phone) }
func (validationSet) BirthdateInvalid(raw string) *apperr.Error { return BirthdateInvalid(raw) }
func (validationSet) URLInvalid(field, raw string) *apperr.Error { return URLInvalid(field, raw) }
func (validationSet) InterestsTooMany(maxInterests, actual int) *apperr.Error {
	return InterestsTooMany(maxInterests, actual)
}
func (validationSet) PasswordTooWeak(minLen int, failed []string) *apperr.Error {
	return PasswordTooWeak(minLen, failed)
}
func (validationSet) PasswordMismatch() *apperr.Error { return PasswordMismatch() }
func (validationSet) FileRequired() *apperr.Error { return FileRequired() }
func (validationSet) FileTooLarge(size, maxSize int64) *apperr.Error { return FileTooLarge(size, maxSize) }
func (validationSet) FileTypeUnsupported(contentType string) *apperr.Error {
	return FileTypeUnsupported(contentType)
}
func (validationSet) ImageDimensionsInvalid(width, height, minPx int) *apperr.Error {
	return ImageDimensionsInvalid(width, height, minPx)
}
func (validationSet) SettingsInvalid(key string) *apperr.Error { return SettingsInvalid(key) }

type permissionSet struct{}

func (permissionSet) CurrentPasswordIncorrect(userID string) *apperr.Error {
	return CurrentPasswordIncorrect(userID)
}
func (permissionSet) NotOwner(profileID, userID string) *apperr.Error { return NotOwner(profileID, userID) }
func (permissionSet) PrivateProfile(profileID, viewerID string) *apperr.Error {
	return PrivateProfile(profileID, viewerID)
}
func (permissionSet) Unauthenticated() *apperr.Error { return Unauthenticated() }

type businessSet struct{}

func (businessSet) NicknameDuplicate(nickname string) *apperr.Error { return NicknameDuplicate(nickname) }
func (businessSet) NicknameChangeTooFrequent(userID string, days int, lastChanged time.Time) *apperr.Error {
	return NicknameChangeTooFrequent(userID, days, lastChanged)
}
func (businessSet) EmailDuplicate(email string) *apperr.Error { return EmailDuplicate(email) }
func (businessSet) ProfileNotFound(userID string) *apperr.Error { return ProfileNotFound(userID) }
func (businessSet) UserNotFound(userID string) *apperr.Error { return UserNotFound(userID) }
func (businessSet) AccountDeactivated(userID string) *apperr.Error { return AccountDeactivated(userID) }
func (businessSet) AvatarNotFound(userID string) *apperr.Error { return AvatarNotFound(userID) }
func (businessSet) UpdateRateLimited(userID string, retryAfterSeconds int) *apperr.Error {
	return UpdateRateLimited(userID, retryAfterSeconds)
}
