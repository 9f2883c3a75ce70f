package profile

import (
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

func NicknameRequired() *apperr.Error {
	return KindNicknameRequired.New(apperr.Detail("nickname is empty"))
}

func NicknameTooShort(minLen int) *apperr.Error {
	return KindNicknameTooShort.New(
		apperr.Detailf("nickname shorter than %d", minLen),
		apperr.Limit("min", minLen),
	)
}

func NicknameTooLong(maxLen int) *apperr.Error {
	return KindNicknameTooLong.New(
		apperr.Detailf("nickname longer than %d", maxLen),
		apperr.Limit("max", maxLen),
	)
}

func NicknameInvalidCharacters(nickname string) *apperr.Error {
	return KindNicknameInvalidCharacters.New(
		apperr.Detailf("nickname %q has invalid characters", nickname),
		apperr.Field("nickname", nickname),
	)
}

func NicknameDuplicate(nickname string) *apperr.Error {
	return KindNicknameDuplicate.New(
		apperr.Detailf("nickname %q already taken", nickname),
		apperr.Field("nickname", nickname),
	)
}

func NicknameChangeTooFrequent(userID string, days int, lastChanged time.Time) *apperr.Error {
	return KindNicknameChangeTooFrequent.New(
		apperr.Detailf("user %s changed nickname at %s", userID, lastChanged.UTC().Format(time.RFC3339)),
		apperr.Limit("days", days),
		apperr.Field("userId", userID),
		apperr.Field("lastChangedAt", lastChanged.UTC()),
	)
}

func BioTooLong(maxLen, actual int) *apperr.Error {
	return KindBioTooLong.New(
		apperr.Detailf("bio has %d characters, limit %d", actual, maxLen),
		apperr.Limit("max", maxLen),
		apperr.Field("length", actual),
	)
}

func EmailInvalid(email string) *apperr.Error {
	return KindEmailInvalid.New(
		apperr.Detailf("malformed email %q", email),
		apperr.Field("email", email),
	)
}

func EmailDuplicate(email string) *apperr.Error {
	return KindEmailDuplicate.New(
		apperr.Detail("email already registered"),
		apperr.Field("email", email),
	)
}

func PhoneInvalid(phone string) *apperr.Error {
	return KindPhoneInvalid.New(
		apperr.Detail("malformed phone number"),
		apperr.Field("phone", phone),
	)
}

func BirthdateInvalid(raw string) *apperr.Error {
	return KindBirthdateInvalid.New(
		apperr.Detailf("invalid birthdate %q", raw),
		apperr.Field("birthdate", raw),
	)
}

func URLInvalid(field, raw string) *apperr.Error {
	return KindURLInvalid.New(
		apperr.Detailf("invalid url in %s", field),
		apperr.Field("field", field),
		apperr.Field("url", raw),
	)
}

func InterestsTooMany(maxInterests, actual int) *apperr.Error {
	return KindInterestsTooMany.New(
		apperr.Detailf("%d interests, limit %d", actual, maxInterests),
		apperr.Limit("max", maxInterests),
		apperr.Field("count", actual),
	)
}

// PasswordTooWeak never receives the password itself.
func PasswordTooWeak(minLen int, failed []string) *apperr.Error {
	return KindPasswordTooWeak.New(
		apperr.Detail("password rejected by strength rules"),
		apperr.Limit("min", minLen),
		apperr.Field("failedRules", failed),
	)
}

func PasswordMismatch() *apperr.Error {
	return KindPasswordMismatch.New(apperr.Detail("password confirmation differs"))
}

func CurrentPasswordIncorrect(userID string) *apperr.Error {
	return KindCurrentPasswordIncorrect.New(
		apperr.Detailf("current password check failed for %s", userID),
		apperr.Field("userId", userID),
	)
}

func ProfileNotFound(userID string) *apperr.Error {
	return KindProfileNotFound.New(
		apperr.Detailf("profile of %s not found", userID),
		apperr.Field("userId", userID),
	)
}

func UserNotFound(userID string) *apperr.Error {
	return KindUserNotFound.New(
		apperr.Detailf("user %s not found", userID),
		apperr.Field("userId", userID),
	)
}

func AccountDeactivated(userID string) *apperr.Error {
	return KindAccountDeactivated.New(
		apperr.Detailf("user %s is deactivated", userID),
		apperr.Field("userId", userID),
	)
}

func NotOwner(profileID, userID string) *apperr.Error {
	return KindNotOwner.New(
		apperr.Detailf("user %s does not own profile %s", userID, profileID),
		apperr.Field("profileId", profileID),
		apperr.Field("userId", userID),
	)
}

func PrivateProfile(profileID, viewerID string) *apperr.Error {
	return KindPrivateProfile.New(
		apperr.Detailf("profile %s is private to %s", profileID, viewerID),
		apperr.Field("profileId", profileID),
		apperr.Field("viewerId", viewerID),
	)
}

func Unauthenticated() *apperr.Error {
	return KindUnauthenticated.New(apperr.Detail("no authenticated user on profile request"))
}

func FileRequired() *apperr.Error {
	return KindFileRequired.New(apperr.Detail("upload without file part"))
}

func FileTooLarge(size, maxSize int64) *apperr.Error {
	return KindFileTooLarge.New(
		apperr.Detailf("file is %d bytes, limit %d", size, maxSize),
		apperr.Limit("maxMb", int(maxSize/(1<<20))),
		apperr.Field("size", size),
	)
}

func FileTypeUnsupported(contentType string) *apperr.Error {
	return KindFileTypeUnsupported.New(
		apperr.Detailf("content type %s not accepted", contentType),
		apperr.Field("contentType", contentType),
	)
}

// UploadFailed keeps details for diagnostics only; the user sees the fixed
// message of PROFILE-026.
func UploadFailed(details map[string]any) *apperr.Error {
	return KindUploadFailed.New(
		apperr.Detail("avatar upload failed"),
		apperr.Fields(details),
	)
}

func ImageDimensionsInvalid(width, height, minPx int) *apperr.Error {
	return KindImageDimensionsInvalid.New(
		apperr.Detailf("image is %dx%d", width, height),
		apperr.Limit("minPx", minPx),
		apperr.Field("width", width),
		apperr.Field("height", height),
	)
}

func ImageProcessingFailed(err error) *apperr.Error {
	return KindImageProcessingFailed.New(apperr.Detail("image resize failed"), apperr.Cause(err))
}

func AvatarNotFound(userID string) *apperr.Error {
	return KindAvatarNotFound.New(
		apperr.Detailf("user %s has no avatar", userID),
		apperr.Field("userId", userID),
	)
}

func UpdateRateLimited(userID string, retryAfterSeconds int) *apperr.Error {
	return KindUpdateRateLimited.New(
		apperr.Detailf("profile update rate limit hit by %s", userID),
		apperr.Field("userId", userID),
		apperr.Field("retryAfterSeconds", retryAfterSeconds),
	)
}

func XSSDetected(field string) *apperr.Error {
	return KindXSSDetected.New(
		apperr.Detailf("script pattern in field %s", field),
		apperr.Field("field", field),
	)
}

func SQLInjectionDetected(field string) *apperr.Error {
	return KindSQLInjectionDetected.New(
		apperr.Detailf("sql injection pattern in field %s", field),
		apperr.Field("field", field),
	)
}

func MaliciousFileDetected(fileName, signature string) *apperr.Error {
	return KindMaliciousFileDetected.New(
		apperr.Detailf("file %s matched %s", fileName, signature),
		apperr.Field("fileName", fileName),
		apperr.Field("signature", signature),
	)
}

func DatabaseError(op string, err error) *apperr.Error {
	return KindDatabaseError.New(
		apperr.Detailf("profile %s failed", op),
		apperr.Field("operation", op),
		apperr.Cause(err),
	)
}

func NetworkError(err error) *apperr.Error {
	return KindNetworkError.New(apperr.Detail("profile upstream unreachable"), apperr.Cause(err))
}

func Timeout(op string, elapsed time.Duration) *apperr.Error {
	return KindTimeout.New(
		apperr.Detailf("profile %s timed out after %s", op, elapsed),
		apperr.Field("operation", op),
		apperr.Field("elapsedMs", elapsed.Milliseconds()),
	)
}

func StorageUnavailable(bucket string, err error) *apperr.Error {
	return KindStorageUnavailable.New(
		apperr.Detailf("object storage %s unavailable", bucket),
		apperr.Field("bucket", bucket),
		apperr.Cause(err),
	)
}

func UnknownError(err error) *apperr.Error {
	return KindUnknownError.New(apperr.Detail("unexpected profile error"), apperr.Cause(err))
}

func DataInconsistent(detail string, fields map[string]any) *apperr.Error {
	return KindDataInconsistent.New(apperr.Detail(detail), apperr.Fields(fields))
}

func SettingsInvalid(key string) *apperr.Error {
	return KindSettingsInvalid.New(
		apperr.Detailf("invalid setting %q", key),
		apperr.Field("key", key),
	)
}
