package profile

import "github.com/Goden-Gun/apperr-lib/pkg/apperr"

var catalog = apperr.NewCatalog(apperr.DomainProfile, "PROFILE")

const (
	msgForbidden  = "허용되지 않는 문자열이 포함되어 있습니다."
	msgRetryLater = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
)

var (
	KindNicknameRequired          = catalog.Define("PROFILE-001", "nickname_required", apperr.ShapeInvalidInput, "닉네임을 입력해주세요.")
	KindNicknameTooShort          = catalog.Define("PROFILE-002", "nickname_too_short", apperr.ShapeInvalidInput, "닉네임은 최소 {min}자 이상이어야 합니다.")
	KindNicknameTooLong           = catalog.Define("PROFILE-003", "nickname_too_long", apperr.ShapeInvalidInput, "닉네임은 최대 {max}자까지 입력할 수 있습니다.")
	KindNicknameInvalidCharacters = catalog.Define("PROFILE-004", "nickname_invalid_characters", apperr.ShapeInvalidInput, "닉네임에 사용할 수 없는 문자가 포함되어 있습니다.")
	KindNicknameDuplicate         = catalog.Define("PROFILE-005", "nickname_duplicate", apperr.ShapeConflict, "이미 사용 중인 닉네임입니다.")
	KindNicknameChangeTooFrequent = catalog.Define("PROFILE-006", "nickname_change_too_frequent", apperr.ShapePrecondition, "닉네임은 {days}일에 한 번만 변경할 수 있습니다.")
	KindBioTooLong                = catalog.Define("PROFILE-007", "bio_too_long", apperr.ShapeInvalidInput, "자기소개는 최대 {max}자까지 입력할 수 있습니다.")
	KindEmailInvalid              = catalog.Define("PROFILE-008", "email_invalid", apperr.ShapeInvalidInput, "이메일 형식이 올바르지 않습니다.")
	KindEmailDuplicate            = catalog.Define("PROFILE-009", "email_duplicate", apperr.ShapeConflict, "이미 사용 중인 이메일입니다.")
	KindPhoneInvalid              = catalog.Define("PROFILE-010", "phone_invalid", apperr.ShapeInvalidInput, "전화번호 형식이 올바르지 않습니다.")
	KindBirthdateInvalid          = catalog.Define("PROFILE-011", "birthdate_invalid", apperr.ShapeInvalidInput, "생년월일이 올바르지 않습니다.")
	KindURLInvalid                = catalog.Define("PROFILE-012", "url_invalid", apperr.ShapeInvalidInput, "링크 형식이 올바르지 않습니다.")
	KindInterestsTooMany          = catalog.Define("PROFILE-013", "interests_too_many", apperr.ShapeInvalidInput, "관심사는 최대 {max}개까지 선택할 수 있습니다.")
	KindPasswordTooWeak           = catalog.Define("PROFILE-014", "password_too_weak", apperr.ShapeStrictInput, "비밀번호는 최소 {min}자 이상이며 영문, 숫자를 포함해야 합니다.")
	KindPasswordMismatch          = catalog.Define("PROFILE-015", "password_mismatch", apperr.ShapeStrictInput, "새 비밀번호가 일치하지 않습니다.")
	KindCurrentPasswordIncorrect  = catalog.Define("PROFILE-016", "current_password_incorrect", apperr.ShapeUnauthenticated, "현재 비밀번호가 올바르지 않습니다.")
	KindProfileNotFound           = catalog.Define("PROFILE-017", "profile_not_found", apperr.ShapeNotFound, "프로필을 찾을 수 없습니다.")
	KindUserNotFound              = catalog.Define("PROFILE-018", "user_not_found", apperr.ShapeNotFound, "사용자를 찾을 수 없습니다.")
	KindAccountDeactivated        = catalog.Define("PROFILE-019", "account_deactivated", apperr.ShapeStateConflict, "비활성화된 계정입니다.")
	KindNotOwner                  = catalog.Define("PROFILE-020", "not_owner", apperr.ShapeForbidden, "본인의 프로필만 수정할 수 있습니다.")
	KindPrivateProfile            = catalog.Define("PROFILE-021", "private_profile", apperr.ShapeForbidden, "비공개 프로필입니다.")
	KindUnauthenticated           = catalog.Define("PROFILE-022", "unauthenticated", apperr.ShapeUnauthenticated, "로그인이 필요합니다.")
	KindFileRequired              = catalog.Define("PROFILE-023", "file_required", apperr.ShapeInvalidInput, "업로드할 이미지를 선택해주세요.")
	KindFileTooLarge              = catalog.Define("PROFILE-024", "file_too_large", apperr.ShapeStrictInput, "프로필 이미지는 최대 {maxMb}MB까지 업로드할 수 있습니다.")
	KindFileTypeUnsupported       = catalog.Define("PROFILE-025", "file_type_unsupported", apperr.ShapeInvalidInput, "지원하지 않는 이미지 형식입니다.")
	KindUploadFailed              = catalog.Define("PROFILE-026", "upload_failed", apperr.ShapeUpstream, "프로필 이미지 업로드에 실패했습니다. 잠시 후 다시 시도해주세요.")
	KindImageDimensionsInvalid    = catalog.Define("PROFILE-027", "image_dimensions_invalid", apperr.ShapeInvalidInput, "이미지는 가로, 세로 최소 {minPx}px 이상이어야 합니다.")
	KindImageProcessingFailed     = catalog.Define("PROFILE-028", "image_processing_failed", apperr.ShapeInternal, "이미지를 처리하는 중 오류가 발생했습니다.")
	KindAvatarNotFound            = catalog.Define("PROFILE-029", "avatar_not_found", apperr.ShapeNotFound, "프로필 이미지를 찾을 수 없습니다.")
	KindUpdateRateLimited         = catalog.Define("PROFILE-030", "update_rate_limited", apperr.ShapeRateLimited, "프로필을 너무 자주 수정하고 있습니다. 잠시 후 다시 시도해주세요.")
	KindXSSDetected               = catalog.Define("PROFILE-031", "xss_detected", apperr.ShapeInjection, msgForbidden)
	KindSQLInjectionDetected      = catalog.Define("PROFILE-032", "sql_injection_detected", apperr.ShapeInjection, msgForbidden)
	KindMaliciousFileDetected     = catalog.Define("PROFILE-033", "malicious_file_detected", apperr.ShapeInjection, "업로드할 수 없는 파일입니다.")
	KindDatabaseError             = catalog.Define("PROFILE-034", "database_error", apperr.ShapeDatabase, msgRetryLater)
	KindNetworkError              = catalog.Define("PROFILE-035", "network_error", apperr.ShapeUpstream, "네트워크 연결이 불안정합니다. 잠시 후 다시 시도해주세요.")
	KindTimeout                   = catalog.Define("PROFILE-036", "timeout", apperr.ShapeTimeout, "요청 시간이 초과되었습니다. 잠시 후 다시 시도해주세요.")
	KindStorageUnavailable        = catalog.Define("PROFILE-037", "storage_unavailable", apperr.ShapeUnavailable, msgRetryLater)
	KindUnknownError              = catalog.Define("PROFILE-038", "unknown_error", apperr.ShapeInternal, "알 수 없는 오류가 발생했습니다.")
	KindDataInconsistent          = catalog.Define("PROFILE-039", "data_inconsistent", apperr.ShapeCorruption, "프로필 정보를 처리하는 중 오류가 발생했습니다.")
	KindSettingsInvalid           = catalog.Define("PROFILE-040", "settings_invalid", apperr.ShapeInvalidInput, "설정 값이 올바르지 않습니다.")
)

// Catalog returns the profile catalog.
func Catalog() *apperr.Catalog { return catalog }
