package group

import "github.com/Goden-Gun/apperr-lib/pkg/apperr"

var catalog = apperr.NewCatalog(apperr.DomainGroup, "GROUP").
	Retire("GROUP-038")

const (
	msgRetryLater = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgForbidden  = "허용되지 않는 문자열이 포함되어 있습니다."
)

// Validation.
var (
	KindNameRequired          = catalog.Define("GROUP-001", "name_required", apperr.ShapeInvalidInput, "그룹 이름을 입력해주세요.")
	KindNameTooShort          = catalog.Define("GROUP-002", "name_too_short", apperr.ShapeInvalidInput, "그룹 이름은 최소 {min}자 이상이어야 합니다.")
	KindNameTooLong           = catalog.Define("GROUP-003", "name_too_long", apperr.ShapeInvalidInput, "그룹 이름은 최대 {max}자까지 입력할 수 있습니다.")
	KindNameInvalidCharacters = catalog.Define("GROUP-004", "name_invalid_characters", apperr.ShapeInvalidInput, "그룹 이름에 사용할 수 없는 문자가 포함되어 있습니다.")
	KindDescriptionTooLong    = catalog.Define("GROUP-005", "description_too_long", apperr.ShapeInvalidInput, "그룹 소개는 최대 {max}자까지 입력할 수 있습니다.")
	KindCategoryRequired      = catalog.Define("GROUP-006", "category_required", apperr.ShapeInvalidInput, "그룹 카테고리를 선택해주세요.")
	KindCategoryInvalid       = catalog.Define("GROUP-007", "category_invalid", apperr.ShapeInvalidInput, "올바르지 않은 그룹 카테고리입니다.")
	KindTagsTooMany           = catalog.Define("GROUP-008", "tags_too_many", apperr.ShapeInvalidInput, "태그는 최대 {max}개까지 등록할 수 있습니다.")
	KindTagTooLong            = catalog.Define("GROUP-009", "tag_too_long", apperr.ShapeInvalidInput, "태그는 최대 {max}자까지 입력할 수 있습니다.")
	KindScheduleInvalid       = catalog.Define("GROUP-010", "schedule_invalid", apperr.ShapeInvalidInput, "모임 일정 형식이 올바르지 않습니다.")
	KindCapacityRequired      = catalog.Define("GROUP-011", "capacity_required", apperr.ShapeInvalidInput, "그룹 정원을 입력해주세요.")
	KindCapacityInvalid       = catalog.Define("GROUP-012", "capacity_invalid", apperr.ShapeInvalidInput, "그룹 정원은 숫자로 입력해주세요.")
	KindCapacityTooSmall      = catalog.Define("GROUP-013", "capacity_too_small", apperr.ShapeStrictInput, "그룹 정원은 최소 {min}명 이상이어야 합니다.")
	KindCapacityTooLarge      = catalog.Define("GROUP-014", "capacity_too_large", apperr.ShapeStrictInput, "그룹 정원은 최대 {max}명까지 설정할 수 있습니다.")
	KindRoleInvalid           = catalog.Define("GROUP-046", "role_invalid", apperr.ShapeInvalidInput, "올바르지 않은 멤버 역할입니다.")
)

// Business.
var (
	KindCapacityBelowMemberCount    = catalog.Define("GROUP-015", "capacity_below_member_count", apperr.ShapePrecondition, "현재 멤버 수({count}명)보다 적은 정원으로 변경할 수 없습니다.")
	KindGroupNotFound               = catalog.Define("GROUP-016", "group_not_found", apperr.ShapeNotFound, "그룹을 찾을 수 없습니다.")
	KindGroupFull                   = catalog.Define("GROUP-017", "group_full", apperr.ShapeConflict, "그룹 정원이 가득 찼습니다.")
	KindGroupClosed                 = catalog.Define("GROUP-018", "group_closed", apperr.ShapeStateConflict, "모집이 마감된 그룹입니다.")
	KindGroupArchived               = catalog.Define("GROUP-019", "group_archived", apperr.ShapeStateConflict, "보관된 그룹은 수정할 수 없습니다.")
	KindNameDuplicate               = catalog.Define("GROUP-020", "name_duplicate", apperr.ShapeConflict, "이미 사용 중인 그룹 이름입니다.")
	KindAlreadyMember               = catalog.Define("GROUP-021", "already_member", apperr.ShapeConflict, "이미 가입한 그룹입니다.")
	KindJoinRequestPending          = catalog.Define("GROUP-022", "join_request_pending", apperr.ShapeConflict, "이미 가입 신청이 진행 중입니다.")
	KindJoinRequestNotFound         = catalog.Define("GROUP-023", "join_request_not_found", apperr.ShapeNotFound, "가입 신청을 찾을 수 없습니다.")
	KindJoinRequestAlreadyProcessed = catalog.Define("GROUP-024", "join_request_already_processed", apperr.ShapeStateConflict, "이미 처리된 가입 신청입니다.")
	KindInvitationExpired           = catalog.Define("GROUP-025", "invitation_expired", apperr.ShapePrecondition, "초대 링크가 만료되었습니다.")
	KindInvitationInvalid           = catalog.Define("GROUP-026", "invitation_invalid", apperr.ShapePrecondition, "유효하지 않은 초대 코드입니다.")
	KindOwnerCannotLeave            = catalog.Define("GROUP-027", "owner_cannot_leave", apperr.ShapePrecondition, "그룹장은 그룹을 탈퇴할 수 없습니다. 먼저 그룹장을 위임해주세요.")
	KindCannotKickSelf              = catalog.Define("GROUP-028", "cannot_kick_self", apperr.ShapePrecondition, "자기 자신은 강퇴할 수 없습니다.")
	KindMemberNotFound              = catalog.Define("GROUP-029", "member_not_found", apperr.ShapeNotFound, "그룹 멤버를 찾을 수 없습니다.")
	KindTransferTargetNotMember     = catalog.Define("GROUP-030", "transfer_target_not_member", apperr.ShapePrecondition, "그룹장은 그룹 멤버에게만 위임할 수 있습니다.")
	KindJoinRateLimited             = catalog.Define("GROUP-031", "join_rate_limited", apperr.ShapeRateLimited, "가입 신청이 너무 많습니다. 잠시 후 다시 시도해주세요.")
	KindCreateLimitExceeded         = catalog.Define("GROUP-032", "create_limit_exceeded", apperr.ShapeQuotaExceeded, "생성할 수 있는 그룹 수({max}개)를 초과했습니다.")
)

// Permission.
var (
	KindNotMember       = catalog.Define("GROUP-033", "not_member", apperr.ShapeForbidden, "그룹 멤버만 이용할 수 있습니다.")
	KindNotOwner        = catalog.Define("GROUP-034", "not_owner", apperr.ShapeForbidden, "그룹장만 이용할 수 있습니다.")
	KindNotManager      = catalog.Define("GROUP-035", "not_manager", apperr.ShapeForbidden, "그룹 관리자만 이용할 수 있습니다.")
	KindCannotKickOwner = catalog.Define("GROUP-036", "cannot_kick_owner", apperr.ShapePrivileged, "그룹장은 강퇴할 수 없습니다.")
	KindUnauthenticated = catalog.Define("GROUP-037", "unauthenticated", apperr.ShapeUnauthenticated, "로그인이 필요합니다.")
)

// Security.
var (
	KindXSSDetected          = catalog.Define("GROUP-039", "xss_detected", apperr.ShapeInjection, msgForbidden)
	KindSQLInjectionDetected = catalog.Define("GROUP-040", "sql_injection_detected", apperr.ShapeInjection, msgForbidden)
)

// System.
var (
	KindDatabaseError    = catalog.Define("GROUP-041", "database_error", apperr.ShapeDatabase, msgRetryLater)
	KindNetworkError     = catalog.Define("GROUP-042", "network_error", apperr.ShapeUpstream, "네트워크 연결이 불안정합니다. 잠시 후 다시 시도해주세요.")
	KindTimeout          = catalog.Define("GROUP-043", "timeout", apperr.ShapeTimeout, "요청 시간이 초과되었습니다. 잠시 후 다시 시도해주세요.")
	KindUnknownError     = catalog.Define("GROUP-044", "unknown_error", apperr.ShapeInternal, "알 수 없는 오류가 발생했습니다.")
	KindDataInconsistent = catalog.Define("GROUP-045", "data_inconsistent", apperr.ShapeCorruption, "그룹 정보를 처리하는 중 오류가 발생했습니다.")
)

// Catalog returns the group catalog.
func Catalog() *apperr.Catalog { return catalog }
