package chat

import "github.com/Goden-Gun/apperr-lib/pkg/apperr"

var catalog = apperr.NewCatalog(apperr.DomainChat, "CHAT")

const (
	msgRetryLater = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgForbidden  = "허용되지 않는 문자열이 포함되어 있습니다."
)

// Base conditions.
var (
	KindMessageEmpty              = catalog.Define("CHAT-001", "message_empty", apperr.ShapeInvalidInput, "메시지를 입력해주세요.")
	KindMessageTooLong            = catalog.Define("CHAT-002", "message_too_long", apperr.ShapeInvalidInput, "메시지는 최대 {max}자까지 입력할 수 있습니다.")
	KindMessageNotFound           = catalog.Define("CHAT-003", "message_not_found", apperr.ShapeNotFound, "메시지를 찾을 수 없습니다.")
	KindRoomNotFound              = catalog.Define("CHAT-004", "room_not_found", apperr.ShapeNotFound, "채팅방을 찾을 수 없습니다.")
	KindAttachmentTooLarge        = catalog.Define("CHAT-005", "attachment_too_large", apperr.ShapeStrictInput, "첨부 파일은 최대 {maxMb}MB까지 업로드할 수 있습니다.")
	KindAttachmentTypeUnsupported = catalog.Define("CHAT-006", "attachment_type_unsupported", apperr.ShapeInvalidInput, "지원하지 않는 파일 형식입니다.")
	KindRateLimited               = catalog.Define("CHAT-007", "rate_limited", apperr.ShapeRateLimited, "메시지를 너무 빠르게 보내고 있습니다. 잠시 후 다시 시도해주세요.")
	KindRoomClosed                = catalog.Define("CHAT-008", "room_closed", apperr.ShapeStateConflict, "종료된 채팅방입니다.")
	KindMessageAlreadyDeleted     = catalog.Define("CHAT-009", "message_already_deleted", apperr.ShapeStateConflict, "이미 삭제된 메시지입니다.")
	KindEditWindowExpired         = catalog.Define("CHAT-010", "edit_window_expired", apperr.ShapePrecondition, "메시지는 작성 후 {minutes}분 이내에만 수정할 수 있습니다.")
	KindNotRoomMember             = catalog.Define("CHAT-011", "not_room_member", apperr.ShapeForbidden, "채팅방 참여자만 이용할 수 있습니다.")
	KindNotMessageAuthor          = catalog.Define("CHAT-012", "not_message_author", apperr.ShapeForbidden, "본인이 작성한 메시지만 수정할 수 있습니다.")
	KindUnauthenticated           = catalog.Define("CHAT-013", "unauthenticated", apperr.ShapeUnauthenticated, "로그인이 필요합니다.")
	KindUserMuted                 = catalog.Define("CHAT-014", "user_muted", apperr.ShapeForbidden, "채팅이 제한된 상태입니다.")
	KindUserBanned                = catalog.Define("CHAT-015", "user_banned", apperr.ShapePrivileged, "채팅방에서 차단된 사용자입니다.")
	KindXSSDetected               = catalog.Define("CHAT-016", "xss_detected", apperr.ShapeInjection, msgForbidden)
	KindSQLInjectionDetected      = catalog.Define("CHAT-017", "sql_injection_detected", apperr.ShapeInjection, msgForbidden)
	KindSpamDetected              = catalog.Define("CHAT-018", "spam_detected", apperr.ShapeSuspicious, "스팸으로 의심되는 메시지입니다.")
	KindDatabaseError             = catalog.Define("CHAT-019", "database_error", apperr.ShapeDatabase, msgRetryLater)
	KindNetworkError              = catalog.Define("CHAT-020", "network_error", apperr.ShapeUpstream, "네트워크 연결이 불안정합니다. 잠시 후 다시 시도해주세요.")
	KindTimeout                   = catalog.Define("CHAT-021", "timeout", apperr.ShapeTimeout, "요청 시간이 초과되었습니다. 잠시 후 다시 시도해주세요.")
	KindConnectionLost            = catalog.Define("CHAT-022", "connection_lost", apperr.ShapeUnavailable, "채팅 서버와의 연결이 끊어졌습니다. 다시 연결하는 중입니다.")
	KindMessageQueueFull          = catalog.Define("CHAT-023", "message_queue_full", apperr.ShapeUnavailable, "메시지 전송이 지연되고 있습니다. 잠시 후 다시 시도해주세요.")
	KindUnknownError              = catalog.Define("CHAT-024", "unknown_error", apperr.ShapeInternal, "알 수 없는 오류가 발생했습니다.")
	KindRoomLimitExceeded         = catalog.Define("CHAT-025", "room_limit_exceeded", apperr.ShapeQuotaExceeded, "참여할 수 있는 채팅방 수({max}개)를 초과했습니다.")
	KindReactionInvalid           = catalog.Define("CHAT-026", "reaction_invalid", apperr.ShapeInvalidInput, "지원하지 않는 반응입니다.")
	KindMessageAlreadyPinned      = catalog.Define("CHAT-027", "message_already_pinned", apperr.ShapeConflict, "이미 고정된 메시지입니다.")
	KindPinLimitExceeded          = catalog.Define("CHAT-028", "pin_limit_exceeded", apperr.ShapeQuotaExceeded, "고정할 수 있는 메시지는 최대 {max}개입니다.")
	KindHistoryCorrupted          = catalog.Define("CHAT-029", "history_corrupted", apperr.ShapeCorruption, "채팅 기록을 불러오는 중 오류가 발생했습니다.")
	KindDuplicateMessage          = catalog.Define("CHAT-030", "duplicate_message", apperr.ShapeConflict, "이미 전송된 메시지입니다.")
)

// Conditions raised only through the category subtypes.
var (
	KindMentionInvalid       = catalog.Define("CHAT-VAL-001", "mention_invalid", apperr.ShapeInvalidInput, "멘션 대상이 올바르지 않습니다.")
	KindMentionsTooMany      = catalog.Define("CHAT-VAL-002", "mentions_too_many", apperr.ShapeInvalidInput, "한 메시지에 최대 {max}명까지 멘션할 수 있습니다.")
	KindLinkNotAllowed       = catalog.Define("CHAT-VAL-003", "link_not_allowed", apperr.ShapeInvalidInput, "이 채팅방에서는 링크를 보낼 수 없습니다.")
	KindReplyTargetInvalid   = catalog.Define("CHAT-VAL-004", "reply_target_invalid", apperr.ShapeInvalidInput, "답장할 메시지가 올바르지 않습니다.")
	KindSearchQueryTooShort  = catalog.Define("CHAT-VAL-005", "search_query_too_short", apperr.ShapeInvalidInput, "검색어는 최소 {min}자 이상 입력해주세요.")
	KindNotRoomAdmin         = catalog.Define("CHAT-PERM-001", "not_room_admin", apperr.ShapeForbidden, "채팅방 관리자만 이용할 수 있습니다.")
	KindCannotDeleteOthers   = catalog.Define("CHAT-PERM-002", "cannot_delete_others_message", apperr.ShapeForbidden, "다른 사람의 메시지는 삭제할 수 없습니다.")
	KindReadOnlyRoom         = catalog.Define("CHAT-PERM-003", "read_only_room", apperr.ShapeForbidden, "읽기 전용 채팅방입니다.")
	KindNotStudyMember       = catalog.Define("CHAT-PERM-004", "not_study_member", apperr.ShapeForbidden, "스터디 멤버만 채팅에 참여할 수 있습니다.")
	KindAnnouncementRestrict = catalog.Define("CHAT-PERM-005", "announcement_restricted", apperr.ShapeForbidden, "공지는 스터디 운영진만 작성할 수 있습니다.")
	KindThreadLocked         = catalog.Define("CHAT-BIZ-001", "thread_locked", apperr.ShapeStateConflict, "잠긴 스레드에는 답장할 수 없습니다.")
	KindPollClosed           = catalog.Define("CHAT-BIZ-002", "poll_closed", apperr.ShapeStateConflict, "마감된 투표입니다.")
	KindAlreadyVoted         = catalog.Define("CHAT-BIZ-003", "already_voted", apperr.ShapeConflict, "이미 투표에 참여했습니다.")
	KindPollNotFound         = catalog.Define("CHAT-BIZ-004", "poll_not_found", apperr.ShapeNotFound, "투표를 찾을 수 없습니다.")
	KindSlowModeActive       = catalog.Define("CHAT-BIZ-005", "slow_mode_active", apperr.ShapeRateLimited, "슬로우 모드가 켜져 있습니다. {seconds}초 후에 다시 보내주세요.")
)

// Catalog returns the chat catalog.
func Catalog() *apperr.Catalog { return catalog }
