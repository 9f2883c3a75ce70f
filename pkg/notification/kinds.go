package notification

import "github.com/Goden-Gun/apperr-lib/pkg/apperr"

var catalog = apperr.NewCatalog(apperr.DomainNotification, "NOTIFICATION")

const msgForbidden = "허용되지 않는 문자열이 포함되어 있습니다."

var (
	KindUserNotFound            = catalog.Define("NOTIFICATION-001", "user_not_found", apperr.ShapeNotFound, "사용자를 찾을 수 없습니다.")
	KindNotificationNotFound    = catalog.Define("NOTIFICATION-002", "notification_not_found", apperr.ShapeNotFound, "알림을 찾을 수 없습니다.")
	KindTitleRequired           = catalog.Define("NOTIFICATION-003", "title_required", apperr.ShapeInvalidInput, "알림 제목을 입력해주세요.")
	KindTitleTooLong            = catalog.Define("NOTIFICATION-004", "title_too_long", apperr.ShapeInvalidInput, "알림 제목은 최대 {max}자까지 입력할 수 있습니다.")
	KindBodyTooLong             = catalog.Define("NOTIFICATION-005", "body_too_long", apperr.ShapeInvalidInput, "알림 내용은 최대 {max}자까지 입력할 수 있습니다.")
	KindTypeInvalid             = catalog.Define("NOTIFICATION-006", "type_invalid", apperr.ShapeInvalidInput, "지원하지 않는 알림 유형입니다.")
	KindChannelInvalid          = catalog.Define("NOTIFICATION-007", "channel_invalid", apperr.ShapeInvalidInput, "지원하지 않는 알림 채널입니다.")
	KindScheduleInPast          = catalog.Define("NOTIFICATION-008", "schedule_in_past", apperr.ShapeStrictInput, "예약 시간은 현재 이후로 설정해주세요.")
	KindRecipientsTooMany       = catalog.Define("NOTIFICATION-009", "recipients_too_many", apperr.ShapeStrictInput, "한 번에 최대 {max}명에게 보낼 수 있습니다.")
	KindAlreadyRead             = catalog.Define("NOTIFICATION-010", "already_read", apperr.ShapeConflict, "이미 읽은 알림입니다.")
	KindAlreadyDeleted          = catalog.Define("NOTIFICATION-011", "already_deleted", apperr.ShapeStateConflict, "이미 삭제된 알림입니다.")
	KindSubscriptionNotFound    = catalog.Define("NOTIFICATION-012", "subscription_not_found", apperr.ShapeNotFound, "알림 구독 정보를 찾을 수 없습니다.")
	KindChannelDisabled         = catalog.Define("NOTIFICATION-013", "channel_disabled", apperr.ShapePrecondition, "해당 알림 채널이 꺼져 있습니다.")
	KindQuietHours              = catalog.Define("NOTIFICATION-014", "quiet_hours", apperr.ShapePrecondition, "방해 금지 시간에는 알림을 보낼 수 없습니다.")
	KindSendRateLimited         = catalog.Define("NOTIFICATION-015", "send_rate_limited", apperr.ShapeRateLimited, "알림을 너무 자주 보내고 있습니다. 잠시 후 다시 시도해주세요.")
	KindDailyLimitExceeded      = catalog.Define("NOTIFICATION-016", "daily_limit_exceeded", apperr.ShapeQuotaExceeded, "오늘 보낼 수 있는 알림 수({max}건)를 초과했습니다.")
	KindNotRecipient            = catalog.Define("NOTIFICATION-017", "not_recipient", apperr.ShapeForbidden, "본인의 알림만 확인할 수 있습니다.")
	KindNotSender               = catalog.Define("NOTIFICATION-018", "not_sender", apperr.ShapeForbidden, "알림을 보낸 사용자만 취소할 수 있습니다.")
	KindBroadcastForbidden      = catalog.Define("NOTIFICATION-019", "broadcast_forbidden", apperr.ShapePrivileged, "전체 알림은 관리자만 보낼 수 있습니다.")
	KindUnauthenticated         = catalog.Define("NOTIFICATION-020", "unauthenticated", apperr.ShapeUnauthenticated, "로그인이 필요합니다.")
	KindXSSDetected             = catalog.Define("NOTIFICATION-021", "xss_detected", apperr.ShapeInjection, msgForbidden)
	KindSQLInjectionDetected    = catalog.Define("NOTIFICATION-022", "sql_injection_detected", apperr.ShapeInjection, msgForbidden)
	KindDatabaseError           = catalog.Define("NOTIFICATION-023", "database_error", apperr.ShapeDatabase, "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
	KindNetworkError            = catalog.Define("NOTIFICATION-024", "network_error", apperr.ShapeUpstream, "네트워크 연결이 불안정합니다. 잠시 후 다시 시도해주세요.")
	KindTimeout                 = catalog.Define("NOTIFICATION-025", "timeout", apperr.ShapeTimeout, "요청 시간이 초과되었습니다. 잠시 후 다시 시도해주세요.")
	KindPushProviderUnavailable = catalog.Define("NOTIFICATION-026", "push_provider_unavailable", apperr.ShapeUnavailable, "알림 서비스가 일시적으로 원활하지 않습니다.")
	KindPushTokenInvalid        = catalog.Define("NOTIFICATION-027", "push_token_invalid", apperr.ShapePrecondition, "푸시 알림 설정이 만료되었습니다. 앱에서 알림을 다시 허용해주세요.")
	KindEmailDeliveryFailed     = catalog.Define("NOTIFICATION-028", "email_delivery_failed", apperr.ShapeUpstream, "이메일 발송에 실패했습니다. 잠시 후 다시 시도해주세요.")
	KindQueueFull               = catalog.Define("NOTIFICATION-029", "queue_full", apperr.ShapeUnavailable, "알림 발송이 지연되고 있습니다. 잠시 후 다시 시도해주세요.")
	KindUnknownError            = catalog.Define("NOTIFICATION-030", "unknown_error", apperr.ShapeInternal, "알 수 없는 오류가 발생했습니다.")
	KindPayloadCorrupted        = catalog.Define("NOTIFICATION-031", "payload_corrupted", apperr.ShapeCorruption, "알림 정보를 처리하는 중 오류가 발생했습니다.")
	KindTemplateNotFound        = catalog.Define("NOTIFICATION-032", "template_not_found", apperr.ShapeNotFound, "알림 템플릿을 찾을 수 없습니다.")
	KindTemplateRenderFailed    = catalog.Define("NOTIFICATION-033", "template_render_failed", apperr.ShapeInternal, "알림 내용을 만드는 중 오류가 발생했습니다.")
	KindPreferenceInvalid       = catalog.Define("NOTIFICATION-034", "preference_invalid", apperr.ShapeInvalidInput, "알림 설정 값이 올바르지 않습니다.")
	KindSpamSuspected           = catalog.Define("NOTIFICATION-035", "spam_suspected", apperr.ShapeSuspicious, "비정상적인 알림 발송이 감지되었습니다.")
)

// Catalog returns the notification catalog.
func Catalog() *apperr.Catalog { return catalog }
