package notification

import (
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

func UserNotFound(userID string) *apperr.Error {
	return KindUserNotFound.New(
		apperr.Detailf("recipient %s not found", userID),
		apperr.Field("userId", userID),
	)
}

func NotificationNotFound(notificationID string) *apperr.Error {
	return KindNotificationNotFound.New(
		apperr.Detailf("notification %s not found", notificationID),
		apperr.Field("notificationId", notificationID),
	)
}

func TitleRequired() *apperr.Error {
	return KindTitleRequired.New(apperr.Detail("notification title is empty"))
}

func TitleTooLong(maxLen, actual int) *apperr.Error {
	return KindTitleTooLong.New(
		apperr.Detailf("title has %d characters, limit %d", actual, maxLen),
		apperr.Limit("max", maxLen),
		apperr.Field("length", actual),
	)
}

func BodyTooLong(maxLen, actual int) *apperr.Error {
	return KindBodyTooLong.New(
		apperr.Detailf("body has %d characters, limit %d", actual, maxLen),
		apperr.Limit("max", maxLen),
		apperr.Field("length", actual),
	)
}

func TypeInvalid(kind string) *apperr.Error {
	return KindTypeInvalid.New(
		apperr.Detailf("unknown notification type %q", kind),
		apperr.Field("type", kind),
	)
}

func ChannelInvalid(channel string) *apperr.Error {
	return KindChannelInvalid.New(
		apperr.Detailf("unknown channel %q", channel),
		apperr.Field("channel", channel),
	)
}

func ScheduleInPast(at time.Time) *apperr.Error {
	return KindScheduleInPast.New(
		apperr.Detailf("scheduled time %s is in the past", at.UTC().Format(time.RFC3339)),
		apperr.Field("scheduledAt", at.UTC()),
	)
}

func RecipientsTooMany(maxRecipients, actual int) *apperr.Error {
	return KindRecipientsTooMany.New(
		apperr.Detailf("%d recipients, limit %d", actual, maxRecipients),
		apperr.Limit("max", maxRecipients),
		apperr.Field("count", actual),
	)
}

func AlreadyRead(notificationID string) *apperr.Error {
	return KindAlreadyRead.New(
		apperr.Detailf("notification %s already read", notificationID),
		apperr.Field("notificationId", notificationID),
	)
}

func AlreadyDeleted(notificationID string) *apperr.Error {
	return KindAlreadyDeleted.New(
		apperr.Detailf("notification %s already deleted", notificationID),
		apperr.Field("notificationId", notificationID),
	)
}

func SubscriptionNotFound(userID, topic string) *apperr.Error {
	return KindSubscriptionNotFound.New(
		apperr.Detailf("user %s has no subscription to %s", userID, topic),
		apperr.Field("userId", userID),
		apperr.Field("topic", topic),
	)
}

func ChannelDisabled(userID, channel string) *apperr.Error {
	return KindChannelDisabled.New(
		apperr.Detailf("channel %s disabled by %s", channel, userID),
		apperr.Field("userId", userID),
		apperr.Field("channel", channel),
	)
}

func QuietHours(userID string, until time.Time) *apperr.Error {
	return KindQuietHours.New(
		apperr.Detailf("user %s in quiet hours until %s", userID, until.UTC().Format(time.RFC3339)),
		apperr.Field("userId", userID),
		apperr.Field("until", until.UTC()),
	)
}

func SendRateLimited(senderID string, retryAfterSeconds int) *apperr.Error {
	return KindSendRateLimited.New(
		apperr.Detailf("send rate limit hit by %s", senderID),
		apperr.Field("senderId", senderID),
		apperr.Field("retryAfterSeconds", retryAfterSeconds),
	)
}

func DailyLimitExceeded(senderID string, maxPerDay int) *apperr.Error {
	return KindDailyLimitExceeded.New(
		apperr.Detailf("sender %s reached %d notifications today", senderID, maxPerDay),
		apperr.Limit("max", maxPerDay),
		apperr.Field("senderId", senderID),
	)
}

func NotRecipient(notificationID, userID string) *apperr.Error {
	return KindNotRecipient.New(
		apperr.Detailf("user %s is not the recipient of %s", userID, notificationID),
		apperr.Field("notificationId", notificationID),
		apperr.Field("userId", userID),
	)
}

func NotSender(notificationID, userID string) *apperr.Error {
	return KindNotSender.New(
		apperr.Detailf("user %s did not send %s", userID, notificationID),
		apperr.Field("notificationId", notificationID),
		apperr.Field("userId", userID),
	)
}

func BroadcastForbidden(userID string) *apperr.Error {
	return KindBroadcastForbidden.New(
		apperr.Detailf("non-admin %s attempted a broadcast", userID),
		apperr.Field("userId", userID),
	)
}

func Unauthenticated() *apperr.Error {
	return KindUnauthenticated.New(apperr.Detail("no authenticated user on notification request"))
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

func DatabaseError(op string, err error) *apperr.Error {
	return KindDatabaseError.New(
		apperr.Detailf("notification %s failed", op),
		apperr.Field("operation", op),
		apperr.Cause(err),
	)
}

func NetworkError(err error) *apperr.Error {
	return KindNetworkError.New(apperr.Detail("notification upstream unreachable"), apperr.Cause(err))
}

func Timeout(op string, elapsed time.Duration) *apperr.Error {
	return KindTimeout.New(
		apperr.Detailf("notification %s timed out after %s", op, elapsed),
		apperr.Field("operation", op),
		apperr.Field("elapsedMs", elapsed.Milliseconds()),
	)
}

func PushProviderUnavailable(provider string, err error) *apperr.Error {
	return KindPushProviderUnavailable.New(
		apperr.Detailf("push provider %s unavailable", provider),
		apperr.Field("provider", provider),
		apperr.Cause(err),
	)
}

// PushTokenInvalid is raised when the provider rejects a device token; the
// client has to register again.
func PushTokenInvalid(userID, deviceID string) *apperr.Error {
	return KindPushTokenInvalid.New(
		apperr.Detailf("push token of device %s rejected", deviceID),
		apperr.Field("userId", userID),
		apperr.Field("deviceId", deviceID),
	)
}

func EmailDeliveryFailed(messageID string, err error) *apperr.Error {
	return KindEmailDeliveryFailed.New(
		apperr.Detailf("email %s not delivered", messageID),
		apperr.Field("messageId", messageID),
		apperr.Cause(err),
	)
}

func QueueFull(queue string, depth int) *apperr.Error {
	return KindQueueFull.New(
		apperr.Detailf("queue %s full at %d", queue, depth),
		apperr.Field("queue", queue),
		apperr.Field("depth", depth),
	)
}

func UnknownError(err error) *apperr.Error {
	return KindUnknownError.New(apperr.Detail("unexpected notification error"), apperr.Cause(err))
}

func PayloadCorrupted(notificationID string, err error) *apperr.Error {
	return KindPayloadCorrupted.New(
		apperr.Detailf("payload of %s cannot be decoded", notificationID),
		apperr.Field("notificationId", notificationID),
		apperr.Cause(err),
	)
}

func TemplateNotFound(templateID string) *apperr.Error {
	return KindTemplateNotFound.New(
		apperr.Detailf("template %s not found", templateID),
		apperr.Field("templateId", templateID),
	)
}

func TemplateRenderFailed(templateID string, err error) *apperr.Error {
	return KindTemplateRenderFailed.New(
		apperr.Detailf("template %s failed to render", templateID),
		apperr.Field("templateId", templateID),
		apperr.Cause(err),
	)
}

func PreferenceInvalid(key string) *apperr.Error {
	return KindPreferenceInvalid.New(
		apperr.Detailf("invalid preference %q", key),
		apperr.Field("key", key),
	)
}

func SpamSuspected(senderID string, sentLastHour int) *apperr.Error {
	return KindSpamSuspected.New(
		apperr.Detailf("sender %s sent %d notifications in the last hour", senderID, sentLastHour),
		apperr.Field("senderId", senderID),
		apperr.Field("sentLastHour", sentLastHour),
	)
}
