package notification

import (
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

var (
	ErrValidation = apperr.ClassOf(apperr.DomainNotification, apperr.CategoryValidation)
	ErrPermission = apperr.ClassOf(apperr.DomainNotification, apperr.CategoryPermission)
	ErrBusiness   = apperr.ClassOf(apperr.DomainNotification, apperr.CategoryBusiness)
	ErrSystem     = apperr.ClassOf(apperr.DomainNotification, apperr.CategorySystem)
	ErrSecurity   = apperr.ClassOf(apperr.DomainNotification, apperr.CategorySecurity)
)

// Validation, Permission and Business expose the notification factories by
// category. They add no conditions of their own.
var (
	Validation validationSet
	Permission permissionSet
	Business   businessSet
)

type validationSet struct{}

func (validationSet) TitleRequired() *apperr.Error { return TitleRequired() }
func (validationSet) TitleTooLong(maxLen, actual int) *apperr.Error {
	return TitleTooLong(maxLen, actual)
}
func (validationSet) BodyTooLong(maxLen, actual int) *apperr.Error {
	return BodyTooLong(maxLen, actual)
}
func (validationSet) TypeInvalid(kind string) *apperr.Error { return TypeInvalid(kind) }
func (validationSet) ChannelInvalid(channel string) *apperr.Error { return ChannelInvalid(channel) }
func (validationSet) ScheduleInPast(at time.Time) *apperr.Error { return ScheduleInPast(at) }
func (validationSet) RecipientsTooMany(maxRecipients, actual int) *apperr.Error {
	return RecipientsTooMany(maxRecipients, actual)
}
func (validationSet) PreferenceInvalid(key string) *apperr.Error { return PreferenceInvalid(key) }

type permissionSet struct{}

func (permissionSet) NotRecipient(notificationID, userID string) *apperr.Error {
	return NotRecipient(notificationID, userID)
}
func (permissionSet) NotSender(notificationID, userID string) *apperr.Error {
	return NotSender(notificationID, userID)
}
func (permissionSet) BroadcastForbidden(userID string) *apperr.Error { return BroadcastForbidden(userID) }
func (permissionSet) Unauthenticated() *apperr.Error { return Unauthenticated() }

type businessSet struct{}

func (businessSet) UserNotFound(userID string) *apperr.Error { return UserNotFound(userID) }
func (businessSet) NotificationNotFound(notificationID string) *apperr.Error {
	return NotificationNotFound(notificationID)
}
func (businessSet) AlreadyRead(notificationID string) *apperr.Error { return AlreadyRead(notificationID) }
func (businessSet) AlreadyDeleted(notificationID string) *apperr.Error {
	return AlreadyDeleted(notificationID)
}
func (businessSet) SubscriptionNotFound(userID, topic string) *apperr.Error {
	return SubscriptionNotFound(userID, topic)
}
func (businessSet) ChannelDisabled(userID, channel string) *apperr.Error {
	return ChannelDisabled(userID, channel)
}
func (businessSet) QuietHours(userID string, until time.Time) *apperr.Error {
	return QuietHours(userID, until)
}
func (businessSet) SendRateLimited(senderID string, retryAfterSeconds int) *apperr.Error {
	return SendRateLimited(senderID, retryAfterSeconds)
}
func (businessSet) DailyLimitExceeded(senderID string, maxPerDay int) *apperr.Error {
	return DailyLimitExceeded(senderID, maxPerDay)
}
func (businessSet) PushTokenInvalid(userID, deviceID string) *apperr.Error {
	return PushTokenInvalid(userID, deviceID)
}
func (businessSet) TemplateNotFound(templateID string) *apperr.Error { return TemplateNotFound(templateID) }
