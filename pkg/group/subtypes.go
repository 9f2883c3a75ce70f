package group

import (
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

// Class sentinels for catch sites:
//
//	if errors.Is(err, group.ErrValidation) { ... }
var (
	ErrValidation = apperr.ClassOf(apperr.DomainGroup, apperr.CategoryValidation)
	ErrPermission = apperr.ClassOf(apperr.DomainGroup, apperr.CategoryPermission)
	ErrBusiness   = apperr.ClassOf(apperr.DomainGroup, apperr.CategoryBusiness)
	ErrSystem     = apperr.ClassOf(apperr.DomainGroup, apperr.CategorySystem)
	ErrSecurity   = apperr.ClassOf(apperr.DomainGroup, apperr.CategorySecurity)
)

// Validation, Permission and Business group the factories by category for
// call sites that only raise one kind of failure. Every method returns
// exactly what the package-level factory of the same name returns.
var (
	Validation validationSet
	Permission permissionSet
	Business   businessSet
)

type validationSet struct{}

func (validationSet) NameRequired() *apperr.Error { return NameRequired() }
func (validationSet) NameTooShort(minLen int) *apperr.Error { return NameTooShort(minLen) }
func (validationSet) NameTooLong(maxLen int) *apperr.Error { return NameTooLong(maxLen) }
func (validationSet) NameInvalidCharacters(n string) *apperr.Error { return NameInvalidCharacters(n) }
func (validationSet) DescriptionTooLong(maxLen, actual int) *apperr.Error {
	return DescriptionTooLong(maxLen, actual)
}
func (validationSet) CategoryRequired() *apperr.Error { return CategoryRequired() }
func (validationSet) CategoryInvalid(c string) *apperr.Error { return CategoryInvalid(c) }
func (validationSet) TagsTooMany(maxTags, actual int) *apperr.Error {
	return TagsTooMany(maxTags, actual)
}
func (validationSet) TagTooLong(tag string, maxLen int) *apperr.Error { return TagTooLong(tag, maxLen) }
func (validationSet) ScheduleInvalid(s string) *apperr.Error { return ScheduleInvalid(s) }
func (validationSet) CapacityRequired() *apperr.Error { return CapacityRequired() }
func (validationSet) CapacityInvalid(raw string) *apperr.Error { return CapacityInvalid(raw) }
func (validationSet) CapacityTooSmall(minCapacity int) *apperr.Error { return CapacityTooSmall(minCapacity) }
func (validationSet) CapacityTooLarge(maxCapacity int) *apperr.Error { return CapacityTooLarge(maxCapacity) }
func (validationSet) RoleInvalid(role string) *apperr.Error { return RoleInvalid(role) }

type permissionSet struct{}

func (permissionSet) NotMember(groupID, userID string) *apperr.Error { return NotMember(groupID, userID) }
func (permissionSet) NotOwner(groupID, userID string) *apperr.Error { return NotOwner(groupID, userID) }
func (permissionSet) NotManager(groupID, userID string) *apperr.Error { return NotManager(groupID, userID) }
func (permissionSet) CannotKickOwner(groupID, actorID string) *apperr.Error {
	return CannotKickOwner(groupID, actorID)
}
func (permissionSet) Unauthenticated() *apperr.Error { return Unauthenticated() }

type businessSet struct{}

func (businessSet) CapacityBelowMemberCount(capacity, memberCount int) *apperr.Error {
	return CapacityBelowMemberCount(capacity, memberCount)
}
func (businessSet) GroupNotFound(groupID string) *apperr.Error { return GroupNotFound(groupID) }
func (businessSet) GroupFull(groupID string, capacity int) *apperr.Error {
	return GroupFull(groupID, capacity)
}
func (businessSet) GroupClosed(groupID string) *apperr.Error { return GroupClosed(groupID) }
func (businessSet) GroupArchived(groupID string) *apperr.Error { return GroupArchived(groupID) }
func (businessSet) NameDuplicate(name string) *apperr.Error { return NameDuplicate(name) }
func (businessSet) AlreadyMember(groupID, userID string) *apperr.Error {
	return AlreadyMember(groupID, userID)
}
func (businessSet) JoinRequestPending(groupID, userID string) *apperr.Error {
	return JoinRequestPending(groupID, userID)
}
func (businessSet) JoinRequestNotFound(requestID string) *apperr.Error {
	return JoinRequestNotFound(requestID)
}
func (businessSet) JoinRequestAlreadyProcessed(requestID, status string) *apperr.Error {
	return JoinRequestAlreadyProcessed(requestID, status)
}
func (businessSet) InvitationExpired(code string, expiredAt time.Time) *apperr.Error {
	return InvitationExpired(code, expiredAt)
}
func (businessSet) InvitationInvalid(code string) *apperr.Error { return InvitationInvalid(code) }
func (businessSet) OwnerCannotLeave(groupID, userID string) *apperr.Error {
	return OwnerCannotLeave(groupID, userID)
}
func (businessSet) CannotKickSelf(groupID, userID string) *apperr.Error {
	return CannotKickSelf(groupID, userID)
}
func (businessSet) MemberNotFound(groupID, userID string) *apperr.Error {
	return MemberNotFound(groupID, userID)
}
func (businessSet) TransferTargetNotMember(groupID, targetID string) *apperr.Error {
	return TransferTargetNotMember(groupID, targetID)
}
func (businessSet) JoinRateLimited(userID string, retryAfterSeconds int) *apperr.Error {
	return JoinRateLimited(userID, retryAfterSeconds)
}
func (businessSet) CreateLimitExceeded(userID string, maxGroups int) *apperr.Error {
	return CreateLimitExceeded(userID, maxGroups)
}
