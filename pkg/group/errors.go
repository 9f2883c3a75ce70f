package group

import (
	"time"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

func NameRequired() *apperr.Error {
	return KindNameRequired.New(apperr.Detail("group name is empty"))
}

func NameTooShort(minLen int) *apperr.Error {
	return KindNameTooShort.New(
		apperr.Detailf("group name shorter than %d characters", minLen),
		apperr.Limit("min", minLen),
	)
}

func NameTooLong(maxLen int) *apperr.Error {
	return KindNameTooLong.New(
		apperr.Detailf("group name longer than %d characters", maxLen),
		apperr.Limit("max", maxLen),
	)
}

// NameInvalidCharacters keeps the rejected name in context only.
func NameInvalidCharacters(name string) *apperr.Error {
	return KindNameInvalidCharacters.New(
		apperr.Detail("group name contains disallowed characters"),
		apperr.Field("name", name),
	)
}

func DescriptionTooLong(maxLen, actual int) *apperr.Error {
	return KindDescriptionTooLong.New(
		apperr.Detailf("description has %d characters, limit %d", actual, maxLen),
		apperr.Limit("max", maxLen),
		apperr.Field("length", actual),
	)
}

func CategoryRequired() *apperr.Error {
	return KindCategoryRequired.New(apperr.Detail("group category is empty"))
}

func CategoryInvalid(category string) *apperr.Error {
	return KindCategoryInvalid.New(
		apperr.Detailf("unknown group category %q", category),
		apperr.Field("category", category),
	)
}

func TagsTooMany(maxTags, actual int) *apperr.Error {
	return KindTagsTooMany.New(
		apperr.Detailf("%d tags given, limit %d", actual, maxTags),
		apperr.Limit("max", maxTags),
		apperr.Field("count", actual),
	)
}

func TagTooLong(tag string, maxLen int) *apperr.Error {
	return KindTagTooLong.New(
		apperr.Detailf("tag longer than %d characters", maxLen),
		apperr.Limit("max", maxLen),
		apperr.Field("tag", tag),
	)
}

func ScheduleInvalid(schedule string) *apperr.Error {
	return KindScheduleInvalid.New(
		apperr.Detail("schedule cannot be parsed"),
		apperr.Field("schedule", schedule),
	)
}

func CapacityRequired() *apperr.Error {
	return KindCapacityRequired.New(apperr.Detail("group capacity is empty"))
}

func CapacityInvalid(raw string) *apperr.Error {
	return KindCapacityInvalid.New(
		apperr.Detail("group capacity is not a number"),
		apperr.Field("value", raw),
	)
}

// CapacityTooSmall reports a capacity below minCapacity. The minimum is
// shown to the user.
func CapacityTooSmall(minCapacity int) *apperr.Error {
	return KindCapacityTooSmall.New(
		apperr.Detailf("capacity below minimum %d", minCapacity),
		apperr.Limit("min", minCapacity),
	)
}

func CapacityTooLarge(maxCapacity int) *apperr.Error {
	return KindCapacityTooLarge.New(
		apperr.Detailf("capacity above maximum %d", maxCapacity),
		apperr.Limit("max", maxCapacity),
	)
}

func RoleInvalid(role string) *apperr.Error {
	return KindRoleInvalid.New(
		apperr.Detailf("unknown member role %q", role),
		apperr.Field("role", role),
	)
}

func CapacityBelowMemberCount(capacity, memberCount int) *apperr.Error {
	return KindCapacityBelowMemberCount.New(
		apperr.Detailf("capacity %d below current member count %d", capacity, memberCount),
		apperr.Limit("count", memberCount),
		apperr.Field("capacity", capacity),
	)
}

func GroupNotFound(groupID string) *apperr.Error {
	return KindGroupNotFound.New(
		apperr.Detailf("group %s not found", groupID),
		apperr.Field("groupId", groupID),
	)
}

func GroupFull(groupID string, capacity int) *apperr.Error {
	return KindGroupFull.New(
		apperr.Detailf("group %s reached capacity %d", groupID, capacity),
		apperr.Field("groupId", groupID),
		apperr.Field("capacity", capacity),
	)
}

func GroupClosed(groupID string) *apperr.Error {
	return KindGroupClosed.New(
		apperr.Detailf("group %s is closed for joining", groupID),
		apperr.Field("groupId", groupID),
	)
}

func GroupArchived(groupID string) *apperr.Error {
	return KindGroupArchived.New(
		apperr.Detailf("group %s is archived", groupID),
		apperr.Field("groupId", groupID),
	)
}

func NameDuplicate(name string) *apperr.Error {
	return KindNameDuplicate.New(
		apperr.Detail("group name already taken"),
		apperr.Field("name", name),
	)
}

func AlreadyMember(groupID, userID string) *apperr.Error {
	return KindAlreadyMember.New(
		apperr.Detailf("user %s already in group %s", userID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("userId", userID),
	)
}

func JoinRequestPending(groupID, userID string) *apperr.Error {
	return KindJoinRequestPending.New(
		apperr.Detailf("user %s has a pending request for group %s", userID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("userId", userID),
	)
}

func JoinRequestNotFound(requestID string) *apperr.Error {
	return KindJoinRequestNotFound.New(
		apperr.Detailf("join request %s not found", requestID),
		apperr.Field("requestId", requestID),
	)
}

func JoinRequestAlreadyProcessed(requestID, status string) *apperr.Error {
	return KindJoinRequestAlreadyProcessed.New(
		apperr.Detailf("join request %s already %s", requestID, status),
		apperr.Field("requestId", requestID),
		apperr.Field("status", status),
	)
}

func InvitationExpired(code string, expiredAt time.Time) *apperr.Error {
	return KindInvitationExpired.New(
		apperr.Detailf("invitation expired at %s", expiredAt.UTC().Format(time.RFC3339)),
		apperr.Field("invitationCode", code),
		apperr.Field("expiredAt", expiredAt.UTC()),
	)
}

func InvitationInvalid(code string) *apperr.Error {
	return KindInvitationInvalid.New(
		apperr.Detail("invitation code does not match any group"),
		apperr.Field("invitationCode", code),
	)
}

func OwnerCannotLeave(groupID, userID string) *apperr.Error {
	return KindOwnerCannotLeave.New(
		apperr.Detailf("owner %s tried to leave group %s", userID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("userId", userID),
	)
}

func CannotKickSelf(groupID, userID string) *apperr.Error {
	return KindCannotKickSelf.New(
		apperr.Detailf("user %s tried to kick themselves from group %s", userID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("userId", userID),
	)
}

func MemberNotFound(groupID, userID string) *apperr.Error {
	return KindMemberNotFound.New(
		apperr.Detailf("user %s is not a member of group %s", userID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("userId", userID),
	)
}

func TransferTargetNotMember(groupID, targetID string) *apperr.Error {
	return KindTransferTargetNotMember.New(
		apperr.Detailf("ownership transfer target %s not in group %s", targetID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("targetId", targetID),
	)
}

// JoinRateLimited records retryAfterSeconds so the HTTP layer can send
// Retry-After.
func JoinRateLimited(userID string, retryAfterSeconds int) *apperr.Error {
	return KindJoinRateLimited.New(
		apperr.Detailf("join rate limit hit by %s", userID),
		apperr.Field("userId", userID),
		apperr.Field("retryAfterSeconds", retryAfterSeconds),
	)
}

func CreateLimitExceeded(userID string, maxGroups int) *apperr.Error {
	return KindCreateLimitExceeded.New(
		apperr.Detailf("user %s owns the maximum of %d groups", userID, maxGroups),
		apperr.Limit("max", maxGroups),
		apperr.Field("userId", userID),
	)
}

func NotMember(groupID, userID string) *apperr.Error {
	return KindNotMember.New(
		apperr.Detailf("user %s is not a member of group %s", userID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("userId", userID),
	)
}

func NotOwner(groupID, userID string) *apperr.Error {
	return KindNotOwner.New(
		apperr.Detailf("user %s is not the owner of group %s", userID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("userId", userID),
	)
}

func NotManager(groupID, userID string) *apperr.Error {
	return KindNotManager.New(
		apperr.Detailf("user %s is not a manager of group %s", userID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("userId", userID),
	)
}

func CannotKickOwner(groupID, actorID string) *apperr.Error {
	return KindCannotKickOwner.New(
		apperr.Detailf("user %s tried to kick the owner of group %s", actorID, groupID),
		apperr.Field("groupId", groupID),
		apperr.Field("actorId", actorID),
	)
}

func Unauthenticated() *apperr.Error {
	return KindUnauthenticated.New(apperr.Detail("no authenticated user on group request"))
}

// XSSDetected records the field name; the payload itself is never stored.
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
		apperr.Detailf("group %s failed", op),
		apperr.Field("operation", op),
		apperr.Cause(err),
	)
}

func NetworkError(err error) *apperr.Error {
	return KindNetworkError.New(apperr.Detail("group upstream unreachable"), apperr.Cause(err))
}

func Timeout(op string, elapsed time.Duration) *apperr.Error {
	return KindTimeout.New(
		apperr.Detailf("group %s timed out after %s", op, elapsed),
		apperr.Field("operation", op),
		apperr.Field("elapsedMs", elapsed.Milliseconds()),
	)
}

func UnknownError(err error) *apperr.Error {
	return KindUnknownError.New(apperr.Detail("unexpected group error"), apperr.Cause(err))
}

func DataInconsistent(detail string, fields map[string]any) *apperr.Error {
	return KindDataInconsistent.New(apperr.Detail(detail), apperr.Fields(fields))
}
