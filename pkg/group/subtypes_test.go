package group

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

func sameRecord(t *testing.T, want, got *apperr.Error) {
	t.Helper()
	w, g := want.Record(), got.Record()
	w.Timestamp, g.Timestamp = time.Time{}, time.Time{}
	require.Equal(t, w, g)
	require.Same(t, want.Kind(), got.Kind())
}

func TestSubtypes_DelegateLosslessly(t *testing.T) {
	tests := []struct {
		name     string
		category apperr.Category
		sub      func() *apperr.Error
		base     func() *apperr.Error
	}{
		{"NameRequired", apperr.CategoryValidation, Validation.NameRequired, NameRequired},
		{"NameTooShort", apperr.CategoryValidation, func() *apperr.Error { return Validation.NameTooShort(2) }, func() *apperr.Error { return NameTooShort(2) }},
		{"NameTooLong", apperr.CategoryValidation, func() *apperr.Error { return Validation.NameTooLong(30) }, func() *apperr.Error { return NameTooLong(30) }},
		{"NameInvalidCharacters", apperr.CategoryValidation, func() *apperr.Error { return Validation.NameInvalidCharacters("<b>") }, func() *apperr.Error { return NameInvalidCharacters("<b>") }},
		{"DescriptionTooLong", apperr.CategoryValidation, func() *apperr.Error { return Validation.DescriptionTooLong(500, 501) }, func() *apperr.Error { return DescriptionTooLong(500, 501) }},
		{"CategoryRequired", apperr.CategoryValidation, Validation.CategoryRequired, CategoryRequired},
		{"CategoryInvalid", apperr.CategoryValidation, func() *apperr.Error { return Validation.CategoryInvalid("x") }, func() *apperr.Error { return CategoryInvalid("x") }},
		{"TagsTooMany", apperr.CategoryValidation, func() *apperr.Error { return Validation.TagsTooMany(5, 6) }, func() *apperr.Error { return TagsTooMany(5, 6) }},
		{"TagTooLong", apperr.CategoryValidation, func() *apperr.Error { return Validation.TagTooLong("t", 1) }, func() *apperr.Error { return TagTooLong("t", 1) }},
		{"ScheduleInvalid", apperr.CategoryValidation, func() *apperr.Error { return Validation.ScheduleInvalid("?") }, func() *apperr.Error { return ScheduleInvalid("?") }},
		{"CapacityRequired", apperr.CategoryValidation, Validation.CapacityRequired, CapacityRequired},
		{"CapacityInvalid", apperr.CategoryValidation, func() *apperr.Error { return Validation.CapacityInvalid("ten") }, func() *apperr.Error { return CapacityInvalid("ten") }},
		{"CapacityTooSmall", apperr.CategoryValidation, func() *apperr.Error { return Validation.CapacityTooSmall(2) }, func() *apperr.Error { return CapacityTooSmall(2) }},
		{"CapacityTooLarge", apperr.CategoryValidation, func() *apperr.Error { return Validation.CapacityTooLarge(50) }, func() *apperr.Error { return CapacityTooLarge(50) }},
		{"RoleInvalid", apperr.CategoryValidation, func() *apperr.Error { return Validation.RoleInvalid("x") }, func() *apperr.Error { return RoleInvalid("x") }},

		{"NotMember", apperr.CategoryPermission, func() *apperr.Error { return Permission.NotMember("g", "u") }, func() *apperr.Error { return NotMember("g", "u") }},
		{"NotOwner", apperr.CategoryPermission, func() *apperr.Error { return Permission.NotOwner("g", "u") }, func() *apperr.Error { return NotOwner("g", "u") }},
		{"NotManager", apperr.CategoryPermission, func() *apperr.Error { return Permission.NotManager("g", "u") }, func() *apperr.Error { return NotManager("g", "u") }},
		{"CannotKickOwner", apperr.CategoryPermission, func() *apperr.Error { return Permission.CannotKickOwner("g", "u") }, func() *apperr.Error { return CannotKickOwner("g", "u") }},
		{"Unauthenticated", apperr.CategoryPermission, Permission.Unauthenticated, Unauthenticated},

		{"CapacityBelowMemberCount", apperr.CategoryBusiness, func() *apperr.Error { return Business.CapacityBelowMemberCount(3, 4) }, func() *apperr.Error { return CapacityBelowMemberCount(3, 4) }},
		{"GroupNotFound", apperr.CategoryBusiness, func() *apperr.Error { return Business.GroupNotFound("g") }, func() *apperr.Error { return GroupNotFound("g") }},
		{"GroupFull", apperr.CategoryBusiness, func() *apperr.Error { return Business.GroupFull("g", 4) }, func() *apperr.Error { return GroupFull("g", 4) }},
		{"GroupClosed", apperr.CategoryBusiness, func() *apperr.Error { return Business.GroupClosed("g") }, func() *apperr.Error { return GroupClosed("g") }},
		{"GroupArchived", apperr.CategoryBusiness, func() *apperr.Error { return Business.GroupArchived("g") }, func() *apperr.Error { return GroupArchived("g") }},
		{"NameDuplicate", apperr.CategoryBusiness, func() *apperr.Error { return Business.NameDuplicate("n") }, func() *apperr.Error { return NameDuplicate("n") }},
		{"AlreadyMember", apperr.CategoryBusiness, func() *apperr.Error { return Business.AlreadyMember("g", "u") }, func() *apperr.Error { return AlreadyMember("g", "u") }},
		{"JoinRequestPending", apperr.CategoryBusiness, func() *apperr.Error { return Business.JoinRequestPending("g", "u") }, func() *apperr.Error { return JoinRequestPending("g", "u") }},
		{"JoinRequestNotFound", apperr.CategoryBusiness, func() *apperr.Error { return Business.JoinRequestNotFound("r") }, func() *apperr.Error { return JoinRequestNotFound("r") }},
		{"JoinRequestAlreadyProcessed", apperr.CategoryBusiness, func() *apperr.Error { return Business.JoinRequestAlreadyProcessed("r", "rejected") }, func() *apperr.Error { return JoinRequestAlreadyProcessed("r", "rejected") }},
		{"InvitationExpired", apperr.CategoryBusiness, func() *apperr.Error { return Business.InvitationExpired("c", expiredAt) }, func() *apperr.Error { return InvitationExpired("c", expiredAt) }},
		{"InvitationInvalid", apperr.CategoryBusiness, func() *apperr.Error { return Business.InvitationInvalid("c") }, func() *apperr.Error { return InvitationInvalid("c") }},
		{"OwnerCannotLeave", apperr.CategoryBusiness, func() *apperr.Error { return Business.OwnerCannotLeave("g", "u") }, func() *apperr.Error { return OwnerCannotLeave("g", "u") }},
		{"CannotKickSelf", apperr.CategoryBusiness, func() *apperr.Error { return Business.CannotKickSelf("g", "u") }, func() *apperr.Error { return CannotKickSelf("g", "u") }},
		{"MemberNotFound", apperr.CategoryBusiness, func() *apperr.Error { return Business.MemberNotFound("g", "u") }, func() *apperr.Error { return MemberNotFound("g", "u") }},
		{"TransferTargetNotMember", apperr.CategoryBusiness, func() *apperr.Error { return Business.TransferTargetNotMember("g", "u") }, func() *apperr.Error { return TransferTargetNotMember("g", "u") }},
		{"JoinRateLimited", apperr.CategoryBusiness, func() *apperr.Error { return Business.JoinRateLimited("u", 10) }, func() *apperr.Error { return JoinRateLimited("u", 10) }},
		{"CreateLimitExceeded", apperr.CategoryBusiness, func() *apperr.Error { return Business.CreateLimitExceeded("u", 3) }, func() *apperr.Error { return CreateLimitExceeded("u", 3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sub()
			sameRecord(t, tt.base(), got)
			require.Equal(t, tt.category, got.Category())
		})
	}
}

func TestEvents(t *testing.T) {
	var out bytes.Buffer
	l := logger.New(logger.Config{Environment: logger.Development, Output: &out, Fallback: &bytes.Buffer{}})
	defer l.Close(context.Background())

	ev := Events(l)
	ev.MemberJoined(context.Background(), "g-1", "u-1")
	ev.RateLimitExceeded(context.Background(), "u-1", "join", 6)

	require.Contains(t, out.String(), "member joined")
	require.Contains(t, out.String(), "area=group")
	require.Contains(t, out.String(), "rate limit exceeded")
}
