package group_test

import (
	"errors"
	"fmt"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
	"github.com/Goden-Gun/apperr-lib/pkg/envelope"
	"github.com/Goden-Gun/apperr-lib/pkg/group"
)

func ExampleCapacityTooSmall() {
	err := group.CapacityTooSmall(2)

	fmt.Println(err.Code(), err.HTTPStatus(), err.Severity())
	fmt.Println(err.UserMessage())
	fmt.Println(errors.Is(err, group.KindCapacityTooSmall), apperr.IsRetryable(err))
	// Output:
	// GROUP-013 400 medium
	// 그룹 정원은 최소 2명 이상이어야 합니다.
	// true false
}

func ExampleGroupNotFound_envelope() {
	var err error = fmt.Errorf("load group: %w", group.GroupNotFound("g-42"))

	f := envelope.New(err)
	fmt.Println(envelope.Status(err), f.Success, f.Error.Code, f.Error.Message)
	// Output: 404 false GROUP-016 그룹을 찾을 수 없습니다.
}
