// Package apperr is the error taxonomy shared by every business domain of the
// platform (chat, group, notification, profile, auth).
//
// A failure is described once, as a Kind registered in a domain Catalog:
//
//	var catalog = apperr.NewCatalog(apperr.DomainGroup, "GROUP")
//
//	var KindCapacityTooSmall = catalog.Define("GROUP-013", "capacity_too_small",
//	    apperr.ShapeStrictInput, "그룹 정원은 최소 {min}명 이상이어야 합니다.")
//
// and raised through a named factory that fills developer detail and context:
//
//	func CapacityTooSmall(minCapacity int) *apperr.Error {
//	    return KindCapacityTooSmall.New(
//	        apperr.Detailf("capacity below minimum %d", minCapacity),
//	        apperr.Limit("min", minCapacity),
//	    )
//	}
//
// The Shape of a Kind carries the classification (category, HTTP status,
// severity, retryable). Conditions that mean the same thing in different
// domains share a Shape, so "not found" or "rate limited" is classified the
// same way everywhere.
//
// Errors are immutable and constructing one has no side effects. Logging is
// done explicitly with pkg/logger, and the client-facing body is produced by
// pkg/envelope.
//
// Catch sites use the standard library:
//
//	if errors.Is(err, group.KindCapacityTooSmall) { ... } // one condition
//	if errors.Is(err, group.ErrValidation) { ... }        // all group validation errors
//	if errors.Is(err, apperr.ErrSecurity) { ... }         // security errors of any domain
package apperr
