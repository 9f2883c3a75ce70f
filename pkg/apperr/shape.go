package apperr

import "net/http"

// Shape is one row of the classification policy. Every Kind references a
// Shape; the Shape alone decides category, status, severity and retry
// semantics.
type Shape struct {
	Name       string
	Category   Category
	HTTPStatus int
	Severity   Severity
	Retryable  bool
	// Transient marks a critical shape whose condition may clear on retry.
	Transient bool
}

var (
	// Validation: malformed or out-of-range input.
	ShapeInvalidInput = Shape{Name: "invalid_input", Category: CategoryValidation, HTTPStatus: http.StatusBadRequest, Severity: SeverityLow}
	ShapeStrictInput  = Shape{Name: "strict_input", Category: CategoryValidation, HTTPStatus: http.StatusBadRequest, Severity: SeverityMedium}

	// Permission.
	ShapeUnauthenticated = Shape{Name: "unauthenticated", Category: CategoryPermission, HTTPStatus: http.StatusUnauthorized, Severity: SeverityHigh}
	ShapeForbidden       = Shape{Name: "forbidden", Category: CategoryPermission, HTTPStatus: http.StatusForbidden, Severity: SeverityHigh}
	ShapePrivileged      = Shape{Name: "privileged", Category: CategoryPermission, HTTPStatus: http.StatusForbidden, Severity: SeverityCritical}

	// Business: state conflicts, missing entities, limits.
	ShapeNotFound      = Shape{Name: "not_found", Category: CategoryBusiness, HTTPStatus: http.StatusNotFound, Severity: SeverityLow}
	ShapeConflict      = Shape{Name: "conflict", Category: CategoryBusiness, HTTPStatus: http.StatusConflict, Severity: SeverityLow}
	ShapeStateConflict = Shape{Name: "state_conflict", Category: CategoryBusiness, HTTPStatus: http.StatusConflict, Severity: SeverityMedium}
	ShapePrecondition  = Shape{Name: "precondition", Category: CategoryBusiness, HTTPStatus: http.StatusBadRequest, Severity: SeverityMedium}
	ShapeRateLimited   = Shape{Name: "rate_limited", Category: CategoryBusiness, HTTPStatus: http.StatusTooManyRequests, Severity: SeverityLow, Retryable: true}
	ShapeQuotaExceeded = Shape{Name: "quota_exceeded", Category: CategoryBusiness, HTTPStatus: http.StatusConflict, Severity: SeverityLow}

	// System.
	ShapeDatabase    = Shape{Name: "database", Category: CategorySystem, HTTPStatus: http.StatusInternalServerError, Severity: SeverityHigh, Retryable: true}
	ShapeUnavailable = Shape{Name: "unavailable", Category: CategorySystem, HTTPStatus: http.StatusServiceUnavailable, Severity: SeverityLow, Retryable: true}
	ShapeUpstream    = Shape{Name: "upstream", Category: CategorySystem, HTTPStatus: http.StatusBadGateway, Severity: SeverityLow, Retryable: true}
	ShapeTimeout     = Shape{Name: "timeout", Category: CategorySystem, HTTPStatus: http.StatusServiceUnavailable, Severity: SeverityLow, Retryable: true}
	ShapeInternal    = Shape{Name: "internal", Category: CategorySystem, HTTPStatus: http.StatusInternalServerError, Severity: SeverityHigh}
	ShapeCorruption  = Shape{Name: "corruption", Category: CategorySystem, HTTPStatus: http.StatusInternalServerError, Severity: SeverityCritical}

	// Security: always escalated by the logger.
	ShapeInjection  = Shape{Name: "injection", Category: CategorySecurity, HTTPStatus: http.StatusBadRequest, Severity: SeverityCritical}
	ShapeAuthBypass = Shape{Name: "auth_bypass", Category: CategorySecurity, HTTPStatus: http.StatusForbidden, Severity: SeverityCritical}
	ShapeSuspicious = Shape{Name: "suspicious", Category: CategorySecurity, HTTPStatus: http.StatusBadRequest, Severity: SeverityHigh}
)

// Shapes is the full policy table, used by tooling and tests.
var Shapes = []Shape{
	ShapeInvalidInput,
	ShapeStrictInput,
	ShapeUnauthenticated,
	ShapeForbidden,
	ShapePrivileged,
	ShapeNotFound,
	ShapeConflict,
	ShapeStateConflict,
	ShapePrecondition,
	ShapeRateLimited,
	ShapeQuotaExceeded,
	ShapeDatabase,
	ShapeUnavailable,
	ShapeUpstream,
	ShapeTimeout,
	ShapeInternal,
	ShapeCorruption,
	ShapeInjection,
	ShapeAuthBypass,
	ShapeSuspicious,
}
