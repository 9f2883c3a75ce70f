package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// CheckPolicy reports every way k deviates from the classification policy.
// It returns nil for a well-classified kind.
func CheckPolicy(k *Kind) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: "+format, append([]any{k.Code}, args...)...))
	}

	s := k.Shape
	switch s.Category {
	case CategoryValidation:
		if s.HTTPStatus != http.StatusBadRequest {
			fail("validation must map to 400, got %d", s.HTTPStatus)
		}
		if s.Severity != SeverityLow && s.Severity != SeverityMedium {
			fail("validation severity must be low or medium, got %s", s.Severity)
		}
		if s.Retryable {
			fail("validation must not be retryable")
		}
	case CategoryPermission:
		if s.HTTPStatus != http.StatusUnauthorized && s.HTTPStatus != http.StatusForbidden {
			fail("permission must map to 401 or 403, got %d", s.HTTPStatus)
		}
		if !s.Severity.AtLeast(SeverityHigh) {
			fail("permission severity must be high or critical, got %s", s.Severity)
		}
		if s.Retryable {
			fail("permission must not be retryable")
		}
	case CategoryBusiness:
		switch s.HTTPStatus {
		case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusTooManyRequests:
		default:
			fail("business must map to 400/404/409/429, got %d", s.HTTPStatus)
		}
		if s.Severity == SeverityCritical {
			fail("business severity must not be critical")
		}
		if s.Retryable != (s.HTTPStatus == http.StatusTooManyRequests) {
			fail("business is retryable only when rate limited (429)")
		}
	case CategorySystem:
		switch s.HTTPStatus {
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		default:
			fail("system must map to 500/502/503, got %d", s.HTTPStatus)
		}
	case CategorySecurity:
		if !s.Severity.AtLeast(SeverityHigh) {
			fail("security severity must be high or critical, got %s", s.Severity)
		}
		if s.HTTPStatus != http.StatusBadRequest && s.HTTPStatus != http.StatusForbidden {
			fail("security must map to 400 or 403, got %d", s.HTTPStatus)
		}
		if s.Retryable {
			fail("security must not be retryable")
		}
	default:
		fail("unknown category %q", s.Category)
	}

	if s.Severity.Rank() == 0 {
		fail("unknown severity %q", s.Severity)
	}
	if s.Severity == SeverityCritical && s.Retryable && !s.Transient {
		fail("critical errors are retryable only when marked transient")
	}
	if s.Transient && !s.Retryable {
		fail("transient shape must be retryable")
	}
	if !strings.HasPrefix(k.Code, string(k.Domain)+"-") {
		fail("code does not carry the %s prefix", k.Domain)
	}
	if cat, ok := subNamespaceOf(k); ok && cat != s.Category {
		fail("code namespace implies %s, kind is %s", cat, s.Category)
	}
	if strings.TrimSpace(k.UserMessage) == "" {
		fail("empty user message")
	}

	return errors.Join(errs...)
}

// CheckAll runs CheckPolicy over every registered kind and also verifies
// that shapes with the same name classify identically.
func CheckAll() error {
	var errs []error
	byShape := make(map[string]Shape)
	for _, k := range Kinds() {
		if err := CheckPolicy(k); err != nil {
			errs = append(errs, err)
		}
		if prev, ok := byShape[k.Shape.Name]; ok && prev != k.Shape {
			errs = append(errs, fmt.Errorf("%s: shape %q classified differently across kinds", k.Code, k.Shape.Name))
		}
		byShape[k.Shape.Name] = k.Shape
	}
	return errors.Join(errs...)
}
