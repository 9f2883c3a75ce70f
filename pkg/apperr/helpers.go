package apperr

import "errors"

// From finds the outermost *Error in err's chain.
func From(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetCode returns the code of the outermost *Error, or "" if there is none.
func GetCode(err error) string {
	if e, ok := From(err); ok {
		return e.Code()
	}
	return ""
}

// CategoryOf returns the category of err. Errors outside the taxonomy are
// treated as system errors.
func CategoryOf(err error) Category {
	if e, ok := From(err); ok {
		return e.Category()
	}
	return CategorySystem
}

// IsRetryable reports whether an identical retry might succeed. Errors
// outside the taxonomy are not retryable.
func IsRetryable(err error) bool {
	if e, ok := From(err); ok {
		return e.Retryable()
	}
	return false
}

// Wrap builds an Error of kind with err as its cause. It returns nil when
// err is nil.
func Wrap(err error, k *Kind, opts ...Option) *Error {
	if err == nil {
		return nil
	}
	return k.New(append([]Option{Detail(err.Error()), Cause(err)}, opts...)...)
}
