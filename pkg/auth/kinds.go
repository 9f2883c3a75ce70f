package auth

import "github.com/Goden-Gun/apperr-lib/pkg/apperr"

var catalog = apperr.NewCatalog(apperr.DomainAuth, "AUTH")

const msgLoginAgain = "로그인이 만료되었습니다. 다시 로그인해주세요."

var (
	KindTokenMissing          = catalog.Define("AUTH-001", "token_missing", apperr.ShapeUnauthenticated, "로그인이 필요합니다.")
	KindTokenMalformed        = catalog.Define("AUTH-002", "token_malformed", apperr.ShapeUnauthenticated, msgLoginAgain)
	KindTokenExpired          = catalog.Define("AUTH-003", "token_expired", apperr.ShapeUnauthenticated, msgLoginAgain)
	KindTokenNotYetValid      = catalog.Define("AUTH-004", "token_not_yet_valid", apperr.ShapeUnauthenticated, msgLoginAgain)
	KindTokenSignatureInvalid = catalog.Define("AUTH-005", "token_signature_invalid", apperr.ShapeAuthBypass, "인증 정보가 올바르지 않습니다.")
	KindTokenRevoked          = catalog.Define("AUTH-006", "token_revoked", apperr.ShapeUnauthenticated, msgLoginAgain)
	KindAlgorithmNotAllowed   = catalog.Define("AUTH-007", "algorithm_not_allowed", apperr.ShapeAuthBypass, "인증 정보가 올바르지 않습니다.")
	KindInsufficientScope     = catalog.Define("AUTH-008", "insufficient_scope", apperr.ShapeForbidden, "이 작업을 수행할 권한이 없습니다.")
	KindStoreUnavailable      = catalog.Define("AUTH-009", "store_unavailable", apperr.ShapeUnavailable, "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
	KindLoginRateLimited      = catalog.Define("AUTH-010", "login_rate_limited", apperr.ShapeRateLimited, "로그인 시도가 너무 많습니다. 잠시 후 다시 시도해주세요.")
	KindSubjectMissing        = catalog.Define("AUTH-011", "subject_missing", apperr.ShapeUnauthenticated, msgLoginAgain)
	KindSessionSuperseded     = catalog.Define("AUTH-012", "session_superseded", apperr.ShapeUnauthenticated, "다른 기기에서 로그인되어 로그아웃되었습니다.")
	KindSigningFailed         = catalog.Define("AUTH-013", "signing_failed", apperr.ShapeInternal, "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
)

// Catalog returns the auth catalog.
func Catalog() *apperr.Catalog { return catalog }

func TokenMissing() *apperr.Error {
	return KindTokenMissing.New(apperr.Detail("no bearer token on request"))
}

func TokenMalformed(err error) *apperr.Error {
	return KindTokenMalformed.New(apperr.Detail("token cannot be parsed"), apperr.Cause(err))
}

func TokenExpired(err error) *apperr.Error {
	return KindTokenExpired.New(apperr.Detail("token expired"), apperr.Cause(err))
}

func TokenNotYetValid(err error) *apperr.Error {
	return KindTokenNotYetValid.New(apperr.Detail("token used before nbf/iat"), apperr.Cause(err))
}

func TokenSignatureInvalid(err error) *apperr.Error {
	return KindTokenSignatureInvalid.New(apperr.Detail("token signature does not verify"), apperr.Cause(err))
}

func TokenRevoked(jti string) *apperr.Error {
	return KindTokenRevoked.New(
		apperr.Detailf("token %s is on the blocklist", jti),
		apperr.Field("jti", jti),
	)
}

func AlgorithmNotAllowed(alg string) *apperr.Error {
	return KindAlgorithmNotAllowed.New(
		apperr.Detailf("signing method %q not accepted", alg),
		apperr.Field("alg", alg),
	)
}

func InsufficientScope(subject, required string) *apperr.Error {
	return KindInsufficientScope.New(
		apperr.Detailf("subject %s lacks scope %s", subject, required),
		apperr.Field("subject", subject),
		apperr.Field("requiredScope", required),
	)
}

func StoreUnavailable(op string, err error) *apperr.Error {
	return KindStoreUnavailable.New(
		apperr.Detailf("token store %s failed", op),
		apperr.Field("operation", op),
		apperr.Cause(err),
	)
}

func LoginRateLimited(account string, retryAfterSeconds int) *apperr.Error {
	return KindLoginRateLimited.New(
		apperr.Detail("too many login attempts"),
		apperr.Field("account", account),
		apperr.Field("retryAfterSeconds", retryAfterSeconds),
	)
}

func SubjectMissing() *apperr.Error {
	return KindSubjectMissing.New(apperr.Detail("token has no subject"))
}

func SessionSuperseded(subject string, tokenVersion, current int64) *apperr.Error {
	return KindSessionSuperseded.New(
		apperr.Detailf("token version %d behind session version %d", tokenVersion, current),
		apperr.Field("subject", subject),
		apperr.Field("tokenVersion", tokenVersion),
		apperr.Field("sessionVersion", current),
	)
}

func SigningFailed(err error) *apperr.Error {
	return KindSigningFailed.New(apperr.Detail("token signing failed"), apperr.Cause(err))
}
