package envelope

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/quick"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

var (
	testCatalog = apperr.NewCatalog(apperr.Domain("ENVTEST"), "ENVTEST")

	kindMissing = testCatalog.Define("ENVTEST-001", "missing", apperr.ShapeNotFound, "찾을 수 없습니다.")
	kindLimited = testCatalog.Define("ENVTEST-002", "limited", apperr.ShapeRateLimited, "잠시 후 다시 시도해주세요.")
	kindDB      = testCatalog.Define("ENVTEST-003", "db", apperr.ShapeDatabase, "일시적인 오류가 발생했습니다.")
)

func TestNew_TaxonomyError(t *testing.T) {
	err := kindMissing.New(apperr.Detail("row 42 missing in users"), apperr.Field("table", "users"))

	f := New(err)

	assert.False(t, f.Success)
	assert.Equal(t, "ENVTEST-001", f.Error.Code)
	assert.Equal(t, "찾을 수 없습니다.", f.Error.Message)
	assert.False(t, f.Error.Retryable)
	assert.Equal(t, err.Timestamp(), f.Error.Timestamp)
	assert.Equal(t, http.StatusNotFound, Status(err))
}

func TestNew_IsPure(t *testing.T) {
	err := kindDB.New(apperr.Cause(errors.New("deadlock")))
	require.Equal(t, New(err), New(err))

	a, aErr := Marshal(err)
	b, bErr := Marshal(err)
	require.NoError(t, aErr)
	require.NoError(t, bErr)
	require.Equal(t, a, b)
}

func TestMarshal_NeverLeaksDiagnostics(t *testing.T) {
	check := func(detail, value string) bool {
		secret := "secret:" + detail
		err := kindDB.New(
			apperr.Detail(secret),
			apperr.Field("private", "ctx:"+value),
			apperr.Cause(errors.New("cause:"+value)),
		)
		body, mErr := Marshal(err)
		if mErr != nil {
			return false
		}
		s := string(body)
		return !strings.Contains(s, "secret:") && !strings.Contains(s, "ctx:") && !strings.Contains(s, "cause:")
	}
	require.NoError(t, quick.Check(check, nil))
}

func TestNew_ForeignErrorIsInternal(t *testing.T) {
	err := fmt.Errorf("dial tcp 10.0.0.3:5432: connection refused")

	f := New(err)
	body, mErr := Marshal(err)
	require.NoError(t, mErr)

	assert.Equal(t, InternalCode, f.Error.Code)
	assert.False(t, f.Error.Retryable)
	assert.False(t, f.Error.Timestamp.IsZero())
	assert.NotContains(t, string(body), "10.0.0.3")
	assert.Equal(t, http.StatusInternalServerError, Status(err))
}

func TestNew_WrappedTaxonomyError(t *testing.T) {
	inner := kindMissing.New()
	err := fmt.Errorf("load profile: %w", inner)

	assert.Equal(t, "ENVTEST-001", New(err).Error.Code)
	assert.Equal(t, http.StatusNotFound, Status(err))
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		status     int
		retryAfter string
	}{
		{name: "not found", err: kindMissing.New(), status: 404},
		{name: "rate limited", err: kindLimited.New(apperr.Field("retryAfterSeconds", 30)), status: 429, retryAfter: "30"},
		{name: "rate limited without hint", err: kindLimited.New(), status: 429},
		{name: "foreign", err: errors.New("boom"), status: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Write(rec, tt.err)

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.retryAfter, rec.Header().Get("Retry-After"))

			var got Failure
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.False(t, got.Success)
			assert.NotEmpty(t, got.Error.Code)
		})
	}
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		value any
		want  int
		ok    bool
	}{
		{value: 5, want: 5, ok: true},
		{value: int64(7), want: 7, ok: true},
		{value: float64(9), want: 9, ok: true},
		{value: 2 * time.Second, want: 2, ok: true},
		{value: 0, want: 0, ok: false},
		{value: "10", want: 0, ok: false},
	}
	for _, tt := range tests {
		got, ok := RetryAfter(kindLimited.New(apperr.Field("retryAfterSeconds", tt.value)))
		assert.Equal(t, tt.ok, ok, "%v", tt.value)
		assert.Equal(t, tt.want, got, "%v", tt.value)
	}
	_, ok := RetryAfter(errors.New("x"))
	assert.False(t, ok)
}

func TestGRPCCode_CoversEveryShape(t *testing.T) {
	for _, s := range apperr.Shapes {
		assert.NotEqual(t, codes.Unknown, GRPCCode(s), s.Name)
	}
}

func TestGRPCStatus(t *testing.T) {
	err := kindLimited.New(apperr.Detail("bucket empty"), apperr.Field("retryAfterSeconds", 12))

	st := GRPCStatus(err)

	require.Equal(t, codes.ResourceExhausted, st.Code())
	require.Equal(t, "잠시 후 다시 시도해주세요.", st.Message())
	code, ok := CodeFromStatus(st)
	require.True(t, ok)
	require.Equal(t, "ENVTEST-002", code)

	var info *errdetails.ErrorInfo
	var retry *errdetails.RetryInfo
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			info = v
		case *errdetails.RetryInfo:
			retry = v
		}
	}
	require.NotNil(t, info)
	assert.Equal(t, "ENVTEST", info.GetDomain())
	assert.Equal(t, "true", info.GetMetadata()["retryable"])
	require.NotNil(t, retry)
	assert.Equal(t, 12*time.Second, retry.GetRetryDelay().AsDuration())
	assert.NotContains(t, st.Message(), "bucket")
}

func TestGRPCStatus_ForeignError(t *testing.T) {
	st := GRPCStatus(errors.New("secret dsn"))
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "secret")
	code, ok := CodeFromStatus(st)
	assert.True(t, ok)
	assert.Equal(t, InternalCode, code)
}

func TestUnaryServerInterceptor(t *testing.T) {
	var out bytes.Buffer
	l := logger.New(logger.Config{Environment: logger.Production, Output: &out, Fallback: &bytes.Buffer{}})
	interceptor := UnaryServerInterceptor(l)
	info := &grpc.UnaryServerInfo{FullMethod: "/profile.v1.Profile/Get"}

	tests := []struct {
		name    string
		handler grpc.UnaryHandler
		code    codes.Code
	}{
		{
			name:    "ok",
			handler: func(context.Context, any) (any, error) { return "resp", nil },
			code:    codes.OK,
		},
		{
			name:    "taxonomy",
			handler: func(context.Context, any) (any, error) { return nil, kindMissing.New() },
			code:    codes.NotFound,
		},
		{
			name:    "existing status",
			handler: func(context.Context, any) (any, error) { return nil, status.Error(codes.Canceled, "gone") },
			code:    codes.Canceled,
		},
		{
			name:    "foreign",
			handler: func(context.Context, any) (any, error) { return nil, errors.New("nil map") },
			code:    codes.Internal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interceptor(context.Background(), nil, info, tt.handler)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}

	require.NoError(t, l.Close(context.Background()))
	assert.Contains(t, out.String(), "ENVTEST-001")
	assert.Contains(t, out.String(), "unclassified handler error")
}

func TestRecoverer(t *testing.T) {
	var out bytes.Buffer
	l := logger.New(logger.Config{Environment: logger.Production, Output: &out, Fallback: &bytes.Buffer{}})
	h := Recoverer(l)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("index out of range")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/profile", nil))
	require.NoError(t, l.Close(context.Background()))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var got Failure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, InternalCode, got.Error.Code)
	assert.NotContains(t, rec.Body.String(), "index out of range")
	assert.Contains(t, out.String(), "handler panic")
}
