package envelope

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

// CodeTrailer carries the taxonomy code in the gRPC trailer.
const CodeTrailer = "x-error-code"

const userLocale = "ko-KR"

var shapeCodes = map[string]codes.Code{
	apperr.ShapeInvalidInput.Name:    codes.InvalidArgument,
	apperr.ShapeStrictInput.Name:     codes.InvalidArgument,
	apperr.ShapeUnauthenticated.Name: codes.Unauthenticated,
	apperr.ShapeForbidden.Name:       codes.PermissionDenied,
	apperr.ShapePrivileged.Name:      codes.PermissionDenied,
	apperr.ShapeNotFound.Name:        codes.NotFound,
	apperr.ShapeConflict.Name:        codes.AlreadyExists,
	apperr.ShapeStateConflict.Name:   codes.FailedPrecondition,
	apperr.ShapePrecondition.Name:    codes.FailedPrecondition,
	apperr.ShapeRateLimited.Name:     codes.ResourceExhausted,
	apperr.ShapeQuotaExceeded.Name:   codes.ResourceExhausted,
	apperr.ShapeDatabase.Name:        codes.Internal,
	apperr.ShapeUnavailable.Name:     codes.Unavailable,
	apperr.ShapeUpstream.Name:        codes.Unavailable,
	apperr.ShapeTimeout.Name:         codes.DeadlineExceeded,
	apperr.ShapeInternal.Name:        codes.Internal,
	apperr.ShapeCorruption.Name:      codes.DataLoss,
	apperr.ShapeInjection.Name:       codes.InvalidArgument,
	apperr.ShapeAuthBypass.Name:      codes.PermissionDenied,
	apperr.ShapeSuspicious.Name:      codes.InvalidArgument,
}

// GRPCCode maps a policy shape to a gRPC code.
func GRPCCode(s apperr.Shape) codes.Code {
	if c, ok := shapeCodes[s.Name]; ok {
		return c
	}
	return codes.Unknown
}

// GRPCStatus converts err into a status whose message is the user message
// and whose details carry ErrorInfo (reason = code), a localized message
// and, when known, RetryInfo.
func GRPCStatus(err error) *status.Status {
	e, ok := apperr.From(err)
	if !ok {
		st := status.New(codes.Internal, internalMessage)
		if withInfo, dErr := st.WithDetails(&errdetails.ErrorInfo{Reason: InternalCode}); dErr == nil {
			return withInfo
		}
		return st
	}

	st := status.New(GRPCCode(e.Kind().Shape), e.UserMessage())
	info := &errdetails.ErrorInfo{
		Reason: e.Code(),
		Domain: string(e.Domain()),
		Metadata: map[string]string{
			"category":  string(e.Category()),
			"severity":  string(e.Severity()),
			"retryable": strconv.FormatBool(e.Retryable()),
			"timestamp": e.Timestamp().Format(time.RFC3339Nano),
		},
	}
	withInfo, dErr := st.WithDetails(info, &errdetails.LocalizedMessage{Locale: userLocale, Message: e.UserMessage()})
	if dErr != nil {
		return st
	}
	if secs, ok := RetryAfter(e); ok {
		if withRetry, rErr := withInfo.WithDetails(&errdetails.RetryInfo{RetryDelay: durationpb.New(time.Duration(secs) * time.Second)}); rErr == nil {
			return withRetry
		}
	}
	return withInfo
}

// CodeFromStatus returns the taxonomy code carried by st, if any.
func CodeFromStatus(st *status.Status) (string, bool) {
	if st == nil {
		return "", false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetReason() != "" {
			return info.GetReason(), true
		}
	}
	return "", false
}

// UnaryServerInterceptor converts handler errors into taxonomy statuses
// and logs them through l when it is non-nil. Errors that already are
// gRPC statuses pass through unchanged.
func UnaryServerInterceptor(l *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		e, taxonomy := apperr.From(err)
		if !taxonomy {
			if _, isStatus := status.FromError(err); isStatus {
				return resp, err
			}
		}
		code := InternalCode
		if taxonomy {
			code = e.Code()
		}
		if l != nil {
			if taxonomy {
				l.LogError(ctx, e)
			} else {
				l.Error(ctx, "unclassified handler error", logger.Fields{"method": info.FullMethod, "error": err.Error()})
			}
		}
		_ = grpc.SetTrailer(ctx, metadata.Pairs(CodeTrailer, code))
		return resp, GRPCStatus(err).Err()
	}
}
