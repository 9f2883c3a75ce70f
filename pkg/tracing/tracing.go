package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/Goden-Gun/apperr-lib/pkg/apperr"
)

const traceMetadataKey = "x-trace-id"

// Attribute keys set by RecordError.
const (
	AttrErrorCode      = attribute.Key("error.code")
	AttrErrorDomain    = attribute.Key("error.domain")
	AttrErrorCategory  = attribute.Key("error.category")
	AttrErrorSeverity  = attribute.Key("error.severity")
	AttrErrorRetryable = attribute.Key("error.retryable")
)

var propagator = propagation.TraceContext{}

// metadataCarrier adapts gRPC metadata, whose keys are lower case, to
// propagation.TextMapCarrier.
type metadataCarrier metadata.MD

func (c metadataCarrier) Get(key string) string {
	if v := metadata.MD(c).Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c metadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// InjectMetadata injects tracing context into gRPC metadata.
func InjectMetadata(ctx context.Context, md metadata.MD) metadata.MD {
	if md == nil {
		md = metadata.New(nil)
	}
	propagator.Inject(ctx, metadataCarrier(md))
	if span := trace.SpanFromContext(ctx); span.SpanContext().HasTraceID() {
		md.Set(traceMetadataKey, span.SpanContext().TraceID().String())
	}
	return md
}

// ExtractMetadata extracts tracing context from metadata.
func ExtractMetadata(ctx context.Context, md metadata.MD) context.Context {
	if md == nil {
		return ctx
	}
	return propagator.Extract(ctx, metadataCarrier(md))
}

// Tracer returns the named tracer of the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// RecordError records err on the span in ctx. Taxonomy errors carry their
// classification as attributes and mark the span failed only when they are
// system or security errors.
func RecordError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	e, ok := apperr.From(err)
	if !ok {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return
	}
	attrs := []attribute.KeyValue{
		AttrErrorCode.String(e.Code()),
		AttrErrorDomain.String(string(e.Domain())),
		AttrErrorCategory.String(string(e.Category())),
		AttrErrorSeverity.String(string(e.Severity())),
		AttrErrorRetryable.Bool(e.Retryable()),
	}
	span.SetAttributes(attrs...)
	span.RecordError(err, trace.WithAttributes(attrs...))
	switch e.Category() {
	case apperr.CategorySystem, apperr.CategorySecurity:
		span.SetStatus(otelcodes.Error, e.Code())
	}
}

// UnaryServerInterceptor continues the caller's trace from incoming
// metadata, runs the handler in a server span and records its error.
func UnaryServerInterceptor(tracerName string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			ctx = ExtractMetadata(ctx, md)
		}
		ctx, span := Tracer(tracerName).Start(ctx, info.FullMethod, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		resp, err := handler(ctx, req)
		RecordError(ctx, err)
		return resp, err
	}
}

// Middleware runs every request in a server span named after its method
// and path.
func Middleware(tracerName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path, trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
