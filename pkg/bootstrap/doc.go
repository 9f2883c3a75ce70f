// Package bootstrap wires configuration into a running logging pipeline.
//
// This package consolidates the initialization every service repeats:
//   - Logger setup with file rotation, aggregation and security sinks
//   - Redis and Kafka clients for those sinks
//   - Prometheus metrics and OpenTelemetry tracing
//
// Example usage:
//
//	func main() {
//	    ctx := context.Background()
//	    cfg, err := config.Load()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    rt, err := bootstrap.Init(ctx, cfg, "chat-service", bootstrap.LoggerOptions{AddHostHook: true})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer rt.Close(ctx)
//
//	    chatEvents := chat.Events(rt.Logging.Logger)
//	}
package bootstrap
