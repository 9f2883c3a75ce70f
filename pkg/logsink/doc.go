// Package logsink provides logger.Sink implementations for the aggregation
// and security paths of the logger: Kafka topics, Redis streams and
// rotating JSON-lines files.
//
// Example usage:
//
//	manager, err := kafka.NewManager(cfg.Kafka)
//	if err != nil {
//	    return err
//	}
//	l := logger.New(logCfg,
//	    logger.WithAggregationSink(logsink.NewKafka(manager, cfg.Kafka.Topic)),
//	    logger.WithSecuritySink(logsink.NewRedisStream(rdb, "security:events", 10000)),
//	)
//	defer l.Close(ctx)
package logsink
