package bootstrap

import (
	"github.com/Goden-Gun/apperr-lib/pkg/config"
	"github.com/Goden-Gun/apperr-lib/pkg/kafka"
)

// KafkaConfig 把配置文件中的 Kafka 配置转换为 kafka.Config
func KafkaConfig(cfg config.KafkaConfig) kafka.Config {
	return kafka.Config{
		Brokers:       cfg.Brokers,
		Topic:         cfg.Topic,
		SecurityTopic: cfg.SecurityTopic,
		ClientID:      cfg.ClientID,
		Username:      cfg.Username,
		Password:      cfg.Password,
		SASLMechanism: cfg.SASLMechanism,
		TLSEnabled:    cfg.TLSEnabled,
		RequiredAcks:  cfg.RequiredAcks,
		MaxAttempts:   cfg.MaxAttempts,
	}
}

// InitKafka 初始化共享 Kafka producer，未启用时返回 nil
func InitKafka(cfg config.KafkaConfig) (*kafka.Manager, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return kafka.NewManager(KafkaConfig(cfg))
}
