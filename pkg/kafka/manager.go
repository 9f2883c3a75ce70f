package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/xdg-go/scram"
	"go.opentelemetry.io/otel"
)

// Config defines the Kafka connection used to ship log entries.
type Config struct {
	Brokers       []string `yaml:"brokers" mapstructure:"brokers"`
	Topic         string   `yaml:"topic" mapstructure:"topic"`
	SecurityTopic string   `yaml:"security_topic" mapstructure:"security_topic"`
	ClientID      string   `yaml:"client_id" mapstructure:"client_id"`
	Username      string   `yaml:"username" mapstructure:"username"`
	Password      string   `yaml:"password" mapstructure:"password"`
	SASLMechanism string   `yaml:"sasl_mechanism" mapstructure:"sasl_mechanism"`
	TLSEnabled    bool     `yaml:"tls_enabled" mapstructure:"tls_enabled"`

	// RequiredAcks supports: "none" | "one" | "all" (default: all).
	RequiredAcks string `yaml:"required_acks" mapstructure:"required_acks"`
	// MaxAttempts controls producer retry max attempts (default: 3).
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

var (
	ErrNilManager = errors.New("kafka manager nil")
	ErrNoTopic    = errors.New("kafka topic empty")
)

// PublishObserver is an optional hook to observe publish latency and errors.
type PublishObserver interface {
	ObservePublish(topic string, duration time.Duration, err error)
}

// Message is one record handed to the producer. Headers are written in key
// order after the trace context headers.
type Message struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Manager owns a shared sync producer.
type Manager struct {
	cfg      Config
	producer sarama.SyncProducer

	observerMu      sync.RWMutex
	publishObserver PublishObserver

	closeOnce sync.Once
}

// headersCarrier implements propagation.TextMapCarrier for Kafka headers.
type headersCarrier []sarama.RecordHeader

func (c *headersCarrier) Get(key string) string {
	for _, h := range *c {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headersCarrier) Set(key, value string) {
	*c = append(*c, sarama.RecordHeader{
		Key:   []byte(key),
		Value: []byte(value),
	})
}

func (c *headersCarrier) Keys() []string {
	keys := make([]string, 0, len(*c))
	for _, h := range *c {
		keys = append(keys, string(h.Key))
	}
	return keys
}

// SaramaConfig translates cfg into a producer configuration.
func SaramaConfig(cfg Config) *sarama.Config {
	base := sarama.NewConfig()
	base.Version = sarama.V2_1_0_0
	if cfg.ClientID != "" {
		base.ClientID = cfg.ClientID
	}

	base.Producer.Return.Successes = true
	base.Producer.Retry.Max = max(cfg.MaxAttempts, 3)
	base.Producer.RequiredAcks = parseRequiredAcks(cfg.RequiredAcks)

	if cfg.TLSEnabled {
		base.Net.TLS.Enable = true
		base.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	if cfg.Username != "" {
		base.Net.SASL.Enable = true
		base.Net.SASL.User = cfg.Username
		base.Net.SASL.Password = cfg.Password
		switch strings.ToUpper(strings.TrimSpace(cfg.SASLMechanism)) {
		case "SCRAM-SHA-512":
			base.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
			base.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return newSCRAMClient(scram.SHA512)
			}
		case "SCRAM-SHA-256":
			base.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
			base.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return newSCRAMClient(scram.SHA256)
			}
		default:
			base.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		}
	}
	return base
}

// NewManager connects a sync producer to cfg.Brokers.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers empty")
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, SaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return NewManagerWithProducer(cfg, producer), nil
}

// NewManagerWithProducer wraps an existing producer.
func NewManagerWithProducer(cfg Config, producer sarama.SyncProducer) *Manager {
	return &Manager{cfg: cfg, producer: producer}
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() Config { return m.cfg }

// SetPublishObserver installs or replaces the publish observer.
func (m *Manager) SetPublishObserver(observer PublishObserver) {
	if m == nil {
		return
	}
	m.observerMu.Lock()
	m.publishObserver = observer
	m.observerMu.Unlock()
}

func (m *Manager) publishObserverSnapshot() PublishObserver {
	m.observerMu.RLock()
	defer m.observerMu.RUnlock()
	return m.publishObserver
}

// Publish sends value to topic (falls back to cfg.Topic).
func (m *Manager) Publish(ctx context.Context, topic string, key, value []byte) error {
	return m.Send(ctx, Message{Topic: topic, Key: key, Value: value})
}

// Send publishes msg, injecting the trace context of ctx into its headers.
func (m *Manager) Send(ctx context.Context, msg Message) (err error) {
	if m == nil {
		return ErrNilManager
	}
	topic := msg.Topic
	if topic == "" {
		topic = m.cfg.Topic
	}
	start := time.Now()
	defer func() {
		if observer := m.publishObserverSnapshot(); observer != nil {
			observer.ObservePublish(topic, time.Since(start), err)
		}
	}()
	if topic == "" {
		return ErrNoTopic
	}

	var headers headersCarrier
	otel.GetTextMapPropagator().Inject(ctx, &headers)
	keys := make([]string, 0, len(msg.Headers))
	for k := range msg.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		headers.Set(k, msg.Headers[k])
	}

	pm := &sarama.ProducerMessage{Topic: topic, Headers: headers}
	if len(msg.Key) > 0 {
		pm.Key = sarama.ByteEncoder(msg.Key)
	}
	if len(msg.Value) > 0 {
		pm.Value = sarama.ByteEncoder(msg.Value)
	}

	if err = ctx.Err(); err != nil {
		return err
	}
	_, _, err = m.producer.SendMessage(pm)
	return err
}

// Close shuts down the producer.
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}
	var err error
	m.closeOnce.Do(func() {
		if m.producer != nil {
			err = m.producer.Close()
		}
	})
	return err
}

func parseRequiredAcks(v string) sarama.RequiredAcks {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "none":
		return sarama.NoResponse
	case "one":
		return sarama.WaitForLocal
	default:
		return sarama.WaitForAll
	}
}

type scramClient struct {
	*scram.Client
	*scram.ClientConversation
	hash scram.HashGeneratorFcn
}

func newSCRAMClient(hash scram.HashGeneratorFcn) sarama.SCRAMClient {
	return &scramClient{hash: hash}
}

func (c *scramClient) Begin(userName, password, authzID string) error {
	client, err := c.hash.NewClient(userName, password, authzID)
	if err != nil {
		return err
	}
	c.Client = client
	c.ClientConversation = client.NewConversation()
	return nil
}

func (c *scramClient) Step(challenge string) (string, error) {
	return c.ClientConversation.Step(challenge)
}

func (c *scramClient) Done() bool {
	return c.ClientConversation.Done()
}
