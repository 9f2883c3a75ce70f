package config

// Config 错误体系相关进程的完整配置
type Config struct {
	App     AppConfig     `yaml:"app" mapstructure:"app"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka" mapstructure:"kafka"`
	JWT     JWTConfig     `yaml:"jwt" mapstructure:"jwt"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// ==================== 基础配置 ====================

// AppConfig 应用基础配置
type AppConfig struct {
	Name   string `yaml:"name" mapstructure:"name"`
	Env    string `yaml:"env" mapstructure:"env"`
	Addr   string `yaml:"addr" mapstructure:"addr"`
	NodeID string `yaml:"node_id" mapstructure:"node_id"`
}

// LogConfig 日志配置
type LogConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Level  string `yaml:"level" mapstructure:"level"`

	// SinkEnabled 是否转发到日志聚合 sink，安全日志不受此开关影响
	SinkEnabled    bool     `yaml:"sink_enabled" mapstructure:"sink_enabled"`
	QueueSize      int      `yaml:"queue_size" mapstructure:"queue_size"`
	Workers        int      `yaml:"workers" mapstructure:"workers"`
	MaxAttempts    int      `yaml:"max_attempts" mapstructure:"max_attempts"`
	ForwardTimeout Duration `yaml:"forward_timeout" mapstructure:"forward_timeout"`

	File LogFileConfig `yaml:"file" mapstructure:"file"`
	Sink LogSinkConfig `yaml:"sink" mapstructure:"sink"`
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled      bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Filename     string `yaml:"filename" mapstructure:"filename"`
	MaxAgeDays   int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	RotationDays int    `yaml:"rotation_days" mapstructure:"rotation_days"`
}

// LogSinkConfig 日志转发目标
//
// Aggregation: "kafka" | "file" | ""(不转发)
// Security:    "redis" | "kafka" | "file"
type LogSinkConfig struct {
	Aggregation     string `yaml:"aggregation" mapstructure:"aggregation"`
	Security        string `yaml:"security" mapstructure:"security"`
	SecurityStream  string `yaml:"security_stream" mapstructure:"security_stream"`
	SecurityMaxLen  int64  `yaml:"security_max_len" mapstructure:"security_max_len"`
	SecurityLogFile string `yaml:"security_log_file" mapstructure:"security_log_file"`
}

// ==================== 基础设施配置 ====================

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Db       int    `yaml:"db" mapstructure:"db"`
}

// KafkaConfig Kafka 配置
type KafkaConfig struct {
	Enabled       bool     `yaml:"enabled" mapstructure:"enabled"`
	Brokers       []string `yaml:"brokers" mapstructure:"brokers"`
	Topic         string   `yaml:"topic" mapstructure:"topic"`
	SecurityTopic string   `yaml:"security_topic" mapstructure:"security_topic"`
	ClientID      string   `yaml:"client_id" mapstructure:"client_id"`
	Username      string   `yaml:"username" mapstructure:"username"`
	Password      string   `yaml:"password" mapstructure:"password"`
	SASLMechanism string   `yaml:"sasl_mechanism" mapstructure:"sasl_mechanism"`
	TLSEnabled    bool     `yaml:"tls_enabled" mapstructure:"tls_enabled"`
	RequiredAcks  string   `yaml:"required_acks" mapstructure:"required_acks"`
	MaxAttempts   int      `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// ==================== 认证配置 ====================

// JWTConfig JWT 认证配置
type JWTConfig struct {
	SecretKey       string   `yaml:"secret_key" mapstructure:"secret_key"`
	Algorithm       string   `yaml:"algorithm" mapstructure:"algorithm"`
	Issuer          string   `yaml:"issuer" mapstructure:"issuer"`
	AccessTokenTTL  Duration `yaml:"access_token_ttl" mapstructure:"access_token_ttl"`
	ClockSkew       Duration `yaml:"clock_skew" mapstructure:"clock_skew"`
	BlocklistPrefix string   `yaml:"blocklist_prefix" mapstructure:"blocklist_prefix"`
	VersionPrefix   string   `yaml:"version_prefix" mapstructure:"version_prefix"`
}

// ==================== 可观测性配置 ====================

// TracingConfig 分布式追踪配置
type TracingConfig struct {
	Exporter     string            `yaml:"exporter" mapstructure:"exporter"`
	Endpoint     string            `yaml:"endpoint" mapstructure:"endpoint"`
	ServiceName  string            `yaml:"service_name" mapstructure:"service_name"`
	Insecure     bool              `yaml:"insecure" mapstructure:"insecure"`
	Headers      map[string]string `yaml:"headers" mapstructure:"headers"`
	SampleRatio  float64           `yaml:"sample_ratio" mapstructure:"sample_ratio"`
	ResourceTags map[string]string `yaml:"resource_tags" mapstructure:"resource_tags"`
}

// MetricsConfig 指标暴露配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}
