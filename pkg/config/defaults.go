package config

// ApplyDefaults 应用全部默认值
func (c *Config) ApplyDefaults() {
	if c.App.Env == "" {
		c.App.Env = GetEnv()
	}
	if c.App.Addr == "" {
		c.App.Addr = ":8080"
	}
	if c.App.NodeID == "" {
		c.App.NodeID = GetNodeID("NODE_ID", "POD_NAME")
	}
	c.Log.ApplyDefaults()
	c.Kafka.ApplyDefaults()
	c.JWT.ApplyDefaults()
	c.Metrics.ApplyDefaults()
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = c.App.Name
	}
	c.Tracing.ApplyDefaults()
}

// ==================== LogConfig 默认值 ====================

// ApplyDefaults 应用日志配置默认值，级别和格式由 logger 按环境决定
func (l *LogConfig) ApplyDefaults() {
	if l.File.Dir == "" {
		l.File.Dir = "./logs"
	}
	if l.File.MaxAgeDays <= 0 {
		l.File.MaxAgeDays = 7
	}
	if l.File.RotationDays <= 0 {
		l.File.RotationDays = 1
	}
	if l.Sink.Security == "" {
		l.Sink.Security = "redis"
	}
	if l.Sink.SecurityStream == "" {
		l.Sink.SecurityStream = "security:events"
	}
	if l.Sink.SecurityMaxLen <= 0 {
		l.Sink.SecurityMaxLen = 100000
	}
}

// ==================== KafkaConfig 默认值 ====================

// ApplyDefaults 应用 Kafka 配置默认值
func (k *KafkaConfig) ApplyDefaults() {
	if k.Topic == "" {
		k.Topic = "app-logs"
	}
	if k.SecurityTopic == "" {
		k.SecurityTopic = "security-events"
	}
	if k.RequiredAcks == "" {
		k.RequiredAcks = "all"
	}
	if k.MaxAttempts <= 0 {
		k.MaxAttempts = 3
	}
}

// ==================== JWTConfig 默认值 ====================

// ApplyDefaults 应用 JWT 配置默认值
func (j *JWTConfig) ApplyDefaults() {
	if j.Algorithm == "" {
		j.Algorithm = "HS256"
	}
	if j.AccessTokenTTL <= 0 {
		j.AccessTokenTTL = 30 * 60
	}
	if j.ClockSkew < 0 {
		j.ClockSkew = 0
	}
}

// ==================== MetricsConfig 默认值 ====================

// ApplyDefaults 应用 Metrics 配置默认值
func (m *MetricsConfig) ApplyDefaults() {
	if m.Path == "" {
		m.Path = "/metrics"
	}
}

// ==================== TracingConfig 默认值 ====================

// ApplyDefaults 应用 Tracing 配置默认值
func (t *TracingConfig) ApplyDefaults() {
	if t.Exporter == "" {
		t.Exporter = "disabled"
	}
	if t.SampleRatio <= 0 {
		t.SampleRatio = 1.0
	}
}
