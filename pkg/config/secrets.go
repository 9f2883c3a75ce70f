package config

import (
	"os"
	"strings"
)

// GetSecretOrEnv 从 Docker Secret 文件或环境变量读取敏感信息
// 优先级: {NAME}_FILE 指定的文件 > {NAME} 环境变量 > 默认值
//
// 示例:
//
//	secret := GetSecretOrEnv("JWT_SECRET", "")
//	// 如果 JWT_SECRET_FILE=/run/secrets/jwt-secret 存在，读取文件内容
//	// 否则读取 JWT_SECRET 环境变量
func GetSecretOrEnv(name string, defaultValue string) string {
	if filePath := os.Getenv(name + "_FILE"); filePath != "" {
		if data, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

// SecretDefinition Secret 定义
type SecretDefinition struct {
	Name     string  // Secret 名称 (如 JWT_SECRET)
	Target   *string // 目标字段指针
	Required bool    // 是否必需
}

// Secrets 返回 Config 中的敏感字段，配置文件中的值作为默认值
func (c *Config) Secrets() []SecretDefinition {
	return []SecretDefinition{
		{Name: "JWT_SECRET", Target: &c.JWT.SecretKey},
		{Name: "REDIS_PASSWORD", Target: &c.Redis.Password},
		{Name: "KAFKA_PASSWORD", Target: &c.Kafka.Password},
	}
}

// LoadConfigWithSecrets 加载配置并注入 Secrets
// 找不到 Secret 时保留配置文件中的值
//
// 示例:
//
//	cfg := &Config{}
//	if err := LoadConfigWithSecrets(cfg, cfg.Secrets()); err != nil {
//	    log.Fatal(err)
//	}
func LoadConfigWithSecrets(cfg any, secrets []SecretDefinition, opts ...LoadOptions) error {
	// 先加载 YAML 配置
	if err := LoadConfig(cfg, opts...); err != nil {
		return err
	}

	// 然后注入 Secrets
	for _, s := range secrets {
		if s.Target == nil {
			continue
		}
		*s.Target = GetSecretOrEnv(s.Name, *s.Target)
		if s.Required && *s.Target == "" {
			return &SecretNotFoundError{Name: s.Name}
		}
	}

	return nil
}

// SecretNotFoundError Secret 未找到错误
type SecretNotFoundError struct {
	Name string
}

func (e *SecretNotFoundError) Error() string {
	return "required secret not found: " + e.Name
}
