package bootstrap

import (
	"github.com/redis/go-redis/v9"

	"github.com/Goden-Gun/apperr-lib/pkg/auth"
	"github.com/Goden-Gun/apperr-lib/pkg/config"
)

// AuthConfig 把配置文件中的 JWT 配置转换为 auth.Config
func AuthConfig(cfg config.JWTConfig) auth.Config {
	return auth.Config{
		Secret:          cfg.SecretKey,
		Alg:             cfg.Algorithm,
		Issuer:          cfg.Issuer,
		TTL:             cfg.AccessTokenTTL.Duration(),
		ClockSkew:       cfg.ClockSkew.Duration(),
		BlocklistPrefix: cfg.BlocklistPrefix,
		VersionPrefix:   cfg.VersionPrefix,
	}
}

// InitAuth 初始化 token 校验服务；rdb 为 nil 时不支持吊销和会话版本
func InitAuth(cfg config.JWTConfig, rdb *redis.Client) (*auth.Service, error) {
	var (
		blocklist auth.Blocklist
		versions  auth.VersionStore
	)
	if rdb != nil {
		blocklist = auth.NewRedisBlocklist(rdb, cfg.BlocklistPrefix)
		versions = auth.NewRedisVersionStore(rdb, cfg.VersionPrefix)
	}
	return auth.NewService(AuthConfig(cfg), blocklist, versions)
}
