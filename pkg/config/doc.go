// Package config provides the configuration types and loader shared by
// services that use the error taxonomy and its logging pipeline.
//
// Files are read from {ConfigPath}/config_{APP_ENV}.yaml, .env (or ENV_FILE)
// is loaded first, and secrets may come from {NAME}_FILE.
//
// Usage:
//
//	import "github.com/Goden-Gun/apperr-lib/pkg/config"
//
//	cfg, err := config.Load(config.LoadOptions{EnvPrefix: "GROUP"})
//	if err != nil {
//	    return err
//	}
//	// cfg.Log.Sink.Security == "redis" unless configured otherwise
//
// Services with extra sections embed the types they need:
//
//	type GroupConfig struct {
//	    App   config.AppConfig   `yaml:"app" mapstructure:"app"`
//	    Log   config.LogConfig   `yaml:"log" mapstructure:"log"`
//	    Redis config.RedisConfig `yaml:"redis" mapstructure:"redis"`
//	    Limits struct {
//	        MaxMembers int `yaml:"max_members" mapstructure:"max_members"`
//	    } `yaml:"limits" mapstructure:"limits"`
//	}
//
//	cfg := &GroupConfig{}
//	err := config.LoadConfig(cfg)
package config
