package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Duration 支持 YAML/环境变量反序列化，单位为秒
// 可以从数字（秒数）或字符串（如 "30s"、"2m"）解析
type Duration int64

// Duration 返回 time.Duration 值
func (d Duration) Duration() time.Duration {
	return time.Duration(d) * time.Second
}

// Seconds 返回秒数
func (d Duration) Seconds() int64 {
	return int64(d)
}

// ParseDuration 解析秒数或 Go duration 字符串，不足一秒的部分舍去
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Duration(n), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return Duration(d / time.Second), nil
}

var durationType = reflect.TypeOf(Duration(0))

// DurationHook 让 viper 把字符串解码为 Duration
func DurationHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}
		if s, ok := data.(string); ok {
			return ParseDuration(s)
		}
		return data, nil
	}
}
