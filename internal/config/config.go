// Package config はLambda実行環境の環境変数から設定を解決する
package config

import (
	"fmt"

	"github.com/spf13/viper"

	ec2svc "ec2sched/internal/service/ec2"
)

// 環境変数名
const (
	EnvTagKey           = "TAG_KEY"
	EnvTagValue         = "TAG_VALUE"
	EnvMetricsNamespace = "METRICS_NAMESPACE"
	EnvLogLevel         = "LOG_LEVEL"
)

// デフォルト値
const (
	DefaultTagKey   = "AutoSchedule"
	DefaultTagValue = "True"
	DefaultLogLevel = "info"
)

// Config はプロセス起動時に一度だけ解決される設定
type Config struct {
	TagKey           string
	TagValue         string
	MetricsNamespace string // 空の場合はメトリクス送信を行わない
	LogLevel         string
}

// Load は環境変数から設定を読み込む
// 未設定または空文字の環境変数はデフォルト値になる
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault(EnvTagKey, DefaultTagKey)
	v.SetDefault(EnvTagValue, DefaultTagValue)
	v.SetDefault(EnvMetricsNamespace, "")
	v.SetDefault(EnvLogLevel, DefaultLogLevel)

	for _, env := range []string{EnvTagKey, EnvTagValue, EnvMetricsNamespace, EnvLogLevel} {
		if err := v.BindEnv(env); err != nil {
			return Config{}, fmt.Errorf("環境変数 %s のバインドに失敗: %w", env, err)
		}
	}

	cfg := Config{
		TagKey:           v.GetString(EnvTagKey),
		TagValue:         v.GetString(EnvTagValue),
		MetricsNamespace: v.GetString(EnvMetricsNamespace),
		LogLevel:         v.GetString(EnvLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate はタグのキーと値が空でないことを確認する
func (c Config) Validate() error {
	if !c.Tag().Valid() {
		return fmt.Errorf("%s と %s は空にできません", EnvTagKey, EnvTagValue)
	}
	return nil
}

// Tag は管理対象を識別するタグ条件を返す
func (c Config) Tag() ec2svc.TagPredicate {
	return ec2svc.TagPredicate{Key: c.TagKey, Value: c.TagValue}
}
