// Package config 应用层配置（settings JSON 之外的进程级配置）。
// settings JSON 是和 venue/外部工具约定的格式，这里只管日志、数据目录
// 这类纯本地关切。
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level      string `yaml:"level"`        // debug / info / warn / error
	File       string `yaml:"file"`         // 为空则只输出到控制台
	MaxSizeMB  int    `yaml:"max_size_mb"`  // 单个日志文件上限
	MaxBackups int    `yaml:"max_backups"`  // 保留的旧文件数量
	MaxAgeDays int    `yaml:"max_age_days"` // 旧文件保留天数
	Compress   bool   `yaml:"compress"`     // 是否压缩旧文件
}

// Config 应用配置
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	// DataDir 交易日志 CSV 的输出目录
	DataDir string `yaml:"data_dir"`
	// SettingsFile 运行时 settings JSON 的路径
	SettingsFile string `yaml:"settings_file"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		DataDir:      "data",
		SettingsFile: "settings.json",
	}
}

// Load 读取 YAML 配置并应用环境变量覆盖。
// 文件不存在时直接用默认值，不视为错误（配置文件是可选的）。
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	// 环境变量覆盖
	if v := os.Getenv("BBOT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("BBOT_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("BBOT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("BBOT_SETTINGS_FILE"); v != "" {
		cfg.SettingsFile = v
	}

	return cfg, nil
}
