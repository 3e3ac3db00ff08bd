package configs

import (
	"github.com/spf13/viper"
)

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	Debug   bool   `mapstructure:"debug" json:"debug" yaml:"debug" toml:"debug"`
	Verbose bool   `mapstructure:"verbose" json:"verbose" yaml:"verbose" toml:"verbose"`
	Quiet   bool   `mapstructure:"quiet" json:"quiet" yaml:"quiet" toml:"quiet"` // 是否安静模式，禁止所有日志输出
}

// WatchConfig 监听模式配置（liquid --watch）
type WatchConfig struct {
	Debounce       int      `mapstructure:"debounce" json:"debounce" yaml:"debounce" toml:"debounce"`                                 // 防抖时间，毫秒
	IgnorePatterns []string `mapstructure:"ignore_patterns" json:"ignore_patterns" yaml:"ignore_patterns" toml:"ignore_patterns"` // 忽略的文件模式
}

func setAppConfigDefaults() {
	viper.SetDefault("app.name", AppName)
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.verbose", false)
	viper.SetDefault("app.quiet", false)

	viper.SetDefault("watch.debounce", 300) // 毫秒
	viper.SetDefault("watch.ignore_patterns", []string{
		"*.tmp",
		"*.swp",
		"*~",
		".#*",
	})
}
