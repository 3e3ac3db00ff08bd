package configs

import (
	"github.com/spf13/viper"
)

// LiquidConfig section 类型生成器配置
type LiquidConfig struct {
	Dir         string `mapstructure:"dir" json:"dir" yaml:"dir" toml:"dir"`
	Extension   string `mapstructure:"extension" json:"extension" yaml:"extension" toml:"extension"`
	Prefix      bool   `mapstructure:"prefix" json:"prefix" yaml:"prefix" toml:"prefix"`
	Concurrency int    `mapstructure:"concurrency" json:"concurrency" yaml:"concurrency" toml:"concurrency"`
	Output      string `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
}

// CSSConfig 样式变量生成器配置
type CSSConfig struct {
	Lang            string `mapstructure:"lang" json:"lang" yaml:"lang" toml:"lang"`
	ConfigPath      string `mapstructure:"config_path" json:"config_path" yaml:"config_path" toml:"config_path"`
	NormalizeColors bool   `mapstructure:"normalize_colors" json:"normalize_colors" yaml:"normalize_colors" toml:"normalize_colors"`
	Output          string `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
}

func setGenConfigDefaults() {
	viper.SetDefault("liquid.dir", "sections")
	viper.SetDefault("liquid.extension", ".liquid")
	viper.SetDefault("liquid.prefix", false)
	viper.SetDefault("liquid.concurrency", 0) // 0 表示使用 CPU 核心数
	viper.SetDefault("liquid.output", "")

	viper.SetDefault("css.lang", "scss")
	viper.SetDefault("css.config_path", "config/settings_data.json")
	viper.SetDefault("css.normalize_colors", false)
	viper.SetDefault("css.output", "")
}
