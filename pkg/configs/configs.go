// Package configs 提供应用程序配置管理功能
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// AppName 应用名，用于配置文件名、环境变量前缀和日志字段
const AppName = "shopify-codegen"

// Config 应用配置结构
type Config struct {
	Version string       `mapstructure:"version" json:"version" yaml:"version" toml:"version"`
	Log     LogConfig    `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	App     AppConfig    `mapstructure:"app" json:"app" yaml:"app" toml:"app"`
	Liquid  LiquidConfig `mapstructure:"liquid" json:"liquid" yaml:"liquid" toml:"liquid"`
	CSS     CSSConfig    `mapstructure:"css" json:"css" yaml:"css" toml:"css"`
	Watch   WatchConfig  `mapstructure:"watch" json:"watch" yaml:"watch" toml:"watch"`
}

// setDefaults 设置默认配置值
func setDefaults() {
	viper.SetDefault("version", "1.0")
	setLogConfigDefaults()
	setAppConfigDefaults()
	setGenConfigDefaults()
}

var globalConfig *Config

// tryLoadConfigFiles 尝试加载不同格式的配置文件
func tryLoadConfigFiles() bool {
	// 配置文件搜索路径
	searchPaths := []string{
		".",
		"./config",
		"$HOME/.config/" + AppName,
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		searchPaths = append(searchPaths, "$APPDATA/"+AppName)
	}

	// 配置文件名和扩展名的组合
	configNames := []string{"." + AppName, AppName}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					viper.SetConfigFile(configFile)
					return true
				}
			}
		}
	}

	return false
}

// LoadConfig 加载配置文件
// configPath 为空时按搜索路径查找；找不到配置文件时只使用默认值和环境变量
func LoadConfig(configPath string) (*Config, error) {
	found := true
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		found = tryLoadConfigFiles()
	}

	// 环境变量映射，例如 SHOPIFY_CODEGEN_LIQUID_DIR -> liquid.dir
	viper.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(AppName), "-", "_"))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if found {
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	globalConfig = &config
	return &config, nil
}

// Reload 重新从 viper 解码配置（命令行标志绑定之后调用）
func Reload() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	globalConfig = &config
	return &config, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("无法加载配置: %v", err))
		}
		return config
	}
	return globalConfig
}
