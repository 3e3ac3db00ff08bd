// Package context 保存一次命令执行共享的配置、日志和 viper 实例
package context

import (
	"context"

	"github.com/spf13/viper"

	"github.com/hyldmo/shopify-codegen/pkg/configs"
	"github.com/hyldmo/shopify-codegen/pkg/utils/log"
)

// GlobalFlags 根命令的全局标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	VersionEnable bool
}

// AppContext 命令执行上下文
type AppContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Logger log.Logger      // 日志记录器
	Viper  *viper.Viper    // 全局 viper 实例
}

// InitAppContext 加载配置并初始化日志；命令行标志优先于配置文件
func InitAppContext(ctx context.Context, flags GlobalFlags) (*AppContext, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	config, err := configs.LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if flags.Debug {
		config.App.Debug = true
	}
	if flags.Verbose {
		config.App.Verbose = true
	}
	if flags.Quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &AppContext{
		Context: ctx,
		Config:  config,
		Logger:  logger,
		Viper:   viper.GetViper(),
	}, nil
}
