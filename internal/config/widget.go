package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// WidgetConfig 描述终端聊天组件的配置。
type WidgetConfig struct {
	Server ServerEndpoint `mapstructure:"server"`
	Chat   ChatOptions    `mapstructure:"chat"`
}

// ServerEndpoint 指向提供 /api/chat 的后端。
type ServerEndpoint struct {
	URL string `mapstructure:"url"`
}

// ChatOptions 控制组件的默认行为。
type ChatOptions struct {
	DefaultModel string   `mapstructure:"default_model"`
	Models       []string `mapstructure:"models"`
	LogFile      string   `mapstructure:"log_file"`
}

// LoadWidget 从配置文件与环境变量读取组件配置，环境变量前缀为 ZCHAT_。
func LoadWidget() (WidgetConfig, error) {
	v := viper.New()

	v.SetDefault("server.url", "http://localhost:5000")
	v.SetDefault("chat.default_model", "gpt-4")
	v.SetDefault("chat.models", []string{})
	v.SetDefault("chat.log_file", filepath.Join(os.TempDir(), "zchat.log"))

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("ZCHAT_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "zchat"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ZCHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return WidgetConfig{}, fmt.Errorf("read widget config: %w", err)
		}
	}

	var c WidgetConfig
	if err := v.Unmarshal(&c); err != nil {
		return WidgetConfig{}, fmt.Errorf("unmarshal widget config: %w", err)
	}

	c.Server.URL = strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")
	if c.Server.URL == "" {
		return WidgetConfig{}, fmt.Errorf("server.url must not be empty")
	}
	c.Chat.DefaultModel = strings.TrimSpace(c.Chat.DefaultModel)
	return c, nil
}
