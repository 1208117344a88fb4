package config

import (
	"os"
	"sync"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/pkg/logger"
	"github.com/ayxworxfr/go_admin_sdk/pkg/telemetry"
	"gopkg.in/yaml.v3"
)

// Config 结构体用于存储所有客户端配置
type Config struct {
	API           APIConfig        `yaml:"api"`
	Auth          AuthConfig       `yaml:"auth"`
	Logger        logger.Config    `yaml:"logger"`
	OpenTelemetry telemetry.Config `yaml:"opentelemetry"`
}

// APIConfig 存储服务端接口相关配置
type APIConfig struct {
	BaseURL   string  `yaml:"base_url"`
	Timeout   int     `yaml:"timeout"` // 以秒为单位
	Retries   int     `yaml:"retries"`
	Backoff   int     `yaml:"backoff"` // 以毫秒为单位
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// NewAPIConfig 创建一个带有默认值的 APIConfig
func NewAPIConfig() APIConfig {
	return APIConfig{
		Timeout: 30,
		Retries: 3,
		Backoff: 500,
	}
}

// TimeoutDuration 返回超时时长
func (c APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// BackoffDuration 返回重试退避时长
func (c APIConfig) BackoffDuration() time.Duration {
	return time.Duration(c.Backoff) * time.Millisecond
}

// AuthConfig 存储认证相关配置
type AuthConfig struct {
	Token       string `yaml:"token"`
	AppKey      string `yaml:"app_key"`
	AppSecret   string `yaml:"app_secret"`
	RefreshCron string `yaml:"refresh_cron"`
}

var (
	config  *Config
	loadErr error
	once    sync.Once
)

// Load 加载并解析 YAML 配置文件。只初始化一次，后续调用返回首次加载的结果（含错误）。
func Load(filename string) (*Config, error) {
	once.Do(func() {
		config = &Config{
			API:           NewAPIConfig(),
			OpenTelemetry: telemetry.NewConfig(),
		}
		loadErr = loadFile(filename, config)

		// 优先使用环境变量的值
		if baseURL := os.Getenv("ADMIN_API_BASE_URL"); baseURL != "" {
			config.API.BaseURL = baseURL
		}
		if token := os.Getenv("ADMIN_API_TOKEN"); token != "" {
			config.Auth.Token = token
		}
		if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
			config.OpenTelemetry.Endpoint = endpoint
		}
		if protocol := os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL"); protocol != "" {
			config.OpenTelemetry.Protocol = protocol
		}
	})
	return config, loadErr
}

// loadFile 读取并解析 YAML 文件
func loadFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Get 返回已加载的配置
func Get() *Config {
	return config
}
