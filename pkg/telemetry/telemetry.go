package telemetry

import (
	"context"
	"fmt"

	"github.com/ayxworxfr/go_admin_sdk/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0" // 确保版本匹配
)

// Config 链路追踪配置
type Config struct {
	Enable   bool    `yaml:"enable"`
	Service  string  `yaml:"service"`
	Endpoint string  `yaml:"endpoint"`
	Protocol string  `yaml:"protocol"`
	Sampling float64 `yaml:"sampling"`
}

// NewConfig 创建带默认值的追踪配置
func NewConfig() Config {
	return Config{
		Service:  "go_admin_sdk",
		Protocol: "http/protobuf",
		Sampling: 1.0,
	}
}

type Shutdownable interface {
	Shutdown(context.Context) error
}

// Init 初始化OTLP追踪导出，客户端每次请求的span经由此上报
func Init(cfg Config) (Shutdownable, error) {
	if !cfg.Enable {
		return nil, nil
	}

	ctx := context.Background()
	var exporter trace.SpanExporter
	var err error
	var protocol string

	// 根据配置选择协议和编码器
	switch cfg.Protocol {
	case "grpc":
		protocol = "grpc"
		client := otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		exporter, err = otlptrace.New(ctx, client)
	default: // http/protobuf
		protocol = "http/protobuf"
		client := otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(cfg.Endpoint),
			otlptracehttp.WithInsecure(),
		)
		exporter, err = otlptrace.New(ctx, client)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	// 创建资源
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.Service),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	// 创建采样器
	sampler := trace.TraceIDRatioBased(cfg.Sampling)

	// 创建追踪提供器
	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(sampler),
	)

	// 设置全局传播器（支持TraceContext和Baggage）
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	// 设置全局追踪器
	otel.SetTracerProvider(tracerProvider)

	logger.Infof(context.Background(), "OpenTelemetry initialized: service=%s, endpoint=%s, protocol=%s, sampling=%.2f",
		cfg.Service, cfg.Endpoint, protocol, cfg.Sampling)

	return tracerProvider, nil
}
