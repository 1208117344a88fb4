package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日志配置
type Config struct {
	LogFile    string `yaml:"log_file"`
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
}

var (
	mu     sync.RWMutex
	global *zap.Logger
)

// Init 根据配置初始化全局日志器
func Init(cfg Config) error {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return err
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if cfg.LogFile != "" {
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, level))
	}
	if cfg.Console || cfg.LogFile == "" {
		consoleCfg := zap.NewDevelopmentEncoderConfig()
		consoleCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(os.Stdout), level))
	}

	mu.Lock()
	global = zap.New(zapcore.NewTee(cores...), zap.AddCallerSkip(1), zap.AddCaller())
	mu.Unlock()
	return nil
}

// SetLogger 替换全局日志器（测试用）
func SetLogger(l *zap.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}

func get() *zap.Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		l, _ := zap.NewDevelopment(zap.AddCallerSkip(1))
		global = l
	}
	return global
}

// Sync 刷新缓冲日志
func Sync() {
	_ = get().Sync()
}

// withTrace 从上下文提取链路信息附加到日志字段
func withTrace(ctx context.Context, fields []zap.Field) []zap.Field {
	if ctx == nil {
		return fields
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		fields = append(fields, zap.String("trace_id", spanCtx.TraceID().String()))
	}
	return fields
}

// Debug 输出Debug级别日志
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	get().Debug(msg, withTrace(ctx, fields)...)
}

// Info 输出Info级别日志
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	get().Info(msg, withTrace(ctx, fields)...)
}

// Warn 输出Warn级别日志
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	get().Warn(msg, withTrace(ctx, fields)...)
}

// Error 输出Error级别日志
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	get().Error(msg, withTrace(ctx, fields)...)
}

// Debugf 格式化输出Debug级别日志
func Debugf(ctx context.Context, format string, args ...any) {
	get().Debug(fmt.Sprintf(format, args...), withTrace(ctx, nil)...)
}

// Infof 格式化输出Info级别日志
func Infof(ctx context.Context, format string, args ...any) {
	get().Info(fmt.Sprintf(format, args...), withTrace(ctx, nil)...)
}

// Warnf 格式化输出Warn级别日志
func Warnf(ctx context.Context, format string, args ...any) {
	get().Warn(fmt.Sprintf(format, args...), withTrace(ctx, nil)...)
}

// Errorf 格式化输出Error级别日志
func Errorf(ctx context.Context, format string, args ...any) {
	get().Error(fmt.Sprintf(format, args...), withTrace(ctx, nil)...)
}
