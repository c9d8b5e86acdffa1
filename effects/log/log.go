package log

import (
	"context"

	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/deferred"
	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// LogPayload is the payload structure for logging effect.
// It contains the log level, message string, and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]any
}

func (lp LogPayload) PartitionKey() string {
	return "unpartitioned"
}

// WithZapLogEffectHandler registers a log effect handler backed by logger.
// The returned context includes the handler under the EffectLog enum.
// The teardown function syncs the logger; the context it returns should be
// used for further operations.
func WithZapLogEffectHandler(
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	return effects.WithResumablePartitionableEffectHandler(
		ctx,
		config,
		effectmodel.EffectLog,
		func(ctx context.Context, payload LogPayload) (effects.Unit, error) {
			fields := make([]zap.Field, 0, len(payload.Fields))
			for k, v := range payload.Fields {
				fields = append(fields, zap.Any(k, v))
			}

			switch payload.Level {
			case LogInfo:
				logger.Info(payload.Message, fields...)
			case LogWarn:
				logger.Warn(payload.Message, fields...)
			case LogError:
				logger.Error(payload.Message, fields...)
			case LogDebug:
				logger.Debug(payload.Message, fields...)
			default:
				logger.Info(payload.Message, fields...)
			}
			return effects.Unit{}, nil
		},
		func() {
			if err := logger.Sync(); err != nil {
				logger.Warn("failed to sync logger", zap.Error(err))
			}
		},
	)
}

// LogEff describes a log entry. Nothing is logged until the returned Io runs,
// and every run logs again.
func LogEff(ctx context.Context, level LogLevel, msg string, fields map[string]any) deferred.Io[effects.Unit] {
	return deferred.Apply(func() (effects.Unit, error) {
		return effects.AwaitResumableEffect[LogPayload, effects.Unit](ctx, effectmodel.EffectLog, LogPayload{
			Level:   level,
			Message: msg,
			Fields:  fields,
		})
	})
}

// Tap logs msg with the value m yields under the "value" field, then passes
// the value on.
func Tap[T any](ctx context.Context, level LogLevel, msg string, m deferred.Io[T]) deferred.Io[T] {
	return deferred.Bind(m, func(v T) deferred.Io[T] {
		return deferred.Map(LogEff(ctx, level, msg, map[string]any{"value": v}), func(effects.Unit) T {
			return v
		})
	})
}
