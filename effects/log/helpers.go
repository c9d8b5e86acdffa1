package log

import (
	"context"
	"os"

	effectmodel "github.com/on-the-ground/composable_go/effects/internal/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WithTestEffectHandler installs a debug-level console logger on stdout.
func WithTestEffectHandler(
	ctx context.Context,
) (context.Context, func() context.Context) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return WithZapLogEffectHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1, 1),
		zap.New(consoleCore),
	)
}
