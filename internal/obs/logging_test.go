package obs

import (
	"context"
	"log/slog"
	"testing"
)

func TestInitLoggerLevel(t *testing.T) {
	t.Cleanup(func() { InitLogger("info") })
	ctx := context.Background()

	InitLogger("debug")
	if !Logger.Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("debug must be enabled")
	}

	InitLogger("warn")
	if Logger.Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("info must be disabled at warn")
	}

	InitLogger("nonsense")
	if !Logger.Enabled(ctx, slog.LevelInfo) || Logger.Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("unknown level must fall back to info")
	}
}
