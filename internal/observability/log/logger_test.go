package log

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	t.Run("Fields", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		l := NewWithCore(core)

		l.Warn("texture skipped", String("generator", "TextureSerializer"), Int("index", 2), Error(errors.New("boom")))

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, zapcore.WarnLevel, entries[0].Level)
		require.Equal(t, "texture skipped", entries[0].Message)
		ctx := entries[0].ContextMap()
		require.Equal(t, "TextureSerializer", ctx["generator"])
		require.Equal(t, int64(2), ctx["index"])
		require.Equal(t, "boom", ctx["error"])
	})

	t.Run("Level", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		l := NewWithCore(core)
		l.SetLevel(LevelWarn)
		require.Equal(t, LevelWarn, l.GetLevel())

		l.Info("dropped")
		l.Error("kept")
		require.Equal(t, 1, logs.Len())
	})

	t.Run("With", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		l := NewWithCore(core).With(String("component", "serializer"))

		l.Info("hello")
		require.Equal(t, "serializer", logs.All()[0].ContextMap()["component"])
	})

	t.Run("ParseLevel", func(t *testing.T) {
		require.Equal(t, LevelDebug, ParseLevel("debug"))
		require.Equal(t, LevelWarn, ParseLevel("warning"))
		require.Equal(t, LevelSilent, ParseLevel("none"))
		require.Equal(t, LevelInfo, ParseLevel("bogus"))
	})

	t.Run("RotatingFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenedoc.log")
		l := NewWithConfig(Config{Level: "info", File: path, MaxSizeMB: 1})
		l.Info("written")
		require.NoError(t, l.Sync())
		require.FileExists(t, path)
	})
}
