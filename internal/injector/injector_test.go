package injector

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/config"
	"github.com/zeusync/scenedoc/internal/server"
	"github.com/zeusync/scenedoc/pkg/encoding"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Log.Level = "silent"
	cfg.Server.Root = t.TempDir()
	cfg.Server.Address = "127.0.0.1:0"
	cfg.Assets.Timeout = time.Second
	return cfg
}

func TestInitializeTool(t *testing.T) {
	t.Run("HTTP", func(t *testing.T) {
		tool, cleanup, err := InitializeTool(testConfig(t))
		require.NoError(t, err)
		defer cleanup()

		require.NotNil(t, tool.Serializer)
		require.Equal(t, config.Default().Assets.BaseURL, tool.Context.BaseURL)
		require.IsType(t, &assets.CachingFetcher{}, tool.Context.Fetcher)
	})

	t.Run("NoCache", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Assets.CacheSize = 0
		tool, cleanup, err := InitializeTool(cfg)
		require.NoError(t, err)
		defer cleanup()
		require.IsType(t, &assets.HTTPFetcher{}, tool.Context.Fetcher)
	})

	t.Run("WebSocket", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.WriteFile(filepath.Join(cfg.Server.Root, "a.txt"), []byte("hello"), 0o600))

		srv, err := InitializeAssetServer(cfg)
		require.NoError(t, err)
		ts := httptest.NewServer(srv.Handler())
		defer ts.Close()

		cfg.Assets.Transport = config.TransportWS
		cfg.Assets.Endpoint = "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
		tool, cleanup, err := InitializeTool(cfg)
		require.NoError(t, err)
		defer cleanup()

		data, err := tool.Context.Fetcher.Fetch(t.Context(), "a.txt")
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))
	})

	t.Run("UnreachableEndpoint", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Assets.Transport = config.TransportWS
		cfg.Assets.Endpoint = "ws://127.0.0.1:1/ws"
		_, _, err := InitializeTool(cfg)
		require.Error(t, err)
	})

	t.Run("YAMLDocuments", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Document.Format = "yaml"
		codec, err := ProvideCodec(cfg)
		require.NoError(t, err)
		require.Equal(t, encoding.YAML{}, codec)
	})
}

func TestInitializeAssetServer(t *testing.T) {
	srv, err := InitializeAssetServer(testConfig(t))
	require.NoError(t, err)
	require.IsType(t, &server.AssetServer{}, srv)

	cfg := testConfig(t)
	cfg.Server.Root = filepath.Join(cfg.Server.Root, "missing")
	_, err = InitializeAssetServer(cfg)
	require.ErrorIs(t, err, server.ErrInvalidConfig)
}
