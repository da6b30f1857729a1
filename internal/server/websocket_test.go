package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/observability/log"
)

func testStore() fstest.MapFS {
	return fstest.MapFS{
		"textures/crate.png":    {Data: []byte("\x89PNG\r\n\x1a\ncrate")},
		"fonts/helvetiker.json": {Data: []byte(`{"familyName":"Helvetiker"}`)},
		"scenes/level.json":     {Data: []byte(`{"scene":[]}`)},
	}
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func newTestServer(t *testing.T, config Config) (*AssetServer, *httptest.Server) {
	t.Helper()
	s := NewAssetServerFS(testStore(), config, log.NewNop())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestHTTPAssets(t *testing.T) {
	_, ts := newTestServer(t, Config{})
	fetcher := assets.NewHTTPFetcher(time.Second)

	t.Run("Found", func(t *testing.T) {
		data, err := fetcher.Fetch(testContext(t), ts.URL+"/assets/textures/crate.png")
		require.NoError(t, err)
		require.Equal(t, testStore()["textures/crate.png"].Data, data)
	})

	t.Run("ContentType", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/assets/fonts/helvetiker.json")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := fetcher.Fetch(testContext(t), ts.URL+"/assets/textures/missing.png")
		require.ErrorIs(t, err, assets.ErrNotFound)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/assets/textures/crate.png", "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestWebSocketAssets(t *testing.T) {
	s, ts := newTestServer(t, Config{})
	endpoint := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	fetcher, err := assets.DialWS(testContext(t), endpoint, time.Second)
	require.NoError(t, err)
	defer fetcher.Close()

	t.Run("BarePath", func(t *testing.T) {
		data, err := fetcher.Fetch(testContext(t), "textures/crate.png")
		require.NoError(t, err)
		require.Equal(t, testStore()["textures/crate.png"].Data, data)
	})

	t.Run("ResolvedURL", func(t *testing.T) {
		data, err := fetcher.Fetch(testContext(t), ts.URL+"/assets/scenes/level.json")
		require.NoError(t, err)
		require.JSONEq(t, `{"scene":[]}`, string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := fetcher.Fetch(testContext(t), "textures/missing.png")
		require.ErrorIs(t, err, assets.ErrNotFound)
	})

	t.Run("Traversal", func(t *testing.T) {
		_, err := fetcher.Fetch(testContext(t), "../etc/passwd")
		var status *assets.StatusError
		require.ErrorAs(t, err, &status)
		require.Equal(t, http.StatusBadRequest, status.Status)
	})

	t.Run("ConnectionSurvivesErrors", func(t *testing.T) {
		_, err := fetcher.Fetch(testContext(t), "fonts/helvetiker.json")
		require.NoError(t, err)
		require.Equal(t, int64(1), s.Clients())
	})
}

func TestWebSocketMaxClients(t *testing.T) {
	_, ts := newTestServer(t, Config{MaxClients: 1})
	endpoint := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	first, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
	require.NoError(t, err)
	defer first.Close()

	// The first client is registered once it has been answered.
	require.NoError(t, first.WriteJSON(assets.Request{ID: 1, Path: "textures/crate.png"}))
	var resp assets.Response
	require.NoError(t, first.ReadJSON(&resp))
	require.Equal(t, http.StatusOK, resp.Status)

	_, rejected, err := websocket.DefaultDialer.Dial(endpoint, nil)
	require.Error(t, err)
	require.NotNil(t, rejected)
	require.Equal(t, http.StatusServiceUnavailable, rejected.StatusCode)
}

func TestRequestPath(t *testing.T) {
	cases := map[string]string{
		"textures/crate.png":                         "textures/crate.png",
		"/assets/textures/crate.png":                 "textures/crate.png",
		"http://localhost:8080/assets/a/b.json":      "a/b.json",
		"ws://localhost:8080/assets/models/x.glb":    "models/x.glb",
		"http://localhost:8080/other/textures/c.png": "other/textures/c.png",
	}
	for in, want := range cases {
		require.Equal(t, want, requestPath(in), in)
	}
}

func TestLifecycle(t *testing.T) {
	s := NewAssetServerFS(testStore(), Config{ListenAddr: "127.0.0.1:0"}, log.NewNop())
	require.Empty(t, s.Addr())

	require.NoError(t, s.Start(testContext(t)))
	require.ErrorIs(t, s.Start(testContext(t)), ErrServerAlreadyRunning)
	require.NotEmpty(t, s.Addr())

	data, err := assets.NewHTTPFetcher(time.Second).Fetch(testContext(t), "http://"+s.Addr()+"/assets/textures/crate.png")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	require.NoError(t, s.Stop(testContext(t)))
	require.ErrorIs(t, s.Stop(testContext(t)), ErrServerNotRunning)

	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Start(testContext(t)), ErrServerClosed)

	t.Run("MissingRoot", func(t *testing.T) {
		_, err := NewAssetServer(Config{Root: t.TempDir() + "/nope"}, nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
