package serializer

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/internal/observability/log"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const assetRoot = "http://assets.test/"

var typefaceJSON = []byte(`{"familyName":"Helvetiker","resolution":1000,"glyphs":{"A":{"ha":720,"o":"m 0 0 l 360 1000 l 720 0"}}}`)

type fixture struct {
	logger  log.Log
	regs    *Registries
	logs    *observer.ObservedLogs
	fetcher *assets.MemoryFetcher
	rc      *ReconstructionContext
	png     []byte
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := log.NewWithCore(core)

	f := &fixture{
		logger:  logger,
		regs:    NewRegistries(logger),
		logs:    logs,
		fetcher: assets.NewMemoryFetcher(),
		png:     pngBytes(t, 4, 2),
	}
	f.fetcher.Put(assetRoot+"textures/crate.png", f.png)
	f.fetcher.Put(assetRoot+"fonts/helvetiker.json", typefaceJSON)
	f.fetcher.Put(assetRoot+"fonts/helvetiker.json.gz", gzipBytes(t, typefaceJSON))
	f.fetcher.Put(assetRoot+"audio/ambient.ogg", []byte("OggS-ambient"))
	f.fetcher.Put(assetRoot+"models/robot.glb", gzipBytes(t, []byte("glTF-robot")))

	f.rc = &ReconstructionContext{
		Camera:   engine.NewPerspectiveCamera(50, 1.5, 0.1, 1000),
		Renderer: engine.NewRenderer(800, 600),
		BaseURL:  assetRoot,
		Fetcher:  f.fetcher,
	}
	return f
}

// warnings returns the messages of every logged warning.
func (f *fixture) warnings() []string {
	var out []string
	for _, e := range f.logs.FilterLevelExact(zapcore.WarnLevel).All() {
		out = append(out, e.Message)
	}
	return out
}

func (f *fixture) requireNoWarnings(t *testing.T) {
	t.Helper()
	require.Empty(t, f.warnings())
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// tree decodes a fragment for readable diffs.
func tree(t *testing.T, frag Fragment) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(frag, &m))
	return m
}

func frag(s string) Fragment {
	return Fragment(strings.TrimSpace(s))
}
