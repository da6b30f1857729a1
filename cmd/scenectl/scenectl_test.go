package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/internal/observability/log"
	"github.com/zeusync/scenedoc/internal/serializer"
	"github.com/zeusync/scenedoc/pkg/encoding"
)

// writeSample saves a small scene that loads without remote assets.
func writeSample(t *testing.T) string {
	t.Helper()
	scene := engine.NewScene()
	scene.Name = "level"
	group := engine.NewGroup()
	engine.Attach(scene, group)
	engine.Attach(group, engine.NewPointMarker("spawn"))
	engine.Attach(scene, engine.NewSky())

	s := serializer.New(log.NewNop(), encoding.JSON{Indent: "  "})
	doc, err := s.Save(&engine.State{
		Scene:    scene,
		Camera:   engine.NewPerspectiveCamera(50, 1.5, 0.1, 1000),
		Renderer: engine.NewRenderer(800, 600),
		Options:  engine.Options{"grid": true},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "level.json")
	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, doc))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "silent"))
	err := cmd.Execute()
	return out.String(), err
}

func inspectJSON(t *testing.T, path string) summary {
	t.Helper()
	out, err := run(t, "inspect", "--json", path)
	require.NoError(t, err)
	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	return s
}

func TestInspect(t *testing.T) {
	path := writeSample(t)

	t.Run("JSON", func(t *testing.T) {
		s := inspectJSON(t, path)
		require.Equal(t, "Serializer", s.Generator)
		require.Equal(t, "PerspectiveCameraSerializer", s.Camera)
		require.True(t, s.Renderer)
		require.True(t, s.Options)
		require.Equal(t, 4, s.Nodes)
		require.Equal(t, map[string]int{
			"SceneSerializer":       1,
			"GroupSerializer":       1,
			"PointMarkerSerializer": 1,
			"SkySerializer":         1,
		}, s.Generators)
		require.Len(t, s.Fingerprint, 16)
	})

	t.Run("Text", func(t *testing.T) {
		out, err := run(t, "inspect", path)
		require.NoError(t, err)
		require.Contains(t, out, "camera:")
		require.Contains(t, out, "  GroupSerializer")
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := run(t, "inspect", filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"scene": [`), 0o600))
		_, err := run(t, "inspect", bad)
		require.ErrorIs(t, err, serializer.ErrMalformedDocument)
	})
}

func TestConvert(t *testing.T) {
	path := writeSample(t)
	yamlPath := filepath.Join(t.TempDir(), "level.yaml")

	out, err := run(t, "convert", path, yamlPath)
	require.NoError(t, err)
	require.Contains(t, out, "(yaml, 4 nodes)")

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "generator: SceneSerializer")

	require.Equal(t, inspectJSON(t, path).Fingerprint, inspectJSON(t, yamlPath).Fingerprint)

	t.Run("Reload", func(t *testing.T) {
		back := filepath.Join(t.TempDir(), "back.json")
		_, err := run(t, "convert", "--reload", yamlPath, back)
		require.NoError(t, err)
		require.Equal(t, inspectJSON(t, path).Fingerprint, inspectJSON(t, back).Fingerprint)
	})
}

func TestRoundTrip(t *testing.T) {
	path := writeSample(t)
	saved := filepath.Join(t.TempDir(), "saved.json")

	out, err := run(t, "roundtrip", "-o", saved, path)
	require.NoError(t, err)
	require.Contains(t, out, "nodes: 4 -> 4")
	require.Equal(t, inspectJSON(t, path).Fingerprint, inspectJSON(t, saved).Fingerprint)

	t.Run("DegradedDocument", func(t *testing.T) {
		var doc map[string]any
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &doc))

		scene := doc["scene"].([]any)
		scene = append(scene, map[string]any{
			"metadata": map[string]any{"generator": "WaterSerializer", "type": "Domain", "version": "1.0"},
			"uuid":     "water",
		})
		doc["scene"] = scene
		data, err = json.Marshal(doc)
		require.NoError(t, err)

		degraded := filepath.Join(t.TempDir(), "degraded.json")
		require.NoError(t, os.WriteFile(degraded, data, 0o600))

		out, err := run(t, "roundtrip", degraded)
		require.ErrorIs(t, err, errNotIdentical)
		require.Contains(t, out, "nodes: 5 -> 4")
	})
}

func TestConfigFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "scenectl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("assets:\n  transport: carrier-pigeon\n"), 0o600))

	_, err := run(t, "--config", cfgPath, "inspect", writeSample(t))
	require.Error(t, err)
}
