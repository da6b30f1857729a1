package serializer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/pkg/encoding"
)

type sample struct {
	state  *engine.State
	scene  *engine.Scene
	group  *engine.Group
	crate  *engine.Mesh
	fire   *engine.Fire
	sun    *engine.DirectionalLight
	sparks *engine.ParticleEmitter
	title  *engine.Text3D
	marker *engine.PointMarker
}

func newSample() *sample {
	s := &sample{
		scene:  engine.NewScene(),
		group:  engine.NewGroup(),
		fire:   engine.NewFire(nil),
		sun:    engine.NewDirectionalLight(engine.ColorFromHex(0xfff4e5), 1.2),
		sparks: engine.NewParticleEmitter(nil),
		title:  engine.NewText3D("Level 1", "fonts/helvetiker.json.gz"),
		marker: engine.NewPointMarker("spawn"),
	}
	s.scene.Name = "level-1"
	s.group.Name = "props"

	mat := engine.NewMeshStandardMaterial()
	mat.Map = engine.NewTexture(&engine.Image{Source: "textures/crate.png", Format: "png", Width: 4, Height: 2})
	s.crate = engine.NewMesh(box(), mat)
	decorate(s.crate.Object(), "crate")

	engine.Attach(s.scene, s.group)
	engine.Attach(s.group, s.crate)
	engine.Attach(s.group, s.fire)
	engine.Attach(s.scene, s.sun)
	engine.Attach(s.scene, s.sparks)
	engine.Attach(s.scene, s.title)

	s.state = &engine.State{
		Scene:    s.scene,
		Camera:   engine.NewPerspectiveCamera(50, 1.5, 0.1, 1000),
		Renderer: engine.NewRenderer(1024, 768),
		Scripts:  []*engine.Script{engine.NewScript("spin", "this.rotation.y += 0.01;")},
		Options:  engine.Options{"grid": true, "theme": "dark"},
		Roots:    []engine.Node{s.marker},
	}
	return s
}

func uuids(nodes []engine.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Object().UUID)
	}
	return out
}

func TestSerializerSave(t *testing.T) {
	f := newFixture(t)
	s := New(f.logger, nil)
	smp := newSample()

	doc, err := s.Save(smp.state)
	require.NoError(t, err)
	require.Equal(t, Metadata{Generator: "Serializer", Type: "Document", Version: FormatVersion}, doc.Metadata)
	require.NotNil(t, doc.Camera)
	require.NotNil(t, doc.Renderer)
	require.NotNil(t, doc.Options)
	require.Len(t, doc.Scripts, 1)

	var order []string
	for _, frag := range doc.Scene {
		order = append(order, tree(t, frag)["uuid"].(string))
	}
	require.Equal(t, []string{
		smp.scene.UUID, smp.group.UUID, smp.crate.UUID, smp.fire.UUID,
		smp.sun.UUID, smp.sparks.UUID, smp.title.UUID, smp.marker.UUID,
	}, order)
	f.requireNoWarnings(t)

	t.Run("NilState", func(t *testing.T) {
		_, err := s.Save(nil)
		require.ErrorIs(t, err, ErrNilEntity)
	})

	t.Run("Idempotent", func(t *testing.T) {
		again, err := s.Save(smp.state)
		require.NoError(t, err)
		a, err := encoding.Fingerprint(doc)
		require.NoError(t, err)
		b, err := encoding.Fingerprint(again)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}

func TestSerializerLoad(t *testing.T) {
	f := newFixture(t)
	s := New(f.logger, encoding.JSON{Indent: "  "})
	smp := newSample()

	doc, err := s.Save(smp.state)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, doc))
	decoded, err := s.Decode(&buf)
	require.NoError(t, err)

	ctx := testContext(t)
	rc := &ReconstructionContext{BaseURL: assetRoot, Fetcher: f.fetcher}
	state, err := s.Load(ctx, decoded, rc).Await(ctx)
	require.NoError(t, err)
	f.requireNoWarnings(t)

	t.Run("Sections", func(t *testing.T) {
		cam, ok := state.Camera.(*engine.PerspectiveCamera)
		require.True(t, ok)
		require.Equal(t, float32(50), cam.Fov)
		require.Equal(t, 1024, state.Renderer.Width)
		require.Equal(t, "dark", state.Options["theme"])
		require.Len(t, state.Scripts, 1)
		require.Equal(t, smp.state.Scripts[0].UUID, state.Scripts[0].UUID)
	})

	t.Run("Graph", func(t *testing.T) {
		require.NotNil(t, state.Scene)
		require.Equal(t, smp.scene.UUID, state.Scene.UUID)
		require.Equal(t, []string{smp.group.UUID, smp.sun.UUID, smp.sparks.UUID, smp.title.UUID}, uuids(state.Scene.Children))

		group := state.Scene.Children[0]
		require.Same(t, state.Scene, group.Object().Parent)
		require.Equal(t, []string{smp.crate.UUID, smp.fire.UUID}, uuids(group.Object().Children))
		require.Equal(t, []string{smp.marker.UUID}, uuids(state.Roots))
	})

	t.Run("CollaboratorsFromDocument", func(t *testing.T) {
		fire := engine.FindByUUID(state.Scene, smp.fire.UUID).(*engine.Fire)
		require.Same(t, state.Camera, fire.Camera)
		sparks := engine.FindByUUID(state.Scene, smp.sparks.UUID).(*engine.ParticleEmitter)
		require.Equal(t, float32(384), sparks.PointScale)
		require.Nil(t, rc.Camera, "caller context is left untouched")
	})

	t.Run("AsyncAssets", func(t *testing.T) {
		title := engine.FindByUUID(state.Scene, smp.title.UUID).(*engine.Text3D)
		require.NotNil(t, title.Typeface)
		crate := engine.FindByUUID(state.Scene, smp.crate.UUID).(*engine.Mesh)
		tex := crate.Material.(*engine.MeshStandardMaterial).Map
		require.Equal(t, f.png, tex.AsTextureBase().Image.Data)
	})

	t.Run("SavesBackIdentically", func(t *testing.T) {
		again, err := s.Save(state)
		require.NoError(t, err)
		require.Len(t, again.Scene, len(doc.Scene))
		for i := range doc.Scene {
			if diff := cmp.Diff(tree(t, doc.Scene[i]), tree(t, again.Scene[i])); diff != "" {
				t.Fatalf("scene[%d] (-saved +reloaded):\n%s", i, diff)
			}
		}
		a, err := encoding.Fingerprint(doc)
		require.NoError(t, err)
		b, err := encoding.Fingerprint(again)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}

func TestSerializerYAML(t *testing.T) {
	f := newFixture(t)
	s := New(f.logger, encoding.YAML{})
	smp := newSample()

	doc, err := s.Save(smp.state)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf, doc))
	require.Contains(t, buf.String(), "generator: PerspectiveCameraSerializer")

	decoded, err := s.Decode(&buf)
	require.NoError(t, err)

	ctx := testContext(t)
	state, err := s.Load(ctx, decoded, &ReconstructionContext{BaseURL: assetRoot, Fetcher: f.fetcher}).Await(ctx)
	require.NoError(t, err)

	again, err := s.Save(state)
	require.NoError(t, err)
	a, err := encoding.Fingerprint(doc)
	require.NoError(t, err)
	b, err := encoding.Fingerprint(again)
	require.NoError(t, err)
	require.Equal(t, a, b)
	f.requireNoWarnings(t)
}

func TestSerializerLinking(t *testing.T) {
	group := func(id, parent string, children ...string) Fragment {
		var b strings.Builder
		b.WriteString(`{"metadata":{"generator":"GroupSerializer","type":"Object","version":"1.0"},"uuid":"` + id + `"`)
		if parent != "" {
			b.WriteString(`,"parent":"` + parent + `"`)
		}
		if len(children) > 0 {
			b.WriteString(`,"children":["` + strings.Join(children, `","`) + `"]`)
		}
		b.WriteString(`}`)
		return Fragment(b.String())
	}
	load := func(t *testing.T, f *fixture, frags ...Fragment) *engine.State {
		t.Helper()
		s := New(f.logger, nil)
		ctx := testContext(t)
		state, err := s.Load(ctx, &Document{Scene: frags}, nil).Await(ctx)
		require.NoError(t, err)
		return state
	}

	t.Run("ChildrenOrder", func(t *testing.T) {
		f := newFixture(t)
		state := load(t, f, group("A", "", "C", "B"), group("B", "A"), group("C", "A"))
		require.Nil(t, state.Scene)
		require.Equal(t, []string{"A"}, uuids(state.Roots))
		require.Equal(t, []string{"C", "B"}, uuids(state.Roots[0].Object().Children))
		f.requireNoWarnings(t)
	})

	t.Run("ParentOnly", func(t *testing.T) {
		f := newFixture(t)
		state := load(t, f, group("A", ""), group("B", "A"))
		require.Equal(t, []string{"A"}, uuids(state.Roots))
		require.Equal(t, []string{"B"}, uuids(state.Roots[0].Object().Children))
	})

	t.Run("UnresolvedParentBecomesRoot", func(t *testing.T) {
		f := newFixture(t)
		state := load(t, f, group("A", ""), group("B", "gone"))
		require.Equal(t, []string{"A", "B"}, uuids(state.Roots))
		require.Equal(t, []string{"Serializer: parent gone is not defined."}, f.warnings())
	})

	t.Run("MissingChild", func(t *testing.T) {
		f := newFixture(t)
		state := load(t, f, group("A", "", "ghost"))
		require.Equal(t, []string{"A"}, uuids(state.Roots))
		require.Empty(t, state.Roots[0].Object().Children)
		require.Equal(t, []string{"Serializer: child ghost is not defined."}, f.warnings())
	})

	t.Run("Cycle", func(t *testing.T) {
		f := newFixture(t)
		state := load(t, f, group("A", "B", "B"), group("B", "A", "A"))
		require.Equal(t, []string{"A"}, uuids(state.Roots))
		require.Equal(t, []string{"B"}, uuids(state.Roots[0].Object().Children))
		require.Empty(t, state.Roots[0].Object().Children[0].Object().Children)
	})

	t.Run("SecondSceneIsRoot", func(t *testing.T) {
		f := newFixture(t)
		regs := f.regs
		first, second := engine.NewScene(), engine.NewScene()
		state := load(t, f, regs.Nodes.Save(first), regs.Nodes.Save(second))
		require.Equal(t, first.UUID, state.Scene.UUID)
		require.Equal(t, []string{second.UUID}, uuids(state.Roots))
	})

	t.Run("UnimplementedParent", func(t *testing.T) {
		f := newFixture(t)
		s := New(f.logger, nil)
		scene := engine.NewScene()
		water := engine.NewWater()
		orphan := engine.NewGroup()
		engine.Attach(scene, water)
		engine.Attach(water, orphan)

		doc, err := s.Save(&engine.State{Scene: scene})
		require.NoError(t, err)
		require.Len(t, doc.Scene, 2)

		ctx := testContext(t)
		state, err := s.Load(ctx, doc, nil).Await(ctx)
		require.NoError(t, err)
		require.Empty(t, state.Scene.Children)
		require.Equal(t, []string{orphan.UUID}, uuids(state.Roots))
		require.Equal(t, []string{
			"WaterSerializer: not implemented",
			"Serializer: child " + water.UUID + " is not defined.",
			"Serializer: parent " + water.UUID + " is not defined.",
		}, f.warnings())
	})
}

func TestSerializerDecode(t *testing.T) {
	f := newFixture(t)
	s := New(f.logger, nil)

	t.Run("UnknownSectionsIgnored", func(t *testing.T) {
		doc, err := s.Decode(strings.NewReader(`{
			"metadata": {"generator": "Serializer", "type": "Document", "version": "1.0"},
			"history": {"undos": [], "redos": []},
			"project": {"vr": false},
			"scene": [{"metadata": {"generator": "GroupSerializer", "type": "Object", "version": "1.0"}, "uuid": "g"}]
		}`))
		require.NoError(t, err)
		require.Len(t, doc.Scene, 1)

		ctx := testContext(t)
		state, err := s.Load(ctx, doc, nil).Await(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"g"}, uuids(state.Roots))
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := s.Decode(strings.NewReader(`{"scene": [`))
		require.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("NilDocument", func(t *testing.T) {
		ctx := testContext(t)
		_, err := s.Load(ctx, nil, nil).Await(ctx)
		require.ErrorIs(t, err, ErrMalformedDocument)
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		ctx := testContext(t)
		state, err := s.Load(ctx, &Document{}, nil).Await(ctx)
		require.NoError(t, err)
		require.Nil(t, state.Scene)
		require.Nil(t, state.Camera)
		require.Empty(t, state.Roots)
	})
}
