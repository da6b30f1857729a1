package serializer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/scenedoc/internal/engine"
)

// roundTrip saves v, loads the fragment into a new entity and saves that
// again. Both fragments must be byte-identical.
func roundTrip[T engine.Entity](t *testing.T, f *fixture, reg *Registry[T], v T) T {
	t.Helper()
	first := reg.Save(v)
	require.NotNil(t, first, "save %s: %v", v.Kind(), f.warnings())

	ctx := testContext(t)
	got, err := reg.Load(ctx, first, f.rc).Await(ctx)
	require.NoError(t, err)
	require.False(t, isNil(got), "load %s: %v", v.Kind(), f.warnings())
	require.Equal(t, v.Kind(), got.Kind())

	second := reg.Save(got)
	if diff := cmp.Diff(tree(t, first), tree(t, second)); diff != "" {
		t.Fatalf("%s round trip mismatch (-saved +reloaded):\n%s", v.Kind(), diff)
	}
	require.Equal(t, string(first), string(second))
	f.requireNoWarnings(t)
	return got
}

func decorate(o *engine.Object3D, name string) {
	o.Name = name
	o.Position = mgl32.Vec3{1, 2.5, -3}
	o.Rotation = engine.Euler{X: 0.25, Y: -0.5, Z: 1, Order: "YXZ"}
	o.Quaternion = mgl32.Quat{W: 0.5, V: mgl32.Vec3{0.5, 0.5, 0.5}}
	o.Scale = mgl32.Vec3{2, 2, 2}
	o.CastShadow = true
	o.Visible = false
	o.RenderOrder = 3
	o.UserData = map[string]any{"tag": name, "weight": 1.5}
}

func box() *engine.BoxGeometry {
	return engine.NewBoxGeometry(engine.BoxParams{Width: 1, Height: 2, Depth: 3, WidthSegments: 1, HeightSegments: 1, DepthSegments: 1})
}

func TestNodeRoundTrip(t *testing.T) {
	nodes := map[string]func(f *fixture) engine.Node{
		"Object3D": func(*fixture) engine.Node { return engine.NewObject3D() },
		"Group":    func(*fixture) engine.Node { return engine.NewGroup() },
		"Scene": func(f *fixture) engine.Node {
			s := engine.NewScene()
			bg := engine.ColorFromHex(0x223344)
			s.BackgroundColor = &bg
			s.Fog = &engine.Fog{Type: engine.FogLinear, Color: engine.ColorFromHex(0xcccccc), Near: 1, Far: 100}
			s.BackgroundTexture = engine.NewTexture(&engine.Image{Format: "png", Width: 4, Height: 2, Data: f.png})
			s.OverrideMaterial = engine.NewMeshNormalMaterial()
			return s
		},
		"Mesh": func(*fixture) engine.Node {
			m := engine.NewMesh(box(), engine.NewMeshStandardMaterial())
			decorate(m.Object(), "crate")
			return m
		},
		"Sprite": func(*fixture) engine.Node { return engine.NewSprite(engine.NewSpriteMaterial()) },
		"Points": func(*fixture) engine.Node {
			return engine.NewPoints(engine.NewSphereGeometry(engine.SphereParams{Radius: 1, WidthSegments: 8, HeightSegments: 6}), engine.NewPointsMaterial())
		},
		"Line":         func(*fixture) engine.Node { return engine.NewLine(engine.NewBufferGeometry(), engine.NewLineBasicMaterial()) },
		"LineSegments": func(*fixture) engine.Node { return engine.NewLineSegments(box(), engine.NewLineDashedMaterial()) },
		"LineLoop":     func(*fixture) engine.Node { return engine.NewLineLoop(box(), engine.NewLineBasicMaterial()) },

		"Camera":             func(*fixture) engine.Node { return engine.NewCamera() },
		"PerspectiveCamera":  func(*fixture) engine.Node { return engine.NewPerspectiveCamera(60, 1.5, 0.1, 2000) },
		"OrthographicCamera": func(*fixture) engine.Node { return engine.NewOrthographicCamera(-10, 10, 10, -10, 0.1, 100) },

		"AmbientLight": func(*fixture) engine.Node { return engine.NewAmbientLight(engine.ColorFromHex(0x404040), 0.5) },
		"DirectionalLight": func(*fixture) engine.Node {
			l := engine.NewDirectionalLight(engine.ColorFromHex(0xffffff), 1)
			l.Target = "target-uuid"
			return l
		},
		"PointLight":      func(*fixture) engine.Node { return engine.NewPointLight(engine.ColorFromHex(0xff8800), 2, 50, 2) },
		"SpotLight":       func(*fixture) engine.Node { return engine.NewSpotLight(engine.ColorFromHex(0xffffff), 1, 0, 0.5, 0.1, 1) },
		"HemisphereLight": func(*fixture) engine.Node { return engine.NewHemisphereLight(engine.ColorFromHex(0x87ceeb), engine.ColorFromHex(0x444422), 1) },
		"RectAreaLight":   func(*fixture) engine.Node { return engine.NewRectAreaLight(engine.ColorFromHex(0xffffff), 4, 2, 1) },

		"Audio": func(*fixture) engine.Node { return engine.NewAudio("audio/ambient.ogg") },
		"Sky":   func(*fixture) engine.Node { return engine.NewSky() },
		"Fire":  func(f *fixture) engine.Node { return engine.NewFire(f.rc.Camera) },
		"Smoke": func(f *fixture) engine.Node { return engine.NewSmoke(f.rc.Camera, f.rc.Renderer) },
		"ParticleEmitter": func(f *fixture) engine.Node {
			p := engine.NewParticleEmitter(f.rc.Renderer)
			p.ColorEnd = engine.ColorFromHex(0xff0000)
			p.Texture = "textures/spark.png"
			return p
		},
		"PointMarker":  func(*fixture) engine.Node { return engine.NewPointMarker("spawn") },
		"UnscaledText": func(*fixture) engine.Node { return engine.NewUnscaledText("label") },
		"Text3D":       func(*fixture) engine.Node { return engine.NewText3D("Hello", "fonts/helvetiker.json.gz") },
		"CatmullRomCurve": func(*fixture) engine.Node {
			return engine.NewCatmullRomCurve([]mgl32.Vec3{{0, 0, 0}, {1, 1, 0}, {2, 0, 1}})
		},
		"QuadraticBezierCurve": func(*fixture) engine.Node {
			return engine.NewQuadraticBezierCurve(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 0}, mgl32.Vec3{2, 0, 0})
		},
		"CubicBezierCurve": func(*fixture) engine.Node {
			return engine.NewCubicBezierCurve(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 0}, mgl32.Vec3{2, 2, 0}, mgl32.Vec3{3, 0, 0})
		},
		"LineCurve":   func(*fixture) engine.Node { return engine.NewLineCurve(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 5, 0}) },
		"ServerModel": func(*fixture) engine.Node { return engine.NewServerModel("models/robot.glb", "glb") },
	}

	covered := make(map[engine.Kind]bool)
	for name, build := range nodes {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			v := build(f)
			got := roundTrip(t, f, f.regs.Nodes, v)
			require.Equal(t, v.Object().UUID, got.Object().UUID)
			covered[v.Kind()] = true
		})
	}

	t.Run("EveryNodeKind", func(t *testing.T) {
		f := newFixture(t)
		for _, k := range f.regs.Nodes.Kinds() {
			switch k {
			case engine.KindWater, engine.KindCloth, engine.KindPerlinTerrain:
				continue
			}
			require.True(t, covered[k], "no round trip for %s", k)
		}
	})
}

func TestNodeRoundTripDetails(t *testing.T) {
	t.Run("MeshKeepsSubEntities", func(t *testing.T) {
		f := newFixture(t)
		mat := engine.NewMeshPhongMaterial()
		mat.Map = engine.NewTexture(&engine.Image{Source: "textures/crate.png", Format: "png", Width: 4, Height: 2})
		mesh := engine.NewMesh(box(), mat)

		got := roundTrip(t, f, f.regs.Nodes, engine.Node(mesh)).(*engine.Mesh)
		require.Equal(t, mesh.Geometry.(*engine.BoxGeometry).Params, got.Geometry.(*engine.BoxGeometry).Params)
		phong := got.Material.(*engine.MeshPhongMaterial)
		require.Equal(t, f.png, phong.Map.AsTextureBase().Image.Data)
		require.Equal(t, 1, f.fetcher.Calls(assetRoot+"textures/crate.png"))
	})

	t.Run("DirectionalLightShadowCamera", func(t *testing.T) {
		f := newFixture(t)
		l := engine.NewDirectionalLight(engine.ColorFromHex(0xffeedd), 0.8)
		l.Shadow.AsShadowBase().Bias = -0.001

		got := roundTrip(t, f, f.regs.Nodes, engine.Node(l)).(*engine.DirectionalLight)
		shadow := got.Shadow.(*engine.DirectionalLightShadow)
		require.Equal(t, float32(-0.001), shadow.Bias)
		require.IsType(t, &engine.OrthographicCamera{}, shadow.Camera)
	})

	t.Run("AudioFetchesBuffer", func(t *testing.T) {
		f := newFixture(t)
		got := roundTrip(t, f, f.regs.Nodes, engine.Node(engine.NewAudio("audio/ambient.ogg"))).(*engine.Audio)
		require.Equal(t, []byte("OggS-ambient"), got.Buffer)
		require.Same(t, f.rc.Camera, got.Listener)
	})

	t.Run("Text3DTypeface", func(t *testing.T) {
		f := newFixture(t)
		got := roundTrip(t, f, f.regs.Nodes, engine.Node(engine.NewText3D("A", "fonts/helvetiker.json.gz"))).(*engine.Text3D)
		require.NotNil(t, got.Typeface)
		require.Equal(t, "Helvetiker", got.Typeface.FamilyName)
		require.Contains(t, got.Typeface.Glyphs, "A")
	})

	t.Run("ServerModelInflated", func(t *testing.T) {
		f := newFixture(t)
		got := roundTrip(t, f, f.regs.Nodes, engine.Node(engine.NewServerModel("models/robot.glb", "glb"))).(*engine.ServerModel)
		require.Equal(t, []byte("glTF-robot"), got.Data)
		require.Nil(t, got.Content)
	})

	t.Run("ParticleEmitterSizedByRenderer", func(t *testing.T) {
		f := newFixture(t)
		got := roundTrip(t, f, f.regs.Nodes, engine.Node(engine.NewParticleEmitter(nil))).(*engine.ParticleEmitter)
		require.Equal(t, float32(300), got.PointScale)
	})

	t.Run("Transform", func(t *testing.T) {
		f := newFixture(t)
		g := engine.NewGroup()
		decorate(g.Object(), "pivot")

		got := roundTrip(t, f, f.regs.Nodes, engine.Node(g)).Object()
		require.Equal(t, mgl32.Vec3{1, 2.5, -3}, got.Position)
		require.Equal(t, engine.Euler{X: 0.25, Y: -0.5, Z: 1, Order: "YXZ"}, got.Rotation)
		require.Equal(t, mgl32.Quat{W: 0.5, V: mgl32.Vec3{0.5, 0.5, 0.5}}, got.Quaternion)
		require.False(t, got.Visible)
		require.True(t, got.CastShadow)
		require.Equal(t, "pivot", got.UserData["tag"])
	})
}

func TestMaterialRoundTrip(t *testing.T) {
	f := newFixture(t)
	embedded := func() engine.Texture {
		return engine.NewTexture(&engine.Image{Format: "png", Width: 4, Height: 2, Data: f.png})
	}

	basic := engine.NewMeshBasicMaterial()
	basic.Color = engine.ColorFromHex(0x336699)
	basic.Map = embedded()
	basic.Transparent = true
	basic.Opacity = 0.5
	basic.Side = engine.DoubleSide

	standard := engine.NewMeshStandardMaterial()
	standard.Roughness = 0.25
	standard.NormalMap = embedded()

	shader := engine.NewShaderMaterial()
	shader.Uniforms["time"] = engine.Uniform{Type: "f", Value: 1.5}
	shader.VertexShader = "void main() {}"

	materials := []engine.Material{
		basic,
		engine.NewMeshLambertMaterial(),
		engine.NewMeshPhongMaterial(),
		standard,
		engine.NewMeshPhysicalMaterial(),
		engine.NewMeshToonMaterial(),
		engine.NewMeshNormalMaterial(),
		engine.NewMeshDepthMaterial(),
		shader,
		engine.NewRawShaderMaterial(),
		engine.NewShadowMaterial(),
		engine.NewSpriteMaterial(),
		engine.NewLineBasicMaterial(),
		engine.NewLineDashedMaterial(),
		engine.NewPointsMaterial(),
		engine.NewMultiMaterial(engine.NewMeshBasicMaterial(), nil, engine.NewMeshLambertMaterial()),
	}

	covered := make(map[engine.Kind]bool)
	for _, m := range materials {
		t.Run(m.Kind().String(), func(t *testing.T) {
			roundTrip(t, f, f.regs.Materials, m)
			covered[m.Kind()] = true
		})
	}
	for _, k := range f.regs.Materials.Kinds() {
		require.True(t, covered[k], "no round trip for %s", k)
	}

	t.Run("MultiMaterialKeepsEmptySlots", func(t *testing.T) {
		multi := materials[len(materials)-1]
		got := roundTrip(t, f, f.regs.Materials, multi).(*engine.MultiMaterial)
		require.Len(t, got.Materials, 3)
		require.Nil(t, got.Materials[1])
	})
}

func TestGeometryRoundTrip(t *testing.T) {
	f := newFixture(t)

	buffer := engine.NewBufferGeometry()
	buffer.Attributes["position"] = &engine.BufferAttribute{ItemSize: 3, Type: "Float32Array", Array: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}}
	buffer.Index = &engine.BufferAttribute{ItemSize: 1, Type: "Uint16Array", Array: []float32{0, 1, 2}}
	buffer.BoundingSphere = &engine.Sphere{Center: mgl32.Vec3{0.5, 0.5, 0}, Radius: 0.75}
	buffer.Groups = []engine.GeometryGroup{{Start: 0, Count: 3, MaterialIndex: 0}}

	instanced := engine.NewInstancedBufferGeometry(16)
	instanced.Attributes["offset"] = &engine.BufferAttribute{ItemSize: 3, Type: "Float32Array", Array: []float32{1, 2, 3}}

	shape := engine.Shape{Points: []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}}}

	geometries := []engine.Geometry{
		buffer,
		instanced,
		box(),
		engine.NewSphereGeometry(engine.SphereParams{Radius: 2, WidthSegments: 16, HeightSegments: 12, PhiLength: 6.2831855, ThetaLength: 3.1415927}),
		engine.NewCylinderGeometry(engine.CylinderParams{RadiusTop: 1, RadiusBottom: 1, Height: 2, RadialSegments: 8, HeightSegments: 1}),
		engine.NewConeGeometry(engine.ConeParams{Radius: 1, Height: 2, RadialSegments: 8, HeightSegments: 1}),
		engine.NewTorusGeometry(engine.TorusParams{Radius: 1, Tube: 0.4, RadialSegments: 8, TubularSegments: 6, Arc: 6.2831855}),
		engine.NewTorusKnotGeometry(engine.TorusKnotParams{Radius: 1, Tube: 0.4, TubularSegments: 64, RadialSegments: 8, P: 2, Q: 3}),
		engine.NewPlaneGeometry(engine.PlaneParams{Width: 10, Height: 10, WidthSegments: 1, HeightSegments: 1}),
		engine.NewCircleGeometry(engine.CircleParams{Radius: 1, Segments: 8}),
		engine.NewRingGeometry(engine.RingParams{InnerRadius: 0.5, OuterRadius: 1, ThetaSegments: 8, PhiSegments: 1}),
		engine.NewLatheGeometry(engine.LatheParams{Points: []mgl32.Vec2{{0, 0}, {1, 1}}, Segments: 12}),
		engine.NewExtrudeGeometry(engine.ExtrudeParams{Shapes: []engine.Shape{shape}, Depth: 1, Steps: 1}),
		engine.NewShapeGeometry(engine.ShapeParams{Shapes: []engine.Shape{shape}, CurveSegments: 12}),
		engine.NewPolyhedronGeometry(engine.PolyhedronParams{Vertices: []float32{1, 1, 1, -1, -1, 1}, Indices: []int{0, 1, 0}, Radius: 1}),
		engine.NewSolidGeometry(engine.KindIcosahedronGeometry, engine.SolidParams{Radius: 1, Detail: 2}),
		engine.NewSolidGeometry(engine.KindOctahedronGeometry, engine.SolidParams{Radius: 1}),
		engine.NewSolidGeometry(engine.KindTetrahedronGeometry, engine.SolidParams{Radius: 1}),
		engine.NewSolidGeometry(engine.KindDodecahedronGeometry, engine.SolidParams{Radius: 1}),
		engine.NewParametricGeometry(engine.ParametricParams{Function: "klein", Slices: 25, Stacks: 25}),
		engine.NewTextGeometry(engine.TextParams{Text: "Hi", Font: "fonts/helvetiker.json", Size: 1, Height: 0.2, CurveSegments: 12}),
		engine.NewTubeGeometry(engine.TubeParams{Path: []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}}, TubularSegments: 20, Radius: 0.5, RadialSegments: 8}),
	}

	covered := make(map[engine.Kind]bool)
	for _, g := range geometries {
		t.Run(g.Kind().String(), func(t *testing.T) {
			roundTrip(t, f, f.regs.Geometries, g)
			covered[g.Kind()] = true
		})
	}
	for _, k := range f.regs.Geometries.Kinds() {
		require.True(t, covered[k], "no round trip for %s", k)
	}

	t.Run("SolidKeepsItsKind", func(t *testing.T) {
		g := engine.NewSolidGeometry(engine.KindDodecahedronGeometry, engine.SolidParams{Radius: 3})
		got := roundTrip(t, f, f.regs.Geometries, engine.Geometry(g)).(*engine.SolidGeometry)
		require.Equal(t, engine.KindDodecahedronGeometry, got.Solid)
		require.Equal(t, float32(3), got.Params.Radius)
	})

	t.Run("TextGeometryTypeface", func(t *testing.T) {
		g := engine.NewTextGeometry(engine.TextParams{Text: "A", Font: "fonts/helvetiker.json"})
		got := roundTrip(t, f, f.regs.Geometries, engine.Geometry(g)).(*engine.TextGeometry)
		require.NotNil(t, got.Typeface)
		require.Equal(t, float32(720), got.Typeface.Glyphs["A"].Advance)
	})
}

func TestTextureRoundTrip(t *testing.T) {
	f := newFixture(t)
	embedded := func() *engine.Image {
		return &engine.Image{Format: "png", Width: 4, Height: 2, Data: f.png}
	}

	remote := engine.NewTexture(&engine.Image{Source: "textures/crate.png", Format: "png", Width: 4, Height: 2})
	remote.WrapS = 1000
	remote.Repeat = mgl32.Vec2{4, 4}

	var faces [6]*engine.Image
	for i := range faces {
		faces[i] = embedded()
	}

	textures := []engine.Texture{
		remote,
		engine.NewCanvasTexture(embedded()),
		engine.NewCompressedTexture([]engine.Mipmap{{Width: 4, Height: 4, Data: []byte{1, 2, 3, 4}}}, 33776),
		engine.NewCubeTexture(faces),
		engine.NewDataTexture([]float32{0, 0.5, 1, 1}, 1, 1),
		engine.NewDepthTexture(512, 512),
		engine.NewVideoTexture("videos/intro.mp4"),
	}

	covered := make(map[engine.Kind]bool)
	for _, tex := range textures {
		t.Run(tex.Kind().String(), func(t *testing.T) {
			roundTrip(t, f, f.regs.Textures, tex)
			covered[tex.Kind()] = true
		})
	}
	for _, k := range f.regs.Textures.Kinds() {
		require.True(t, covered[k], "no round trip for %s", k)
	}

	t.Run("EmbeddedImageNeedsNoFetcher", func(t *testing.T) {
		rc := *f.rc
		rc.Fetcher = nil
		frag := f.regs.Textures.Save(engine.NewCanvasTexture(embedded()))

		ctx := testContext(t)
		got, err := f.regs.Textures.Load(ctx, frag, &rc).Await(ctx)
		require.NoError(t, err)
		require.Equal(t, f.png, got.AsTextureBase().Image.Data)
	})

	t.Run("VideoFramesAreNotFetched", func(t *testing.T) {
		roundTrip(t, f, f.regs.Textures, engine.Texture(engine.NewVideoTexture("videos/intro.mp4")))
		require.Zero(t, f.fetcher.Calls(assetRoot+"videos/intro.mp4"))
	})
}

func TestShadowAndCameraRoundTrip(t *testing.T) {
	f := newFixture(t)

	for _, s := range []engine.LightShadow{
		engine.NewLightShadow(engine.NewPerspectiveCamera(90, 1, 0.5, 500)),
		engine.NewDirectionalLightShadow(),
		engine.NewSpotLightShadow(),
	} {
		t.Run(s.Kind().String(), func(t *testing.T) {
			roundTrip(t, f, f.regs.Shadows, s)
		})
	}

	view := engine.NewPerspectiveCamera(45, 2, 1, 100)
	view.View = &engine.CameraView{Enabled: true, FullWidth: 1920, FullHeight: 1080, Width: 960, Height: 540}
	for _, c := range []engine.Camera{engine.NewCamera(), view, engine.NewOrthographicCamera(-1, 1, 1, -1, 0.1, 10)} {
		t.Run(c.Kind().String(), func(t *testing.T) {
			roundTrip(t, f, f.regs.Cameras, c)
		})
	}
}

func TestEditorRoundTrip(t *testing.T) {
	f := newFixture(t)

	t.Run("Renderer", func(t *testing.T) {
		r := engine.NewRenderer(1280, 720)
		r.ToneMapping = 4
		got := roundTrip(t, f, f.regs.Renderers, r)
		require.Equal(t, 1280, got.Width)
		require.Equal(t, 4, got.ToneMapping)
	})

	t.Run("Script", func(t *testing.T) {
		s := engine.NewScript("spin", "this.rotation.y += 0.01;")
		got := roundTrip(t, f, f.regs.Scripts, s)
		require.Equal(t, s.UUID, got.UUID)
	})

	t.Run("Options", func(t *testing.T) {
		o := engine.Options{"grid": true, "snap": 0.5, "theme": "dark"}
		got := roundTrip(t, f, f.regs.Options, o)
		require.Equal(t, "dark", got["theme"])
	})
}
