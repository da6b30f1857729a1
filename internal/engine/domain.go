package engine

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"
)

// Audio is a positional sound source bound to the listener on a camera.
type Audio struct {
	Object3D

	URL          string
	Autoplay     bool
	Loop         bool
	Volume       float32
	PlaybackRate float32

	// Listener and Buffer are runtime state populated on reconstruction.
	Listener Camera
	Buffer   []byte
}

func NewAudio(url string) *Audio {
	a := &Audio{URL: url, Volume: 1, PlaybackRate: 1}
	a.init()
	return a
}

func (*Audio) Kind() Kind { return KindAudio }

// Sky is an atmospheric scattering dome.
type Sky struct {
	Object3D

	Turbidity       float32
	Rayleigh        float32
	MieCoefficient  float32
	MieDirectionalG float32
	Luminance       float32
	SunPosition     mgl32.Vec3
}

func NewSky() *Sky {
	s := &Sky{
		Turbidity:       10,
		Rayleigh:        2,
		MieCoefficient:  0.005,
		MieDirectionalG: 0.8,
		Luminance:       1,
		SunPosition:     mgl32.Vec3{0, 1, 0},
	}
	s.init()
	return s
}

func (*Sky) Kind() Kind { return KindSky }

// Fire is a volumetric flame rendered as camera-facing slices.
type Fire struct {
	Object3D

	Width        float32
	Height       float32
	Depth        float32
	SliceSpacing float32

	Camera Camera
}

func NewFire(camera Camera) *Fire {
	f := &Fire{Width: 2, Height: 4, Depth: 2, SliceSpacing: 0.5, Camera: camera}
	f.init()
	return f
}

func (*Fire) Kind() Kind { return KindFire }

type Smoke struct {
	Object3D

	Size     float32
	Lifetime float32

	Camera   Camera
	Renderer *Renderer
}

func NewSmoke(camera Camera, renderer *Renderer) *Smoke {
	s := &Smoke{Size: 2, Lifetime: 10, Camera: camera, Renderer: renderer}
	s.init()
	return s
}

func (*Smoke) Kind() Kind { return KindSmoke }

// ParticleEmitter spawns billboards; PointScale follows the render target height.
type ParticleEmitter struct {
	Object3D

	MaxParticles   int
	PositionSpread mgl32.Vec3
	Velocity       mgl32.Vec3
	VelocitySpread mgl32.Vec3
	Acceleration   mgl32.Vec3
	ColorStart     Color
	ColorEnd       Color
	SizeStart      float32
	SizeEnd        float32
	Lifetime       float32
	Texture        string

	PointScale float32
}

func NewParticleEmitter(renderer *Renderer) *ParticleEmitter {
	p := &ParticleEmitter{
		MaxParticles: 1000,
		Velocity:     mgl32.Vec3{0, 1, 0},
		ColorStart:   ColorFromHex(0xffffff),
		ColorEnd:     ColorFromHex(0xffffff),
		SizeStart:    1,
		SizeEnd:      1,
		Lifetime:     2,
	}
	p.init()
	p.Resize(renderer)
	return p
}

// Resize recomputes the point scale for the renderer's drawing buffer.
func (p *ParticleEmitter) Resize(renderer *Renderer) {
	if renderer == nil {
		return
	}
	p.PointScale = float32(renderer.Height) / 2
}

func (*ParticleEmitter) Kind() Kind { return KindParticleEmitter }

// PointMarker is a labelled pin.
type PointMarker struct {
	Object3D

	Text  string
	Color Color
	Size  float32
}

func NewPointMarker(text string) *PointMarker {
	m := &PointMarker{Text: text, Color: ColorFromHex(0xffffff), Size: 1}
	m.init()
	return m
}

func (*PointMarker) Kind() Kind { return KindPointMarker }

// UnscaledText keeps a constant on-screen size regardless of distance.
type UnscaledText struct {
	Object3D

	Text     string
	Color    Color
	FontSize float32
}

func NewUnscaledText(text string) *UnscaledText {
	t := &UnscaledText{Text: text, Color: ColorFromHex(0xffffff), FontSize: 16}
	t.init()
	return t
}

func (*UnscaledText) Kind() Kind { return KindUnscaledText }

// Text3D is extruded text built from a remote typeface.
type Text3D struct {
	Object3D

	Text   string
	Font   string
	Size   float32
	Height float32
	Color  Color

	Typeface *Typeface
}

func NewText3D(text, font string) *Text3D {
	t := &Text3D{Text: text, Font: font, Size: 1, Height: 0.2, Color: ColorFromHex(0xffffff)}
	t.init()
	return t
}

func (*Text3D) Kind() Kind { return KindText3D }

// CurveLine is a line drawn along a parametric curve.
type CurveLine struct {
	Object3D

	Segments int
	Color    Color
}

func (c *CurveLine) initCurve() {
	c.init()
	c.Segments = 64
	c.Color = ColorFromHex(0xffffff)
}

type CatmullRomCurve struct {
	CurveLine

	Points    []mgl32.Vec3
	Closed    bool
	CurveType string
	Tension   float32
}

func NewCatmullRomCurve(points []mgl32.Vec3) *CatmullRomCurve {
	c := &CatmullRomCurve{Points: points, CurveType: "centripetal", Tension: 0.5}
	c.initCurve()
	return c
}

func (*CatmullRomCurve) Kind() Kind { return KindCatmullRomCurve }

type QuadraticBezierCurve struct {
	CurveLine

	V0, V1, V2 mgl32.Vec3
}

func NewQuadraticBezierCurve(v0, v1, v2 mgl32.Vec3) *QuadraticBezierCurve {
	c := &QuadraticBezierCurve{V0: v0, V1: v1, V2: v2}
	c.initCurve()
	return c
}

func (*QuadraticBezierCurve) Kind() Kind { return KindQuadraticBezierCurve }

type CubicBezierCurve struct {
	CurveLine

	V0, V1, V2, V3 mgl32.Vec3
}

func NewCubicBezierCurve(v0, v1, v2, v3 mgl32.Vec3) *CubicBezierCurve {
	c := &CubicBezierCurve{V0: v0, V1: v1, V2: v2, V3: v3}
	c.initCurve()
	return c
}

func (*CubicBezierCurve) Kind() Kind { return KindCubicBezierCurve }

type LineCurve struct {
	CurveLine

	V1, V2 mgl32.Vec3
}

func NewLineCurve(v1, v2 mgl32.Vec3) *LineCurve {
	c := &LineCurve{V1: v1, V2: v2}
	c.initCurve()
	c.Segments = 1
	return c
}

func (*LineCurve) Kind() Kind { return KindLineCurve }

// ModelDecoder turns fetched model bytes into nodes. Format is the declared
// file format such as "gltf", "glb", "fbx" or "obj".
type ModelDecoder interface {
	Decode(ctx context.Context, format string, data []byte) ([]Node, error)
}

// ServerModel is a model stored on the asset server and fetched on load.
type ServerModel struct {
	Object3D

	URL    string
	Format string

	// Data holds the uncompressed model bytes; Content the decoded nodes.
	Data    []byte
	Content []Node
}

func NewServerModel(url, format string) *ServerModel {
	m := &ServerModel{URL: url, Format: format}
	m.init()
	return m
}

func (*ServerModel) Kind() Kind { return KindServerModel }

type Water struct {
	Object3D

	Width        float32
	Depth        float32
	Distortion   float32
	SunDirection mgl32.Vec3
}

func NewWater() *Water {
	w := &Water{Width: 1000, Depth: 1000, Distortion: 3.7, SunDirection: mgl32.Vec3{0.7, 0.7, 0}}
	w.init()
	return w
}

func (*Water) Kind() Kind { return KindWater }

type Cloth struct {
	Object3D

	Segments int
}

func NewCloth() *Cloth {
	c := &Cloth{Segments: 10}
	c.init()
	return c
}

func (*Cloth) Kind() Kind { return KindCloth }

type PerlinTerrain struct {
	Object3D

	Width   int
	Depth   int
	Quality float32
}

func NewPerlinTerrain() *PerlinTerrain {
	t := &PerlinTerrain{Width: 1000, Depth: 1000, Quality: 80}
	t.init()
	return t
}

func (*PerlinTerrain) Kind() Kind { return KindPerlinTerrain }
