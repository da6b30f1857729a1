package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Material is implemented by every material, including MultiMaterial.
type Material interface {
	Entity
	AsMaterialBase() *MaterialBase
}

// Side selects which faces are rendered.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Blending modes.
const (
	NoBlending = iota
	NormalBlending
	AdditiveBlending
	SubtractiveBlending
	MultiplyBlending
	CustomBlending
)

// Plane is a clipping plane in Hessian normal form.
type Plane struct {
	Normal   mgl32.Vec3
	Constant float32
}

// MaterialBase holds the shading, blending, depth, stencil and clipping
// attributes every material shares.
type MaterialBase struct {
	UUID string
	Name string

	Side        Side
	ShadowSide  *Side
	Opacity     float32
	Transparent bool
	AlphaTest   float32
	Visible     bool

	Blending           int
	BlendSrc           int
	BlendDst           int
	BlendEquation      int
	BlendSrcAlpha      *int
	BlendDstAlpha      *int
	BlendEquationAlpha *int
	PremultipliedAlpha bool

	DepthFunc  int
	DepthTest  bool
	DepthWrite bool
	ColorWrite bool

	StencilWrite     bool
	StencilFunc      int
	StencilRef       int
	StencilFuncMask  int
	StencilFail      int
	StencilZFail     int
	StencilZPass     int
	StencilWriteMask int

	ClippingPlanes   []Plane
	ClipIntersection bool
	ClipShadows      bool

	PolygonOffset       bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32

	Dithering    bool
	VertexColors bool
	ToneMapped   bool
	Precision    string

	UserData map[string]any
}

func (m *MaterialBase) AsMaterialBase() *MaterialBase { return m }

func (m *MaterialBase) initMaterial() {
	m.UUID = uuid.NewString()
	m.Opacity = 1
	m.Visible = true
	m.Blending = NormalBlending
	m.BlendSrc = 204
	m.BlendDst = 205
	m.BlendEquation = 100
	m.DepthFunc = 3
	m.DepthTest = true
	m.DepthWrite = true
	m.ColorWrite = true
	m.StencilFunc = 519
	m.StencilFuncMask = 0xff
	m.StencilWriteMask = 0xff
	m.StencilFail = 7680
	m.StencilZFail = 7680
	m.StencilZPass = 7680
	m.ToneMapped = true
}

type MeshBasicMaterial struct {
	MaterialBase

	Color              Color
	Map                Texture
	AlphaMap           Texture
	AOMap              Texture
	AOMapIntensity     float32
	EnvMap             Texture
	LightMap           Texture
	LightMapIntensity  float32
	SpecularMap        Texture
	Combine            int
	Reflectivity       float32
	RefractionRatio    float32
	Wireframe          bool
	WireframeLinewidth float32
	Fog                bool
}

func NewMeshBasicMaterial() *MeshBasicMaterial {
	m := &MeshBasicMaterial{
		Color:              ColorFromHex(0xffffff),
		AOMapIntensity:     1,
		LightMapIntensity:  1,
		Reflectivity:       1,
		RefractionRatio:    0.98,
		WireframeLinewidth: 1,
		Fog:                true,
	}
	m.initMaterial()
	return m
}

func (*MeshBasicMaterial) Kind() Kind { return KindMeshBasicMaterial }

type MeshLambertMaterial struct {
	MaterialBase

	Color             Color
	Emissive          Color
	EmissiveIntensity float32
	Map               Texture
	EmissiveMap       Texture
	AlphaMap          Texture
	EnvMap            Texture
	Reflectivity      float32
	Wireframe         bool
	Fog               bool
}

func NewMeshLambertMaterial() *MeshLambertMaterial {
	m := &MeshLambertMaterial{Color: ColorFromHex(0xffffff), EmissiveIntensity: 1, Reflectivity: 1, Fog: true}
	m.initMaterial()
	return m
}

func (*MeshLambertMaterial) Kind() Kind { return KindMeshLambertMaterial }

type MeshPhongMaterial struct {
	MaterialBase

	Color             Color
	Emissive          Color
	EmissiveIntensity float32
	Specular          Color
	Shininess         float32
	Map               Texture
	NormalMap         Texture
	NormalScale       mgl32.Vec2
	BumpMap           Texture
	BumpScale         float32
	SpecularMap       Texture
	EmissiveMap       Texture
	FlatShading       bool
	Wireframe         bool
	Fog               bool
}

func NewMeshPhongMaterial() *MeshPhongMaterial {
	m := &MeshPhongMaterial{
		Color:             ColorFromHex(0xffffff),
		EmissiveIntensity: 1,
		Specular:          ColorFromHex(0x111111),
		Shininess:         30,
		NormalScale:       mgl32.Vec2{1, 1},
		BumpScale:         1,
		Fog:               true,
	}
	m.initMaterial()
	return m
}

func (*MeshPhongMaterial) Kind() Kind { return KindMeshPhongMaterial }

type MeshStandardMaterial struct {
	MaterialBase

	Color             Color
	Emissive          Color
	EmissiveIntensity float32
	Roughness         float32
	Metalness         float32
	Map               Texture
	NormalMap         Texture
	NormalScale       mgl32.Vec2
	RoughnessMap      Texture
	MetalnessMap      Texture
	EmissiveMap       Texture
	EnvMap            Texture
	EnvMapIntensity   float32
	FlatShading       bool
	Wireframe         bool
	Fog               bool
}

func NewMeshStandardMaterial() *MeshStandardMaterial {
	m := &MeshStandardMaterial{}
	m.initStandard()
	return m
}

func (m *MeshStandardMaterial) initStandard() {
	m.initMaterial()
	m.Color = ColorFromHex(0xffffff)
	m.EmissiveIntensity = 1
	m.Roughness = 1
	m.NormalScale = mgl32.Vec2{1, 1}
	m.EnvMapIntensity = 1
	m.Fog = true
}

func (*MeshStandardMaterial) Kind() Kind { return KindMeshStandardMaterial }

type MeshPhysicalMaterial struct {
	MeshStandardMaterial

	Clearcoat          float32
	ClearcoatRoughness float32
	IOR                float32
	Reflectivity       float32
	Sheen              float32
	SheenColor         Color
	Transmission       float32
	Thickness          float32
}

func NewMeshPhysicalMaterial() *MeshPhysicalMaterial {
	m := &MeshPhysicalMaterial{IOR: 1.5, Reflectivity: 0.5}
	m.initStandard()
	return m
}

func (*MeshPhysicalMaterial) Kind() Kind { return KindMeshPhysicalMaterial }

type MeshToonMaterial struct {
	MaterialBase

	Color             Color
	Emissive          Color
	EmissiveIntensity float32
	Map               Texture
	GradientMap       Texture
	Wireframe         bool
	Fog               bool
}

func NewMeshToonMaterial() *MeshToonMaterial {
	m := &MeshToonMaterial{Color: ColorFromHex(0xffffff), EmissiveIntensity: 1, Fog: true}
	m.initMaterial()
	return m
}

func (*MeshToonMaterial) Kind() Kind { return KindMeshToonMaterial }

type MeshNormalMaterial struct {
	MaterialBase

	FlatShading bool
	Wireframe   bool
}

func NewMeshNormalMaterial() *MeshNormalMaterial {
	m := &MeshNormalMaterial{}
	m.initMaterial()
	return m
}

func (*MeshNormalMaterial) Kind() Kind { return KindMeshNormalMaterial }

type MeshDepthMaterial struct {
	MaterialBase

	DepthPacking int
	Wireframe    bool
}

func NewMeshDepthMaterial() *MeshDepthMaterial {
	m := &MeshDepthMaterial{DepthPacking: 3200}
	m.initMaterial()
	return m
}

func (*MeshDepthMaterial) Kind() Kind { return KindMeshDepthMaterial }

// Uniform is one named shader input. Value holds JSON-compatible data:
// numbers, booleans, number arrays, or a color hex under Type "c".
type Uniform struct {
	Type  string
	Value any
}

type ShaderMaterial struct {
	MaterialBase

	Uniforms       map[string]Uniform
	Defines        map[string]any
	VertexShader   string
	FragmentShader string
	Lights         bool
	Fog            bool
	Wireframe      bool
}

func NewShaderMaterial() *ShaderMaterial {
	m := &ShaderMaterial{Uniforms: map[string]Uniform{}}
	m.initMaterial()
	return m
}

func (*ShaderMaterial) Kind() Kind { return KindShaderMaterial }

type RawShaderMaterial struct {
	ShaderMaterial
}

func NewRawShaderMaterial() *RawShaderMaterial {
	m := &RawShaderMaterial{ShaderMaterial: ShaderMaterial{Uniforms: map[string]Uniform{}}}
	m.initMaterial()
	return m
}

func (*RawShaderMaterial) Kind() Kind { return KindRawShaderMaterial }

// ShadowMaterial only receives shadows.
type ShadowMaterial struct {
	MaterialBase

	Color Color
}

func NewShadowMaterial() *ShadowMaterial {
	m := &ShadowMaterial{}
	m.initMaterial()
	m.Transparent = true
	return m
}

func (*ShadowMaterial) Kind() Kind { return KindShadowMaterial }

type SpriteMaterial struct {
	MaterialBase

	Color           Color
	Map             Texture
	AlphaMap        Texture
	Rotation        float32
	SizeAttenuation bool
}

func NewSpriteMaterial() *SpriteMaterial {
	m := &SpriteMaterial{Color: ColorFromHex(0xffffff), SizeAttenuation: true}
	m.initMaterial()
	m.Transparent = true
	return m
}

func (*SpriteMaterial) Kind() Kind { return KindSpriteMaterial }

type LineBasicMaterial struct {
	MaterialBase

	Color     Color
	Linewidth float32
	Linecap   string
	Linejoin  string
}

func NewLineBasicMaterial() *LineBasicMaterial {
	m := &LineBasicMaterial{}
	m.initLine()
	return m
}

func (m *LineBasicMaterial) initLine() {
	m.initMaterial()
	m.Color = ColorFromHex(0xffffff)
	m.Linewidth = 1
	m.Linecap = "round"
	m.Linejoin = "round"
}

func (*LineBasicMaterial) Kind() Kind { return KindLineBasicMaterial }

type LineDashedMaterial struct {
	LineBasicMaterial

	Scale    float32
	DashSize float32
	GapSize  float32
}

func NewLineDashedMaterial() *LineDashedMaterial {
	m := &LineDashedMaterial{Scale: 1, DashSize: 3, GapSize: 1}
	m.initLine()
	return m
}

func (*LineDashedMaterial) Kind() Kind { return KindLineDashedMaterial }

type PointsMaterial struct {
	MaterialBase

	Color           Color
	Map             Texture
	AlphaMap        Texture
	Size            float32
	SizeAttenuation bool
}

func NewPointsMaterial() *PointsMaterial {
	m := &PointsMaterial{Color: ColorFromHex(0xffffff), Size: 1, SizeAttenuation: true}
	m.initMaterial()
	return m
}

func (*PointsMaterial) Kind() Kind { return KindPointsMaterial }

// MultiMaterial assigns one material per geometry group.
type MultiMaterial struct {
	MaterialBase

	Materials []Material
}

func NewMultiMaterial(materials ...Material) *MultiMaterial {
	m := &MultiMaterial{Materials: materials}
	m.initMaterial()
	return m
}

func (*MultiMaterial) Kind() Kind { return KindMultiMaterial }
