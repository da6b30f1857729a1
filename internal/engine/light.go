package engine

import "github.com/go-gl/mathgl/mgl32"

// Light is implemented by every light node.
type Light interface {
	Node
	AsLightBase() *LightBase
}

// LightBase holds what every light shares.
type LightBase struct {
	Object3D

	Color     Color
	Intensity float32
}

func (l *LightBase) AsLightBase() *LightBase { return l }

func (l *LightBase) initLight(color Color, intensity float32) {
	l.init()
	l.Color = color
	l.Intensity = intensity
}

type AmbientLight struct {
	LightBase
}

func NewAmbientLight(color Color, intensity float32) *AmbientLight {
	l := &AmbientLight{}
	l.initLight(color, intensity)
	return l
}

func (*AmbientLight) Kind() Kind { return KindAmbientLight }

// DirectionalLight shines from its position toward Target.
type DirectionalLight struct {
	LightBase

	// Target is the UUID of the object the light points at.
	Target string
	Shadow LightShadow
}

func NewDirectionalLight(color Color, intensity float32) *DirectionalLight {
	l := &DirectionalLight{Shadow: NewDirectionalLightShadow()}
	l.initLight(color, intensity)
	l.Position = mgl32.Vec3{0, 1, 0}
	return l
}

func (*DirectionalLight) Kind() Kind { return KindDirectionalLight }

type PointLight struct {
	LightBase

	Distance float32
	Decay    float32
	Shadow   LightShadow
}

func NewPointLight(color Color, intensity, distance, decay float32) *PointLight {
	s := NewLightShadow(NewPerspectiveCamera(90, 1, 0.5, 500))
	l := &PointLight{Distance: distance, Decay: decay, Shadow: s}
	l.initLight(color, intensity)
	return l
}

func (*PointLight) Kind() Kind { return KindPointLight }

type SpotLight struct {
	LightBase

	Distance float32
	Angle    float32
	Penumbra float32
	Decay    float32
	Target   string
	Shadow   LightShadow
}

func NewSpotLight(color Color, intensity, distance, angle, penumbra, decay float32) *SpotLight {
	l := &SpotLight{
		Distance: distance,
		Angle:    angle,
		Penumbra: penumbra,
		Decay:    decay,
		Shadow:   NewSpotLightShadow(),
	}
	l.initLight(color, intensity)
	l.Position = mgl32.Vec3{0, 1, 0}
	return l
}

func (*SpotLight) Kind() Kind { return KindSpotLight }

type HemisphereLight struct {
	LightBase

	GroundColor Color
}

func NewHemisphereLight(sky, ground Color, intensity float32) *HemisphereLight {
	l := &HemisphereLight{GroundColor: ground}
	l.initLight(sky, intensity)
	l.Position = mgl32.Vec3{0, 1, 0}
	return l
}

func (*HemisphereLight) Kind() Kind { return KindHemisphereLight }

type RectAreaLight struct {
	LightBase

	Width  float32
	Height float32
}

func NewRectAreaLight(color Color, intensity, width, height float32) *RectAreaLight {
	l := &RectAreaLight{Width: width, Height: height}
	l.initLight(color, intensity)
	return l
}

func (*RectAreaLight) Kind() Kind { return KindRectAreaLight }

// LightShadow is implemented by every shadow caster configuration.
type LightShadow interface {
	Entity
	AsShadowBase() *ShadowBase
}

// ShadowBase is the generic shadow, used as-is by point lights.
type ShadowBase struct {
	Bias       float32
	NormalBias float32
	Radius     float32
	MapSize    mgl32.Vec2
	Camera     Camera
}

func NewLightShadow(camera Camera) *ShadowBase {
	return &ShadowBase{Radius: 1, MapSize: mgl32.Vec2{512, 512}, Camera: camera}
}

func (s *ShadowBase) AsShadowBase() *ShadowBase { return s }
func (*ShadowBase) Kind() Kind                  { return KindLightShadow }

type DirectionalLightShadow struct {
	ShadowBase
}

func NewDirectionalLightShadow() *DirectionalLightShadow {
	return &DirectionalLightShadow{
		ShadowBase: *NewLightShadow(NewOrthographicCamera(-5, 5, 5, -5, 0.5, 500)),
	}
}

func (*DirectionalLightShadow) Kind() Kind { return KindDirectionalLightShadow }

type SpotLightShadow struct {
	ShadowBase

	Focus float32
}

func NewSpotLightShadow() *SpotLightShadow {
	return &SpotLightShadow{
		ShadowBase: *NewLightShadow(NewPerspectiveCamera(50, 1, 0.5, 500)),
		Focus:      1,
	}
}

func (*SpotLightShadow) Kind() Kind { return KindSpotLightShadow }
