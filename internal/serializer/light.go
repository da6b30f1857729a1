package serializer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeusync/scenedoc/internal/engine"
)

type lightFields struct {
	objectFields

	Color     *uint32 `json:"color,omitempty"`
	Intensity float32 `json:"intensity"`
}

func writeLightFields(l *engine.LightBase, d *lightFields) {
	writeObject(l.Object(), &d.objectFields)
	d.Color = hex(l.Color)
	d.Intensity = l.Intensity
}

func applyLightFields(d *lightFields, l *engine.LightBase) {
	applyObject(&d.objectFields, l.Object())
	setColor(&l.Color, d.Color)
	l.Intensity = d.Intensity
}

type ambientDoc struct {
	envelope
	lightFields
}

func writeAmbient(l *engine.AmbientLight, d *ambientDoc) error {
	writeLightFields(l.AsLightBase(), &d.lightFields)
	return nil
}

func readAmbient(d *ambientDoc, l *engine.AmbientLight, _ *loader) (*engine.AmbientLight, error) {
	if l == nil {
		l = engine.NewAmbientLight(engine.ColorFromHex(0xffffff), 1)
	}
	applyLightFields(&d.lightFields, l.AsLightBase())
	return l, nil
}

type directionalDoc struct {
	envelope
	lightFields

	Target string   `json:"target,omitempty"`
	Shadow Fragment `json:"shadow,omitempty"`
}

func (r *Registries) writeDirectional(l *engine.DirectionalLight, d *directionalDoc) error {
	writeLightFields(l.AsLightBase(), &d.lightFields)
	d.Target = l.Target
	d.Shadow = r.Shadows.Save(l.Shadow)
	return nil
}

func readDirectional(d *directionalDoc, l *engine.DirectionalLight, ld *loader) (*engine.DirectionalLight, error) {
	if l == nil {
		l = engine.NewDirectionalLight(engine.ColorFromHex(0xffffff), 1)
	}
	applyLightFields(&d.lightFields, l.AsLightBase())
	l.Target = d.Target
	ld.shadow(d.Shadow, &l.Shadow)
	return l, nil
}

type pointLightDoc struct {
	envelope
	lightFields

	Distance float32  `json:"distance"`
	Decay    float32  `json:"decay"`
	Shadow   Fragment `json:"shadow,omitempty"`
}

func (r *Registries) writePointLight(l *engine.PointLight, d *pointLightDoc) error {
	writeLightFields(l.AsLightBase(), &d.lightFields)
	d.Distance = l.Distance
	d.Decay = l.Decay
	d.Shadow = r.Shadows.Save(l.Shadow)
	return nil
}

func readPointLight(d *pointLightDoc, l *engine.PointLight, ld *loader) (*engine.PointLight, error) {
	if l == nil {
		l = engine.NewPointLight(engine.ColorFromHex(0xffffff), 1, d.Distance, d.Decay)
	}
	applyLightFields(&d.lightFields, l.AsLightBase())
	l.Distance = d.Distance
	l.Decay = d.Decay
	ld.shadow(d.Shadow, &l.Shadow)
	return l, nil
}

type spotDoc struct {
	envelope
	lightFields

	Distance float32  `json:"distance"`
	Angle    float32  `json:"angle"`
	Penumbra float32  `json:"penumbra"`
	Decay    float32  `json:"decay"`
	Target   string   `json:"target,omitempty"`
	Shadow   Fragment `json:"shadow,omitempty"`
}

func (r *Registries) writeSpot(l *engine.SpotLight, d *spotDoc) error {
	writeLightFields(l.AsLightBase(), &d.lightFields)
	d.Distance = l.Distance
	d.Angle = l.Angle
	d.Penumbra = l.Penumbra
	d.Decay = l.Decay
	d.Target = l.Target
	d.Shadow = r.Shadows.Save(l.Shadow)
	return nil
}

func readSpot(d *spotDoc, l *engine.SpotLight, ld *loader) (*engine.SpotLight, error) {
	if l == nil {
		l = engine.NewSpotLight(engine.ColorFromHex(0xffffff), 1, d.Distance, d.Angle, d.Penumbra, d.Decay)
	}
	applyLightFields(&d.lightFields, l.AsLightBase())
	l.Distance = d.Distance
	l.Angle = d.Angle
	l.Penumbra = d.Penumbra
	l.Decay = d.Decay
	l.Target = d.Target
	ld.shadow(d.Shadow, &l.Shadow)
	return l, nil
}

type hemisphereDoc struct {
	envelope
	lightFields

	GroundColor *uint32 `json:"groundColor,omitempty"`
}

func writeHemisphere(l *engine.HemisphereLight, d *hemisphereDoc) error {
	writeLightFields(l.AsLightBase(), &d.lightFields)
	d.GroundColor = hex(l.GroundColor)
	return nil
}

func readHemisphere(d *hemisphereDoc, l *engine.HemisphereLight, _ *loader) (*engine.HemisphereLight, error) {
	if l == nil {
		l = engine.NewHemisphereLight(engine.ColorFromHex(0xffffff), engine.ColorFromHex(0xffffff), 1)
	}
	applyLightFields(&d.lightFields, l.AsLightBase())
	setColor(&l.GroundColor, d.GroundColor)
	return l, nil
}

type rectAreaDoc struct {
	envelope
	lightFields

	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

func writeRectArea(l *engine.RectAreaLight, d *rectAreaDoc) error {
	writeLightFields(l.AsLightBase(), &d.lightFields)
	d.Width = l.Width
	d.Height = l.Height
	return nil
}

func readRectArea(d *rectAreaDoc, l *engine.RectAreaLight, _ *loader) (*engine.RectAreaLight, error) {
	if l == nil {
		l = engine.NewRectAreaLight(engine.ColorFromHex(0xffffff), 1, d.Width, d.Height)
	}
	applyLightFields(&d.lightFields, l.AsLightBase())
	l.Width = d.Width
	l.Height = d.Height
	return l, nil
}

type shadowFields struct {
	Bias       float32     `json:"bias"`
	NormalBias float32     `json:"normalBias"`
	Radius     float32     `json:"radius"`
	MapSize    *mgl32.Vec2 `json:"mapSize,omitempty"`
	Camera     Fragment    `json:"camera,omitempty"`
}

func (r *Registries) writeShadowFields(s *engine.ShadowBase, d *shadowFields) {
	d.Bias = s.Bias
	d.NormalBias = s.NormalBias
	d.Radius = s.Radius
	d.MapSize = ptr(s.MapSize)
	d.Camera = r.Cameras.Save(s.Camera)
}

func applyShadowFields(d *shadowFields, s *engine.ShadowBase, l *loader) {
	s.Bias = d.Bias
	s.NormalBias = d.NormalBias
	s.Radius = d.Radius
	set(&s.MapSize, d.MapSize)
	l.camera(d.Camera, &s.Camera)
}

type shadowDoc struct {
	envelope
	shadowFields
}

func (r *Registries) writeShadow(s *engine.ShadowBase, d *shadowDoc) error {
	r.writeShadowFields(s, &d.shadowFields)
	return nil
}

func readShadow(d *shadowDoc, s *engine.ShadowBase, l *loader) (*engine.ShadowBase, error) {
	if s == nil {
		s = engine.NewLightShadow(nil)
	}
	applyShadowFields(&d.shadowFields, s, l)
	return s, nil
}

func (r *Registries) writeDirectionalShadow(s *engine.DirectionalLightShadow, d *shadowDoc) error {
	r.writeShadowFields(s.AsShadowBase(), &d.shadowFields)
	return nil
}

func readDirectionalShadow(d *shadowDoc, s *engine.DirectionalLightShadow, l *loader) (*engine.DirectionalLightShadow, error) {
	if s == nil {
		s = engine.NewDirectionalLightShadow()
	}
	applyShadowFields(&d.shadowFields, s.AsShadowBase(), l)
	return s, nil
}

type spotShadowDoc struct {
	envelope
	shadowFields

	Focus float32 `json:"focus"`
}

func (r *Registries) writeSpotShadow(s *engine.SpotLightShadow, d *spotShadowDoc) error {
	r.writeShadowFields(s.AsShadowBase(), &d.shadowFields)
	d.Focus = s.Focus
	return nil
}

func readSpotShadow(d *spotShadowDoc, s *engine.SpotLightShadow, l *loader) (*engine.SpotLightShadow, error) {
	if s == nil {
		s = engine.NewSpotLightShadow()
	}
	applyShadowFields(&d.shadowFields, s.AsShadowBase(), l)
	s.Focus = d.Focus
	return s, nil
}
