package serializer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeusync/scenedoc/internal/engine"
)

type objectDoc struct {
	envelope
	objectFields
}

func writeObject3D(o *engine.Object3D, d *objectDoc) error {
	writeObject(o, &d.objectFields)
	return nil
}

func readObject3D(d *objectDoc, o *engine.Object3D, _ *loader) (*engine.Object3D, error) {
	if o == nil {
		o = engine.NewObject3D()
	}
	applyObject(&d.objectFields, o)
	return o, nil
}

func writeGroup(g *engine.Group, d *objectDoc) error {
	writeObject(g.Object(), &d.objectFields)
	return nil
}

func readGroup(d *objectDoc, g *engine.Group, _ *loader) (*engine.Group, error) {
	if g == nil {
		g = engine.NewGroup()
	}
	applyObject(&d.objectFields, g.Object())
	return g, nil
}

type fogDoc struct {
	Type    engine.FogType `json:"type"`
	Color   uint32         `json:"color"`
	Near    float32        `json:"near,omitempty"`
	Far     float32        `json:"far,omitempty"`
	Density float32        `json:"density,omitempty"`
}

type sceneDoc struct {
	envelope
	objectFields

	Background        *uint32  `json:"background,omitempty"`
	BackgroundTexture Fragment `json:"backgroundTexture,omitempty"`
	Environment       Fragment `json:"environment,omitempty"`
	Fog               *fogDoc  `json:"fog,omitempty"`
	OverrideMaterial  Fragment `json:"overrideMaterial,omitempty"`
	AutoUpdate        *bool    `json:"autoUpdate,omitempty"`
}

func (r *Registries) writeScene(s *engine.Scene, d *sceneDoc) error {
	writeObject(s.Object(), &d.objectFields)
	if s.BackgroundColor != nil {
		d.Background = hex(*s.BackgroundColor)
	}
	d.BackgroundTexture = r.Textures.Save(s.BackgroundTexture)
	d.Environment = r.Textures.Save(s.Environment)
	if f := s.Fog; f != nil {
		d.Fog = &fogDoc{Type: f.Type, Color: f.Color.Hex(), Near: f.Near, Far: f.Far, Density: f.Density}
	}
	d.OverrideMaterial = r.Materials.Save(s.OverrideMaterial)
	d.AutoUpdate = ptr(s.AutoUpdate)
	return nil
}

func readScene(d *sceneDoc, s *engine.Scene, l *loader) (*engine.Scene, error) {
	if s == nil {
		s = engine.NewScene()
	}
	applyObject(&d.objectFields, s.Object())
	if d.Background != nil {
		c := engine.ColorFromHex(*d.Background)
		s.BackgroundColor = &c
	}
	if f := d.Fog; f != nil {
		s.Fog = &engine.Fog{
			Type:    f.Type,
			Color:   engine.ColorFromHex(f.Color),
			Near:    f.Near,
			Far:     f.Far,
			Density: f.Density,
		}
	}
	set(&s.AutoUpdate, d.AutoUpdate)

	l.texture(d.BackgroundTexture, &s.BackgroundTexture)
	l.texture(d.Environment, &s.Environment)
	l.material(d.OverrideMaterial, &s.OverrideMaterial)
	return s, nil
}

// drawableDoc is shared by every node that renders a geometry with a material.
type drawableDoc struct {
	envelope
	objectFields

	Geometry Fragment `json:"geometry,omitempty"`
	Material Fragment `json:"material,omitempty"`
}

func (r *Registries) writeDrawable(o *engine.Object3D, g engine.Geometry, m engine.Material, d *drawableDoc) {
	writeObject(o, &d.objectFields)
	d.Geometry = r.Geometries.Save(g)
	d.Material = r.Materials.Save(m)
}

// readDrawable applies the node fields and starts loading geometry and
// material. Both are required.
func readDrawable(d *drawableDoc, o *engine.Object3D, g *engine.Geometry, m *engine.Material, l *loader) error {
	if !present(d.Geometry) {
		return &FieldError{Field: "geometry"}
	}
	if !present(d.Material) {
		return &FieldError{Field: "material"}
	}
	applyObject(&d.objectFields, o)
	l.geometry(d.Geometry, g)
	l.material(d.Material, m)
	return nil
}

func (r *Registries) writeMesh(m *engine.Mesh, d *drawableDoc) error {
	r.writeDrawable(m.Object(), m.Geometry, m.Material, d)
	return nil
}

func readMesh(d *drawableDoc, m *engine.Mesh, l *loader) (*engine.Mesh, error) {
	if m == nil {
		m = engine.NewMesh(nil, nil)
	}
	if err := readDrawable(d, m.Object(), &m.Geometry, &m.Material, l); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Registries) writePoints(p *engine.Points, d *drawableDoc) error {
	r.writeDrawable(p.Object(), p.Geometry, p.Material, d)
	return nil
}

func readPoints(d *drawableDoc, p *engine.Points, l *loader) (*engine.Points, error) {
	if p == nil {
		p = engine.NewPoints(nil, nil)
	}
	if err := readDrawable(d, p.Object(), &p.Geometry, &p.Material, l); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Registries) writeLine(ln *engine.Line, d *drawableDoc) error {
	r.writeDrawable(ln.Object(), ln.Geometry, ln.Material, d)
	return nil
}

func readLine(d *drawableDoc, ln *engine.Line, l *loader) (*engine.Line, error) {
	if ln == nil {
		ln = engine.NewLine(nil, nil)
	}
	if err := readDrawable(d, ln.Object(), &ln.Geometry, &ln.Material, l); err != nil {
		return nil, err
	}
	return ln, nil
}

func (r *Registries) writeLineSegments(ln *engine.LineSegments, d *drawableDoc) error {
	return r.writeLine(&ln.Line, d)
}

func readLineSegments(d *drawableDoc, ln *engine.LineSegments, l *loader) (*engine.LineSegments, error) {
	if ln == nil {
		ln = engine.NewLineSegments(nil, nil)
	}
	if _, err := readLine(d, &ln.Line, l); err != nil {
		return nil, err
	}
	return ln, nil
}

func (r *Registries) writeLineLoop(ln *engine.LineLoop, d *drawableDoc) error {
	return r.writeLine(&ln.Line, d)
}

func readLineLoop(d *drawableDoc, ln *engine.LineLoop, l *loader) (*engine.LineLoop, error) {
	if ln == nil {
		ln = engine.NewLineLoop(nil, nil)
	}
	if _, err := readLine(d, &ln.Line, l); err != nil {
		return nil, err
	}
	return ln, nil
}

type spriteDoc struct {
	envelope
	objectFields

	Material Fragment    `json:"material,omitempty"`
	Center   *mgl32.Vec2 `json:"center,omitempty"`
}

func (r *Registries) writeSprite(s *engine.Sprite, d *spriteDoc) error {
	writeObject(s.Object(), &d.objectFields)
	d.Material = r.Materials.Save(s.Material)
	d.Center = ptr(s.Center)
	return nil
}

func readSprite(d *spriteDoc, s *engine.Sprite, l *loader) (*engine.Sprite, error) {
	if !present(d.Material) {
		return nil, &FieldError{Field: "material"}
	}
	if s == nil {
		s = engine.NewSprite(nil)
	}
	applyObject(&d.objectFields, s.Object())
	set(&s.Center, d.Center)
	l.material(d.Material, &s.Material)
	return s, nil
}
