package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/engine"
)

type box3Doc struct {
	Min mgl32.Vec3 `json:"min"`
	Max mgl32.Vec3 `json:"max"`
}

type sphereDoc struct {
	Center mgl32.Vec3 `json:"center"`
	Radius float32    `json:"radius"`
}

type drawRangeDoc struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

type groupDoc struct {
	Start         int `json:"start"`
	Count         int `json:"count"`
	MaterialIndex int `json:"materialIndex"`
}

type geometryFields struct {
	UUID string `json:"uuid"`
	Name string `json:"name,omitempty"`

	BoundingBox          *box3Doc      `json:"boundingBox,omitempty"`
	BoundingSphere       *sphereDoc    `json:"boundingSphere,omitempty"`
	DrawRange            *drawRangeDoc `json:"drawRange,omitempty"`
	Groups               []groupDoc    `json:"groups,omitempty"`
	MorphTargetsRelative bool          `json:"morphTargetsRelative,omitempty"`
	NeedsUpdate          bool          `json:"needsUpdate,omitempty"`

	UserData map[string]any `json:"userData,omitempty"`
}

func writeGeometryFields(g *engine.GeometryBase, d *geometryFields) {
	d.UUID = g.UUID
	d.Name = g.Name
	if b := g.BoundingBox; b != nil {
		d.BoundingBox = &box3Doc{Min: b.Min, Max: b.Max}
	}
	if s := g.BoundingSphere; s != nil {
		d.BoundingSphere = &sphereDoc{Center: s.Center, Radius: s.Radius}
	}
	d.DrawRange = &drawRangeDoc{Start: g.DrawRange.Start, Count: g.DrawRange.Count}
	for _, gr := range g.Groups {
		d.Groups = append(d.Groups, groupDoc(gr))
	}
	d.MorphTargetsRelative = g.MorphTargetsRelative
	d.NeedsUpdate = g.NeedsUpdate
	d.UserData = g.UserData
}

func applyGeometryFields(d *geometryFields, g *engine.GeometryBase) {
	if d.UUID != "" {
		g.UUID = d.UUID
	}
	g.Name = d.Name
	g.BoundingBox = nil
	if b := d.BoundingBox; b != nil {
		g.BoundingBox = &engine.Box3{Min: b.Min, Max: b.Max}
	}
	g.BoundingSphere = nil
	if s := d.BoundingSphere; s != nil {
		g.BoundingSphere = &engine.Sphere{Center: s.Center, Radius: s.Radius}
	}
	if r := d.DrawRange; r != nil {
		g.DrawRange = engine.DrawRange{Start: r.Start, Count: r.Count}
	}
	g.Groups = nil
	for _, gr := range d.Groups {
		g.Groups = append(g.Groups, engine.GeometryGroup(gr))
	}
	g.MorphTargetsRelative = d.MorphTargetsRelative
	g.NeedsUpdate = d.NeedsUpdate
	if d.UserData != nil {
		g.UserData = d.UserData
	}
}

type attributeDoc struct {
	ItemSize   int       `json:"itemSize"`
	Type       string    `json:"type"`
	Array      []float32 `json:"array"`
	Normalized bool      `json:"normalized,omitempty"`
}

func writeAttribute(a *engine.BufferAttribute) *attributeDoc {
	if a == nil {
		return nil
	}
	d := attributeDoc(*a)
	return &d
}

func readAttribute(d *attributeDoc) *engine.BufferAttribute {
	if d == nil {
		return nil
	}
	a := engine.BufferAttribute(*d)
	return &a
}

type bufferDoc struct {
	envelope
	geometryFields

	Attributes    map[string]*attributeDoc `json:"attributes"`
	Index         *attributeDoc            `json:"index,omitempty"`
	InstanceCount *int                     `json:"instanceCount,omitempty"`
}

func writeBufferFields(g *engine.BufferGeometry, d *bufferDoc) {
	writeGeometryFields(g.AsGeometryBase(), &d.geometryFields)
	d.Attributes = make(map[string]*attributeDoc, len(g.Attributes))
	for name, a := range g.Attributes {
		d.Attributes[name] = writeAttribute(a)
	}
	d.Index = writeAttribute(g.Index)
}

func applyBufferFields(d *bufferDoc, g *engine.BufferGeometry) error {
	if d.Attributes == nil {
		return &FieldError{Field: "attributes"}
	}
	applyGeometryFields(&d.geometryFields, g.AsGeometryBase())
	g.Attributes = make(map[string]*engine.BufferAttribute, len(d.Attributes))
	for name, a := range d.Attributes {
		g.Attributes[name] = readAttribute(a)
	}
	g.Index = readAttribute(d.Index)
	return nil
}

func writeBuffer(g *engine.BufferGeometry, d *bufferDoc) error {
	writeBufferFields(g, d)
	return nil
}

func readBuffer(d *bufferDoc, g *engine.BufferGeometry, _ *loader) (*engine.BufferGeometry, error) {
	if g == nil {
		g = engine.NewBufferGeometry()
	}
	if err := applyBufferFields(d, g); err != nil {
		return nil, err
	}
	return g, nil
}

func writeInstanced(g *engine.InstancedBufferGeometry, d *bufferDoc) error {
	writeBufferFields(&g.BufferGeometry, d)
	d.InstanceCount = ptr(g.InstanceCount)
	return nil
}

func readInstanced(d *bufferDoc, g *engine.InstancedBufferGeometry, _ *loader) (*engine.InstancedBufferGeometry, error) {
	if d.InstanceCount == nil {
		return nil, &FieldError{Field: "instanceCount"}
	}
	if g == nil {
		g = engine.NewInstancedBufferGeometry(*d.InstanceCount)
	}
	if err := applyBufferFields(d, &g.BufferGeometry); err != nil {
		return nil, err
	}
	g.InstanceCount = *d.InstanceCount
	return g, nil
}

// paramDoc records a primitive geometry by the parameters it is generated from.
type paramDoc[P any] struct {
	envelope
	geometryFields

	Parameters *P `json:"parameters"`
}

// paramCodec builds the converter of a primitive geometry. build constructs
// a new geometry and params exposes the parameters of an existing one.
func paramCodec[G engine.Geometry, P any](
	r *Registries,
	kind engine.Kind,
	build func(P) G,
	params func(G) *P,
) *codec[G, paramDoc[P], *paramDoc[P]] {
	write := func(g G, d *paramDoc[P]) error {
		writeGeometryFields(g.AsGeometryBase(), &d.geometryFields)
		d.Parameters = params(g)
		return nil
	}
	read := func(d *paramDoc[P], g G, _ *loader) (G, error) {
		if d.Parameters == nil {
			var zero G
			return zero, &FieldError{Field: "parameters"}
		}
		if isNil(g) {
			g = build(*d.Parameters)
		} else {
			*params(g) = *d.Parameters
		}
		applyGeometryFields(&d.geometryFields, g.AsGeometryBase())
		return g, nil
	}
	return newCodec(r, kind, write, read)
}

func solidCodec(r *Registries, kind engine.Kind) *codec[*engine.SolidGeometry, paramDoc[engine.SolidParams], *paramDoc[engine.SolidParams]] {
	return paramCodec(r, kind,
		func(p engine.SolidParams) *engine.SolidGeometry { return engine.NewSolidGeometry(kind, p) },
		func(g *engine.SolidGeometry) *engine.SolidParams { return &g.Params },
	)
}

type textGeometryDoc struct {
	envelope
	geometryFields

	Parameters *engine.TextParams `json:"parameters"`
}

func writeTextGeometry(g *engine.TextGeometry, d *textGeometryDoc) error {
	writeGeometryFields(g.AsGeometryBase(), &d.geometryFields)
	d.Parameters = &g.Params
	return nil
}

// readTextGeometry rebuilds the geometry synchronously and fetches its
// typeface; the geometry is usable once the typeface has arrived.
func readTextGeometry(d *textGeometryDoc, g *engine.TextGeometry, l *loader) (*engine.TextGeometry, error) {
	if d.Parameters == nil {
		return nil, &FieldError{Field: "parameters"}
	}
	if d.Parameters.Font == "" {
		return nil, &FieldError{Field: "parameters.font"}
	}
	if g == nil {
		g = engine.NewTextGeometry(*d.Parameters)
	} else {
		g.Params = *d.Parameters
	}
	applyGeometryFields(&d.geometryFields, g.AsGeometryBase())
	l.fetch(g.Params.Font, func(data []byte) error {
		face, err := parseTypeface(data)
		if err != nil {
			return err
		}
		g.Typeface = face
		return nil
	})
	return g, nil
}

func parseTypeface(data []byte) (*engine.Typeface, error) {
	data, err := assets.Gunzip(data)
	if err != nil {
		return nil, err
	}
	var face engine.Typeface
	if err := json.Unmarshal(data, &face); err != nil {
		return nil, fmt.Errorf("typeface: %w", err)
	}
	if len(face.Glyphs) == 0 {
		return nil, &FieldError{Field: "glyphs"}
	}
	return &face, nil
}
