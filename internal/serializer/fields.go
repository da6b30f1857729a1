package serializer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeusync/scenedoc/internal/engine"
)

func ptr[T any](v T) *T { return &v }

// set copies *p into dst when the document carried the field.
func set[T any](dst *T, p *T) {
	if p != nil {
		*dst = *p
	}
}

func hex(c engine.Color) *uint32 {
	h := c.Hex()
	return &h
}

func setColor(dst *engine.Color, p *uint32) {
	if p != nil {
		dst.SetHex(*p)
	}
}

func quatDoc(q mgl32.Quat) *[4]float32 {
	return &[4]float32{q.V[0], q.V[1], q.V[2], q.W}
}

func setQuat(dst *mgl32.Quat, p *[4]float32) {
	if p == nil {
		return
	}
	dst.V[0], dst.V[1], dst.V[2], dst.W = p[0], p[1], p[2], p[3]
}

// objectFields is the transform and bookkeeping every scene node records.
// parent and children are identifiers only; they are never resolved here.
type objectFields struct {
	UUID string `json:"uuid"`
	Name string `json:"name,omitempty"`

	Position      *mgl32.Vec3 `json:"position,omitempty"`
	Rotation      *[3]float32 `json:"rotation,omitempty"`
	RotationOrder string      `json:"rotationOrder,omitempty"`
	Quaternion    *[4]float32 `json:"quaternion,omitempty"`
	Scale         *mgl32.Vec3 `json:"scale,omitempty"`
	Up            *mgl32.Vec3 `json:"up,omitempty"`
	Matrix        *mgl32.Mat4 `json:"matrix,omitempty"`

	MatrixAutoUpdate *bool   `json:"matrixAutoUpdate,omitempty"`
	Visible          *bool   `json:"visible,omitempty"`
	CastShadow       bool    `json:"castShadow,omitempty"`
	ReceiveShadow    bool    `json:"receiveShadow,omitempty"`
	FrustumCulled    *bool   `json:"frustumCulled,omitempty"`
	RenderOrder      int     `json:"renderOrder,omitempty"`
	Layers           *uint32 `json:"layers,omitempty"`

	UserData map[string]any `json:"userData,omitempty"`

	Parent   string   `json:"parent,omitempty"`
	Children []string `json:"children,omitempty"`
}

func writeObject(o *engine.Object3D, d *objectFields) {
	d.UUID = o.UUID
	d.Name = o.Name
	d.Position = ptr(o.Position)
	d.Rotation = &[3]float32{o.Rotation.X, o.Rotation.Y, o.Rotation.Z}
	d.RotationOrder = o.Rotation.Order
	d.Quaternion = quatDoc(o.Quaternion)
	d.Scale = ptr(o.Scale)
	d.Up = ptr(o.Up)
	d.Matrix = ptr(o.Matrix)
	d.MatrixAutoUpdate = ptr(o.MatrixAutoUpdate)
	d.Visible = ptr(o.Visible)
	d.CastShadow = o.CastShadow
	d.ReceiveShadow = o.ReceiveShadow
	d.FrustumCulled = ptr(o.FrustumCulled)
	d.RenderOrder = o.RenderOrder
	d.Layers = ptr(o.Layers)
	d.UserData = o.UserData

	if o.Parent != nil {
		d.Parent = o.Parent.Object().UUID
	}
	for _, c := range o.Children {
		d.Children = append(d.Children, c.Object().UUID)
	}
}

func applyObject(d *objectFields, o *engine.Object3D) {
	if d.UUID != "" {
		o.UUID = d.UUID
	}
	o.Name = d.Name
	set(&o.Position, d.Position)
	if r := d.Rotation; r != nil {
		o.Rotation.X, o.Rotation.Y, o.Rotation.Z = r[0], r[1], r[2]
	}
	if d.RotationOrder != "" {
		o.Rotation.Order = d.RotationOrder
	}
	setQuat(&o.Quaternion, d.Quaternion)
	set(&o.Scale, d.Scale)
	set(&o.Up, d.Up)
	set(&o.Matrix, d.Matrix)
	set(&o.MatrixAutoUpdate, d.MatrixAutoUpdate)
	set(&o.Visible, d.Visible)
	o.CastShadow = d.CastShadow
	o.ReceiveShadow = d.ReceiveShadow
	set(&o.FrustumCulled, d.FrustumCulled)
	o.RenderOrder = d.RenderOrder
	set(&o.Layers, d.Layers)
	if d.UserData != nil {
		o.UserData = d.UserData
	}

	o.Refs = engine.Refs{Parent: d.Parent}
	if len(d.Children) > 0 {
		o.Refs.Children = append([]string(nil), d.Children...)
	}
}
