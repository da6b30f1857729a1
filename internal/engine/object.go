package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Node is a scene-graph member: anything carrying an Object3D transform.
type Node interface {
	Entity
	Object() *Object3D
}

// Euler is a rotation in radians applied in Order.
type Euler struct {
	X, Y, Z float32
	Order   string
}

// Refs holds identifiers recorded in a document that have not been resolved
// into live nodes yet.
type Refs struct {
	Parent   string
	Children []string
}

// Object3D is the transform and bookkeeping shared by every scene node.
type Object3D struct {
	UUID string
	Name string

	Position   mgl32.Vec3
	Rotation   Euler
	Quaternion mgl32.Quat
	Scale      mgl32.Vec3
	Up         mgl32.Vec3
	Matrix     mgl32.Mat4

	MatrixAutoUpdate bool
	Visible          bool
	CastShadow       bool
	ReceiveShadow    bool
	FrustumCulled    bool
	RenderOrder      int
	Layers           uint32

	UserData map[string]any

	Parent   Node
	Children []Node

	Refs Refs
}

// NewObject3D returns an identity-transformed, visible object with a fresh UUID.
func NewObject3D() *Object3D {
	o := &Object3D{}
	o.init()
	return o
}

func (o *Object3D) init() {
	o.UUID = uuid.NewString()
	o.Rotation.Order = "XYZ"
	o.Quaternion = mgl32.QuatIdent()
	o.Scale = mgl32.Vec3{1, 1, 1}
	o.Up = mgl32.Vec3{0, 1, 0}
	o.Matrix = mgl32.Ident4()
	o.MatrixAutoUpdate = true
	o.Visible = true
	o.FrustumCulled = true
	o.Layers = 1
}

func (o *Object3D) Object() *Object3D { return o }
func (*Object3D) Kind() Kind          { return KindObject3D }

// Attach makes child the last child of parent, detaching it from any previous parent.
func Attach(parent, child Node) {
	if parent == nil || child == nil {
		return
	}
	Detach(child)
	c := child.Object()
	c.Parent = parent
	p := parent.Object()
	p.Children = append(p.Children, child)
}

// Detach removes child from its parent, if any.
func Detach(child Node) {
	c := child.Object()
	if c.Parent == nil {
		return
	}
	p := c.Parent.Object()
	for i, n := range p.Children {
		if n.Object() == c {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	c.Parent = nil
}

// Traverse visits n and its descendants depth-first, parents before children.
func Traverse(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Object().Children {
		Traverse(c, fn)
	}
}

// FindByUUID returns the first node under root with the given identifier.
func FindByUUID(root Node, id string) Node {
	var found Node
	Traverse(root, func(n Node) {
		if found == nil && n.Object().UUID == id {
			found = n
		}
	})
	return found
}

// Group is an empty container node.
type Group struct {
	Object3D
}

func NewGroup() *Group {
	g := &Group{}
	g.init()
	return g
}

func (*Group) Kind() Kind { return KindGroup }

// FogType selects the fog falloff model.
type FogType string

const (
	FogLinear      FogType = "Fog"
	FogExponential FogType = "FogExp2"
)

type Fog struct {
	Type    FogType
	Color   Color
	Near    float32
	Far     float32
	Density float32
}

// Scene is the root of the editable graph.
type Scene struct {
	Object3D

	BackgroundColor   *Color
	BackgroundTexture Texture
	Environment       Texture
	Fog               *Fog
	OverrideMaterial  Material
	AutoUpdate        bool
}

func NewScene() *Scene {
	s := &Scene{AutoUpdate: true}
	s.init()
	return s
}

func (*Scene) Kind() Kind { return KindScene }

// Mesh renders Geometry with Material.
type Mesh struct {
	Object3D

	Geometry Geometry
	Material Material
}

func NewMesh(g Geometry, m Material) *Mesh {
	mesh := &Mesh{Geometry: g, Material: m}
	mesh.init()
	return mesh
}

func (*Mesh) Kind() Kind { return KindMesh }

// Sprite is a camera-facing quad.
type Sprite struct {
	Object3D

	Material Material
	Center   mgl32.Vec2
}

func NewSprite(m Material) *Sprite {
	s := &Sprite{Material: m, Center: mgl32.Vec2{0.5, 0.5}}
	s.init()
	return s
}

func (*Sprite) Kind() Kind { return KindSprite }

type Points struct {
	Object3D

	Geometry Geometry
	Material Material
}

func NewPoints(g Geometry, m Material) *Points {
	p := &Points{Geometry: g, Material: m}
	p.init()
	return p
}

func (*Points) Kind() Kind { return KindPoints }

type Line struct {
	Object3D

	Geometry Geometry
	Material Material
}

func NewLine(g Geometry, m Material) *Line {
	l := &Line{Geometry: g, Material: m}
	l.init()
	return l
}

func (*Line) Kind() Kind { return KindLine }

type LineSegments struct {
	Line
}

func NewLineSegments(g Geometry, m Material) *LineSegments {
	l := &LineSegments{Line: Line{Geometry: g, Material: m}}
	l.init()
	return l
}

func (*LineSegments) Kind() Kind { return KindLineSegments }

type LineLoop struct {
	Line
}

func NewLineLoop(g Geometry, m Material) *LineLoop {
	l := &LineLoop{Line: Line{Geometry: g, Material: m}}
	l.init()
	return l
}

func (*LineLoop) Kind() Kind { return KindLineLoop }
