package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Geometry is implemented by every geometry kind.
type Geometry interface {
	Entity
	AsGeometryBase() *GeometryBase
}

type Box3 struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

type DrawRange struct {
	Start int
	Count int
}

// GeometryGroup selects a range of indices rendered with one material of a MultiMaterial.
type GeometryGroup struct {
	Start         int
	Count         int
	MaterialIndex int
}

// GeometryBase is what every geometry shares. Bounding volumes are optional
// caches; NeedsUpdate marks buffers that must be re-uploaded.
type GeometryBase struct {
	UUID string
	Name string

	BoundingBox          *Box3
	BoundingSphere       *Sphere
	DrawRange            DrawRange
	Groups               []GeometryGroup
	MorphTargetsRelative bool
	NeedsUpdate          bool

	UserData map[string]any
}

func (g *GeometryBase) AsGeometryBase() *GeometryBase { return g }

func (g *GeometryBase) initGeometry() {
	g.UUID = uuid.NewString()
	g.DrawRange = DrawRange{Start: 0, Count: -1}
}

// BufferAttribute is a typed vertex attribute.
type BufferAttribute struct {
	ItemSize   int
	Type       string
	Array      []float32
	Normalized bool
}

// BufferGeometry holds raw attributes.
type BufferGeometry struct {
	GeometryBase

	Attributes map[string]*BufferAttribute
	Index      *BufferAttribute
}

func NewBufferGeometry() *BufferGeometry {
	g := &BufferGeometry{Attributes: map[string]*BufferAttribute{}}
	g.initGeometry()
	return g
}

func (*BufferGeometry) Kind() Kind { return KindBufferGeometry }

type InstancedBufferGeometry struct {
	BufferGeometry

	InstanceCount int
}

func NewInstancedBufferGeometry(count int) *InstancedBufferGeometry {
	g := &InstancedBufferGeometry{
		BufferGeometry: BufferGeometry{Attributes: map[string]*BufferAttribute{}},
		InstanceCount:  count,
	}
	g.initGeometry()
	return g
}

func (*InstancedBufferGeometry) Kind() Kind { return KindInstancedBufferGeometry }

// Primitive geometry parameters. They are what the engine regenerates
// vertex buffers from.

type BoxParams struct {
	Width          float32 `json:"width"`
	Height         float32 `json:"height"`
	Depth          float32 `json:"depth"`
	WidthSegments  int     `json:"widthSegments"`
	HeightSegments int     `json:"heightSegments"`
	DepthSegments  int     `json:"depthSegments"`
}

type SphereParams struct {
	Radius         float32 `json:"radius"`
	WidthSegments  int     `json:"widthSegments"`
	HeightSegments int     `json:"heightSegments"`
	PhiStart       float32 `json:"phiStart"`
	PhiLength      float32 `json:"phiLength"`
	ThetaStart     float32 `json:"thetaStart"`
	ThetaLength    float32 `json:"thetaLength"`
}

type CylinderParams struct {
	RadiusTop      float32 `json:"radiusTop"`
	RadiusBottom   float32 `json:"radiusBottom"`
	Height         float32 `json:"height"`
	RadialSegments int     `json:"radialSegments"`
	HeightSegments int     `json:"heightSegments"`
	OpenEnded      bool    `json:"openEnded"`
	ThetaStart     float32 `json:"thetaStart"`
	ThetaLength    float32 `json:"thetaLength"`
}

type ConeParams struct {
	Radius         float32 `json:"radius"`
	Height         float32 `json:"height"`
	RadialSegments int     `json:"radialSegments"`
	HeightSegments int     `json:"heightSegments"`
	OpenEnded      bool    `json:"openEnded"`
	ThetaStart     float32 `json:"thetaStart"`
	ThetaLength    float32 `json:"thetaLength"`
}

type TorusParams struct {
	Radius          float32 `json:"radius"`
	Tube            float32 `json:"tube"`
	RadialSegments  int     `json:"radialSegments"`
	TubularSegments int     `json:"tubularSegments"`
	Arc             float32 `json:"arc"`
}

type TorusKnotParams struct {
	Radius          float32 `json:"radius"`
	Tube            float32 `json:"tube"`
	TubularSegments int     `json:"tubularSegments"`
	RadialSegments  int     `json:"radialSegments"`
	P               int     `json:"p"`
	Q               int     `json:"q"`
}

type PlaneParams struct {
	Width          float32 `json:"width"`
	Height         float32 `json:"height"`
	WidthSegments  int     `json:"widthSegments"`
	HeightSegments int     `json:"heightSegments"`
}

type CircleParams struct {
	Radius      float32 `json:"radius"`
	Segments    int     `json:"segments"`
	ThetaStart  float32 `json:"thetaStart"`
	ThetaLength float32 `json:"thetaLength"`
}

type RingParams struct {
	InnerRadius   float32 `json:"innerRadius"`
	OuterRadius   float32 `json:"outerRadius"`
	ThetaSegments int     `json:"thetaSegments"`
	PhiSegments   int     `json:"phiSegments"`
	ThetaStart    float32 `json:"thetaStart"`
	ThetaLength   float32 `json:"thetaLength"`
}

type LatheParams struct {
	Points    []mgl32.Vec2 `json:"points"`
	Segments  int          `json:"segments"`
	PhiStart  float32      `json:"phiStart"`
	PhiLength float32      `json:"phiLength"`
}

// Shape is a closed 2D outline with optional holes.
type Shape struct {
	Points []mgl32.Vec2   `json:"points"`
	Holes  [][]mgl32.Vec2 `json:"holes,omitempty"`
}

type ExtrudeParams struct {
	Shapes         []Shape `json:"shapes"`
	Depth          float32 `json:"depth"`
	Steps          int     `json:"steps"`
	CurveSegments  int     `json:"curveSegments"`
	BevelEnabled   bool    `json:"bevelEnabled"`
	BevelThickness float32 `json:"bevelThickness"`
	BevelSize      float32 `json:"bevelSize"`
	BevelOffset    float32 `json:"bevelOffset"`
	BevelSegments  int     `json:"bevelSegments"`
}

type ShapeParams struct {
	Shapes        []Shape `json:"shapes"`
	CurveSegments int     `json:"curveSegments"`
}

type PolyhedronParams struct {
	Vertices []float32 `json:"vertices"`
	Indices  []int     `json:"indices"`
	Radius   float32   `json:"radius"`
	Detail   int       `json:"detail"`
}

// SolidParams parameterise the regular solids derived from a polyhedron.
type SolidParams struct {
	Radius float32 `json:"radius"`
	Detail int     `json:"detail"`
}

type ParametricParams struct {
	// Function names a surface function known to the engine.
	Function string `json:"func"`
	Slices   int    `json:"slices"`
	Stacks   int    `json:"stacks"`
}

type TextParams struct {
	Text           string  `json:"text"`
	Font           string  `json:"font"`
	Size           float32 `json:"size"`
	Height         float32 `json:"height"`
	CurveSegments  int     `json:"curveSegments"`
	BevelEnabled   bool    `json:"bevelEnabled"`
	BevelThickness float32 `json:"bevelThickness"`
	BevelSize      float32 `json:"bevelSize"`
	BevelSegments  int     `json:"bevelSegments"`
}

type TubeParams struct {
	Path            []mgl32.Vec3 `json:"path"`
	TubularSegments int          `json:"tubularSegments"`
	Radius          float32      `json:"radius"`
	RadialSegments  int          `json:"radialSegments"`
	Closed          bool         `json:"closed"`
}

type BoxGeometry struct {
	GeometryBase
	Params BoxParams
}

func NewBoxGeometry(p BoxParams) *BoxGeometry {
	g := &BoxGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*BoxGeometry) Kind() Kind { return KindBoxGeometry }

type SphereGeometry struct {
	GeometryBase
	Params SphereParams
}

func NewSphereGeometry(p SphereParams) *SphereGeometry {
	g := &SphereGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*SphereGeometry) Kind() Kind { return KindSphereGeometry }

type CylinderGeometry struct {
	GeometryBase
	Params CylinderParams
}

func NewCylinderGeometry(p CylinderParams) *CylinderGeometry {
	g := &CylinderGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*CylinderGeometry) Kind() Kind { return KindCylinderGeometry }

type ConeGeometry struct {
	GeometryBase
	Params ConeParams
}

func NewConeGeometry(p ConeParams) *ConeGeometry {
	g := &ConeGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*ConeGeometry) Kind() Kind { return KindConeGeometry }

type TorusGeometry struct {
	GeometryBase
	Params TorusParams
}

func NewTorusGeometry(p TorusParams) *TorusGeometry {
	g := &TorusGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*TorusGeometry) Kind() Kind { return KindTorusGeometry }

type TorusKnotGeometry struct {
	GeometryBase
	Params TorusKnotParams
}

func NewTorusKnotGeometry(p TorusKnotParams) *TorusKnotGeometry {
	g := &TorusKnotGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*TorusKnotGeometry) Kind() Kind { return KindTorusKnotGeometry }

type PlaneGeometry struct {
	GeometryBase
	Params PlaneParams
}

func NewPlaneGeometry(p PlaneParams) *PlaneGeometry {
	g := &PlaneGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*PlaneGeometry) Kind() Kind { return KindPlaneGeometry }

type CircleGeometry struct {
	GeometryBase
	Params CircleParams
}

func NewCircleGeometry(p CircleParams) *CircleGeometry {
	g := &CircleGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*CircleGeometry) Kind() Kind { return KindCircleGeometry }

type RingGeometry struct {
	GeometryBase
	Params RingParams
}

func NewRingGeometry(p RingParams) *RingGeometry {
	g := &RingGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*RingGeometry) Kind() Kind { return KindRingGeometry }

type LatheGeometry struct {
	GeometryBase
	Params LatheParams
}

func NewLatheGeometry(p LatheParams) *LatheGeometry {
	g := &LatheGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*LatheGeometry) Kind() Kind { return KindLatheGeometry }

type ExtrudeGeometry struct {
	GeometryBase
	Params ExtrudeParams
}

func NewExtrudeGeometry(p ExtrudeParams) *ExtrudeGeometry {
	g := &ExtrudeGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*ExtrudeGeometry) Kind() Kind { return KindExtrudeGeometry }

type ShapeGeometry struct {
	GeometryBase
	Params ShapeParams
}

func NewShapeGeometry(p ShapeParams) *ShapeGeometry {
	g := &ShapeGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*ShapeGeometry) Kind() Kind { return KindShapeGeometry }

type PolyhedronGeometry struct {
	GeometryBase
	Params PolyhedronParams
}

func NewPolyhedronGeometry(p PolyhedronParams) *PolyhedronGeometry {
	g := &PolyhedronGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*PolyhedronGeometry) Kind() Kind { return KindPolyhedronGeometry }

// SolidGeometry is a regular solid; Solid says which one.
type SolidGeometry struct {
	GeometryBase
	Solid  Kind
	Params SolidParams
}

// NewSolidGeometry builds an icosahedron, octahedron, tetrahedron or
// dodecahedron depending on kind.
func NewSolidGeometry(kind Kind, p SolidParams) *SolidGeometry {
	g := &SolidGeometry{Solid: kind, Params: p}
	g.initGeometry()
	return g
}

func (g *SolidGeometry) Kind() Kind {
	if g == nil {
		return KindUnknown
	}
	return g.Solid
}

type ParametricGeometry struct {
	GeometryBase
	Params ParametricParams
}

func NewParametricGeometry(p ParametricParams) *ParametricGeometry {
	g := &ParametricGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*ParametricGeometry) Kind() Kind { return KindParametricGeometry }

// Glyph is one typeface outline: advance width and outline path commands.
type Glyph struct {
	Advance float32 `json:"ha"`
	Outline string  `json:"o"`
}

// Typeface is a parsed typeface document.
type Typeface struct {
	FamilyName string           `json:"familyName"`
	Resolution int              `json:"resolution"`
	Glyphs     map[string]Glyph `json:"glyphs"`
}

type TextGeometry struct {
	GeometryBase
	Params TextParams

	// Typeface is populated once the font has been fetched.
	Typeface *Typeface
}

func NewTextGeometry(p TextParams) *TextGeometry {
	g := &TextGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*TextGeometry) Kind() Kind { return KindTextGeometry }

type TubeGeometry struct {
	GeometryBase
	Params TubeParams
}

func NewTubeGeometry(p TubeParams) *TubeGeometry {
	g := &TubeGeometry{Params: p}
	g.initGeometry()
	return g
}

func (*TubeGeometry) Kind() Kind { return KindTubeGeometry }
