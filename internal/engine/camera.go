package engine

import "github.com/go-gl/mathgl/mgl32"

// Camera is implemented by every camera node.
type Camera interface {
	Node
	AsCameraBase() *CameraBase
}

// CameraBase is the generic camera. It is also a concrete kind on its own.
type CameraBase struct {
	Object3D

	MatrixWorldInverse mgl32.Mat4
	ProjectionMatrix   mgl32.Mat4
}

func NewCamera() *CameraBase {
	c := &CameraBase{}
	c.initCamera()
	return c
}

func (c *CameraBase) initCamera() {
	c.init()
	c.MatrixWorldInverse = mgl32.Ident4()
	c.ProjectionMatrix = mgl32.Ident4()
}

func (c *CameraBase) AsCameraBase() *CameraBase { return c }
func (*CameraBase) Kind() Kind                  { return KindCamera }

// CameraView describes a sub-rectangle of a larger virtual viewport.
type CameraView struct {
	Enabled    bool
	FullWidth  float32
	FullHeight float32
	OffsetX    float32
	OffsetY    float32
	Width      float32
	Height     float32
}

type PerspectiveCamera struct {
	CameraBase

	Fov        float32
	Zoom       float32
	Near       float32
	Far        float32
	Focus      float32
	Aspect     float32
	FilmGauge  float32
	FilmOffset float32
	View       *CameraView
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Fov:       fov,
		Zoom:      1,
		Near:      near,
		Far:       far,
		Focus:     10,
		Aspect:    aspect,
		FilmGauge: 35,
	}
	c.initCamera()
	return c
}

func (*PerspectiveCamera) Kind() Kind { return KindPerspectiveCamera }

type OrthographicCamera struct {
	CameraBase

	Left   float32
	Right  float32
	Top    float32
	Bottom float32
	Near   float32
	Far    float32
	Zoom   float32
	View   *CameraView
}

func NewOrthographicCamera(left, right, top, bottom, near, far float32) *OrthographicCamera {
	c := &OrthographicCamera{
		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
		Near:   near,
		Far:    far,
		Zoom:   1,
	}
	c.initCamera()
	return c
}

func (*OrthographicCamera) Kind() Kind { return KindOrthographicCamera }
