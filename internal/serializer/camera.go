package serializer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeusync/scenedoc/internal/engine"
)

type cameraFields struct {
	objectFields

	MatrixWorldInverse *mgl32.Mat4 `json:"matrixWorldInverse,omitempty"`
	ProjectionMatrix   *mgl32.Mat4 `json:"projectionMatrix,omitempty"`
}

func writeCameraFields(c *engine.CameraBase, d *cameraFields) {
	writeObject(c.Object(), &d.objectFields)
	d.MatrixWorldInverse = ptr(c.MatrixWorldInverse)
	d.ProjectionMatrix = ptr(c.ProjectionMatrix)
}

func applyCameraFields(d *cameraFields, c *engine.CameraBase) {
	applyObject(&d.objectFields, c.Object())
	set(&c.MatrixWorldInverse, d.MatrixWorldInverse)
	set(&c.ProjectionMatrix, d.ProjectionMatrix)
}

type viewDoc struct {
	Enabled    bool    `json:"enabled"`
	FullWidth  float32 `json:"fullWidth"`
	FullHeight float32 `json:"fullHeight"`
	OffsetX    float32 `json:"offsetX"`
	OffsetY    float32 `json:"offsetY"`
	Width      float32 `json:"width"`
	Height     float32 `json:"height"`
}

func writeView(v *engine.CameraView) *viewDoc {
	if v == nil {
		return nil
	}
	d := viewDoc(*v)
	return &d
}

func readView(d *viewDoc) *engine.CameraView {
	if d == nil {
		return nil
	}
	v := engine.CameraView(*d)
	return &v
}

type cameraDoc struct {
	envelope
	cameraFields
}

func writeCamera(c *engine.CameraBase, d *cameraDoc) error {
	writeCameraFields(c, &d.cameraFields)
	return nil
}

func readCamera(d *cameraDoc, c *engine.CameraBase, _ *loader) (*engine.CameraBase, error) {
	if c == nil {
		c = engine.NewCamera()
	}
	applyCameraFields(&d.cameraFields, c)
	return c, nil
}

type perspectiveDoc struct {
	envelope
	cameraFields

	Fov        float32  `json:"fov"`
	Zoom       float32  `json:"zoom"`
	Near       float32  `json:"near"`
	Far        float32  `json:"far"`
	Focus      float32  `json:"focus"`
	Aspect     float32  `json:"aspect"`
	FilmGauge  float32  `json:"filmGauge"`
	FilmOffset float32  `json:"filmOffset"`
	View       *viewDoc `json:"view,omitempty"`
}

func writePerspective(c *engine.PerspectiveCamera, d *perspectiveDoc) error {
	writeCameraFields(c.AsCameraBase(), &d.cameraFields)
	d.Fov = c.Fov
	d.Zoom = c.Zoom
	d.Near = c.Near
	d.Far = c.Far
	d.Focus = c.Focus
	d.Aspect = c.Aspect
	d.FilmGauge = c.FilmGauge
	d.FilmOffset = c.FilmOffset
	d.View = writeView(c.View)
	return nil
}

func readPerspective(d *perspectiveDoc, c *engine.PerspectiveCamera, _ *loader) (*engine.PerspectiveCamera, error) {
	if c == nil {
		c = engine.NewPerspectiveCamera(d.Fov, d.Aspect, d.Near, d.Far)
	}
	applyCameraFields(&d.cameraFields, c.AsCameraBase())
	c.Fov = d.Fov
	c.Zoom = d.Zoom
	c.Near = d.Near
	c.Far = d.Far
	c.Focus = d.Focus
	c.Aspect = d.Aspect
	c.FilmGauge = d.FilmGauge
	c.FilmOffset = d.FilmOffset
	c.View = readView(d.View)
	return c, nil
}

type orthographicDoc struct {
	envelope
	cameraFields

	Left   float32  `json:"left"`
	Right  float32  `json:"right"`
	Top    float32  `json:"top"`
	Bottom float32  `json:"bottom"`
	Near   float32  `json:"near"`
	Far    float32  `json:"far"`
	Zoom   float32  `json:"zoom"`
	View   *viewDoc `json:"view,omitempty"`
}

func writeOrthographic(c *engine.OrthographicCamera, d *orthographicDoc) error {
	writeCameraFields(c.AsCameraBase(), &d.cameraFields)
	d.Left = c.Left
	d.Right = c.Right
	d.Top = c.Top
	d.Bottom = c.Bottom
	d.Near = c.Near
	d.Far = c.Far
	d.Zoom = c.Zoom
	d.View = writeView(c.View)
	return nil
}

func readOrthographic(d *orthographicDoc, c *engine.OrthographicCamera, _ *loader) (*engine.OrthographicCamera, error) {
	if c == nil {
		c = engine.NewOrthographicCamera(d.Left, d.Right, d.Top, d.Bottom, d.Near, d.Far)
	}
	applyCameraFields(&d.cameraFields, c.AsCameraBase())
	c.Left = d.Left
	c.Right = d.Right
	c.Top = d.Top
	c.Bottom = d.Bottom
	c.Near = d.Near
	c.Far = d.Far
	c.Zoom = d.Zoom
	c.View = readView(d.View)
	return c, nil
}
