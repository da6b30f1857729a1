package serializer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/engine"
)

type audioDoc struct {
	envelope
	objectFields

	URL          string  `json:"url"`
	Autoplay     bool    `json:"autoplay,omitempty"`
	Loop         bool    `json:"loop,omitempty"`
	Volume       float32 `json:"volume"`
	PlaybackRate float32 `json:"playbackRate"`
}

func writeAudio(a *engine.Audio, d *audioDoc) error {
	writeObject(a.Object(), &d.objectFields)
	d.URL = a.URL
	d.Autoplay = a.Autoplay
	d.Loop = a.Loop
	d.Volume = a.Volume
	d.PlaybackRate = a.PlaybackRate
	return nil
}

// readAudio binds the source to the viewport camera's listener and fetches
// the clip.
func readAudio(d *audioDoc, a *engine.Audio, l *loader) (*engine.Audio, error) {
	if d.URL == "" {
		return nil, &FieldError{Field: "url"}
	}
	camera, err := l.rc.camera()
	if err != nil {
		return nil, err
	}
	if a == nil {
		a = engine.NewAudio(d.URL)
	}
	applyObject(&d.objectFields, a.Object())
	a.URL = d.URL
	a.Autoplay = d.Autoplay
	a.Loop = d.Loop
	a.Volume = d.Volume
	a.PlaybackRate = d.PlaybackRate
	a.Listener = camera

	l.fetch(a.URL, func(data []byte) error {
		a.Buffer = data
		return nil
	})
	return a, nil
}

type skyDoc struct {
	envelope
	objectFields

	Turbidity       float32     `json:"turbidity"`
	Rayleigh        float32     `json:"rayleigh"`
	MieCoefficient  float32     `json:"mieCoefficient"`
	MieDirectionalG float32     `json:"mieDirectionalG"`
	Luminance       float32     `json:"luminance"`
	SunPosition     *mgl32.Vec3 `json:"sunPosition,omitempty"`
}

func writeSky(s *engine.Sky, d *skyDoc) error {
	writeObject(s.Object(), &d.objectFields)
	d.Turbidity = s.Turbidity
	d.Rayleigh = s.Rayleigh
	d.MieCoefficient = s.MieCoefficient
	d.MieDirectionalG = s.MieDirectionalG
	d.Luminance = s.Luminance
	d.SunPosition = ptr(s.SunPosition)
	return nil
}

func readSky(d *skyDoc, s *engine.Sky, _ *loader) (*engine.Sky, error) {
	if s == nil {
		s = engine.NewSky()
	}
	applyObject(&d.objectFields, s.Object())
	s.Turbidity = d.Turbidity
	s.Rayleigh = d.Rayleigh
	s.MieCoefficient = d.MieCoefficient
	s.MieDirectionalG = d.MieDirectionalG
	s.Luminance = d.Luminance
	set(&s.SunPosition, d.SunPosition)
	return s, nil
}

type fireDoc struct {
	envelope
	objectFields

	Width        float32 `json:"width"`
	Height       float32 `json:"height"`
	Depth        float32 `json:"depth"`
	SliceSpacing float32 `json:"sliceSpacing"`
}

func writeFire(f *engine.Fire, d *fireDoc) error {
	writeObject(f.Object(), &d.objectFields)
	d.Width = f.Width
	d.Height = f.Height
	d.Depth = f.Depth
	d.SliceSpacing = f.SliceSpacing
	return nil
}

func readFire(d *fireDoc, f *engine.Fire, l *loader) (*engine.Fire, error) {
	camera, err := l.rc.camera()
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = engine.NewFire(camera)
	}
	applyObject(&d.objectFields, f.Object())
	f.Width = d.Width
	f.Height = d.Height
	f.Depth = d.Depth
	f.SliceSpacing = d.SliceSpacing
	f.Camera = camera
	return f, nil
}

type smokeDoc struct {
	envelope
	objectFields

	Size     float32 `json:"size"`
	Lifetime float32 `json:"lifetime"`
}

func writeSmoke(s *engine.Smoke, d *smokeDoc) error {
	writeObject(s.Object(), &d.objectFields)
	d.Size = s.Size
	d.Lifetime = s.Lifetime
	return nil
}

func readSmoke(d *smokeDoc, s *engine.Smoke, l *loader) (*engine.Smoke, error) {
	camera, err := l.rc.camera()
	if err != nil {
		return nil, err
	}
	renderer, err := l.rc.renderer()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = engine.NewSmoke(camera, renderer)
	}
	applyObject(&d.objectFields, s.Object())
	s.Size = d.Size
	s.Lifetime = d.Lifetime
	s.Camera = camera
	s.Renderer = renderer
	return s, nil
}

type particleDoc struct {
	envelope
	objectFields

	MaxParticles   int         `json:"maxParticles"`
	PositionSpread *mgl32.Vec3 `json:"positionSpread,omitempty"`
	Velocity       *mgl32.Vec3 `json:"velocity,omitempty"`
	VelocitySpread *mgl32.Vec3 `json:"velocitySpread,omitempty"`
	Acceleration   *mgl32.Vec3 `json:"acceleration,omitempty"`
	ColorStart     *uint32     `json:"colorStart,omitempty"`
	ColorEnd       *uint32     `json:"colorEnd,omitempty"`
	SizeStart      float32     `json:"sizeStart"`
	SizeEnd        float32     `json:"sizeEnd"`
	Lifetime       float32     `json:"lifetime"`
	Texture        string      `json:"texture,omitempty"`
}

func writeParticle(p *engine.ParticleEmitter, d *particleDoc) error {
	writeObject(p.Object(), &d.objectFields)
	d.MaxParticles = p.MaxParticles
	d.PositionSpread = ptr(p.PositionSpread)
	d.Velocity = ptr(p.Velocity)
	d.VelocitySpread = ptr(p.VelocitySpread)
	d.Acceleration = ptr(p.Acceleration)
	d.ColorStart = hex(p.ColorStart)
	d.ColorEnd = hex(p.ColorEnd)
	d.SizeStart = p.SizeStart
	d.SizeEnd = p.SizeEnd
	d.Lifetime = p.Lifetime
	d.Texture = p.Texture
	return nil
}

// readParticle sizes the emitter for the current render target.
func readParticle(d *particleDoc, p *engine.ParticleEmitter, l *loader) (*engine.ParticleEmitter, error) {
	renderer, err := l.rc.renderer()
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = engine.NewParticleEmitter(renderer)
	}
	applyObject(&d.objectFields, p.Object())
	p.MaxParticles = d.MaxParticles
	set(&p.PositionSpread, d.PositionSpread)
	set(&p.Velocity, d.Velocity)
	set(&p.VelocitySpread, d.VelocitySpread)
	set(&p.Acceleration, d.Acceleration)
	setColor(&p.ColorStart, d.ColorStart)
	setColor(&p.ColorEnd, d.ColorEnd)
	p.SizeStart = d.SizeStart
	p.SizeEnd = d.SizeEnd
	p.Lifetime = d.Lifetime
	p.Texture = d.Texture
	p.Resize(renderer)
	return p, nil
}

type markerDoc struct {
	envelope
	objectFields

	Text  string  `json:"text"`
	Color *uint32 `json:"color,omitempty"`
	Size  float32 `json:"size"`
}

func writePointMarker(m *engine.PointMarker, d *markerDoc) error {
	writeObject(m.Object(), &d.objectFields)
	d.Text = m.Text
	d.Color = hex(m.Color)
	d.Size = m.Size
	return nil
}

func readPointMarker(d *markerDoc, m *engine.PointMarker, _ *loader) (*engine.PointMarker, error) {
	if m == nil {
		m = engine.NewPointMarker(d.Text)
	}
	applyObject(&d.objectFields, m.Object())
	m.Text = d.Text
	setColor(&m.Color, d.Color)
	m.Size = d.Size
	return m, nil
}

type unscaledTextDoc struct {
	envelope
	objectFields

	Text     string  `json:"text"`
	Color    *uint32 `json:"color,omitempty"`
	FontSize float32 `json:"fontSize"`
}

func writeUnscaledText(t *engine.UnscaledText, d *unscaledTextDoc) error {
	writeObject(t.Object(), &d.objectFields)
	d.Text = t.Text
	d.Color = hex(t.Color)
	d.FontSize = t.FontSize
	return nil
}

func readUnscaledText(d *unscaledTextDoc, t *engine.UnscaledText, _ *loader) (*engine.UnscaledText, error) {
	if t == nil {
		t = engine.NewUnscaledText(d.Text)
	}
	applyObject(&d.objectFields, t.Object())
	t.Text = d.Text
	setColor(&t.Color, d.Color)
	t.FontSize = d.FontSize
	return t, nil
}

type text3DDoc struct {
	envelope
	objectFields

	Text   string  `json:"text"`
	Font   string  `json:"font"`
	Size   float32 `json:"size"`
	Height float32 `json:"height"`
	Color  *uint32 `json:"color,omitempty"`
}

func writeText3D(t *engine.Text3D, d *text3DDoc) error {
	writeObject(t.Object(), &d.objectFields)
	d.Text = t.Text
	d.Font = t.Font
	d.Size = t.Size
	d.Height = t.Height
	d.Color = hex(t.Color)
	return nil
}

func readText3D(d *text3DDoc, t *engine.Text3D, l *loader) (*engine.Text3D, error) {
	if d.Font == "" {
		return nil, &FieldError{Field: "font"}
	}
	if t == nil {
		t = engine.NewText3D(d.Text, d.Font)
	}
	applyObject(&d.objectFields, t.Object())
	t.Text = d.Text
	t.Font = d.Font
	t.Size = d.Size
	t.Height = d.Height
	setColor(&t.Color, d.Color)

	l.fetch(t.Font, func(data []byte) error {
		face, err := parseTypeface(data)
		if err != nil {
			return err
		}
		t.Typeface = face
		return nil
	})
	return t, nil
}

type curveFields struct {
	objectFields

	Segments int     `json:"segments"`
	Color    *uint32 `json:"color,omitempty"`
}

func writeCurveFields(c *engine.CurveLine, d *curveFields) {
	writeObject(c.Object(), &d.objectFields)
	d.Segments = c.Segments
	d.Color = hex(c.Color)
}

func applyCurveFields(d *curveFields, c *engine.CurveLine) {
	applyObject(&d.objectFields, c.Object())
	if d.Segments > 0 {
		c.Segments = d.Segments
	}
	setColor(&c.Color, d.Color)
}

type catmullRomDoc struct {
	envelope
	curveFields

	Points    []mgl32.Vec3 `json:"points"`
	Closed    bool         `json:"closed,omitempty"`
	CurveType string       `json:"curveType,omitempty"`
	Tension   float32      `json:"tension"`
}

func writeCatmullRom(c *engine.CatmullRomCurve, d *catmullRomDoc) error {
	writeCurveFields(&c.CurveLine, &d.curveFields)
	d.Points = c.Points
	d.Closed = c.Closed
	d.CurveType = c.CurveType
	d.Tension = c.Tension
	return nil
}

func readCatmullRom(d *catmullRomDoc, c *engine.CatmullRomCurve, _ *loader) (*engine.CatmullRomCurve, error) {
	if len(d.Points) < 2 {
		return nil, &FieldError{Field: "points"}
	}
	if c == nil {
		c = engine.NewCatmullRomCurve(nil)
	}
	applyCurveFields(&d.curveFields, &c.CurveLine)
	c.Points = append(c.Points[:0], d.Points...)
	c.Closed = d.Closed
	if d.CurveType != "" {
		c.CurveType = d.CurveType
	}
	c.Tension = d.Tension
	return c, nil
}

type quadraticDoc struct {
	envelope
	curveFields

	V0 *mgl32.Vec3 `json:"v0,omitempty"`
	V1 *mgl32.Vec3 `json:"v1,omitempty"`
	V2 *mgl32.Vec3 `json:"v2,omitempty"`
}

func writeQuadratic(c *engine.QuadraticBezierCurve, d *quadraticDoc) error {
	writeCurveFields(&c.CurveLine, &d.curveFields)
	d.V0, d.V1, d.V2 = ptr(c.V0), ptr(c.V1), ptr(c.V2)
	return nil
}

func readQuadratic(d *quadraticDoc, c *engine.QuadraticBezierCurve, _ *loader) (*engine.QuadraticBezierCurve, error) {
	if c == nil {
		c = engine.NewQuadraticBezierCurve(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{})
	}
	applyCurveFields(&d.curveFields, &c.CurveLine)
	set(&c.V0, d.V0)
	set(&c.V1, d.V1)
	set(&c.V2, d.V2)
	return c, nil
}

type cubicDoc struct {
	envelope
	curveFields

	V0 *mgl32.Vec3 `json:"v0,omitempty"`
	V1 *mgl32.Vec3 `json:"v1,omitempty"`
	V2 *mgl32.Vec3 `json:"v2,omitempty"`
	V3 *mgl32.Vec3 `json:"v3,omitempty"`
}

func writeCubic(c *engine.CubicBezierCurve, d *cubicDoc) error {
	writeCurveFields(&c.CurveLine, &d.curveFields)
	d.V0, d.V1, d.V2, d.V3 = ptr(c.V0), ptr(c.V1), ptr(c.V2), ptr(c.V3)
	return nil
}

func readCubic(d *cubicDoc, c *engine.CubicBezierCurve, _ *loader) (*engine.CubicBezierCurve, error) {
	if c == nil {
		c = engine.NewCubicBezierCurve(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{})
	}
	applyCurveFields(&d.curveFields, &c.CurveLine)
	set(&c.V0, d.V0)
	set(&c.V1, d.V1)
	set(&c.V2, d.V2)
	set(&c.V3, d.V3)
	return c, nil
}

type lineCurveDoc struct {
	envelope
	curveFields

	V1 *mgl32.Vec3 `json:"v1,omitempty"`
	V2 *mgl32.Vec3 `json:"v2,omitempty"`
}

func writeLineCurve(c *engine.LineCurve, d *lineCurveDoc) error {
	writeCurveFields(&c.CurveLine, &d.curveFields)
	d.V1, d.V2 = ptr(c.V1), ptr(c.V2)
	return nil
}

func readLineCurve(d *lineCurveDoc, c *engine.LineCurve, _ *loader) (*engine.LineCurve, error) {
	if c == nil {
		c = engine.NewLineCurve(mgl32.Vec3{}, mgl32.Vec3{})
	}
	applyCurveFields(&d.curveFields, &c.CurveLine)
	set(&c.V1, d.V1)
	set(&c.V2, d.V2)
	return c, nil
}

type serverModelDoc struct {
	envelope
	objectFields

	URL    string `json:"url"`
	Format string `json:"format,omitempty"`
}

func writeServerModel(m *engine.ServerModel, d *serverModelDoc) error {
	writeObject(m.Object(), &d.objectFields)
	d.URL = m.URL
	d.Format = m.Format
	return nil
}

// readServerModel fetches the model, inflates it when it is gzip-compressed
// and hands it to the model decoder when one is configured.
func readServerModel(d *serverModelDoc, m *engine.ServerModel, l *loader) (*engine.ServerModel, error) {
	if d.URL == "" {
		return nil, &FieldError{Field: "url"}
	}
	if m == nil {
		m = engine.NewServerModel(d.URL, d.Format)
	}
	applyObject(&d.objectFields, m.Object())
	m.URL = d.URL
	m.Format = d.Format

	models, ctx := l.rc.Models, l.ctx
	l.fetch(m.URL, func(data []byte) error {
		data, err := assets.Gunzip(data)
		if err != nil {
			return err
		}
		m.Data = data
		if models == nil {
			return nil
		}
		format := m.Format
		if format == "" {
			format = assets.ContentType(data)
		}
		nodes, err := models.Decode(ctx, format, data)
		if err != nil {
			return fmt.Errorf("decode %s model: %w", format, err)
		}
		m.Content = nodes
		return nil
	})
	return m, nil
}
