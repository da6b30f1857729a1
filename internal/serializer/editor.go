package serializer

import "github.com/zeusync/scenedoc/internal/engine"

type rendererDoc struct {
	envelope

	Antialias               bool    `json:"antialias"`
	Alpha                   bool    `json:"alpha,omitempty"`
	ShadowMapEnabled        bool    `json:"shadowMapEnabled"`
	ShadowMapType           int     `json:"shadowMapType"`
	PixelRatio              float32 `json:"pixelRatio"`
	Width                   int     `json:"width"`
	Height                  int     `json:"height"`
	ToneMapping             int     `json:"toneMapping"`
	ToneMappingExposure     float32 `json:"toneMappingExposure"`
	OutputEncoding          int     `json:"outputEncoding"`
	PhysicallyCorrectLights bool    `json:"physicallyCorrectLights,omitempty"`
	ClearColor              *uint32 `json:"clearColor,omitempty"`
	ClearAlpha              float32 `json:"clearAlpha"`
}

func writeRenderer(r *engine.Renderer, d *rendererDoc) error {
	d.Antialias = r.Antialias
	d.Alpha = r.Alpha
	d.ShadowMapEnabled = r.ShadowMapEnabled
	d.ShadowMapType = r.ShadowMapType
	d.PixelRatio = r.PixelRatio
	d.Width = r.Width
	d.Height = r.Height
	d.ToneMapping = r.ToneMapping
	d.ToneMappingExposure = r.ToneMappingExposure
	d.OutputEncoding = r.OutputEncoding
	d.PhysicallyCorrectLights = r.PhysicallyCorrectLights
	d.ClearColor = hex(r.ClearColor)
	d.ClearAlpha = r.ClearAlpha
	return nil
}

func readRenderer(d *rendererDoc, r *engine.Renderer, _ *loader) (*engine.Renderer, error) {
	if r == nil {
		r = engine.NewRenderer(d.Width, d.Height)
	}
	r.Antialias = d.Antialias
	r.Alpha = d.Alpha
	r.ShadowMapEnabled = d.ShadowMapEnabled
	r.ShadowMapType = d.ShadowMapType
	r.PixelRatio = d.PixelRatio
	r.Width = d.Width
	r.Height = d.Height
	r.ToneMapping = d.ToneMapping
	r.ToneMappingExposure = d.ToneMappingExposure
	r.OutputEncoding = d.OutputEncoding
	r.PhysicallyCorrectLights = d.PhysicallyCorrectLights
	setColor(&r.ClearColor, d.ClearColor)
	r.ClearAlpha = d.ClearAlpha
	return r, nil
}

type scriptDoc struct {
	envelope

	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Source string `json:"source"`
}

func writeScript(s *engine.Script, d *scriptDoc) error {
	d.UUID = s.UUID
	d.Name = s.Name
	d.Type = s.Type
	d.Source = s.Source
	return nil
}

func readScript(d *scriptDoc, s *engine.Script, _ *loader) (*engine.Script, error) {
	if s == nil {
		s = engine.NewScript(d.Name, d.Source)
	}
	if d.UUID != "" {
		s.UUID = d.UUID
	}
	s.Name = d.Name
	if d.Type != "" {
		s.Type = d.Type
	}
	s.Source = d.Source
	return s, nil
}

type optionsDoc struct {
	envelope

	Values map[string]any `json:"values"`
}

func writeOptions(o engine.Options, d *optionsDoc) error {
	d.Values = map[string]any(o)
	return nil
}

// readOptions merges the recorded values over existing ones.
func readOptions(d *optionsDoc, o engine.Options, _ *loader) (engine.Options, error) {
	if o == nil {
		o = make(engine.Options, len(d.Values))
	}
	for k, v := range d.Values {
		o[k] = v
	}
	return o, nil
}
