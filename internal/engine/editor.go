package engine

import "github.com/google/uuid"

// Renderer is the renderer configuration the editor persists.
type Renderer struct {
	Antialias               bool
	Alpha                   bool
	ShadowMapEnabled        bool
	ShadowMapType           int
	PixelRatio              float32
	Width                   int
	Height                  int
	ToneMapping             int
	ToneMappingExposure     float32
	OutputEncoding          int
	PhysicallyCorrectLights bool
	ClearColor              Color
	ClearAlpha              float32
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Antialias:           true,
		ShadowMapEnabled:    true,
		ShadowMapType:       1,
		PixelRatio:          1,
		Width:               width,
		Height:              height,
		ToneMappingExposure: 1,
		OutputEncoding:      3000,
		ClearColor:          ColorFromHex(0xaaaaaa),
		ClearAlpha:          1,
	}
}

func (*Renderer) Kind() Kind { return KindRenderer }

// Script is a user script attached to the scene.
type Script struct {
	UUID   string
	Name   string
	Type   string
	Source string
}

func NewScript(name, source string) *Script {
	return &Script{UUID: uuid.NewString(), Name: name, Type: "javascript", Source: source}
}

func (*Script) Kind() Kind { return KindScript }

// Options is free-form editor configuration.
type Options map[string]any

func (Options) Kind() Kind { return KindOptions }

// State is the whole persisted editor state.
type State struct {
	Scene    *Scene
	Camera   Camera
	Renderer *Renderer
	Scripts  []*Script
	Options  Options

	// Roots holds top-level nodes other than Scene, including nodes whose
	// recorded parent could not be found.
	Roots []Node
}
