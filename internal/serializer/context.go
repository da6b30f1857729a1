package serializer

import (
	"context"
	"fmt"

	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/internal/observability/log"
)

// ReconstructionContext carries the collaborators some entities need to be
// rebuilt. Every field is optional; converters that need a missing one fail
// with ErrMissingCollaborator.
type ReconstructionContext struct {
	// Camera is the viewport camera. Audio listeners and camera-facing
	// effects bind to it.
	Camera engine.Camera
	// Renderer sizes render-target dependent effects.
	Renderer *engine.Renderer
	// BaseURL is the asset store root relative references resolve against.
	BaseURL string
	Fetcher assets.Fetcher
	Models  engine.ModelDecoder
	Logger  log.Log
}

func (rc *ReconstructionContext) withDefaults(logger log.Log) *ReconstructionContext {
	out := ReconstructionContext{}
	if rc != nil {
		out = *rc
	}
	if out.Logger == nil {
		out.Logger = logger
	}
	return &out
}

// Fetch loads the bytes behind ref. Data URIs are decoded locally; other
// references are resolved against BaseURL and handed to the Fetcher.
func (rc *ReconstructionContext) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if assets.IsDataURI(ref) {
		_, data, err := assets.DecodeDataURI(ref)
		return data, err
	}
	if rc.Fetcher == nil {
		return nil, missing("fetcher")
	}
	url, err := assets.Resolve(rc.BaseURL, ref)
	if err != nil {
		return nil, err
	}
	data, err := rc.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return data, nil
}

func (rc *ReconstructionContext) camera() (engine.Camera, error) {
	if rc.Camera == nil || isNil(rc.Camera) {
		return nil, missing("camera")
	}
	return rc.Camera, nil
}

func (rc *ReconstructionContext) renderer() (*engine.Renderer, error) {
	if rc.Renderer == nil {
		return nil, missing("renderer")
	}
	return rc.Renderer, nil
}

func missing(what string) error {
	return fmt.Errorf("%w: %s", ErrMissingCollaborator, what)
}
