package serializer

import (
	"context"
	"fmt"
	"io"

	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/internal/observability/log"
	"github.com/zeusync/scenedoc/pkg/deferred"
	"github.com/zeusync/scenedoc/pkg/encoding"
)

const (
	documentGenerator = "Serializer"
	documentType      = "Document"
)

// Document is the top-level persisted editor state. Scene lists every node
// of the graph as a flat sequence, parents before their children.
type Document struct {
	Metadata Metadata   `json:"metadata"`
	Options  Fragment   `json:"options,omitempty"`
	Camera   Fragment   `json:"camera,omitempty"`
	Renderer Fragment   `json:"renderer,omitempty"`
	Scripts  []Fragment `json:"scripts,omitempty"`
	Scene    []Fragment `json:"scene"`
}

// Serializer saves and restores whole editor states.
type Serializer struct {
	regs   *Registries
	codec  encoding.Codec
	logger log.Log
}

func New(logger log.Log, codec encoding.Codec) *Serializer {
	if logger == nil {
		logger = log.NewNop()
	}
	if codec == nil {
		codec = encoding.JSON{}
	}
	return &Serializer{
		regs:   NewRegistries(logger),
		codec:  codec,
		logger: logger,
	}
}

func (s *Serializer) Registries() *Registries { return s.regs }

// Save converts state into a document. Entities that cannot be converted are
// left out with a warning.
func (s *Serializer) Save(state *engine.State) (*Document, error) {
	if state == nil {
		return nil, ErrNilEntity
	}
	doc := &Document{
		Metadata: Metadata{Generator: documentGenerator, Type: documentType, Version: FormatVersion},
		Options:  s.regs.Options.Save(state.Options),
		Camera:   s.regs.Cameras.Save(state.Camera),
		Renderer: s.regs.Renderers.Save(state.Renderer),
		Scene:    []Fragment{},
	}
	for _, script := range state.Scripts {
		if frag := s.regs.Scripts.Save(script); frag != nil {
			doc.Scripts = append(doc.Scripts, frag)
		}
	}

	seen := make(map[*engine.Object3D]bool)
	var walk func(n engine.Node)
	walk = func(n engine.Node) {
		if isNil(n) || seen[n.Object()] {
			return
		}
		seen[n.Object()] = true
		if frag := s.regs.Nodes.Save(n); frag != nil {
			doc.Scene = append(doc.Scene, frag)
		}
		for _, c := range n.Object().Children {
			walk(c)
		}
	}
	if state.Scene != nil {
		walk(state.Scene)
	}
	for _, root := range state.Roots {
		walk(root)
	}

	s.logger.Debug("document saved",
		log.Int("nodes", len(doc.Scene)),
		log.Int("scripts", len(doc.Scripts)),
	)
	return doc, nil
}

// Load rebuilds the state recorded in doc. The viewport camera and renderer
// are loaded first and handed to the remaining converters unless rc already
// provides them. The result settles once every fetch has finished and the
// scene graph is linked.
func (s *Serializer) Load(ctx context.Context, doc *Document, rc *ReconstructionContext) *deferred.Deferred[*engine.State] {
	if doc == nil {
		return deferred.Rejected[*engine.State](fmt.Errorf("%w: nil document", ErrMalformedDocument))
	}
	rc = rc.withDefaults(s.logger)
	state := &engine.State{}

	var camera *deferred.Deferred[engine.Camera]
	if present(doc.Camera) {
		camera = s.regs.Cameras.Load(ctx, doc.Camera, rc)
	} else {
		camera = deferred.Resolved[engine.Camera](nil)
	}

	return deferred.Chain(camera, func(cam engine.Camera) *deferred.Deferred[*engine.State] {
		state.Camera = cam
		if rc.Camera == nil && !isNil(cam) {
			rc.Camera = cam
		}

		var renderer *deferred.Deferred[*engine.Renderer]
		if present(doc.Renderer) {
			renderer = s.regs.Renderers.Load(ctx, doc.Renderer, rc)
		} else {
			renderer = deferred.Resolved[*engine.Renderer](nil)
		}
		return deferred.Chain(renderer, func(r *engine.Renderer) *deferred.Deferred[*engine.State] {
			state.Renderer = r
			if rc.Renderer == nil && r != nil {
				rc.Renderer = r
			}
			return s.loadBody(ctx, doc, rc, state)
		})
	})
}

func (s *Serializer) loadBody(ctx context.Context, doc *Document, rc *ReconstructionContext, state *engine.State) *deferred.Deferred[*engine.State] {
	var options *deferred.Deferred[engine.Options]
	if present(doc.Options) {
		options = s.regs.Options.Load(ctx, doc.Options, rc)
	} else {
		options = deferred.Resolved[engine.Options](nil)
	}

	scripts := make([]*deferred.Deferred[*engine.Script], 0, len(doc.Scripts))
	for _, frag := range doc.Scripts {
		scripts = append(scripts, s.regs.Scripts.Load(ctx, frag, rc))
	}
	nodes := make([]*deferred.Deferred[engine.Node], 0, len(doc.Scene))
	for _, frag := range doc.Scene {
		nodes = append(nodes, s.regs.Nodes.Load(ctx, frag, rc))
	}

	return deferred.Go(ctx, func(ctx context.Context) (*engine.State, error) {
		opts, err := options.Await(ctx)
		if err != nil {
			return nil, err
		}
		state.Options = opts

		loadedScripts, err := deferred.All(ctx, scripts)
		if err != nil {
			return nil, err
		}
		for _, script := range loadedScripts {
			if script != nil {
				state.Scripts = append(state.Scripts, script)
			}
		}

		loaded, err := deferred.All(ctx, nodes)
		if err != nil {
			return nil, err
		}
		state.Scene, state.Roots = link(loaded, rc.Logger)

		rc.Logger.Debug("document loaded",
			log.Int("nodes", len(loaded)),
			log.Int("roots", len(state.Roots)),
		)
		return state, nil
	})
}

// link resolves the parent and child identifiers recorded on the loaded
// nodes. Nodes left without a parent become roots; the first Scene among them
// is returned separately.
func link(nodes []engine.Node, logger log.Log) (*engine.Scene, []engine.Node) {
	live := make([]engine.Node, 0, len(nodes))
	byID := make(map[string]engine.Node, len(nodes))
	for _, n := range nodes {
		if isNil(n) {
			continue
		}
		live = append(live, n)
		id := n.Object().UUID
		if _, dup := byID[id]; dup {
			logger.Warn("Serializer: duplicate node uuid "+id, log.String("uuid", id))
			continue
		}
		byID[id] = n
	}

	attached := make(map[*engine.Object3D]bool, len(live))
	for _, parent := range live {
		for _, id := range parent.Object().Refs.Children {
			child, ok := byID[id]
			if !ok {
				logger.Warn("Serializer: child "+id+" is not defined.",
					log.String("parent", parent.Object().UUID),
					log.String("child", id),
				)
				continue
			}
			if attached[child.Object()] || isAncestor(child, parent) {
				continue
			}
			engine.Attach(parent, child)
			attached[child.Object()] = true
		}
	}

	for _, n := range live {
		o := n.Object()
		if attached[o] || o.Refs.Parent == "" {
			continue
		}
		parent, ok := byID[o.Refs.Parent]
		if !ok || isAncestor(n, parent) {
			logger.Warn("Serializer: parent "+o.Refs.Parent+" is not defined.",
				log.String("uuid", o.UUID),
				log.String("parent", o.Refs.Parent),
			)
			continue
		}
		engine.Attach(parent, n)
		attached[o] = true
	}

	var scene *engine.Scene
	var roots []engine.Node
	for _, n := range live {
		if n.Object().Parent != nil {
			continue
		}
		if sc, ok := n.(*engine.Scene); ok && scene == nil {
			scene = sc
			continue
		}
		roots = append(roots, n)
	}
	return scene, roots
}

// isAncestor reports whether a is n itself or one of its ancestors.
func isAncestor(a, n engine.Node) bool {
	target := a.Object()
	for cur := n; cur != nil; cur = cur.Object().Parent {
		if cur.Object() == target {
			return true
		}
	}
	return false
}

// Encode writes doc with the configured codec.
func (s *Serializer) Encode(w io.Writer, doc *Document) error {
	data, err := s.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", s.codec.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a document with the configured codec.
func (s *Serializer) Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err = s.codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}
