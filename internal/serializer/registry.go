package serializer

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/internal/observability/log"
	"github.com/zeusync/scenedoc/pkg/deferred"
)

// Registry dispatches one family of entities to their converters. It never
// fails: every error is logged as a warning and reported as an absent value,
// a nil Fragment on save and a zero T on load.
type Registry[T engine.Entity] struct {
	name   string
	logger log.Log

	mu         sync.RWMutex
	converters map[engine.Kind]Converter[T]
}

func NewRegistry[T engine.Entity](name string, logger log.Log) *Registry[T] {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Registry[T]{
		name:       name,
		logger:     logger,
		converters: make(map[engine.Kind]Converter[T]),
	}
}

// Register adds c. Registering a second converter for one kind panics.
func (r *Registry[T]) Register(c Converter[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c == nil {
		panic(fmt.Sprintf("serializer: %s: Register converter is nil", r.name))
	}
	if _, exists := r.converters[c.Kind()]; exists {
		panic(fmt.Sprintf("serializer: %s: Register called twice for kind %s", r.name, c.Kind()))
	}
	r.converters[c.Kind()] = c
}

// Lookup returns the converter registered for k.
func (r *Registry[T]) Lookup(k engine.Kind) (Converter[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.converters[k]
	return c, ok
}

// Kinds lists the registered kinds in declaration order.
func (r *Registry[T]) Kinds() []engine.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]engine.Kind, 0, len(r.converters))
	for k := range r.converters {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Tag is the name registry-level warnings are reported under.
func (r *Registry[T]) Tag() string { return r.name + "Serializer" }

// Save converts v with the converter registered for its kind. A nil v yields
// a nil Fragment without a warning.
func (r *Registry[T]) Save(v T) Fragment {
	if isNil(v) {
		return nil
	}
	c, ok := r.Lookup(v.Kind())
	if !ok {
		r.warn(nil, r.Tag(), fmt.Errorf("%w: %s", ErrUnknownKind, v.Kind()))
		return nil
	}
	frag, err := c.ToDocument(v)
	if err != nil {
		r.warn(nil, c.Tag(), err)
		return nil
	}
	return frag
}

// Load rebuilds a new entity from frag.
func (r *Registry[T]) Load(ctx context.Context, frag Fragment, rc *ReconstructionContext) *deferred.Deferred[T] {
	var zero T
	return r.LoadInto(ctx, frag, zero, rc)
}

// LoadInto rebuilds frag into existing when the converter accepts it.
// The result never carries an error.
func (r *Registry[T]) LoadInto(ctx context.Context, frag Fragment, existing T, rc *ReconstructionContext) *deferred.Deferred[T] {
	meta, err := PeekMetadata(frag)
	if err != nil {
		return r.absent(rc, r.Tag(), err)
	}
	k, ok := KindForTag(meta.Generator)
	if !ok {
		return r.absent(rc, r.Tag(), fmt.Errorf("%w: %s", ErrUnknownGenerator, meta.Generator))
	}
	c, ok := r.Lookup(k)
	if !ok {
		return r.absent(rc, r.Tag(), fmt.Errorf("%w: %s", ErrUnknownGenerator, meta.Generator))
	}
	return deferred.Catch(c.FromDocument(ctx, frag, existing, rc), func(err error) T {
		r.warn(rc, c.Tag(), err)
		var zero T
		return zero
	})
}

func (r *Registry[T]) absent(rc *ReconstructionContext, tag string, err error) *deferred.Deferred[T] {
	r.warn(rc, tag, err)
	var zero T
	return deferred.Resolved(zero)
}

func (r *Registry[T]) warn(rc *ReconstructionContext, tag string, err error) {
	logger := r.logger
	if rc != nil && rc.Logger != nil {
		logger = rc.Logger
	}
	logger.Warn(tag+": "+err.Error(), log.String("registry", r.name), log.Error(err))
}

// isNil reports whether v is nil or a typed nil pointer, map or slice.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
