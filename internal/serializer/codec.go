package serializer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/pkg/deferred"
)

type docPtr[D any] interface {
	*D
	document
}

// codec is the Converter shared by every implemented kind. The encode and
// decode functions only deal with their own document struct; codec handles
// the envelope and the JSON form.
type codec[C engine.Entity, D any, P docPtr[D]] struct {
	regs   *Registries
	kind   engine.Kind
	encode func(v C, d P) error
	decode func(d P, existing C, l *loader) (C, error)
}

func newCodec[C engine.Entity, D any, P docPtr[D]](
	regs *Registries,
	kind engine.Kind,
	encode func(C, P) error,
	decode func(P, C, *loader) (C, error),
) *codec[C, D, P] {
	return &codec[C, D, P]{regs: regs, kind: kind, encode: encode, decode: decode}
}

func (c *codec[C, D, P]) Kind() engine.Kind          { return c.kind }
func (c *codec[C, D, P]) Tag() string                { return Tag(c.kind) }
func (c *codec[C, D, P]) Matches(candidate any) bool { return matches(c.kind, candidate) }

func (c *codec[C, D, P]) ToDocument(v C) (Fragment, error) {
	if isNil(v) {
		return nil, ErrNilEntity
	}
	if v.Kind() != c.kind {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, v.Kind())
	}
	d := P(new(D))
	d.stamp(c.kind)
	if err := c.encode(v, d); err != nil {
		return nil, err
	}
	return json.Marshal(d)
}

func (c *codec[C, D, P]) FromDocument(ctx context.Context, frag Fragment, existing C, rc *ReconstructionContext) *deferred.Deferred[C] {
	d := P(new(D))
	if err := json.Unmarshal(frag, d); err != nil {
		return deferred.Rejected[C](fmt.Errorf("%w: %v", ErrMalformedFragment, err))
	}
	if g := d.meta().Generator; g != c.Tag() {
		return deferred.Rejected[C](fmt.Errorf("%w: %q is not %q", ErrUnknownGenerator, g, c.Tag()))
	}
	if rc == nil {
		rc = &ReconstructionContext{}
	}
	l := &loader{ctx: ctx, rc: rc, regs: c.regs}
	v, err := c.decode(d, existing, l)
	if err != nil {
		return deferred.Rejected[C](err)
	}
	return settle(l, v)
}

// unimplemented is registered for kinds the document format names but this
// package cannot rebuild. Both directions fail with ErrNotImplemented.
type unimplemented[C engine.Entity] struct {
	kind engine.Kind
}

func (u unimplemented[C]) Kind() engine.Kind          { return u.kind }
func (u unimplemented[C]) Tag() string                { return Tag(u.kind) }
func (u unimplemented[C]) Matches(candidate any) bool { return matches(u.kind, candidate) }

func (u unimplemented[C]) ToDocument(C) (Fragment, error) {
	return nil, ErrNotImplemented
}

func (u unimplemented[C]) FromDocument(context.Context, Fragment, C, *ReconstructionContext) *deferred.Deferred[C] {
	return deferred.Rejected[C](ErrNotImplemented)
}

// lifted exposes a converter of a concrete type C as a converter of the
// family interface F it belongs to.
type lifted[F, C engine.Entity] struct {
	inner Converter[C]
}

func lift[F, C engine.Entity](c Converter[C]) Converter[F] {
	return lifted[F, C]{inner: c}
}

func (l lifted[F, C]) Kind() engine.Kind          { return l.inner.Kind() }
func (l lifted[F, C]) Tag() string                { return l.inner.Tag() }
func (l lifted[F, C]) Matches(candidate any) bool { return l.inner.Matches(candidate) }

func (l lifted[F, C]) ToDocument(v F) (Fragment, error) {
	if isNil(v) {
		return nil, ErrNilEntity
	}
	c, ok := any(v).(C)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kindOf(v))
	}
	return l.inner.ToDocument(c)
}

func (l lifted[F, C]) FromDocument(ctx context.Context, frag Fragment, existing F, rc *ReconstructionContext) *deferred.Deferred[F] {
	var target C
	if !isNil(existing) {
		c, ok := any(existing).(C)
		if !ok {
			return deferred.Rejected[F](fmt.Errorf("%w: %s into %s", ErrEntityMismatch, l.Tag(), kindOf(existing)))
		}
		target = c
	}
	return deferred.Then(l.inner.FromDocument(ctx, frag, target, rc), func(c C) (F, error) {
		var zero F
		if isNil(c) {
			return zero, nil
		}
		f, ok := any(c).(F)
		if !ok {
			return zero, fmt.Errorf("%w: %s", ErrEntityMismatch, kindOf(c))
		}
		return f, nil
	})
}

func kindOf(v engine.Entity) engine.Kind {
	if isNil(v) {
		return engine.KindUnknown
	}
	return v.Kind()
}

// loader is handed to decode functions. It loads nested fragments and
// fetches remote bytes, collecting everything the entity has to wait for.
type loader struct {
	ctx  context.Context
	rc   *ReconstructionContext
	regs *Registries

	waits []deferred.Waiter
}

func (l *loader) wait(w deferred.Waiter) {
	l.waits = append(l.waits, w)
}

// fetch requests ref and runs apply on the bytes. apply runs on another
// goroutine and must only touch the entity being built.
func (l *loader) fetch(ref string, apply func(data []byte) error) {
	if ref == "" {
		l.wait(deferred.Rejected[struct{}](&FieldError{Field: "url"}))
		return
	}
	rc := l.rc
	l.wait(deferred.Go(l.ctx, func(ctx context.Context) (struct{}, error) {
		data, err := rc.Fetch(ctx, ref)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, apply(data)
	}))
}

func (l *loader) texture(raw Fragment, dst *engine.Texture) {
	loadInto(l, l.regs.Textures, raw, dst)
}

func (l *loader) material(raw Fragment, dst *engine.Material) {
	loadInto(l, l.regs.Materials, raw, dst)
}

func (l *loader) geometry(raw Fragment, dst *engine.Geometry) {
	loadInto(l, l.regs.Geometries, raw, dst)
}

func (l *loader) camera(raw Fragment, dst *engine.Camera) {
	loadInto(l, l.regs.Cameras, raw, dst)
}

func (l *loader) shadow(raw Fragment, dst *engine.LightShadow) {
	loadInto(l, l.regs.Shadows, raw, dst)
}

// loadInto loads a nested fragment through reg and stores the result in dst
// once it settles. Absent fragments leave dst untouched.
func loadInto[T engine.Entity](l *loader, reg *Registry[T], raw Fragment, dst *T) {
	if !present(raw) {
		return
	}
	d := reg.Load(l.ctx, raw, l.rc)
	l.wait(deferred.Then(d, func(v T) (struct{}, error) {
		*dst = v
		return struct{}{}, nil
	}))
}

// settle resolves v once everything the loader started has settled.
func settle[C any](l *loader, v C) *deferred.Deferred[C] {
	if len(l.waits) == 0 {
		return deferred.Resolved(v)
	}
	return deferred.Then(deferred.Join(l.waits...), func(struct{}) (C, error) {
		return v, nil
	})
}
