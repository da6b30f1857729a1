// Package serializer converts a live scene graph to a portable document and
// back.
//
// Every concrete entity kind has one converter. Converters are grouped into
// registries per family; a registry picks the converter from the live value's
// kind on save and from the fragment's metadata generator on load. Registries
// are the only place where conversion errors are recovered: failures become a
// logged warning and an absent value.
package serializer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zeusync/scenedoc/internal/engine"
	"github.com/zeusync/scenedoc/pkg/deferred"
)

// FormatVersion is stamped into every fragment.
const FormatVersion = "1.0"

// Fragment is one document node describing one entity.
type Fragment = json.RawMessage

// Metadata is the envelope every fragment carries.
type Metadata struct {
	Generator string `json:"generator"`
	Type      string `json:"type"`
	Version   string `json:"version"`
}

// Converter turns one entity kind into a Fragment and back.
//
// FromDocument mutates existing when it is non-nil and otherwise builds a new
// entity. The result is always a Deferred; conversions that need no I/O
// return one that is already settled.
type Converter[T engine.Entity] interface {
	Kind() engine.Kind
	Tag() string
	Matches(candidate any) bool
	ToDocument(v T) (Fragment, error)
	FromDocument(ctx context.Context, frag Fragment, existing T, rc *ReconstructionContext) *deferred.Deferred[T]
}

type envelope struct {
	Metadata Metadata `json:"metadata"`
}

func (e *envelope) stamp(k engine.Kind) {
	e.Metadata = Metadata{
		Generator: Tag(k),
		Type:      k.Family().String(),
		Version:   FormatVersion,
	}
}

func (e *envelope) meta() Metadata { return e.Metadata }

type document interface {
	stamp(k engine.Kind)
	meta() Metadata
}

// PeekMetadata reads the envelope of frag without decoding the rest.
func PeekMetadata(frag Fragment) (Metadata, error) {
	var head struct {
		Metadata *Metadata `json:"metadata"`
	}
	if err := json.Unmarshal(frag, &head); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrMalformedFragment, err)
	}
	if head.Metadata == nil {
		return Metadata{}, &FieldError{Field: "metadata"}
	}
	if head.Metadata.Generator == "" {
		return Metadata{}, &FieldError{Field: "metadata.generator"}
	}
	return *head.Metadata, nil
}

// matches implements Converter.Matches for the converter of kind k.
func matches(k engine.Kind, candidate any) bool {
	switch c := candidate.(type) {
	case Fragment:
		m, err := PeekMetadata(c)
		return err == nil && m.Generator == Tag(k)
	case []byte:
		return matches(k, Fragment(c))
	case engine.Entity:
		return !isNil(c) && c.Kind() == k
	default:
		return false
	}
}

func present(raw Fragment) bool {
	return len(raw) > 0 && string(raw) != "null"
}
