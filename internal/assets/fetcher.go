// Package assets fetches the remote bytes scene reconstruction depends on:
// texture images, typefaces, audio clips and compressed models.
package assets

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrNotFound        = errors.New("asset not found")
	ErrEmptyURL        = errors.New("asset url is required")
	ErrUnexpectedReply = errors.New("unexpected asset server reply")
	ErrFetcherClosed   = errors.New("fetcher is closed")
)

// Fetcher loads the bytes stored under url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// StatusError reports a non-success status from an asset server.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("assets: %s: unexpected status %d", e.URL, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == 404
}

// Resolve interprets ref relative to base. Absolute references and data URIs
// are returned unchanged; an empty base leaves ref as is.
func Resolve(base, ref string) (string, error) {
	if ref == "" {
		return "", ErrEmptyURL
	}
	if base == "" || strings.HasPrefix(ref, "data:") {
		return ref, nil
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("assets: parse %q: %w", ref, err)
	}
	if r.IsAbs() {
		return ref, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("assets: parse base %q: %w", base, err)
	}
	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
	}
	return b.ResolveReference(r).String(), nil
}
