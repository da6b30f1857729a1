package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeusync/scenedoc/internal/observability/log"
	"github.com/zeusync/scenedoc/internal/serializer"
	"github.com/zeusync/scenedoc/pkg/encoding"
)

// formatOf picks the document format from the file extension, falling back
// to the configured one.
func formatOf(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return fallback
	}
}

func (a *app) codecFor(path string) (encoding.Codec, error) {
	return encoding.ForFormat(formatOf(path, a.cfg.Document.Format), a.cfg.Document.Indent)
}

func (a *app) readDocument(path string, logger log.Log) (*serializer.Document, error) {
	codec, err := a.codecFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	doc, err := serializer.New(logger, codec).Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func (a *app) writeDocument(path string, doc *serializer.Document, logger log.Log) error {
	codec, err := a.codecFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = serializer.New(logger, codec).Encode(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
