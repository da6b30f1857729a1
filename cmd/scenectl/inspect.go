package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zeusync/scenedoc/internal/observability/log"
	"github.com/zeusync/scenedoc/internal/serializer"
	"github.com/zeusync/scenedoc/pkg/encoding"
)

type summary struct {
	Generator   string         `json:"generator"`
	Version     string         `json:"version"`
	Fingerprint string         `json:"fingerprint"`
	Camera      string         `json:"camera,omitempty"`
	Renderer    bool           `json:"renderer"`
	Options     bool           `json:"options"`
	Scripts     int            `json:"scripts"`
	Nodes       int            `json:"nodes"`
	Generators  map[string]int `json:"generators"`
	Malformed   int            `json:"malformed,omitempty"`
}

func newInspectCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <document>",
		Short: "Summarize a document without loading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(args[0], log.NewNop())
			if err != nil {
				return err
			}
			s, err := summarize(doc)
			if err != nil {
				return err
			}
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			return s.print(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the summary as JSON")
	return cmd
}

func summarize(doc *serializer.Document) (summary, error) {
	fp, err := encoding.Fingerprint(doc)
	if err != nil {
		return summary{}, err
	}
	s := summary{
		Generator:   doc.Metadata.Generator,
		Version:     doc.Metadata.Version,
		Fingerprint: fmt.Sprintf("%016x", fp),
		Renderer:    len(doc.Renderer) > 0,
		Options:     len(doc.Options) > 0,
		Scripts:     len(doc.Scripts),
		Nodes:       len(doc.Scene),
		Generators:  make(map[string]int),
	}
	if len(doc.Camera) > 0 {
		if m, err := serializer.PeekMetadata(doc.Camera); err == nil {
			s.Camera = m.Generator
		}
	}
	for _, frag := range doc.Scene {
		m, err := serializer.PeekMetadata(frag)
		if err != nil {
			s.Malformed++
			continue
		}
		s.Generators[m.Generator]++
	}
	return s, nil
}

func (s summary) print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "generator:\t%s %s\n", s.Generator, s.Version)
	fmt.Fprintf(tw, "fingerprint:\t%s\n", s.Fingerprint)
	if s.Camera != "" {
		fmt.Fprintf(tw, "camera:\t%s\n", s.Camera)
	}
	fmt.Fprintf(tw, "renderer:\t%t\n", s.Renderer)
	fmt.Fprintf(tw, "options:\t%t\n", s.Options)
	fmt.Fprintf(tw, "scripts:\t%d\n", s.Scripts)
	fmt.Fprintf(tw, "nodes:\t%d\n", s.Nodes)

	names := make([]string, 0, len(s.Generators))
	for name := range s.Generators {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%d\n", name, s.Generators[name])
	}
	if s.Malformed > 0 {
		fmt.Fprintf(tw, "malformed:\t%d\n", s.Malformed)
	}
	return tw.Flush()
}
