package report

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a summary to Graphviz DOT format. Each groupId becomes a
// cluster of artifact nodes, each property becomes a box labeled with its
// value, and an edge connects every artifact to the property it references.
func ToDOT(s *Summary) string {
	var buf bytes.Buffer
	buf.WriteString("digraph bom {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	properties := make(map[string]string)
	for i, g := range s.Groups {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", g.GroupID)
		for _, a := range g.Artifacts {
			fmt.Fprintf(&buf, "    %q;\n", g.GroupID+":"+a.ArtifactID)
			properties[a.Property] = a.Version
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, name := range slices.Sorted(maps.Keys(properties)) {
		label := name + "\n" + properties[name]
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightgrey];\n", "prop:"+name, label)
	}

	buf.WriteString("\n")
	for _, g := range s.Groups {
		for _, a := range g.Artifacts {
			fmt.Fprintf(&buf, "  %q -> %q;\n", g.GroupID+":"+a.ArtifactID, "prop:"+a.Property)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
