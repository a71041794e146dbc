// Package report summarizes a version-coalescing run and renders it for
// humans: a structured summary for terminal tables and a Graphviz diagram of
// how artifacts map onto version properties.
package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mfessler/bomprop/pkg/pom"
)

// Strategy describes how a group's versions were coalesced.
type Strategy string

const (
	// StrategyShared means the whole group references one property.
	StrategyShared Strategy = "shared"
	// StrategySplit means each artifact references its own property.
	StrategySplit Strategy = "split"
)

// Artifact is one dependency entry with its resolved property.
type Artifact struct {
	ArtifactID string
	Property   string // canonical property name the version was replaced with
	Version    string // value stored under Property
}

// Group collects the artifacts of one groupId.
type Group struct {
	GroupID   string
	Strategy  Strategy
	Artifacts []Artifact
}

// Summary is the complete outcome of one transform.
type Summary struct {
	Groups       []Group
	Dependencies int // total dependency entries
	Properties   int // distinct properties referenced
	Shared       int // groups coalesced under one property
	Split        int // groups with per-artifact properties
}

// Build derives a Summary from a transformed dependency list and its
// property table. Dependencies whose version is not a `${...}` reference, or
// whose reference has no property entry, are rejected.
func Build(deps []pom.Dependency, props map[string]string) (*Summary, error) {
	byGroup := make(map[string][]Artifact)
	seen := make(map[string]bool)
	referenced := make(map[string]bool)

	for _, d := range deps {
		if seen[d.Coordinate()] {
			continue
		}
		seen[d.Coordinate()] = true

		name, ok := propertyRef(d.Version)
		if !ok {
			return nil, fmt.Errorf("dependency %s has unrewritten version %q", d.Coordinate(), d.Version)
		}
		value, ok := props[name]
		if !ok {
			return nil, fmt.Errorf("dependency %s references missing property %q", d.Coordinate(), name)
		}
		referenced[name] = true
		byGroup[d.GroupID] = append(byGroup[d.GroupID], Artifact{
			ArtifactID: d.ArtifactID,
			Property:   name,
			Version:    value,
		})
	}

	s := &Summary{
		Dependencies: len(seen),
		Properties:   len(referenced),
	}
	groupIDs := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groupIDs = append(groupIDs, g)
	}
	slices.Sort(groupIDs)

	for _, groupID := range groupIDs {
		artifacts := byGroup[groupID]
		group := Group{GroupID: groupID, Strategy: StrategyShared, Artifacts: artifacts}
		for _, a := range artifacts[1:] {
			if a.Property != artifacts[0].Property {
				group.Strategy = StrategySplit
				break
			}
		}
		if group.Strategy == StrategyShared {
			s.Shared++
		} else {
			s.Split++
		}
		s.Groups = append(s.Groups, group)
	}
	return s, nil
}

// propertyRef extracts the property name from a `${name}` token.
func propertyRef(version string) (string, bool) {
	if !strings.HasPrefix(version, "${") || !strings.HasSuffix(version, "}") {
		return "", false
	}
	name := version[2 : len(version)-1]
	return name, name != ""
}
