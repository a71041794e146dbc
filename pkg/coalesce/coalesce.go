package coalesce

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mfessler/bomprop/pkg/pom"
)

// Coalescer turns literal dependency versions into shared property
// references. A Coalescer holds only its compiled name mapping and may be
// reused across independent inputs.
type Coalescer struct {
	mapper *NameMapper
}

// New builds a Coalescer from a canonical-name → pattern-list mapping.
// See [NewNameMapper] for the mapping format. A nil or empty mapping is
// valid and leaves every candidate name untouched.
func New(mapping map[string]string) (*Coalescer, error) {
	mapper, err := NewNameMapper(mapping)
	if err != nil {
		return nil, err
	}
	return &Coalescer{mapper: mapper}, nil
}

// Transform rewrites every dependency version to a `${property}` reference
// and returns the rewritten list together with the property table. props
// holds pre-existing properties to merge into the result; it may be nil.
// Neither input is mutated.
//
// Groups whose artifacts agree on a version collapse onto one
// `version.<groupId>` property; disagreeing groups get one
// `version.<groupId>.<artifactId>` property per artifact. Candidate names
// pass through the configured name mapping before assignment, and an
// assignment that would overwrite a different value fails with a
// [ConflictError].
func (c *Coalescer) Transform(deps []pom.Dependency, props map[string]string) ([]pom.Dependency, map[string]string, error) {
	versions := make(map[string]string, len(deps)) // groupId:artifactId → version
	artifacts := make(map[string][]string)         // groupId → artifactIds
	for _, d := range deps {
		key := d.Coordinate()
		if prev, ok := versions[key]; ok {
			if prev != d.Version {
				return nil, nil, &DuplicateError{Coordinate: key, First: prev, Second: d.Version}
			}
			continue
		}
		versions[key] = d.Version
		artifacts[d.GroupID] = append(artifacts[d.GroupID], d.ArtifactID)
	}

	merged := make(map[string]string, len(props)+len(artifacts))
	maps.Copy(merged, props)

	// groupId:artifactId → canonical property name. Every input coordinate
	// must be present here before the rewrite pass below.
	names := make(map[string]string, len(versions))

	for _, groupID := range slices.Sorted(maps.Keys(artifacts)) {
		ids := artifacts[groupID]
		if len(ids) == 1 || oneVersion(groupID, ids, versions) {
			candidate := "version." + groupID
			name := c.mapper.MapName(candidate)
			if err := setVersion(merged, candidate, name, versions[groupID+":"+ids[0]]); err != nil {
				return nil, nil, err
			}
			for _, id := range ids {
				names[groupID+":"+id] = name
			}
			continue
		}
		for _, id := range ids {
			key := groupID + ":" + id
			candidate := "version." + groupID + "." + id
			name := c.mapper.MapName(candidate)
			if err := setVersion(merged, candidate, name, versions[key]); err != nil {
				return nil, nil, err
			}
			names[key] = name
		}
	}

	out := make([]pom.Dependency, len(deps))
	for i, d := range deps {
		name, ok := names[d.Coordinate()]
		if !ok {
			return nil, nil, fmt.Errorf("%w: no property resolved for %s", ErrInternal, d.Coordinate())
		}
		d.Version = "${" + name + "}"
		out[i] = d
	}
	return out, merged, nil
}

// TransformProject applies Transform to a project's dependency-management
// section and returns a new project with rewritten versions and an augmented
// properties table. The input project is left untouched.
func (c *Coalescer) TransformProject(p *pom.Project) (*pom.Project, error) {
	deps, props, err := c.Transform(p.ManagedDependencies(), p.Properties)
	if err != nil {
		return nil, err
	}
	out := *p
	out.Properties = props
	if p.DependencyManagement != nil {
		out.DependencyManagement = &pom.DependencyManagement{Dependencies: deps}
	}
	return &out, nil
}

// setVersion stores version under name, enforcing the conflict guard: a name
// may be assigned repeatedly only with an identical value.
func setVersion(props map[string]string, candidate, name, version string) error {
	if existing, ok := props[name]; ok && existing != version {
		return &ConflictError{Candidate: candidate, Canonical: name, Value: version, Existing: existing}
	}
	props[name] = version
	return nil
}

// oneVersion reports whether every artifact of the group carries the same
// version string.
func oneVersion(groupID string, artifactIDs []string, versions map[string]string) bool {
	first := versions[groupID+":"+artifactIDs[0]]
	for _, id := range artifactIDs[1:] {
		if versions[groupID+":"+id] != first {
			return false
		}
	}
	return true
}
