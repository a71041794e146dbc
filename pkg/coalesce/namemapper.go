package coalesce

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// NameMapper resolves candidate property names against a configured set of
// regular-expression patterns. It is immutable after construction.
type NameMapper struct {
	entries []mapperEntry
}

// mapperEntry pairs one canonical name with its compiled patterns.
// Entries are kept sorted by name so lookup order is deterministic.
type mapperEntry struct {
	name     string
	patterns []*regexp.Regexp
}

// NewNameMapper compiles a mapping of canonical property name to a
// comma-separated list of regular-expression fragments. Each fragment is
// trimmed and anchored so it must match a candidate name in full.
// Construction fails on the first fragment that does not compile.
func NewNameMapper(mapping map[string]string) (*NameMapper, error) {
	entries := make([]mapperEntry, 0, len(mapping))
	for _, name := range slices.Sorted(maps.Keys(mapping)) {
		entry := mapperEntry{name: name}
		for _, frag := range strings.Split(mapping[name], ",") {
			frag = strings.TrimSpace(frag)
			re, err := regexp.Compile(`\A(?:` + frag + `)\z`)
			if err != nil {
				return nil, fmt.Errorf("name mapping %q: invalid pattern %q: %w", name, frag, err)
			}
			entry.patterns = append(entry.patterns, re)
		}
		entries = append(entries, entry)
	}
	return &NameMapper{entries: entries}, nil
}

// MapName returns the canonical name of the first configured pattern that
// fully matches candidate, or candidate itself when nothing matches.
func (m *NameMapper) MapName(candidate string) string {
	for _, e := range m.entries {
		for _, re := range e.patterns {
			if re.MatchString(candidate) {
				return e.name
			}
		}
	}
	return candidate
}
