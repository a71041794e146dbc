package coalesce

import (
	"strings"
	"testing"
)

func TestNameMapper_MapName(t *testing.T) {
	tests := []struct {
		name      string
		mapping   map[string]string
		candidate string
		want      string
	}{
		{
			name:      "NoConfiguration",
			mapping:   nil,
			candidate: "version.com.acme",
			want:      "version.com.acme",
		},
		{
			name:      "FullMatch",
			mapping:   map[string]string{"version.acme": `version\.com\.acme.*`},
			candidate: "version.com.acme.core",
			want:      "version.acme",
		},
		{
			name:      "NoSubstringMatch",
			mapping:   map[string]string{"version.acme": "foo"},
			candidate: "foobar",
			want:      "foobar",
		},
		{
			name:      "PrefixDoesNotMatchWholeString",
			mapping:   map[string]string{"version.acme": `version\.com`},
			candidate: "version.com.acme",
			want:      "version.com.acme",
		},
		{
			name: "CommaSeparatedFragments",
			mapping: map[string]string{
				"version.jboss": `version\.org\.jboss.* , version\.org\.wildfly.*`,
			},
			candidate: "version.org.wildfly.core",
			want:      "version.jboss",
		},
		{
			name: "LexicographicFirstWins",
			mapping: map[string]string{
				"version.b": "version.*",
				"version.a": "version.*",
			},
			candidate: "version.com.acme",
			want:      "version.a",
		},
		{
			name:      "IdentityIsIdempotent",
			mapping:   map[string]string{"version.acme": `version\.com\.acme`},
			candidate: "version.acme",
			want:      "version.acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewNameMapper(tt.mapping)
			if err != nil {
				t.Fatalf("NewNameMapper failed: %v", err)
			}
			if got := m.MapName(tt.candidate); got != tt.want {
				t.Errorf("MapName(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestNewNameMapper_InvalidPattern(t *testing.T) {
	_, err := NewNameMapper(map[string]string{"version.acme": `ok.* , [broken`})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !strings.Contains(err.Error(), "[broken") {
		t.Errorf("error %q does not name the offending fragment", err)
	}
}

func TestNameMapper_FragmentTrimming(t *testing.T) {
	m, err := NewNameMapper(map[string]string{"version.acme": `  version\.com\.acme  `})
	if err != nil {
		t.Fatalf("NewNameMapper failed: %v", err)
	}
	if got := m.MapName("version.com.acme"); got != "version.acme" {
		t.Errorf("MapName = %q, want version.acme", got)
	}
}
