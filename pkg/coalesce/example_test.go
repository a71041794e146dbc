package coalesce_test

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mfessler/bomprop/pkg/coalesce"
	"github.com/mfessler/bomprop/pkg/pom"
)

func Example() {
	// Two artifacts of com.acme agree on a version, so they share one
	// property; com.other gets its own.
	deps := []pom.Dependency{
		{GroupID: "com.acme", ArtifactID: "core", Version: "1.2"},
		{GroupID: "com.acme", ArtifactID: "util", Version: "1.2"},
		{GroupID: "com.other", ArtifactID: "widget", Version: "3.0"},
	}

	c, _ := coalesce.New(nil)
	rewritten, props, _ := c.Transform(deps, nil)

	for _, d := range rewritten {
		fmt.Printf("%s:%s %s\n", d.GroupID, d.ArtifactID, d.Version)
	}
	for _, name := range slices.Sorted(maps.Keys(props)) {
		fmt.Printf("%s = %s\n", name, props[name])
	}
	// Output:
	// com.acme:core ${version.com.acme}
	// com.acme:util ${version.com.acme}
	// com.other:widget ${version.com.other}
	// version.com.acme = 1.2
	// version.com.other = 3.0
}

func ExampleCoalescer_Transform_split() {
	// Disagreeing versions within a group force one property per artifact.
	deps := []pom.Dependency{
		{GroupID: "com.acme", ArtifactID: "core", Version: "1.2"},
		{GroupID: "com.acme", ArtifactID: "util", Version: "1.3"},
	}

	c, _ := coalesce.New(nil)
	rewritten, props, _ := c.Transform(deps, nil)

	for _, d := range rewritten {
		fmt.Printf("%s %s\n", d.Version, props[d.Version[2:len(d.Version)-1]])
	}
	// Output:
	// ${version.com.acme.core} 1.2
	// ${version.com.acme.util} 1.3
}

func ExampleNameMapper() {
	// Candidates matching a configured pattern collapse onto the canonical
	// name; everything else passes through.
	m, _ := coalesce.NewNameMapper(map[string]string{
		"version.wildfly": `version\.org\.wildfly.*`,
	})

	fmt.Println(m.MapName("version.org.wildfly.core"))
	fmt.Println(m.MapName("version.com.acme"))
	// Output:
	// version.wildfly
	// version.com.acme
}
