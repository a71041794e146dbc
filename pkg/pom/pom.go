// Package pom reads and writes Maven POM files.
//
// Only the parts of the POM schema that matter for bill-of-materials
// processing are modeled: project identity, the <properties> table, and the
// <dependencyManagement> section. Everything else in the input document is
// ignored on parse and absent from output.
package pom

import (
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// Project is a Maven POM, reduced to the elements a BOM carries.
type Project struct {
	XMLName              xml.Name              `xml:"project"`
	Xmlns                string                `xml:"xmlns,attr,omitempty"`
	ModelVersion         string                `xml:"modelVersion,omitempty"`
	GroupID              string                `xml:"groupId"`
	ArtifactID           string                `xml:"artifactId"`
	Version              string                `xml:"version"`
	Packaging            string                `xml:"packaging,omitempty"`
	Name                 string                `xml:"name,omitempty"`
	Description          string                `xml:"description,omitempty"`
	Properties           Properties            `xml:"properties"`
	DependencyManagement *DependencyManagement `xml:"dependencyManagement"`
}

// DependencyManagement holds the managed dependency list in document order.
type DependencyManagement struct {
	Dependencies []Dependency `xml:"dependencies>dependency"`
}

// Dependency is one managed dependency entry.
type Dependency struct {
	GroupID    string      `xml:"groupId"`
	ArtifactID string      `xml:"artifactId"`
	Version    string      `xml:"version"`
	Type       string      `xml:"type,omitempty"`
	Classifier string      `xml:"classifier,omitempty"`
	Scope      string      `xml:"scope,omitempty"`
	Optional   string      `xml:"optional,omitempty"`
	Exclusions []Exclusion `xml:"exclusions>exclusion,omitempty"`
}

// Exclusion is a transitive dependency exclusion.
type Exclusion struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// Coordinate returns the colon-joined groupId:artifactId key that identifies
// this dependency within a dependency-management section.
func (d Dependency) Coordinate() string {
	return d.GroupID + ":" + d.ArtifactID
}

// Properties is the <properties> table. Maven properties are arbitrary
// element names, so the type carries custom XML marshaling. Output is sorted
// by name to keep serialization deterministic.
type Properties map[string]string

// UnmarshalXML decodes each child element as a name/value pair.
func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	props := make(map[string]string)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			props[t.Name.Local] = value
		case xml.EndElement:
			*p = props
			return nil
		}
	}
}

// MarshalXML encodes the table as one element per property, sorted by name.
// An empty table is omitted entirely.
func (p Properties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if len(p) == 0 {
		return nil
	}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(p)) {
		elem := xml.StartElement{Name: xml.Name{Local: name}}
		if err := e.EncodeElement(p[name], elem); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Parse decodes a POM document.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := xml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pom: %w", err)
	}
	// Drop any namespace captured during decoding; the xmlns attribute field
	// already holds it, and keeping both would duplicate it on output.
	p.XMLName = xml.Name{Local: "project"}
	return &p, nil
}

// Load reads and parses the POM at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Write serializes the project as indented XML with a standard declaration.
func (p *Project) Write(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode pom: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Save writes the project to path.
func (p *Project) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ManagedDependencies returns the dependency-management list, or nil when the
// section is absent.
func (p *Project) ManagedDependencies() []Dependency {
	if p.DependencyManagement == nil {
		return nil
	}
	return p.DependencyManagement.Dependencies
}
