package pom

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBOM = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.acme</groupId>
  <artifactId>acme-bom</artifactId>
  <version>1.0.0</version>
  <packaging>pom</packaging>
  <name>Acme BOM</name>

  <properties>
    <maven.compiler.source>11</maven.compiler.source>
    <version.junit>4.13</version.junit>
  </properties>

  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.acme</groupId>
        <artifactId>core</artifactId>
        <version>1.2</version>
      </dependency>
      <dependency>
        <groupId>com.acme</groupId>
        <artifactId>util</artifactId>
        <version>1.2</version>
        <scope>runtime</scope>
      </dependency>
      <dependency>
        <groupId>junit</groupId>
        <artifactId>junit</artifactId>
        <version>${version.junit}</version>
        <scope>test</scope>
        <exclusions>
          <exclusion>
            <groupId>org.hamcrest</groupId>
            <artifactId>hamcrest-core</artifactId>
          </exclusion>
        </exclusions>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sampleBOM))
	require.NoError(t, err)

	assert.Equal(t, "com.acme", p.GroupID)
	assert.Equal(t, "acme-bom", p.ArtifactID)
	assert.Equal(t, "1.0.0", p.Version)
	assert.Equal(t, "pom", p.Packaging)

	require.NotNil(t, p.DependencyManagement)
	deps := p.ManagedDependencies()
	require.Len(t, deps, 3)

	assert.Equal(t, "com.acme:core", deps[0].Coordinate())
	assert.Equal(t, "1.2", deps[0].Version)
	assert.Equal(t, "runtime", deps[1].Scope)
	assert.Equal(t, "${version.junit}", deps[2].Version)
	require.Len(t, deps[2].Exclusions, 1)
	assert.Equal(t, "org.hamcrest", deps[2].Exclusions[0].GroupID)

	assert.Equal(t, Properties{
		"maven.compiler.source": "11",
		"version.junit":         "4.13",
	}, p.Properties)
}

func TestParse_NoDependencyManagement(t *testing.T) {
	p, err := Parse([]byte(`<project><groupId>g</groupId><artifactId>a</artifactId><version>1</version></project>`))
	require.NoError(t, err)
	assert.Nil(t, p.ManagedDependencies())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`<project><unclosed`))
	require.Error(t, err)
}

func TestWrite_RoundTrip(t *testing.T) {
	p, err := Parse([]byte(sampleBOM))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))

	again, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, p.GroupID, again.GroupID)
	assert.Equal(t, p.Properties, again.Properties)
	assert.Equal(t, p.ManagedDependencies(), again.ManagedDependencies())
}

func TestWrite_PropertiesSorted(t *testing.T) {
	p := &Project{
		GroupID:    "g",
		ArtifactID: "a",
		Version:    "1",
		Properties: Properties{
			"version.zeta":  "2.0",
			"version.alpha": "1.0",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))

	out := buf.String()
	alpha := strings.Index(out, "version.alpha")
	zeta := strings.Index(out, "version.zeta")
	require.NotEqual(t, -1, alpha)
	require.NotEqual(t, -1, zeta)
	assert.Less(t, alpha, zeta, "properties must be written in sorted order")
}

func TestWrite_OmitsEmptySections(t *testing.T) {
	p := &Project{GroupID: "g", ArtifactID: "a", Version: "1"}

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))

	out := buf.String()
	assert.NotContains(t, out, "<properties>")
	assert.NotContains(t, out, "<dependencyManagement>")
	assert.NotContains(t, out, "<scope>")
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(in, []byte(sampleBOM), 0644))

	p, err := Load(in)
	require.NoError(t, err)

	out := filepath.Join(dir, "out.xml")
	require.NoError(t, p.Save(out))

	again, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, p.ManagedDependencies(), again.ManagedDependencies())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xml"))
	require.Error(t, err)
}
