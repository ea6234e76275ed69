package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/planet-defense/component"
)

// ErrMalformedScene wraps every parse and validation failure
var ErrMalformedScene = errors.New("malformed scene")

//go:embed default.yaml
var defaultScene []byte

// Default returns the built-in scene
func Default() (*Scene, error) {
	return Parse(defaultScene)
}

// Load reads and parses a scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML or JSON and validates the result
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScene, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks shapes, index bounds and singleton roles
func (s *Scene) Validate() error {
	if len(s.Triangles) == 0 && len(s.Ellipsoids) == 0 {
		return fmt.Errorf("%w: empty scene", ErrMalformedScene)
	}

	for i := range s.Triangles {
		if err := s.Triangles[i].validate(); err != nil {
			return fmt.Errorf("%w: triangle set %d: %v", ErrMalformedScene, i, err)
		}
	}

	singletons := make(map[component.Kind]int)
	for i := range s.Ellipsoids {
		e := &s.Ellipsoids[i]
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w: ellipsoid %d: %v", ErrMalformedScene, i, err)
		}
		kind, _ := component.ParseKind(e.Kind)
		switch kind {
		case component.KindPlanet, component.KindShield, component.KindMoon, component.KindHighlight:
			singletons[kind]++
			if singletons[kind] > 1 {
				return fmt.Errorf("%w: ellipsoid %d: more than one %s", ErrMalformedScene, i, kind)
			}
		}
	}
	return nil
}

func (m *MaterialDef) validate() error {
	for name, v := range map[string][]float32{"ambient": m.Ambient, "diffuse": m.Diffuse, "specular": m.Specular} {
		if v != nil && len(v) != 3 {
			return fmt.Errorf("%s needs 3 components, got %d", name, len(v))
		}
	}
	if m.Alpha != nil && (*m.Alpha <= 0 || *m.Alpha > 1) {
		return fmt.Errorf("alpha %g outside (0,1]", *m.Alpha)
	}
	if m.N < 0 {
		return fmt.Errorf("negative shininess %g", m.N)
	}
	return nil
}

func (t *TriangleSet) validate() error {
	if err := t.Material.validate(); err != nil {
		return err
	}
	if len(t.Vertices) == 0 {
		return errors.New("no vertices")
	}
	if len(t.Triangles) == 0 {
		return errors.New("no triangles")
	}
	for i, v := range t.Vertices {
		if len(v) != 3 {
			return fmt.Errorf("vertex %d needs 3 components, got %d", i, len(v))
		}
	}
	if t.Normals != nil {
		if len(t.Normals) != len(t.Vertices) {
			return fmt.Errorf("%d normals for %d vertices", len(t.Normals), len(t.Vertices))
		}
		for i, n := range t.Normals {
			if len(n) != 3 {
				return fmt.Errorf("normal %d needs 3 components, got %d", i, len(n))
			}
		}
	}
	if t.UVs != nil {
		if len(t.UVs) != len(t.Vertices) {
			return fmt.Errorf("%d uvs for %d vertices", len(t.UVs), len(t.Vertices))
		}
		for i, uv := range t.UVs {
			if len(uv) != 2 {
				return fmt.Errorf("uv %d needs 2 components, got %d", i, len(uv))
			}
		}
	}
	for i, tri := range t.Triangles {
		if len(tri) != 3 {
			return fmt.Errorf("triangle %d needs 3 indices, got %d", i, len(tri))
		}
		for _, idx := range tri {
			if int(idx) >= len(t.Vertices) {
				return fmt.Errorf("triangle %d references vertex %d of %d", i, idx, len(t.Vertices))
			}
		}
	}
	return nil
}

func (e *Ellipsoid) validate() error {
	if err := e.MaterialDef.validate(); err != nil {
		return err
	}
	if e.A <= 0 || e.B <= 0 || e.C <= 0 {
		return fmt.Errorf("radii must be positive, got (%g, %g, %g)", e.A, e.B, e.C)
	}
	if _, ok := component.ParseKind(e.Kind); !ok {
		return fmt.Errorf("unknown kind %q", strings.TrimSpace(e.Kind))
	}
	return nil
}
