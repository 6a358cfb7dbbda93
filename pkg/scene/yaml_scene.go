package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// NewYAMLScene creates a scene from a YAML scene file
func NewYAMLScene(path string) (*Scene, error) {
	loaded, err := loaders.LoadScene(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Scene{
		Name:   name,
		Camera: loaded.Camera,
		World:  loaded.World,
	}, nil
}
