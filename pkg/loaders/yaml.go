package loaders

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

var (
	// ErrInvalidScene is returned for malformed scene files
	ErrInvalidScene = errors.New("invalid scene file")
	// ErrUnknownShape is returned for a shape type the loader does not support
	ErrUnknownShape = errors.New("unknown shape type")
	// ErrUnknownPattern is returned for a pattern type the loader does not support
	ErrUnknownPattern = errors.New("unknown pattern type")
	// ErrUnknownTransform is returned for a transform operation the loader does not support
	ErrUnknownTransform = errors.New("unknown transform")
)

// SceneFile is the YAML document describing a scene
type SceneFile struct {
	Camera    CameraSpec              `yaml:"camera"`
	Lights    []LightSpec             `yaml:"lights"`
	Materials map[string]MaterialSpec `yaml:"materials"`
	Shapes    []ShapeSpec             `yaml:"shapes"`
}

// CameraSpec describes the camera. Field of view is in radians.
type CameraSpec struct {
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	FieldOfView float64   `yaml:"field_of_view"`
	From        []float64 `yaml:"from"`
	To          []float64 `yaml:"to"`
	Up          []float64 `yaml:"up"`
}

// LightSpec describes a point light
type LightSpec struct {
	Position  []float64 `yaml:"position"`
	Intensity []float64 `yaml:"intensity"`
}

// MaterialSpec lists material overrides. Unset fields keep the value of the
// material they are applied to.
type MaterialSpec struct {
	Color           []float64    `yaml:"color"`
	Ambient         *float64     `yaml:"ambient"`
	Diffuse         *float64     `yaml:"diffuse"`
	Specular        *float64     `yaml:"specular"`
	Shininess       *float64     `yaml:"shininess"`
	Reflective      *float64     `yaml:"reflective"`
	Transparency    *float64     `yaml:"transparency"`
	RefractiveIndex *float64     `yaml:"refractive_index"`
	Pattern         *PatternSpec `yaml:"pattern"`
}

// PatternSpec describes a two-color pattern
type PatternSpec struct {
	Type      string          `yaml:"type"`
	Colors    [][]float64     `yaml:"colors"`
	Transform []TransformSpec `yaml:"transform"`
}

// TransformSpec is one transform operation written as a flow sequence,
// for example [translate, 0, 1, 0] or [rotate_y, 0.785]
type TransformSpec []interface{}

// ShapeSpec describes a primitive or a group
type ShapeSpec struct {
	Type        string          `yaml:"type"`
	MaterialRef string          `yaml:"material_ref"`
	Material    *MaterialSpec   `yaml:"material"`
	Transform   []TransformSpec `yaml:"transform"`
	Minimum     *float64        `yaml:"minimum"`
	Maximum     *float64        `yaml:"maximum"`
	Closed      bool            `yaml:"closed"`
	Children    []ShapeSpec     `yaml:"children"`
}

// LoadedScene is the camera and world built from a scene file
type LoadedScene struct {
	Camera *renderer.Camera
	World  *world.World
}

// LoadScene loads and builds a YAML scene file
func LoadScene(filename string) (*LoadedScene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(file)
}

// ParseScene reads a YAML scene description and builds it
func ParseScene(reader io.Reader) (*LoadedScene, error) {
	sceneFile, err := ParseSceneFile(reader)
	if err != nil {
		return nil, err
	}
	return sceneFile.Build()
}

// ParseSceneFile decodes a YAML scene description without building it
func ParseSceneFile(reader io.Reader) (*SceneFile, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var sceneFile SceneFile
	if err := yaml.UnmarshalStrict(data, &sceneFile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return &sceneFile, nil
}

// Build creates the camera and world described by the file
func (sf *SceneFile) Build() (*LoadedScene, error) {
	camera, err := sf.buildCamera()
	if err != nil {
		return nil, err
	}

	w := world.New()
	for i, ls := range sf.Lights {
		light, err := ls.build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		if err := w.AddLight(light); err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
	}

	for i, ss := range sf.Shapes {
		shape, err := sf.buildShape(ss)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		if _, err := w.Add(shape); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}

	return &LoadedScene{Camera: camera, World: w}, nil
}

func (sf *SceneFile) buildCamera() (*renderer.Camera, error) {
	cs := sf.Camera
	fov := cs.FieldOfView
	if fov == 0 {
		fov = math.Pi / 3
	}

	camera, err := renderer.NewCamera(cs.Width, cs.Height, fov)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	from, err := tupleOr(cs.From, core.Point, core.Point(0, 0, -5))
	if err != nil {
		return nil, fmt.Errorf("camera from: %w", err)
	}
	to, err := tupleOr(cs.To, core.Point, core.Point(0, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("camera to: %w", err)
	}
	up, err := tupleOr(cs.Up, core.Vector, core.Vector(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("camera up: %w", err)
	}

	if err := camera.LookAt(from, to, up); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return camera, nil
}

func (ls LightSpec) build() (*lights.PointLight, error) {
	position, err := triple(ls.Position)
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	intensity, err := colorOr(ls.Intensity, core.NewColor(1, 1, 1))
	if err != nil {
		return nil, fmt.Errorf("intensity: %w", err)
	}

	light := lights.NewPointLight(core.Point(position[0], position[1], position[2]), intensity)
	if err := light.Validate(); err != nil {
		return nil, err
	}
	return light, nil
}

// buildShape creates a shape, applying its material and transform. Group
// children are built recursively.
func (sf *SceneFile) buildShape(ss ShapeSpec) (geometry.Shape, error) {
	shape, err := newShape(ss)
	if err != nil {
		return nil, err
	}

	if group, ok := shape.(*geometry.Group); ok {
		for i, cs := range ss.Children {
			child, err := sf.buildShape(cs)
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			if err := group.AddChild(child); err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
		}
	} else if len(ss.Children) > 0 {
		return nil, fmt.Errorf("%w: %s cannot have children", ErrInvalidScene, ss.Type)
	}

	m, err := sf.resolveMaterial(ss)
	if err != nil {
		return nil, err
	}
	if err := shape.SetMaterial(m); err != nil {
		return nil, err
	}

	transform, err := buildTransform(ss.Transform)
	if err != nil {
		return nil, err
	}
	if err := shape.SetTransform(transform); err != nil {
		return nil, err
	}

	return shape, nil
}

// newShape creates the bare primitive named by ss.Type
func newShape(ss ShapeSpec) (geometry.Shape, error) {
	minimum, maximum := math.Inf(-1), math.Inf(1)
	if ss.Minimum != nil {
		minimum = *ss.Minimum
	}
	if ss.Maximum != nil {
		maximum = *ss.Maximum
	}

	switch strings.ToLower(ss.Type) {
	case "sphere":
		return geometry.NewSphere(), nil
	case "glass_sphere":
		return geometry.GlassSphere(), nil
	case "plane":
		return geometry.NewPlane(), nil
	case "cube":
		return geometry.NewCube(), nil
	case "cylinder":
		return geometry.NewCylinder(minimum, maximum, ss.Closed)
	case "cone":
		return geometry.NewCone(minimum, maximum, ss.Closed)
	case "group":
		return geometry.NewGroup(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, ss.Type)
	}
}

// resolveMaterial starts from the shape's own default material, applies the
// named material and then the inline overrides
func (sf *SceneFile) resolveMaterial(ss ShapeSpec) (material.Material, error) {
	m := material.DefaultMaterial()
	if strings.ToLower(ss.Type) == "glass_sphere" {
		m = *geometry.GlassSphere().Material()
	}

	if ss.MaterialRef != "" {
		named, ok := sf.Materials[ss.MaterialRef]
		if !ok {
			return m, fmt.Errorf("%w: undefined material %q", ErrInvalidScene, ss.MaterialRef)
		}
		if err := named.apply(&m); err != nil {
			return m, fmt.Errorf("material %q: %w", ss.MaterialRef, err)
		}
	}

	if ss.Material != nil {
		if err := ss.Material.apply(&m); err != nil {
			return m, fmt.Errorf("material: %w", err)
		}
	}
	return m, nil
}

// apply overwrites the fields of m that are set in ms
func (ms MaterialSpec) apply(m *material.Material) error {
	if ms.Color != nil {
		c, err := colorOr(ms.Color, m.Color)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		m.Color = c
	}

	for _, field := range []struct {
		value  *float64
		target *float64
	}{
		{ms.Ambient, &m.Ambient},
		{ms.Diffuse, &m.Diffuse},
		{ms.Specular, &m.Specular},
		{ms.Shininess, &m.Shininess},
		{ms.Reflective, &m.Reflective},
		{ms.Transparency, &m.Transparency},
		{ms.RefractiveIndex, &m.RefractiveIndex},
	} {
		if field.value != nil {
			*field.target = *field.value
		}
	}

	if ms.Pattern != nil {
		pattern, err := ms.Pattern.build()
		if err != nil {
			return err
		}
		m.Pattern = pattern
	}
	return nil
}

func (ps PatternSpec) build() (material.Pattern, error) {
	if len(ps.Colors) != 2 {
		return nil, fmt.Errorf("%w: pattern %q needs 2 colors, got %d", ErrInvalidScene, ps.Type, len(ps.Colors))
	}
	a, err := colorOr(ps.Colors[0], core.Color{})
	if err != nil {
		return nil, fmt.Errorf("pattern color: %w", err)
	}
	b, err := colorOr(ps.Colors[1], core.Color{})
	if err != nil {
		return nil, fmt.Errorf("pattern color: %w", err)
	}

	var pattern material.Pattern
	switch strings.ToLower(ps.Type) {
	case "stripe", "stripes":
		pattern = material.NewStripePattern(a, b)
	case "gradient":
		pattern = material.NewGradientPattern(a, b)
	case "checkers":
		pattern = material.NewCheckersPattern(a, b)
	case "ring", "rings":
		pattern = material.NewRingPattern(a, b)
	case "radial_gradient":
		pattern = material.NewRadialGradientPattern(a, b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, ps.Type)
	}

	transform, err := buildTransform(ps.Transform)
	if err != nil {
		return nil, err
	}
	if err := pattern.SetTransform(transform); err != nil {
		return nil, err
	}
	return pattern, nil
}

// buildTransform composes the operations so that the first listed is applied first
func buildTransform(specs []TransformSpec) (core.Matrix, error) {
	matrices := make([]core.Matrix, 0, len(specs))
	for _, spec := range specs {
		m, err := spec.matrix()
		if err != nil {
			return core.Matrix{}, err
		}
		matrices = append(matrices, m)
	}
	return core.Chain(matrices...), nil
}

func (ts TransformSpec) matrix() (core.Matrix, error) {
	if len(ts) == 0 {
		return core.Matrix{}, fmt.Errorf("%w: empty transform", ErrInvalidScene)
	}
	op, ok := ts[0].(string)
	if !ok {
		return core.Matrix{}, fmt.Errorf("%w: transform name must be a string, got %v", ErrInvalidScene, ts[0])
	}

	args := make([]float64, 0, len(ts)-1)
	for _, v := range ts[1:] {
		f, err := toFloat(v)
		if err != nil {
			return core.Matrix{}, fmt.Errorf("%s: %w", op, err)
		}
		args = append(args, f)
	}

	expectArgs := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d values, got %d", ErrInvalidScene, op, n, len(args))
		}
		return nil
	}

	switch op {
	case "translate":
		if err := expectArgs(3); err != nil {
			return core.Matrix{}, err
		}
		return core.Translation(args[0], args[1], args[2]), nil
	case "scale":
		if err := expectArgs(3); err != nil {
			return core.Matrix{}, err
		}
		return core.Scaling(args[0], args[1], args[2]), nil
	case "rotate_x", "rotate_y", "rotate_z":
		if err := expectArgs(1); err != nil {
			return core.Matrix{}, err
		}
		rotations := map[string]func(float64) core.Matrix{
			"rotate_x": core.RotationX,
			"rotate_y": core.RotationY,
			"rotate_z": core.RotationZ,
		}
		return rotations[op](args[0]), nil
	case "shear":
		if err := expectArgs(6); err != nil {
			return core.Matrix{}, err
		}
		return core.Shearing(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	default:
		return core.Matrix{}, fmt.Errorf("%w: %q", ErrUnknownTransform, op)
	}
}

// toFloat accepts the numeric types produced by the YAML decoder
func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: expected a number, got %v", ErrInvalidScene, v)
	}
}

// triple checks that values holds exactly three numbers
func triple(values []float64) ([]float64, error) {
	if len(values) != 3 {
		return nil, fmt.Errorf("%w: expected 3 values, got %d", ErrInvalidScene, len(values))
	}
	return values, nil
}

// tupleOr builds a point or vector from values, or returns fallback when values is empty
func tupleOr(values []float64, build func(x, y, z float64) core.Tuple, fallback core.Tuple) (core.Tuple, error) {
	if len(values) == 0 {
		return fallback, nil
	}
	v, err := triple(values)
	if err != nil {
		return core.Tuple{}, err
	}
	return build(v[0], v[1], v[2]), nil
}

// colorOr builds a color from values, or returns fallback when values is empty
func colorOr(values []float64, fallback core.Color) (core.Color, error) {
	if len(values) == 0 {
		return fallback, nil
	}
	v, err := triple(values)
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColor(v[0], v[1], v[2]), nil
}

// validateFilePath rejects paths that cannot name a scene file
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("invalid file type: only .yaml and .yml files are allowed")
	}

	return nil
}
