package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Color        string                 `json:"color"` // Traced pixel color as #rrggbb
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// inspectPixel traces the primary ray through a pixel and reports what it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY, maxDepth int) InspectResponse {
	ray := sceneObj.Camera.RayForPixel(pixelX, pixelY)
	color := integrator.NewWhittedIntegrator(maxDepth).RayColor(ray, sceneObj.World)

	xs := sceneObj.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResponse{Hit: false, Color: hexColor(color), N1: 1, N2: 1}
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	geometryType, geometryProps := extractGeometryInfo(comps.Object)

	return InspectResponse{
		Hit:          true,
		Color:        hexColor(color),
		GeometryType: geometryType,
		Point:        vec3(comps.Point),
		Normal:       vec3(comps.NormalV),
		Distance:     comps.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(*comps.Object.Material()),
			"geometry": geometryProps,
		},
	}
}

// extractMaterialInfo lists the surface coefficients of a material
func extractMaterialInfo(m material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           hexColor(m.Color),
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
	}

	switch p := m.Pattern.(type) {
	case nil:
	case *material.StripePattern:
		properties["pattern"] = patternInfo("stripe", p.A, p.B)
	case *material.GradientPattern:
		properties["pattern"] = patternInfo("gradient", p.A, p.B)
	case *material.CheckersPattern:
		properties["pattern"] = patternInfo("checkers", p.A, p.B)
	case *material.RingPattern:
		properties["pattern"] = patternInfo("ring", p.A, p.B)
	case *material.RadialGradientPattern:
		properties["pattern"] = patternInfo("radial_gradient", p.A, p.B)
	default:
		properties["pattern"] = map[string]interface{}{"type": fmt.Sprintf("%T", p)}
	}
	return properties
}

func patternInfo(kind string, a, b core.Color) map[string]interface{} {
	return map[string]interface{}{
		"type":   kind,
		"colors": []string{hexColor(a), hexColor(b)},
	}
}

// extractGeometryInfo extracts the shape kind and its shape-specific parameters
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})
	if parent := shape.Parent(); parent != nil {
		properties["inGroup"] = true
	}

	switch geom := shape.(type) {
	case *geometry.Sphere:
		return "sphere", properties

	case *geometry.Plane:
		return "plane", properties

	case *geometry.Cube:
		return "cube", properties

	case *geometry.Cylinder:
		properties["minimum"] = boundValue(geom.Minimum)
		properties["maximum"] = boundValue(geom.Maximum)
		properties["closed"] = geom.Closed
		return "cylinder", properties

	case *geometry.Cone:
		properties["minimum"] = boundValue(geom.Minimum)
		properties["maximum"] = boundValue(geom.Maximum)
		properties["closed"] = geom.Closed
		return "cone", properties

	default:
		return "unknown", properties
	}
}

// boundValue makes infinite extents JSON-safe
func boundValue(v float64) interface{} {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return v
	}
}

func vec3(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// hexColor formats a color as #rrggbb, clamping each channel to [0, 1]
func hexColor(c core.Color) string {
	channel := func(v float64) int {
		return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= sceneObj.Camera.HSize || pixelY < 0 || pixelY >= sceneObj.Camera.VSize {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY, inspectReq.MaxDepth))
}
