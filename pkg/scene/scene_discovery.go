package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene ID matches no built-in scene or scene file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "yaml"
	FilePath    string `json:"filePath"`    // Path to YAML file (yaml type only)
	Variant     string `json:"variant"`     // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const builtInGroup = "Built-in Scenes"

// builtInScene pairs the listing metadata of a built-in scene with its constructor
type builtInScene struct {
	info   SceneInfo
	create func() (*Scene, error)
}

var builtInScenes = []builtInScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default World",
			Description: "Two concentric spheres under a single point light",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "patterns",
			Name:        "Patterns",
			Description: "Checkered floor, striped wall and patterned spheres",
		},
		create: NewPatternsScene,
	},
	{
		info: SceneInfo{
			ID:          "glass",
			Name:        "Glass",
			Description: "Hollow glass sphere over a reflective floor",
		},
		create: NewGlassScene,
	},
	{
		info: SceneInfo{
			ID:          "primitives",
			Name:        "Primitives",
			Description: "Cube, cylinders, cone and a mirror sphere",
		},
		create: NewPrimitivesScene,
	},
	{
		info: SceneInfo{
			ID:          "hexagon",
			Name:        "Hexagon",
			Description: "Hexagon assembled from nested groups of spheres and cylinders",
		},
		create: NewHexagonScene,
	},
}

// List returns the IDs of the built-in scenes
func List() []string {
	ids := make([]string, len(builtInScenes))
	for i, b := range builtInScenes {
		ids[i] = b.info.ID
	}
	return ids
}

// Create builds a scene by ID. IDs name a built-in scene, a discovered scene
// file ("yaml:<name>") or a path to a .yaml file.
func Create(id string) (*Scene, error) {
	for _, b := range builtInScenes {
		if b.info.ID == id {
			return b.create()
		}
	}

	if name, ok := strings.CutPrefix(id, "yaml:"); ok {
		scenes, err := ListYAMLScenes()
		if err != nil {
			return nil, err
		}
		for _, info := range scenes {
			if info.ID == "yaml:"+name {
				return NewYAMLScene(info.FilePath)
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	ext := strings.ToLower(filepath.Ext(id))
	if ext == ".yaml" || ext == ".yml" {
		return NewYAMLScene(id)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// findScenesDir returns the first existing scenes directory, or "" if none exists
func findScenesDir() string {
	// Try different possible paths for scenes directory
	for _, path := range []string{"scenes", "../scenes", "../../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListYAMLScenes scans the scenes directory and returns discovered YAML scenes
func ListYAMLScenes() ([]SceneInfo, error) {
	scenesDir := findScenesDir()
	if scenesDir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}
	return listYAMLScenesIn(scenesDir)
}

func listYAMLScenesIn(scenesDir string) ([]SceneInfo, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(scenesDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseYAMLMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseYAMLMetadata extracts metadata from the header comments of a YAML scene file
func ParseYAMLMetadata(filePath string) (SceneInfo, error) {
	// Extract filename without extension for fallback values
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          fmt.Sprintf("yaml:%s", nameWithoutExt),
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Scene Files", // Default group
		Type:        "yaml",
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		// If we can't read the file, return with fallback values
		return sceneInfo, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "---" {
			continue
		}

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content, ok := strings.CutPrefix(line, "# ")
		if !ok {
			continue
		}
		if v, ok := strings.CutPrefix(content, "Scene:"); ok {
			sceneInfo.Name = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Variant:"); ok {
			sceneInfo.Variant = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Description:"); ok {
			sceneInfo.Description = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Group:"); ok {
			sceneInfo.Group = strings.TrimSpace(v)
		}
	}

	// Update display name based on parsed metadata
	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, scanner.Err()
}

// ListAllScenes returns both built-in and YAML scenes, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	var response ScenesResponse

	builtIn := make([]SceneInfo, len(builtInScenes))
	for i, b := range builtInScenes {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtInGroup
		info.Type = "builtin"
		builtIn[i] = info
	}

	yamlScenes, err := ListYAMLScenes()
	if err != nil {
		return response, fmt.Errorf("failed to list YAML scenes: %w", err)
	}

	allScenes := append(builtIn, yamlScenes...)

	// Group scenes by their Group field
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Create ordered groups (Built-in first, then alphabetical)
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtInGroup,
		Scenes: groupMap[builtInGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
