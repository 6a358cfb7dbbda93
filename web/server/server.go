package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Image size limits accepted from web requests
const (
	minImageSize = 1
	maxImageSize = 2000
)

// formatJSON requests a RenderResponse instead of raw image bytes
const formatJSON = "json"

// Server handles web requests for the raytracer
type Server struct {
	port int
	mux  *http.ServeMux
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{port: port, mux: http.NewServeMux()}

	// API endpoints
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	return s
}

// Handler returns the server's request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string `json:"scene"`    // Scene ID (e.g., "default" or "yaml:three-spheres")
	Width    int    `json:"width"`    // Image width, 0 keeps the scene's size
	Height   int    `json:"height"`   // Image height, 0 keeps the scene's size
	MaxDepth int    `json:"maxDepth"` // Reflection/refraction recursion limit
	Format   string `json:"format"`   // "png", "ppm" or "json"
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in and discovered scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list scenes: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	RenderID  string           `json:"renderId"`
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalBands       int     `json:"totalBands"`
	Workers          int     `json:"workers"`
	ElapsedMs        int64   `json:"elapsedMs"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// handleRender renders a scene and returns the encoded image, or a JSON
// document with the image, statistics and console output
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	renderID := uuid.NewString()
	logger := NewWebLogger(renderID, os.Stdout)
	logger.Printf("Rendering scene %s at %dx%d\n", sceneObj.Name, sceneObj.Camera.HSize, sceneObj.Camera.VSize)

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.MaxDepth = req.MaxDepth
	raytracer := renderer.NewRaytracer(sceneObj.Camera, sceneObj.World, renderConfig, logger)

	// Use request context to stop rendering on client disconnection
	img, stats, err := raytracer.RenderParallel(r.Context())
	if err != nil {
		logger.Printf("Render error: %v\n", err)
		if req.Format == formatJSON {
			writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"error":   "Render error: " + err.Error(),
				"console": logger.Messages(),
			})
			return
		}
		writeError(w, http.StatusServiceUnavailable, "Render error: "+err.Error())
		return
	}

	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	switch req.Format {
	case formatJSON:
		imageData, err := imageToBase64PNG(img)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to encode image: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			RenderID:  renderID,
			Scene:     sceneObj.Name,
			Width:     img.Width,
			Height:    img.Height,
			ImageData: imageData,
			Stats: Stats{
				TotalPixels:      stats.TotalPixels,
				TotalBands:       stats.TotalBands,
				Workers:          stats.Workers,
				ElapsedMs:        stats.Duration.Milliseconds(),
				AverageLuminance: renderer.AverageLuminance(img),
			},
			Console: logger.Messages(),
		})
		return
	case config.FormatPNG:
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		err = img.WritePNG(w)
	default:
		w.Header().Set("Content-Type", "image/x-portable-pixmap")
		w.WriteHeader(http.StatusOK)
		err = img.WritePPM(w)
	}
	if err != nil {
		logger.Printf("Failed to write image: %v\n", err)
	}
}

// imageToBase64PNG converts a canvas to base64-encoded PNG
func imageToBase64PNG(img *canvas.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := img.WritePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene"), Format: values.Get("format")}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = config.FormatPNG
	}
	if req.Format != config.FormatPNG && req.Format != config.FormatPPM && req.Format != formatJSON {
		return nil, fmt.Errorf("format must be %q, %q or %q, got: %s", config.FormatPNG, config.FormatPPM, formatJSON, req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if (req.Width == 0) != (req.Height == 0) {
		return nil, errors.New("width and height must be given together")
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", renderer.DefaultRenderConfig().MaxDepth, 1, 16); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxDepth > 8 {
		log.Printf("Render warning: Large image with deep recursion may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene and applies the requested size.
// Only built-in scenes and discovered scene files are served; arbitrary
// file paths are rejected.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	if strings.ContainsAny(req.Scene, `/\`) || strings.HasSuffix(req.Scene, ".yaml") || strings.HasSuffix(req.Scene, ".yml") {
		return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, req.Scene)
	}
	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil, err
	}
	if req.Width > 0 {
		if err := sceneObj.Resize(req.Width, req.Height); err != nil {
			return nil, err
		}
	}
	return sceneObj, nil
}

// sceneErrorStatus maps scene creation failures to an HTTP status
func sceneErrorStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
