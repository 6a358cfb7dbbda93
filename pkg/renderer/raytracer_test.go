package renderer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// recordingLogger collects log lines for assertions
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestRaytracer_RenderParallel_MatchesSequential(t *testing.T) {
	camera := defaultWorldCamera(t)
	w := world.Default()
	expected := Render(camera, w)

	configs := []RenderConfig{
		{Workers: 1, MaxDepth: 4, BandHeight: 16},
		{Workers: 3, MaxDepth: 4, BandHeight: 2},
		{Workers: 8, MaxDepth: 0, BandHeight: 1},
		DefaultRenderConfig(),
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers=%d band=%d", config.Workers, config.BandHeight), func(t *testing.T) {
			rt := NewRaytracer(camera, w, config, nil)
			got, stats, err := rt.RenderParallel(context.Background())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if stats.TotalPixels != 121 {
				t.Errorf("Expected 121 pixels, got %d", stats.TotalPixels)
			}
			for y := 0; y < expected.Height; y++ {
				for x := 0; x < expected.Width; x++ {
					if got.PixelAt(x, y) != expected.PixelAt(x, y) {
						t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, expected.PixelAt(x, y), got.PixelAt(x, y))
					}
				}
			}
		})
	}
}

func TestRaytracer_RenderParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logger := &recordingLogger{}
	rt := NewRaytracer(defaultWorldCamera(t), world.Default(), RenderConfig{Workers: 2, BandHeight: 1}, logger)
	img, _, err := rt.RenderParallel(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no canvas from a cancelled render")
	}

	found := false
	for _, line := range logger.lines {
		if strings.Contains(line, "cancelled") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a cancellation log line, got %q", logger.lines)
	}
}

func TestRaytracer_RenderParallel_Logs(t *testing.T) {
	logger := &recordingLogger{}
	rt := NewRaytracer(defaultWorldCamera(t), world.Default(), RenderConfig{Workers: 2, BandHeight: 4}, logger)
	if _, _, err := rt.RenderParallel(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(logger.lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %q", logger.lines)
	}
	if !strings.Contains(logger.lines[0], "11x11 in 3 bands") {
		t.Errorf("Unexpected start line %q", logger.lines[0])
	}
	if !strings.Contains(logger.lines[1], "121 pixels") {
		t.Errorf("Unexpected completion line %q", logger.lines[1])
	}
}
