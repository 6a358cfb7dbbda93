package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band   *Band
	TaskID int            // For deterministic ordering
	Canvas *canvas.Canvas // Shared canvas to write to
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	renderer    *BandRenderer
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Queues are sized for maxTasks so that submitting never blocks.
func NewWorkerPool(renderer *BandRenderer, maxTasks int, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Once ctx is done, remaining tasks are answered
// with ctx.Err() instead of being rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- BandResult{TaskID: task.TaskID, Error: err}
			continue
		}

		// Bands never overlap, so writing to the shared canvas is safe
		stats := w.renderer.RenderBounds(task.Band.Bounds, task.Canvas)
		w.resultQueue <- BandResult{TaskID: task.TaskID, Stats: stats}
	}
}
