package gowire3d

import (
	"context"
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// RenderJob describes one frame. Each job gets its own Rasterizer.
type RenderJob struct {
	Mesh       *Mesh
	Width      int
	Height     int
	Color      color.Color
	Background color.Color
}

// Render runs the job synchronously.
func (j RenderJob) Render() (*image.RGBA, error) {
	bg := j.Background
	if bg == nil {
		bg = color.White
	}
	return NewRasterizerWithBackground(j.Width, j.Height, bg).Render(j.Mesh, j.Color)
}

type RenderResult struct {
	Generation uint64
	Image      *image.RGBA
	Err        error
}

// RenderQueue renders jobs off the caller's goroutine. Every submission
// gets a higher generation than the one before; a host shows a result only
// while IsStale reports false for it. Started renders are never
// interrupted.
type RenderQueue struct {
	sem        *semaphore.Weighted
	generation atomic.Uint64
	results    chan RenderResult
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

func NewRenderQueue(maxConcurrent int) *RenderQueue {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &RenderQueue{
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		results: make(chan RenderResult, maxConcurrent),
	}
}

// Submit returns the job's generation immediately. If ctx ends before a
// render slot frees up, the result carries ctx's error instead of an image.
// Submit must not be called after Close.
func (q *RenderQueue) Submit(ctx context.Context, job RenderJob) uint64 {
	gen := q.generation.Add(1)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := ctx.Err(); err != nil {
			q.results <- RenderResult{Generation: gen, Err: err}
			return
		}
		if err := q.sem.Acquire(ctx, 1); err != nil {
			q.results <- RenderResult{Generation: gen, Err: err}
			return
		}
		img, err := job.Render()
		q.sem.Release(1)
		q.results <- RenderResult{Generation: gen, Image: img, Err: err}
	}()
	return gen
}

// Results delivers every job's outcome once, in completion order.
func (q *RenderQueue) Results() <-chan RenderResult {
	return q.results
}

func (q *RenderQueue) Latest() uint64 {
	return q.generation.Load()
}

func (q *RenderQueue) IsStale(gen uint64) bool {
	return gen < q.generation.Load()
}

// Close arranges for Results to be closed once every submitted job has
// delivered. It does not block; keep draining Results until it closes.
func (q *RenderQueue) Close() {
	q.closeOnce.Do(func() {
		go func() {
			q.wg.Wait()
			close(q.results)
		}()
	})
}
