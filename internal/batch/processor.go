package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"motion-controller-rig/internal/preview"
)

// Config holds shared settings for a batch render.
type Config struct {
	OutputDir   string
	Format      string // "webp" or "tga"
	RenderSize  int
	Supersample int
	Workers     int

	// Progress, when set, is called every ProgressEvery with the number of
	// frames finished so far.
	Progress      func(done, total int, rate float64)
	ProgressEvery time.Duration
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// FramePath is where frame n is written.
func FramePath(cfg Config, frame int) string {
	return filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.%s", frame, cfg.Format))
}

// Run renders all poses using a worker pool. Results are in pose order.
func Run(cfg Config, poses []preview.Pose) []Result {
	total := len(poses)
	results := make([]Result, total)
	var processed atomic.Int64
	workers := max(cfg.Workers, 1)

	start := time.Now()

	done := make(chan struct{})
	if cfg.Progress != nil {
		every := cfg.ProgressEvery
		if every <= 0 {
			every = 2 * time.Second
		}
		go func() {
			ticker := time.NewTicker(every)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						cfg.Progress(int(p), total, rate)
					}
				}
			}
		}()
	}

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = renderFrame(cfg, poses[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range poses {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, pose preview.Pose) Result {
	path := FramePath(cfg, pose.Frame)
	img := preview.Render(pose, cfg.RenderSize, cfg.Supersample)
	if err := preview.Save(path, img, cfg.Format); err != nil {
		return Result{Frame: pose.Frame, Path: path, Error: err.Error()}
	}
	return Result{Frame: pose.Frame, Path: path, Success: true}
}
