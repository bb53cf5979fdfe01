package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"motion-controller-rig/internal/asset"
	"motion-controller-rig/internal/batch"
	"motion-controller-rig/internal/config"
	"motion-controller-rig/internal/controller"
	"motion-controller-rig/internal/events"
	"motion-controller-rig/internal/input"
	"motion-controller-rig/internal/logging"
	"motion-controller-rig/internal/mapping"
	"motion-controller-rig/internal/preview"
	"motion-controller-rig/internal/rig"
	"motion-controller-rig/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (JSON or YAML)")
	modelFile := flag.String("model", "", "Model file or URL (default: derived from -id and -hand)")
	gamepadID := flag.String("id", "", "Gamepad id reported by the device")
	hand := flag.String("hand", "", "Controller hand: left, right or empty")
	scriptFile := flag.String("script", "", "YAML input script to replay (default: built-in sweep)")
	outputDir := flag.String("output", "", "Output directory for rendered frames")
	format := flag.String("format", "", "Frame format: webp or tga")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	workers := flag.Int("workers", 0, "Number of render workers (default: NumCPU)")
	demo := flag.Bool("demo", false, "Use a synthetic controller model instead of loading one")
	timeout := flag.Duration("timeout", 30*time.Second, "Model download timeout")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		ModelFile: *modelFile,
		GamepadID: *gamepadID,
		Hand:      *hand,
		OutputDir: *outputDir,
		Format:    *format,
		LogLevel:  *logLevel,
		Workers:   *workers,
	})

	base := logging.NewAdapter(logging.New(os.Stderr, cfg.LogLevel, true))

	schema := mapping.WindowsMotionController()
	if cfg.SchemaFile != "" {
		schema, err = mapping.LoadProfile(cfg.SchemaFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading schema: %v\n", err)
			os.Exit(1)
		}
	}

	id := cfg.GamepadID
	if id == "" {
		id = asset.GamepadIDPrefix + "default"
	}
	log := base.With("controller", id, "hand", cfg.Hand)
	paths := asset.DefaultPaths()
	paths.BaseURL = cfg.ModelBaseURL

	ctrl := controller.New(id, cfg.Hand, schema, controller.Options{
		Rig: rig.Options{
			RootNodeName:      cfg.RootNodeName,
			TransformRootName: cfg.TransformRootName,
			RotateOffset:      cfg.RotateOffset,
		},
		Paths: paths,
		Log:   log,
	})

	for ch := events.ChannelID(0); ch < events.NumChannels; ch++ {
		ch := ch
		ctrl.Events().Channel(ch).Subscribe(func(s input.ButtonState) {
			log.Info("button state changed", "channel", ch.String(),
				"value", s.Value, "pressed", s.Pressed, "touched", s.Touched)
		})
	}

	graph := scene.NewTree()
	model := cfg.ModelFile
	if *demo {
		model = "synthetic"
		ctrl.AttachModel(asset.Synthesize(graph, schema, asset.SynthOptions{TransformRoot: true}), graph)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		ctx, cancel := context.WithTimeout(ctx, *timeout)
		if model == "" {
			model = ctrl.ModelURL()
		}
		err = ctrl.LoadModel(ctx, asset.NewLoader(), graph, model)
		cancel()
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: model load: %v\n", err)
		}
	}

	script := builtinScript(schema)
	if *scriptFile != "" {
		script, err = input.LoadScript(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
	}

	r := ctrl.Rig()
	buttons, axes := 0, 0
	if r != nil {
		buttons, axes = len(r.ButtonMeshes()), len(r.AxisMeshes())
	}

	fmt.Printf("Motion controller rig → %s\n", cfg.Format)
	fmt.Printf("Controller: %s (%s)\n", id, cfg.Hand)
	fmt.Printf("Model: %s\n", model)
	fmt.Printf("Resolved: %d/%d buttons, %d/%d axes\n", buttons, schema.NumButtons(), axes, schema.NumAxes())
	fmt.Printf("Frames: %d, Workers: %d\n", len(script.Frames), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	if r == nil {
		fmt.Println("No model resolved, nothing to render.")
		os.Exit(1)
	}

	start := time.Now()

	poses := make([]preview.Pose, 0, len(script.Frames))
	for i, frame := range script.Frames {
		ctrl.Update(frame)
		poses = append(poses, preview.Capture(r, i))
	}

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Progress: func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, rate)
		},
	}, poses)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	failed := 0
	for _, res := range results {
		if !res.Success {
			failed++
			fmt.Printf("  frame %d: %s\n", res.Frame, res.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-failed, len(results))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	m := batch.NewManifest(id, cfg.Hand, model, buttons, axes, results)
	if err := batch.WriteManifest(manifestPath, m); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// builtinScript pulls every button to full press and back, then sweeps the
// axes around a circle.
func builtinScript(schema mapping.Schema) input.Script {
	const steps = 8
	s := input.Script{Name: "sweep"}
	nb, na := schema.NumButtons(), schema.NumAxes()

	for b := 0; b < nb; b++ {
		for i := 0; i <= 2*steps; i++ {
			v := float64(i) / steps
			if v > 1 {
				v = 2 - v
			}
			buttons := make([]input.ButtonState, nb)
			buttons[b] = input.ButtonState{Value: v, Pressed: v >= 1, Touched: v > 0}
			s.Frames = append(s.Frames, input.Snapshot{Buttons: buttons, Axes: make([]float64, na)})
		}
	}
	for i := 0; i <= 2*steps; i++ {
		a := math.Pi * float64(i) / steps
		axes := make([]float64, na)
		for k := range axes {
			if k%2 == 0 {
				axes[k] = math.Cos(a)
			} else {
				axes[k] = math.Sin(a)
			}
		}
		s.Frames = append(s.Frames, input.Snapshot{Buttons: make([]input.ButtonState, nb), Axes: axes})
	}
	return s
}
