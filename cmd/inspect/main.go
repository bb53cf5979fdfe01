package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"motion-controller-rig/internal/asset"
	"motion-controller-rig/internal/logging"
	"motion-controller-rig/internal/mapping"
	"motion-controller-rig/internal/rig"
	"motion-controller-rig/internal/scene"
)

func main() {
	demo := flag.Bool("demo", false, "Inspect a synthetic controller model")
	omit := flag.String("omit", "", "Comma-separated node paths to drop from the synthetic model")
	schemaFile := flag.String("schema", "", "YAML button profile (default: built-in layout)")
	hand := flag.String("hand", "", "Controller hand used for the container name")
	tree := flag.Bool("tree", false, "Print the node hierarchy")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	if !*demo && flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [flags] <model.glb|model.gltf|url>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	schema := mapping.WindowsMotionController()
	if *schemaFile != "" {
		var err error
		schema, err = mapping.LoadProfile(*schemaFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	graph := scene.NewTree()
	var nodes []scene.Node
	source := "synthetic"
	if *demo {
		opts := asset.SynthOptions{TransformRoot: true}
		if *omit != "" {
			opts.Omit = strings.Split(*omit, ",")
		}
		nodes = asset.Synthesize(graph, schema, opts)
	} else {
		source = flag.Arg(0)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		var err error
		nodes, err = asset.NewLoader().Load(ctx, source, graph)
		cancel()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	log := logging.NewAdapter(logging.New(os.Stderr, *logLevel, true))
	r := rig.Resolve(nodes, schema, rig.DefaultOptions("inspect", *hand), graph, log)

	fmt.Printf("Model: %s\n", source)
	fmt.Printf("Nodes: %d\n", len(nodes))
	if r == nil {
		fmt.Println("Root node not found, no rig resolved")
		os.Exit(1)
	}

	if *tree {
		printTree(r.Container(), 0)
	}

	resolved := 0
	fmt.Printf("Buttons (%d):\n", r.NumButtons())
	for i := 0; i < r.NumButtons(); i++ {
		status := "missing"
		if r.Button(i).IsResolved() {
			status = "ok"
			resolved++
		}
		node, _ := schema.ButtonNodeName(r.ButtonName(i))
		fmt.Printf("  [%d] %-10s %-14s %s\n", i, r.ButtonName(i), node, status)
	}
	fmt.Printf("Axes (%d):\n", r.NumAxes())
	for i := 0; i < r.NumAxes(); i++ {
		status := "missing"
		if r.Axis(i).IsResolved() {
			status = "ok"
			resolved++
		}
		fmt.Printf("  [%d] %-25s %s\n", i, r.AxisName(i), status)
	}
	fmt.Printf("Resolved: %d/%d\n", resolved, r.NumButtons()+r.NumAxes())
}

func printTree(n scene.Node, depth int) {
	p := n.Position()
	fmt.Printf("%s%s  pos(%.3f, %.3f, %.3f)\n", strings.Repeat("  ", depth), n.Name(), p[0], p[1], p[2])
	for _, c := range n.Children() {
		printTree(c, depth+1)
	}
}
