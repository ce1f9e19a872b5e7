package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/sway/pkg/config"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/layout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Lay out the demo scene and print the layout tree",
		Long: `Run one headless frame of the built-in demo scene and print the
resulting layout tree, one node per line with its absolute bounds.

The configuration of the current module is used when there is one;
--width and --height override its screen size.

Examples:
  sway layout
  sway layout --width 320 --height 480`,
		Usage: "sway layout [--width N] [--height N]",
		Run:   runLayout,
	})
}

type layoutOptions struct {
	width  float64
	height float64
}

func parseLayoutArgs(args []string) (layoutOptions, error) {
	var opts layoutOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var target *float64
		switch arg {
		case "--width":
			target = &opts.width
		case "--height":
			target = &opts.height
		default:
			return opts, fmt.Errorf("unknown flag %q\n\nUsage: sway layout [--width N] [--height N]", arg)
		}
		if i+1 >= len(args) {
			return opts, fmt.Errorf("%s requires a value", arg)
		}
		v, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil || v <= 0 {
			return opts, fmt.Errorf("%s must be a positive number (got %q)", arg, args[i+1])
		}
		*target = v
		i++
	}
	return opts, nil
}

func runLayout(args []string) error {
	opts, err := parseLayoutArgs(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if root, err := config.FindProjectRoot(); err == nil {
		if resolved, err := config.Resolve(root); err == nil {
			cfg = resolved.Config
		}
	}
	if opts.width > 0 {
		cfg.Screen.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Screen.Height = opts.height
	}

	frame, err := demoFrame(cfg)
	if err != nil {
		return err
	}
	printLayout(frame.Layout, 0)
	fmt.Fprintf(stdout, "\n%d nodes, %d primitives\n", nodeCount(&frame.Layout), frame.DisplayList.Len())
	return nil
}

// demoFrame runs one frame of the demo scene.
func demoFrame(cfg config.Config) (*core.Frame, error) {
	ctx, err := core.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	app := core.NewApp(ctx, newDemoState(), buildDemo)
	return app.Frame()
}

func printLayout(n layout.Node, depth int) {
	b := n.Bounds
	fmt.Fprintf(stdout, "%s%s [%.1f,%.1f %.1fx%.1f]\n",
		strings.Repeat("  ", depth), n.ID, b.Left, b.Top, b.Width(), b.Height())
	for _, c := range n.Children {
		printLayout(c, depth+1)
	}
}

func nodeCount(n *layout.Node) int {
	count := 0
	n.Walk(func(*layout.Node) bool {
		count++
		return true
	})
	return count
}
