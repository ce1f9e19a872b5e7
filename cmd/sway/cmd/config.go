package cmd

import (
	"fmt"

	"github.com/go-drift/sway/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration sway uses for the current module.

Values missing from sway.yaml are filled with their defaults, and the
app name falls back to the last element of the module path.`,
		Usage: "sway config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q\n\nUsage: sway config", args[0])
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}
	return printResolved(resolved)
}

func printResolved(r *config.Resolved) error {
	data, err := config.Marshal(r.Config)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "# module: %s\n# root:   %s\n", r.ModulePath, r.Root)
	_, err = stdout.Write(data)
	return err
}
