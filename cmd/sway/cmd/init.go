package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/sway/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a default sway.yaml",
		Long: `Write a default sway.yaml at the root of the current Go module.

The app name is taken from the module path in go.mod. An existing
sway.yaml is left alone unless --force is given.

Examples:
  sway init
  sway init --force`,
		Usage: "sway init [--force]",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	force := false
	for _, arg := range args {
		switch arg {
		case "--force":
			force = true
		default:
			return fmt.Errorf("unknown flag %q\n\nUsage: sway init [--force]", arg)
		}
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	path, err := writeDefaultConfig(root, force)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}

// writeDefaultConfig writes the default configuration, named after the
// module in root, and returns the file path.
func writeDefaultConfig(root string, force bool) (string, error) {
	path := filepath.Join(root, config.FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	resolved, err := config.Resolve(root)
	if err != nil {
		return "", err
	}
	cfg := config.Default()
	cfg.App.Name = resolved.AppName

	data, err := config.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
