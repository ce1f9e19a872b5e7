package widgets_test

import (
	"fmt"

	"github.com/go-drift/sway/pkg/graphics"
	swaytest "github.com/go-drift/sway/pkg/testing"
)

// Metrics of the default shaper at the default font size of 14.
const (
	charWidth  = 7.0 * 14 / 13
	lineHeight = 14.0
)

func colorParam(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func rectParam(op swaytest.DisplayOp, key string) map[string]any {
	return op.Params[key].(map[string]any)
}

func countOps(ops []swaytest.DisplayOp, name string) int {
	n := 0
	for _, op := range ops {
		if op.Op == name {
			n++
		}
	}
	return n
}
