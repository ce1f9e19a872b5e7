package cmd

import (
	"fmt"

	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/widgets"
)

// demoState is the application state of the built-in demo scene.
type demoState struct {
	Name     string
	Volume   float64
	Clicks   int
	Selected int
	Items    []string
}

func newDemoState() *demoState {
	items := make([]string, 20)
	for i := range items {
		items[i] = fmt.Sprintf("Item %d", i+1)
	}
	return &demoState{Name: "sway", Volume: 0.5, Selected: -1, Items: items}
}

var (
	demoOnClick  = callback.FromFunc(func(s *demoState, _ struct{}) { s.Clicks++ })
	demoOnName   = callback.FromFunc(func(s *demoState, v string) { s.Name = v })
	demoOnVolume = callback.FromFunc(func(s *demoState, v float64) { s.Volume = min(max(v, 0), 1) })
	demoOnMenu   = callback.FromFunc(func(s *demoState, i int) { s.Selected = i })
)

// buildDemo declares the demo scene: a toolbar, a form and a scrolling list
// next to a details pane.
func buildDemo(s *demoState) core.Widget {
	toolbar := widgets.HBox(identity.Key("toolbar"),
		widgets.MenuButtonOf("File", []string{"New", "Open", "Save"}, demoOnMenu),
		widgets.ButtonOf("Click me").WithOnClick(demoOnClick),
		widgets.FillH(1),
		widgets.TextOf(fmt.Sprintf("%d clicks", s.Clicks)),
	).WithHints(layout.FillHorizontal())

	form := widgets.VBox(identity.Key("form"),
		widgets.HBox(identity.Key("name"), widgets.TextOf("Name"), widgets.TextEditOf(identity.Key("edit"), s.Name, demoOnName)),
		widgets.HBox(identity.Key("volume"), widgets.TextOf("Volume"), widgets.DragValueOf(identity.Key("drag"), s.Volume, demoOnVolume).WithSpeed(0.01)),
	)

	rows := make([]core.Widget, len(s.Items))
	for i, item := range s.Items {
		rows[i] = widgets.TextOf(item)
	}
	list := widgets.VScrollOf(identity.Key("list"), widgets.VBox(identity.Key("rows"), rows...))

	details := widgets.MarginOf(identity.Key("details"), 8, widgets.VBox(identity.Key("details_v"),
		widgets.TextOf(fmt.Sprintf("Hello, %s!", s.Name)),
		widgets.ColoredBox{
			ID:          identity.Key("swatch"),
			LayoutHints: layout.FillHorizontal(),
			MinSize:     graphics.Size{Height: 24},
			Fill:        graphics.RGB(61, 127, 217).WithAlpha(s.Volume),
		},
	))

	return widgets.VBox(identity.Key("demo"),
		toolbar,
		form,
		widgets.HSplit(identity.Key("split"), list, details),
	).WithHints(layout.FillHints())
}
