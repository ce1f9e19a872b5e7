// Package testing drives sway frames headlessly for widget tests.
//
// # Quick Start
//
// Create a tester, pump a widget tree, feed input and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := swaytest.NewTester(t)
//	    state := &App{}
//	    tester.Pump(MyWidget{}, state)
//
//	    // Simulate input; each helper runs the frames it needs
//	    tester.Click(graphics.Offset{X: 10, Y: 10})
//
//	    // Inspect the layout of the last frame
//	    node, ok := tester.FindNode(identity.Root.With("submit"))
//	}
//
// Every input helper re-runs the last pumped tree, so a test reads as a
// sequence of user actions.
//
// # Snapshot Testing
//
// Capture and compare the layout tree and display list:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.json")
//
// Update snapshots with:
//
//	SWAY_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import swaytest "github.com/go-drift/sway/pkg/testing"
package testing
