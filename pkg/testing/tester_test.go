package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/sway/pkg/callback"
	"github.com/go-drift/sway/pkg/core"
	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/identity"
	"github.com/go-drift/sway/pkg/layout"
	"github.com/go-drift/sway/pkg/testing/internal/testbed"
)

type appState struct {
	taps int
}

func TestNewTester_Defaults(t *testing.T) {
	tester := NewTester(t)
	assert.Equal(t, graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}, tester.Context().Input.ScreenSize())
	assert.Nil(t, tester.LastFrame())
}

func TestNewTester_WithSize(t *testing.T) {
	tester := NewTester(t, WithSize(375, 667))
	require.NoError(t, tester.Pump(testbed.LayoutBox{Key: "box", Fill: fillBoth()}, &appState{}))

	node := tester.MustFindNode(identity.Root.With("box"))
	assert.Equal(t, graphics.Size{Width: 375, Height: 667}, node.Size())
}

func TestPump_RecordsDisplayList(t *testing.T) {
	tester := NewTester(t)
	require.NoError(t, tester.Pump(testbed.LayoutBox{Key: "box", Width: 10, Height: 20, Color: graphics.ColorWhite}, &appState{}))

	ops := tester.Ops()
	require.Len(t, ops, 1)
	assert.Equal(t, "drawRect", ops[0].Op)
	assert.Equal(t, "0xFFFFFFFF", ops[0].Params["fill"])
}

func TestClick_RunsCallbacks(t *testing.T) {
	tester := NewTester(t)
	state := &appState{}
	onTap := callback.FromFunc(func(s *appState, count int) { s.taps = count })
	require.NoError(t, tester.Pump(testbed.Counter{Key: "counter", Size: 40, OnTap: onTap}, state))

	id := identity.Root.With("counter")
	require.NoError(t, tester.ClickNode(id))
	require.NoError(t, tester.Click(graphics.Offset{X: 5, Y: 5}))

	assert.Equal(t, 2, state.taps)
	assert.Equal(t, 2, testbed.Count(tester.Context(), id))
}

func TestClick_OutsideIsIgnored(t *testing.T) {
	tester := NewTester(t)
	state := &appState{}
	require.NoError(t, tester.Pump(testbed.Counter{Key: "counter", Size: 40}, state))

	require.NoError(t, tester.Click(graphics.Offset{X: 100, Y: 100}))
	assert.Equal(t, 0, testbed.Count(tester.Context(), identity.Root.With("counter")))
}

func TestClickNode_MissingNode(t *testing.T) {
	tester := NewTester(t)
	require.NoError(t, tester.Pump(testbed.LayoutBox{Key: "box"}, &appState{}))
	assert.Error(t, tester.ClickNode(identity.Root.With("nope")))
}

func TestDrag_AgesInput(t *testing.T) {
	tester := NewTester(t)
	require.NoError(t, tester.Pump(testbed.LayoutBox{Key: "box"}, &appState{}))

	require.NoError(t, tester.Drag(graphics.Offset{X: 0, Y: 0}, graphics.Offset{X: 40, Y: 0}))
	assert.Equal(t, uint64(1+2+DragSteps), tester.LastFrame().Number)
	assert.Equal(t, graphics.Offset{X: 40}, tester.Context().Input.Position())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tester := NewTester(t)
	require.NoError(t, tester.Pump(testbed.LayoutBox{Key: "box", Width: 10, Height: 20, Color: graphics.ColorWhite}, &appState{}))

	snap := tester.CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "box.snapshot.json")
	require.NoError(t, snap.UpdateFile(path))

	loaded, err := loadSnapshot(path)
	require.NoError(t, err)
	assert.Empty(t, snap.Diff(loaded))
	assert.Equal(t, [2]float64{10, 20}, loaded.Layout.Size)

	require.NoError(t, tester.Pump(testbed.LayoutBox{Key: "box", Width: 12, Height: 20}, &appState{}))
	diff := tester.CaptureSnapshot().Diff(loaded)
	assert.Contains(t, diff, "--- expected")
	assert.Contains(t, diff, "+++ actual")
}

type fakeT struct {
	fatals, errs []string
}

func (f *fakeT) Helper()                           {}
func (f *fakeT) Fatalf(format string, args ...any) { f.fatals = append(f.fatals, format) }
func (f *fakeT) Errorf(format string, args ...any) { f.errs = append(f.errs, format) }
func (f *fakeT) Name() string                      { return "TestFake" }

func TestSnapshot_MatchesFileMissing(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	ft := &fakeT{}
	snap := &Snapshot{}
	snap.MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))
	assert.Len(t, ft.fatals, 1)
}

func TestSnapshot_MatchesFileUpdate(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	path := filepath.Join(t.TempDir(), "nested", "snap.json")
	ft := &fakeT{}
	(&Snapshot{}).MatchesFile(ft, path)
	assert.Empty(t, ft.fatals)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func fillBoth() layout.SizeHints {
	return layout.SizeHints{Width: layout.Fill, Height: layout.Fill}
}

func TestPumpFunc_RebuildsEachFrame(t *testing.T) {
	tester := NewTester(t)
	state := &appState{}
	onTap := callback.FromFunc(func(s *appState, count int) { s.taps = count })
	builds := 0
	require.NoError(t, tester.PumpFunc(func() core.Widget {
		builds++
		return testbed.Counter{Key: "counter", Size: 40 + float64(state.taps), OnTap: onTap}
	}, state))

	require.NoError(t, tester.Click(graphics.Offset{X: 5, Y: 5}))
	assert.Equal(t, 3, builds)
	assert.Equal(t, 41.0, tester.MustFindNode(identity.Root.With("counter")).Size().Width)
}
