package home

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/garrettladley/dino/internal/client/character"
	"github.com/garrettladley/dino/internal/fakeserver"
	"github.com/garrettladley/dino/internal/status"
	"github.com/garrettladley/dino/internal/tui/anim"
	"github.com/garrettladley/dino/internal/xslog"
)

var errUnavailable = errors.New("service unavailable")

type fakeFetcher struct {
	mu      sync.Mutex
	calls   int
	ctxErrs []error
	status  *character.Status
	err     error
}

func (f *fakeFetcher) Get(ctx context.Context, patientID string) (*character.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.err != nil {
		return nil, &character.FetchError{PatientID: patientID, Cause: f.err}
	}
	if f.status == nil {
		return nil, nil
	}
	s := *f.status
	return &s, nil
}

func (f *fakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeFetcher) set(s *character.Status, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.err = s, err
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newTestController(t *testing.T, f Fetcher, patientID string) (*Controller, *clock) {
	t.Helper()

	clk := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := NewController(Deps{
		Fetcher:   f,
		PatientID: patientID,
		Logger:    xslog.Discard(),
		Now:       clk.Now,
	})
	c.Resize(43)
	c.Mount(t.Context())
	t.Cleanup(c.Unmount)
	return c, clk
}

// statusMsgs runs cmd and any batched commands it yields, returning the
// status results. Frame ticks are run and discarded.
func statusMsgs(cmd tea.Cmd) []StatusMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []StatusMsg
		for _, c := range msg {
			out = append(out, statusMsgs(c)...)
		}
		return out
	case StatusMsg:
		return []StatusMsg{msg}
	default:
		return nil
	}
}

func apply(c *Controller, cmd tea.Cmd) {
	for _, msg := range statusMsgs(cmd) {
		c.HandleStatus(msg)
	}
}

// settle runs the current frame loop past its duration.
func settle(c *Controller, clk *clock) {
	c.HandleFrame(anim.FrameMsg{ID: c.animID, Time: clk.Advance(anim.DefaultDuration)})
}

func TestTogglePanelPairLaw(t *testing.T) {
	t.Parallel()

	c, clk := newTestController(t, &fakeFetcher{}, "abc123")
	l := c.Layout()

	type snapshot struct {
		Open   bool
		Panel  float64
		Button float64
	}
	got := func() snapshot {
		return snapshot{Open: c.PanelOpen(), Panel: c.PanelOffset(), Button: c.ButtonOffset()}
	}

	if diff := cmp.Diff(snapshot{Open: false, Panel: l.PanelHidden(), Button: 0}, got()); diff != "" {
		t.Fatalf("initial state mismatch (-want +got):\n%s", diff)
	}

	c.TogglePanel()
	if !c.PanelOpen() {
		t.Fatal("panel should flip open synchronously")
	}
	settle(c, clk)
	if diff := cmp.Diff(snapshot{Open: true, Panel: 0, Button: float64(l.PanelHeight + l.ButtonMargin)}, got()); diff != "" {
		t.Errorf("after open mismatch (-want +got):\n%s", diff)
	}

	c.TogglePanel()
	if c.PanelOpen() {
		t.Fatal("panel should flip closed synchronously")
	}
	settle(c, clk)
	if diff := cmp.Diff(snapshot{Open: false, Panel: l.PanelHidden(), Button: 0}, got()); diff != "" {
		t.Errorf("after close mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleAnimationTakesDuration(t *testing.T) {
	t.Parallel()

	c, clk := newTestController(t, &fakeFetcher{}, "")
	c.TogglePanel()

	next := c.HandleFrame(anim.FrameMsg{ID: c.animID, Time: clk.Advance(anim.DefaultDuration / 2)})
	if next == nil {
		t.Fatal("expected another frame halfway through")
	}
	if p := c.PanelOffset(); p <= c.Layout().PanelHidden() || p >= 0 {
		t.Errorf("panel offset %v should be between hidden and shown", p)
	}

	if next := c.HandleFrame(anim.FrameMsg{ID: c.animID, Time: clk.Advance(anim.DefaultDuration / 2)}); next != nil {
		t.Error("expected the frame loop to stop once the duration elapsed")
	}
	if c.Animating() {
		t.Error("expected both channels to be idle")
	}
}

func TestFocusTriggersExactlyOneFetch(t *testing.T) {
	t.Parallel()

	for _, open := range []bool{false, true} {
		f := &fakeFetcher{status: &character.Status{XP: 10}}
		c, clk := newTestController(t, f, "abc123")
		if open {
			apply(c, c.TogglePanel())
			settle(c, clk)
		}
		before := f.Calls()

		apply(c, c.OnScreenFocused())

		if got := f.Calls() - before; got != 1 {
			t.Errorf("open=%v: focus issued %d fetches, want 1", open, got)
		}
		if c.PanelOpen() != open {
			t.Errorf("open=%v: focus changed the panel state", open)
		}
	}
}

func TestOpenFetchesCloseDoesNot(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{status: &character.Status{XP: 10}}
	c, _ := newTestController(t, f, "abc123")

	apply(c, c.TogglePanel())
	if got := f.Calls(); got != 1 {
		t.Fatalf("opening issued %d fetches, want 1", got)
	}

	apply(c, c.TogglePanel())
	if got := f.Calls(); got != 1 {
		t.Errorf("closing issued %d extra fetches, want 0", got-1)
	}
}

func TestFailurePreservesStatus(t *testing.T) {
	t.Parallel()

	want := &character.Status{XP: 30, Energia: 15, Felicidade: 20, Alimentacao: 10, Forca: 5}
	f := &fakeFetcher{status: want}
	c, _ := newTestController(t, f, "abc123")

	apply(c, c.OnScreenFocused())
	if diff := cmp.Diff(want, c.Status()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}

	f.set(nil, errUnavailable)
	apply(c, c.OnScreenFocused())

	if diff := cmp.Diff(want, c.Status()); diff != "" {
		t.Errorf("status changed after failure (-want +got):\n%s", diff)
	}
	if !c.LastFetchFailed() {
		t.Error("expected LastFetchFailed after a failed refresh")
	}
	if err := c.LastError(); !errors.Is(err, character.ErrStatusFetchFailed) || !errors.Is(err, errUnavailable) {
		t.Errorf("LastError() = %v, want ErrStatusFetchFailed wrapping %v", err, errUnavailable)
	}

	f.set(&character.Status{XP: 40}, nil)
	apply(c, c.OnScreenFocused())
	if c.LastFetchFailed() || c.LastError() != nil {
		t.Error("expected a successful refresh to clear the failure")
	}
	if got := c.Status().XP; got != 40 {
		t.Errorf("XP = %v, want 40", got)
	}
}

func TestEmptySuccessKeepsPreviousStatus(t *testing.T) {
	t.Parallel()

	want := &character.Status{XP: 30, Energia: 15}
	f := &fakeFetcher{status: want}
	c, _ := newTestController(t, f, "abc123")
	apply(c, c.OnScreenFocused())

	f.set(nil, nil)
	apply(c, c.OnScreenFocused())

	if diff := cmp.Diff(want, c.Status()); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
	if c.LastFetchFailed() {
		t.Error("an empty success should not count as a failure")
	}
}

func TestFailureBeforeFirstSuccessLeavesStatusAbsent(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t, &fakeFetcher{err: errUnavailable}, "abc123")
	apply(c, c.OnScreenFocused())

	if c.Status() != nil {
		t.Errorf("Status() = %+v, want nil", c.Status())
	}
	if diff := cmp.Diff(status.Ratios{}, c.Ratios()); diff != "" {
		t.Errorf("ratios mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyPatientIDSkipsFetch(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{}
	c, _ := newTestController(t, f, "")

	if cmd := c.OnScreenFocused(); cmd != nil {
		t.Error("expected no refresh command without a patient id")
	}
	apply(c, c.TogglePanel())
	if !c.PanelOpen() {
		t.Error("toggle should still open the panel")
	}
	if got := f.Calls(); got != 0 {
		t.Errorf("issued %d fetches, want 0", got)
	}
}

func TestUnmountDropsLateResults(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{status: &character.Status{XP: 99}}
	c, _ := newTestController(t, f, "abc123")

	cmd := c.OnScreenFocused()
	c.Unmount()

	msgs := statusMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d status messages, want 1", len(msgs))
	}
	if !errors.Is(f.ctxErrs[0], context.Canceled) {
		t.Errorf("request context error = %v, want context.Canceled", f.ctxErrs[0])
	}
	if c.HandleStatus(msgs[0]) {
		t.Error("expected the late result to be dropped")
	}
	if c.Status() != nil {
		t.Error("unmounted controller was mutated")
	}
	if cmd := c.OnScreenFocused(); cmd != nil {
		t.Error("expected no refresh while unmounted")
	}
}

func TestRemountDropsPreviousGeneration(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{status: &character.Status{XP: 50}}
	c, _ := newTestController(t, f, "abc123")

	stale := statusMsgs(c.OnScreenFocused())
	c.Unmount()
	c.Mount(t.Context())

	if c.HandleStatus(stale[0]) {
		t.Error("expected a result from the previous mount to be dropped")
	}
	apply(c, c.OnScreenFocused())
	if c.Status() == nil || c.Status().XP != 50 {
		t.Errorf("Status() = %+v, want XP 50", c.Status())
	}
}

func TestOutOfOrderResultsKeepNewest(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{status: &character.Status{XP: 10}}
	c, _ := newTestController(t, f, "abc123")

	older := c.OnScreenFocused()
	newer := c.OnScreenFocused()
	if !c.Fetching() {
		t.Error("expected Fetching while requests are outstanding")
	}

	f.set(&character.Status{XP: 20}, nil)
	apply(c, newer)
	f.set(&character.Status{XP: 10}, nil)
	apply(c, older)

	if got := c.Status().XP; got != 20 {
		t.Errorf("XP = %v, want 20 from the newer refresh", got)
	}
	if c.Fetching() {
		t.Error("expected Fetching to clear once every result arrived")
	}
}

func TestRapidToggleRestartsFromCurrentPosition(t *testing.T) {
	t.Parallel()

	c, clk := newTestController(t, &fakeFetcher{}, "")
	c.TogglePanel()
	firstLoop := c.animID

	c.HandleFrame(anim.FrameMsg{ID: firstLoop, Time: clk.Advance(200 * time.Millisecond)})
	mid := c.PanelOffset()

	c.TogglePanel()
	if c.PanelOpen() {
		t.Fatal("second toggle should close the panel")
	}
	if got := c.PanelOffset(); got != mid {
		t.Errorf("retarget jumped from %v to %v", mid, got)
	}
	if diff := cmp.Diff(c.Layout().PanelHidden(), c.PanelTarget()); diff != "" {
		t.Errorf("panel target mismatch (-want +got):\n%s", diff)
	}

	if next := c.HandleFrame(anim.FrameMsg{ID: firstLoop, Time: clk.Advance(16 * time.Millisecond)}); next != nil {
		t.Error("stale frame loop should stop")
	}
	if got := c.PanelOffset(); got != mid {
		t.Errorf("stale frame moved the panel from %v to %v", mid, got)
	}

	// the clock restarts at the second toggle, so 400ms later it is still moving
	if next := c.HandleFrame(anim.FrameMsg{ID: c.animID, Time: clk.Advance(400 * time.Millisecond)}); next == nil {
		t.Error("expected the restarted animation to still be running")
	}
	settle(c, clk)
	if diff := cmp.Diff(c.Layout().PanelHidden(), c.PanelOffset()); diff != "" {
		t.Errorf("final panel offset mismatch (-want +got):\n%s", diff)
	}
}

func TestResizeMovesIdleChannels(t *testing.T) {
	t.Parallel()

	c, clk := newTestController(t, &fakeFetcher{}, "")
	c.Resize(86)
	if got, want := c.PanelOffset(), -float64(LayoutFor(86).PanelHeight); got != want {
		t.Errorf("closed panel offset = %v, want %v", got, want)
	}

	c.TogglePanel()
	settle(c, clk)
	c.Resize(43)
	l := LayoutFor(43)
	if got, want := c.ButtonOffset(), float64(l.PanelHeight+l.ButtonMargin); got != want {
		t.Errorf("open button offset = %v, want %v", got, want)
	}
}

func TestLayoutFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		height int
		want   Layout
	}{
		{name: "unsized viewport", height: 0, want: Layout{PanelHeight: minPanelHeight, ButtonMargin: 1}},
		{name: "short terminal", height: 24, want: Layout{PanelHeight: minPanelHeight, ButtonMargin: 1}},
		{name: "tall terminal", height: 86, want: Layout{PanelHeight: 20, ButtonMargin: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, LayoutFor(tt.height)); diff != "" {
				t.Errorf("LayoutFor(%d) mismatch (-want +got):\n%s", tt.height, diff)
			}
		})
	}
}

func TestEndToEndFromFakeService(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(fakeserver.Routes(fakeserver.NewSeededStore("abc123"), xslog.Discard()))
	t.Cleanup(srv.Close)

	client := character.New(srv.URL, character.WithLogger(xslog.Discard()))
	c, _ := newTestController(t, client.Status, "abc123")

	apply(c, c.OnScreenFocused())

	want := status.Ratios{XP: 0.30, Energia: 0.75, Felicidade: 1.00, Alimentacao: 0.50, Forca: 0.25}
	if diff := cmp.Diff(want, c.Ratios(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("ratios mismatch (-want +got):\n%s", diff)
	}
	if c.LastFetchFailed() {
		t.Errorf("unexpected failure: %v", c.LastError())
	}
}
