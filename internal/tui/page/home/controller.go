// Package home holds the status panel of the home screen: the fetched
// character status, the open/closed panel state and the two animated offsets
// that slide the panel and its toggle button.
package home

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/dino/internal/client/character"
	"github.com/garrettladley/dino/internal/status"
	"github.com/garrettladley/dino/internal/tui/anim"
	"github.com/garrettladley/dino/internal/xslog"
)

const defaultRequestTimeout = 5 * time.Second

type Deps struct {
	Fetcher   Fetcher
	PatientID string
	Logger    *slog.Logger
	// Timeout bounds a single refresh. Zero means defaultRequestTimeout.
	Timeout time.Duration
	// Now is the animation clock. Nil means time.Now.
	Now func() time.Time
}

type Controller struct {
	fetcher   Fetcher
	patientID string
	logger    *slog.Logger
	timeout   time.Duration
	now       func() time.Time

	status    *character.Status
	panelOpen bool
	layout    Layout
	panel     anim.Channel
	button    anim.Channel

	// animID tags the running frame loop; frames with another id are dropped.
	animID int

	lastFetchFailed bool
	lastErr         error
	checked         bool
	inflight        int

	// seq orders refreshes; applied is the newest one whose result was kept.
	seq     int
	applied int

	ctx     context.Context
	cancel  context.CancelFunc
	mount   int
	mounted bool
}

func NewController(deps Deps) *Controller {
	c := &Controller{
		fetcher:   deps.Fetcher,
		patientID: deps.PatientID,
		logger:    deps.Logger,
		timeout:   deps.Timeout,
		now:       deps.Now,
		layout:    LayoutFor(0),
	}
	if c.logger == nil {
		c.logger = xslog.Discard()
	}
	if c.timeout <= 0 {
		c.timeout = defaultRequestTimeout
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.panel = anim.NewChannel(c.layout.PanelHidden())
	c.button = anim.NewChannel(c.layout.ButtonClosed())
	return c
}

// Mount binds the controller to ctx. Requests issued afterwards are aborted
// when ctx ends or Unmount is called.
func (c *Controller) Mount(ctx context.Context) {
	if c.mounted {
		c.Unmount()
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.mount++
	c.mounted = true
	c.logger.DebugContext(ctx, "home mounted", xslog.PatientID(c.patientID))
}

// Unmount cancels outstanding requests and stops the frame loop. Results that
// arrive later are ignored.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.cancel()
	c.mounted = false
	c.animID++
	c.inflight = 0
	c.logger.Debug("home unmounted")
}

// RefreshStatus requests the current status in the background. It returns
// nil when no patient id is known or the controller is not mounted.
func (c *Controller) RefreshStatus(trigger Trigger) tea.Cmd {
	if !c.mounted {
		return nil
	}
	if c.patientID == "" {
		c.logger.Debug("skipping status refresh: no patient id", xslog.Trigger(string(trigger)))
		return nil
	}

	c.seq++
	c.inflight++
	c.logger.Debug("refreshing status",
		xslog.PatientID(c.patientID),
		xslog.Trigger(string(trigger)),
	)

	return fetchStatusCmd(c.ctx, c.fetcher, c.timeout, StatusMsg{
		Mount:     c.mount,
		Seq:       c.seq,
		PatientID: c.patientID,
		Trigger:   trigger,
	})
}

// OnScreenFocused refreshes unconditionally, whatever the panel state.
func (c *Controller) OnScreenFocused() tea.Cmd {
	return c.RefreshStatus(TriggerFocus)
}

// TogglePanel flips the panel state now and animates both offsets to the new
// targets. Opening also refreshes the status. A toggle during an animation
// retargets from the current positions and restarts the clock.
func (c *Controller) TogglePanel() tea.Cmd {
	now := c.now()
	c.panelOpen = !c.panelOpen
	c.panel.Animate(c.panelTarget(), now)
	c.button.Animate(c.buttonTarget(), now)
	c.animID++

	c.logger.Debug("panel toggled", xslog.PanelOpen(c.panelOpen))

	cmds := []tea.Cmd{anim.Tick(c.animID)}
	if c.panelOpen {
		cmds = append(cmds, c.RefreshStatus(TriggerPanelOpen))
	}
	return tea.Batch(cmds...)
}

// HandleStatus applies a refresh result and reports whether it was used.
// Results from an earlier mount, an unmounted screen or a refresh older than
// one already applied are dropped.
func (c *Controller) HandleStatus(msg StatusMsg) bool {
	if !c.mounted || msg.Mount != c.mount {
		c.logger.Debug("dropping status for inactive screen", xslog.PatientID(msg.PatientID))
		return false
	}
	c.inflight = max(c.inflight-1, 0)
	if msg.Seq <= c.applied {
		return false
	}
	c.applied = msg.Seq
	c.checked = true

	if msg.Err != nil {
		c.lastFetchFailed = true
		c.lastErr = msg.Err
		c.logger.Error("failed to fetch character status",
			xslog.PatientID(msg.PatientID),
			xslog.Trigger(string(msg.Trigger)),
			xslog.Error(msg.Err),
		)
		return true
	}

	c.lastFetchFailed = false
	c.lastErr = nil
	// an empty success carries no condition to show; keep what we have
	if msg.Status == nil {
		return true
	}
	c.status = msg.Status
	c.logger.Debug("character status updated",
		xslog.PatientID(msg.PatientID),
		xslog.StatusGroup(msg.Status.XP, msg.Status.Energia, msg.Status.Felicidade, msg.Status.Alimentacao, msg.Status.Forca),
	)
	return true
}

// HandleFrame advances both offsets and schedules the next frame while either
// is still moving.
func (c *Controller) HandleFrame(msg anim.FrameMsg) tea.Cmd {
	if msg.ID != c.animID {
		return nil
	}
	panelMoving := c.panel.Step(msg.Time)
	buttonMoving := c.button.Step(msg.Time)
	if panelMoving || buttonMoving {
		return anim.Tick(c.animID)
	}
	return nil
}

// Resize recomputes the panel geometry for a new viewport height. Idle
// channels jump to their new rest positions; moving ones are retargeted.
func (c *Controller) Resize(viewportHeight int) {
	c.layout = LayoutFor(viewportHeight)
	now := c.now()
	retarget(&c.panel, c.panelTarget(), now)
	retarget(&c.button, c.buttonTarget(), now)
}

func retarget(ch *anim.Channel, target float64, now time.Time) {
	if ch.Active() {
		ch.Animate(target, now)
		return
	}
	ch.Set(target)
}

func (c *Controller) panelTarget() float64 {
	if c.panelOpen {
		return c.layout.PanelShown()
	}
	return c.layout.PanelHidden()
}

func (c *Controller) buttonTarget() float64 {
	if c.panelOpen {
		return c.layout.ButtonOpen()
	}
	return c.layout.ButtonClosed()
}

func (c *Controller) Status() *character.Status { return c.status }
func (c *Controller) Ratios() status.Ratios     { return status.RatiosOf(c.status) }
func (c *Controller) PanelOpen() bool           { return c.panelOpen }
func (c *Controller) Layout() Layout            { return c.layout }
func (c *Controller) PanelOffset() float64      { return c.panel.Value() }
func (c *Controller) ButtonOffset() float64     { return c.button.Value() }
func (c *Controller) PanelTarget() float64      { return c.panel.Target() }
func (c *Controller) Animating() bool           { return c.panel.Active() || c.button.Active() }
func (c *Controller) LastFetchFailed() bool     { return c.lastFetchFailed }
func (c *Controller) LastError() error          { return c.lastErr }
func (c *Controller) Fetching() bool            { return c.inflight > 0 }
func (c *Controller) Checked() bool             { return c.checked }
func (c *Controller) PatientID() string         { return c.patientID }
func (c *Controller) Mounted() bool             { return c.mounted }

// ButtonRow is the screen row the toggle button is drawn on.
func (c *Controller) ButtonRow() int { return c.button.Round() }
