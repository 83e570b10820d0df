// Package anim drives scalar values toward targets over a fixed duration.
//
// Motion follows a critically damped harmonica spring, advanced in fixed
// frame steps so it is independent of how often frames actually arrive. When
// the duration elapses the value snaps to its target, so an animation always
// ends on time.
package anim

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"
)

const (
	DefaultDuration = 500 * time.Millisecond
	FPS             = 60

	frame = time.Second / FPS

	// ω=10 with damping 1 settles in ~5/ω = 0.5s, matching DefaultDuration.
	angularFrequency = 10.0
	dampingRatio     = 1.0
)

// FrameMsg advances every channel owned by the animation with the same ID.
type FrameMsg struct {
	ID   int
	Time time.Time
}

// Tick schedules the next frame for animation id.
func Tick(id int) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

type Channel struct {
	value    float64
	velocity float64
	target   float64

	started  time.Time
	stepped  time.Time
	duration time.Duration
	active   bool

	spring harmonica.Spring
}

func NewChannel(initial float64) Channel {
	return Channel{
		value:    initial,
		target:   initial,
		duration: DefaultDuration,
		spring:   harmonica.NewSpring(harmonica.FPS(FPS), angularFrequency, dampingRatio),
	}
}

// Animate starts moving toward target from wherever the channel is now. An
// animation already in flight is cancelled and restarted: its position and
// velocity carry over and the duration clock resets.
func (c *Channel) Animate(target float64, now time.Time) {
	c.target = target
	c.started = now
	c.stepped = now
	c.active = c.value != target || c.velocity != 0
}

// Set jumps to v with no animation.
func (c *Channel) Set(v float64) {
	c.value = v
	c.target = v
	c.velocity = 0
	c.active = false
}

// Step advances the channel to now and reports whether it is still moving.
func (c *Channel) Step(now time.Time) bool {
	if !c.active {
		return false
	}

	if now.Sub(c.started) >= c.duration {
		c.value = c.target
		c.velocity = 0
		c.active = false
		return false
	}

	for now.Sub(c.stepped) >= frame {
		c.value, c.velocity = c.spring.Update(c.value, c.velocity, c.target)
		c.stepped = c.stepped.Add(frame)
	}
	return true
}

func (c Channel) Value() float64  { return c.value }
func (c Channel) Target() float64 { return c.target }
func (c Channel) Active() bool    { return c.active }

// Round returns the current value as a whole terminal row or column.
func (c Channel) Round() int {
	if c.value < 0 {
		return -int(-c.value + 0.5)
	}
	return int(c.value + 0.5)
}
