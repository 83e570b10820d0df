package home

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/dino/internal/client/character"
)

type Trigger string

const (
	TriggerFocus     Trigger = "focus"
	TriggerPanelOpen Trigger = "panel_open"
	TriggerManual    Trigger = "manual"
)

// StatusMsg is the typed result of one refresh. Err, when set, satisfies
// errors.Is(err, character.ErrStatusFetchFailed).
type StatusMsg struct {
	Mount     int
	Seq       int
	PatientID string
	Trigger   Trigger
	Status    *character.Status
	Err       error
}

// Fetcher is satisfied by character.StatusService.
type Fetcher interface {
	Get(ctx context.Context, patientID string) (*character.Status, error)
}

func fetchStatusCmd(ctx context.Context, fetcher Fetcher, timeout time.Duration, msg StatusMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		msg.Status, msg.Err = fetcher.Get(ctx, msg.PatientID)
		return msg
	}
}
