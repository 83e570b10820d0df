package character

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/garrettladley/dino/internal/xslog"
)

// Status is the raw character condition as reported by the service.
// Fields missing from the response decode to zero.
type Status struct {
	XP          float64 `json:"XP"`
	Energia     float64 `json:"Energia"`
	Felicidade  float64 `json:"Felicidade"`
	Alimentacao float64 `json:"Alimentação"`
	Forca       float64 `json:"Força"`
}

func (s Status) LogValue() slog.Value {
	return xslog.StatusGroup(s.XP, s.Energia, s.Felicidade, s.Alimentacao, s.Forca).Value
}

type StatusService interface {
	Get(ctx context.Context, patientID string) (*Status, error)
}

type statusService struct {
	client *Client
}

func StatusPath(patientID string) string {
	return "/character-status/" + url.PathEscape(patientID)
}

// Get fetches the status for patientID. Concurrent calls for the same patient
// share one request that runs under the client timeout, detached from any
// single caller; each caller still gives up on its own ctx. Every failure
// satisfies errors.Is(err, ErrStatusFetchFailed).
func (s *statusService) Get(ctx context.Context, patientID string) (*Status, error) {
	if patientID == "" {
		return nil, &FetchError{Cause: ErrMissingPatientID}
	}

	ch := s.client.inflight.DoChan(patientID, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.client.timeout)
		defer cancel()

		start := time.Now()

		var status Status
		if err := s.client.do(ctx, http.MethodGet, StatusPath(patientID), &status); err != nil {
			return nil, err
		}

		s.client.logger.DebugContext(ctx, "character status fetched",
			xslog.PatientID(patientID),
			xslog.Duration(time.Since(start)),
		)
		return &status, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, &FetchError{PatientID: patientID, Cause: ctx.Err()}
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, &FetchError{PatientID: patientID, Cause: res.Err}
	}

	status := *res.Val.(*Status)
	if res.Shared {
		s.client.logger.DebugContext(ctx, "character status request coalesced", xslog.PatientID(patientID))
	}
	return &status, nil
}
