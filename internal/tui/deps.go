package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/garrettladley/dino/internal/tui/page/home"
)

type Deps struct {
	Ctx            context.Context
	Logger         *slog.Logger
	Fetcher        home.Fetcher
	PatientID      string
	RequestTimeout time.Duration
}
