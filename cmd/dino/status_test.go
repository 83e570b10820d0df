package main

import (
	"bytes"
	"strings"
	"testing"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/garrettladley/dino/internal/client/character"
)

func TestWriteStatusJSON(t *testing.T) {
	t.Parallel()

	s := &character.Status{XP: 30, Energia: 15, Felicidade: 20, Alimentacao: 10, Forca: 5}

	var buf bytes.Buffer
	if err := writeStatusJSON(&buf, newStatusOutput("abc123", s)); err != nil {
		t.Fatalf("writeStatusJSON() error = %v", err)
	}

	var got statusOutput
	if err := go_json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	want := statusOutput{
		PatientID: "abc123",
		Level:     0,
		Status:    s,
		Ratios:    statusRatios{XP: 0.30, Energia: 0.75, Felicidade: 1.00, Alimentacao: 0.50, Forca: 0.25},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteStatusText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeStatusText(&buf, newStatusOutput("abc123", &character.Status{XP: 30, Energia: 15}))

	out := buf.String()
	for _, want := range []string{"patient  abc123", "level    0", "XP", "0.30", "Energia", "0.75", "Força"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
