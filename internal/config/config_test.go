package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestReadFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
		want    Config
		wantErr bool
	}{
		{
			name:    "defaults",
			environ: map[string]string{},
			want: Config{
				ServiceURL:     DefaultServiceURL,
				RequestTimeout: 5 * time.Second,
				FakeAddr:       ":8080",
			},
		},
		{
			name: "overrides",
			environ: map[string]string{
				"DINO_SERVICE_URL":     "https://status.example.com",
				"DINO_PATIENT_ID":      "abc123",
				"DINO_REQUEST_TIMEOUT": "750ms",
				"DINO_LOG_FILE":        "/tmp/dino.log",
				"DINO_FAKE_ADDR":       "127.0.0.1:9000",
			},
			want: Config{
				ServiceURL:     "https://status.example.com",
				PatientID:      "abc123",
				RequestTimeout: 750 * time.Millisecond,
				LogFile:        "/tmp/dino.log",
				FakeAddr:       "127.0.0.1:9000",
			},
		},
		{
			name:    "invalid timeout",
			environ: map[string]string{"DINO_REQUEST_TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadFrom(tt.environ)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFrom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadFrom() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
