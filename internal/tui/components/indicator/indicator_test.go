package indicator

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestIndicatorRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Indicator
		want string
	}{
		{name: "before first fetch", in: Indicator{}, want: "● waiting"},
		{name: "in flight wins over last outcome", in: Indicator{Fetching: true, Checked: true, Failed: true}, want: "● syncing..."},
		{name: "last fetch failed", in: Indicator{Checked: true, Failed: true}, want: "● offline"},
		{name: "last fetch succeeded", in: Indicator{Checked: true}, want: "● synced"},
		{name: "no patient configured", in: Indicator{NoPatient: true, Fetching: true}, want: "● no patient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ansi.Strip(tt.in.Render()); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
