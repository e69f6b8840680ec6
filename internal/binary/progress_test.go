package binary

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name   string
		p      Progress
		want   float64
		wantOK bool
	}{
		{"half", Progress{Downloaded: 50, Total: 100}, 50, true},
		{"complete", Progress{Downloaded: 100, Total: 100}, 100, true},
		{"unknown_total", Progress{Downloaded: 50, Total: -1}, 0, false},
		{"zero_total", Progress{Downloaded: 0, Total: 0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.Percent()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Percent() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConsoleProgress(t *testing.T) {
	tests := []struct {
		name    string
		reports []Progress
		want    string
	}{
		{
			name:    "percentage_when_total_known",
			reports: []Progress{{Downloaded: 25, Total: 100}, {Downloaded: 100, Total: 100}},
			want:    "\rDload progress: 25.0%\rDload progress: 100.0%",
		},
		{
			name:    "bytes_when_total_unknown",
			reports: []Progress{{Downloaded: 2048, Total: -1}},
			want:    "\rDownloaded 2.0 KiB",
		},
		{
			name:    "identical_lines_not_redrawn",
			reports: []Progress{{Downloaded: 1, Total: 1000}, {Downloaded: 1, Total: 1000}},
			want:    "\rDload progress: 0.1%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			report := ConsoleProgress(&buf)
			for _, p := range tt.reports {
				report(p)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if strings.Contains(buf.String(), "\n") {
				t.Error("progress output must stay on one line")
			}
		})
	}
}
