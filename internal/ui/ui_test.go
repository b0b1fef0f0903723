package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPanel_FramesLinesToWidestVisibleLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"Milk", "\033[32mBread\033[0m and butter"})

	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"+------------------+",
		"| Milk             |",
		"| \033[32mBread\033[0m and butter |",
		"+------------------+",
	}
	if len(got) != len(want) {
		t.Fatalf("Panel lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{done: 0, total: 0, width: 5, want: "░░░░░   0%"},
		{done: 1, total: 2, width: 10, want: "█████░░░░░  50%"},
		{done: 3, total: 3, width: 2, want: "█████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Fatalf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestC_RespectsDisable(t *testing.T) {
	SetColorForcing(true, true)
	defer SetColorForcing(false, false)
	if got := C(fgRed, "x"); got != "x" {
		t.Fatalf("C with colour disabled = %q, want %q", got, "x")
	}
}

func TestC_ForceColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)
	if got := C(fgRed, "x"); got != fgRed+"x"+reset {
		t.Fatalf("C with colour forced = %q", got)
	}
}

func TestSetTheme_UnknownFallsBackToClassic(t *testing.T) {
	SetTheme("sparkly")
	if Current().Name != "classic" {
		t.Fatalf("theme = %q, want classic", Current().Name)
	}
	SetTheme("NEON")
	if Current().Name != "neon" {
		t.Fatalf("theme = %q, want neon", Current().Name)
	}
	SetTheme("classic")
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("Truncate = %q, want %q", got, "abc...")
	}
}
