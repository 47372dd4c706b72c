package ui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelf-cli/bookshelf/internal/ui"
)

func resetUI(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		ui.SetTheme("classic")
		ui.SetColorForcing(false, false)
	})
}

func Test_ProgressBar(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		wantPct     string
	}{
		{name: "empty", done: 0, total: 0, wantPct: "0%"},
		{name: "half", done: 14, total: 28, wantPct: "50%"},
		{name: "full", done: 28, total: 28, wantPct: "100%"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bar := ui.ProgressBar(tc.done, tc.total, 28)
			assert.True(t, strings.HasSuffix(bar, tc.wantPct), bar)
		})
	}
}

func Test_ProgressBar_NeverOverflows(t *testing.T) {
	bar := ui.ProgressBar(10, 5, 10)
	assert.Equal(t, 10, strings.Count(bar, "█"))
	assert.Equal(t, 0, strings.Count(bar, "░"))
}

func Test_Frame_PadsToWidestLine(t *testing.T) {
	resetUI(t)
	ui.SetTheme("mono")

	got := ui.Frame("", []string{"a", "bb"})
	assert.Equal(t, []string{
		"+----+",
		"| a  |",
		"| bb |",
		"+----+",
	}, got)
}

func Test_Frame_FooterTally(t *testing.T) {
	resetUI(t)
	ui.SetTheme("mono")

	got := ui.Frame("1/2 read", []string{"1. Dune by Frank Herbert (1965) - Sci-Fi - Read"})
	require.Len(t, got, 3)
	bottom := got[len(got)-1]
	assert.Contains(t, bottom, "- 1/2 read -")
	// The tally never changes the border width.
	assert.Equal(t, len(got[0]), len(bottom))
}

func Test_Frame_FooterWiderThanBox_IsDropped(t *testing.T) {
	resetUI(t)
	ui.SetTheme("mono")

	got := ui.Frame("a footer wider than the box", []string{"x"})
	assert.Equal(t, "+---+", got[len(got)-1])
}

func Test_C_ColorForcing(t *testing.T) {
	resetUI(t)
	ui.SetTheme("classic")

	ui.SetColorForcing(true, false)
	assert.Equal(t, "\033[32mx\033[0m", ui.C("\033[32m", "x"))

	// NO_COLOR-style disable wins even without a TTY check.
	ui.SetColorForcing(false, true)
	assert.Equal(t, "x", ui.C("\033[32m", "x"))
}
