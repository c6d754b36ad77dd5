package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/webtutorials/internal/model"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
}

func TestPanelAlignsLines(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)
	require.NoError(t, SetTheme("mono"))
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+------+", lines[0])
	assert.Equal(t, "| ab   |", lines[1])
	assert.Equal(t, "| abcd |", lines[2])
}

func TestGroupLines(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)
	require.NoError(t, SetTheme("mono"))
	defer SetTheme("classic")

	lines := GroupLines([]model.Todo{
		{TID: 1, Task: "pending one"},
		{TID: 2, Task: "finished", Status: true},
	})
	assert.Equal(t, []string{
		"Pending",
		"  1. [ ] pending one",
		"",
		"Done",
		"  2. [x] finished",
	}, lines)
}

func TestFlatLinesTruncates(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)

	long := strings.Repeat("é", 100)
	lines := FlatLines([]model.Todo{{TID: 7, Task: long}})
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "..."))
	assert.Equal(t, []string{"no items"}, FlatLines(nil))
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { _ = SetTheme("classic") })

	require.NoError(t, SetTheme(" NEON "))
	assert.Equal(t, "neon", Current().Name)
	require.NoError(t, SetTheme(""))
	assert.Equal(t, "classic", Current().Name)

	err := SetTheme("sepia")
	assert.ErrorContains(t, err, `unknown theme "sepia" (want one of classic, mono, neon)`)
	assert.Equal(t, "classic", Current().Name)
}

func TestMonoIsPlainAndSwitchingBackRestoresColor(t *testing.T) {
	SetColorForcing(true, false)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		_ = SetTheme("classic")
	})

	require.NoError(t, SetTheme("mono"))
	var buf bytes.Buffer
	OK(&buf, "saved")
	Warn(&buf, "careful")
	assert.Equal(t, "OK saved\nWARN careful\n", buf.String())

	require.NoError(t, SetTheme("classic"))
	buf.Reset()
	OK(&buf, "saved")
	assert.Equal(t, fgGreen+"✔ saved"+reset+"\n", buf.String())
}
