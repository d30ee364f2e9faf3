package render_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ratel-online/cursor"
	"github.com/ratel-online/cursor/example/playlist/database"
	"github.com/ratel-online/cursor/example/playlist/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistTable(t *testing.T) {
	tracks := database.StarterTracks()[:3]
	table := render.PlaylistTable(tracks, 1, true)

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "No")
	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[0], "Artist")
	assert.Contains(t, lines[1], " 1")
	assert.Contains(t, lines[1], "Night Drive")
	assert.Contains(t, lines[1], "3:42")
	assert.Contains(t, lines[2], "*2")
	assert.Contains(t, lines[2], "Paper Lanterns")
	assert.Contains(t, lines[3], " 3")
	assert.Contains(t, lines[3], "Low Tide")
}

func TestPlaylistTableEmpty(t *testing.T) {
	require.Equal(t, "Playlist is empty. \n", render.PlaylistTable(nil, 0, false))
}

func TestPlaylistTableNoCursor(t *testing.T) {
	tracks := database.StarterTracks()[:2]
	table := render.PlaylistTable(tracks, 5, false)
	assert.NotContains(t, table, "*")
}

func TestNowPlayingLine(t *testing.T) {
	track := database.Track{Title: "Night Drive", Artist: "Vela", Duration: 222 * time.Second}
	line := render.NowPlayingLine(track, 1, 8)
	assert.Contains(t, line, "Now playing Night Drive - Vela")
	assert.Contains(t, line, "(3:42)")
	assert.Contains(t, line, "[1/8]")
}

func TestMoveFailedLine(t *testing.T) {
	assert.Contains(t, render.MoveFailedLine(cursor.ErrMaxOut), "end of the playlist")
	assert.Contains(t, render.MoveFailedLine(cursor.ErrMinOut), "start of the playlist")
	assert.Contains(t, render.MoveFailedLine(cursor.ErrEmptyContainer), "Playlist is empty")
	assert.Contains(t, render.MoveFailedLine(cursor.ErrOutOfRange), "out of range")
	assert.Contains(t, render.MoveFailedLine(errors.New("boom")), "boom")
}
