package database_test

import (
	"testing"
	"time"

	"github.com/ratel-online/cursor"
	"github.com/ratel-online/cursor/example/playlist/consts"
	"github.com/ratel-online/cursor/example/playlist/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom(t *testing.T) {
	room := database.CreateRoom(7, database.StarterTracks())
	require.NotNil(t, room)
	require.Equal(t, int64(7), room.Creator)
	require.Equal(t, 8, room.TrackCount())
	require.Same(t, room, database.GetRoom(room.ID))

	track, number, err := room.NowPlaying()
	require.NoError(t, err)
	assert.Equal(t, 1, number)
	assert.Equal(t, "Night Drive - Vela", track.String())
}

func TestGetRooms(t *testing.T) {
	empty := database.CreateRoom(1, nil)
	starter := database.CreateRoom(2, database.StarterTracks())

	rooms := database.GetRooms()
	ids := make([]int64, 0)
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}
	require.Contains(t, ids, empty.ID)
	require.Contains(t, ids, starter.ID)
	for i := 1; i < len(rooms); i++ {
		require.Less(t, rooms[i-1].ID, rooms[i].ID)
	}
}

func TestPlayNext(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	track, ok := room.PlayNext()
	require.True(t, ok)
	assert.Equal(t, "Paper Lanterns - Okita", track.String())

	for i := 0; i < 6; i++ {
		track, ok = room.PlayNext()
		require.True(t, ok)
	}
	assert.Equal(t, "Slow Orbit - Minor Keys", track.String())

	// parked on the last track until loop is turned on
	track, ok = room.PlayNext()
	require.True(t, ok)
	assert.Equal(t, "Slow Orbit - Minor Keys", track.String())

	room.SetLoop(true)
	track, ok = room.PlayNext()
	require.True(t, ok)
	assert.Equal(t, "Night Drive - Vela", track.String())

	_, ok = database.CreateRoom(1, nil).PlayNext()
	require.False(t, ok)
}

func TestPlayPrev(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	track, ok := room.PlayPrev()
	require.True(t, ok)
	assert.Equal(t, "Night Drive - Vela", track.String())

	room.SetLoop(true)
	track, ok = room.PlayPrev()
	require.True(t, ok)
	assert.Equal(t, "Slow Orbit - Minor Keys", track.String())

	_, ok = database.CreateRoom(1, nil).PlayPrev()
	require.False(t, ok)
}

func TestSkip(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	track, err := room.Skip(3)
	require.NoError(t, err)
	assert.Equal(t, "Static Bloom - Vela", track.String())

	// a refused long skip still parks the cursor on the last track
	_, err = room.Skip(100)
	require.Equal(t, cursor.ErrMaxOut, err)
	track, number, err := room.NowPlaying()
	require.NoError(t, err)
	assert.Equal(t, 8, number)
	assert.Equal(t, "Slow Orbit - Minor Keys", track.String())
}

func TestBack(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	_, err := room.Skip(7)
	require.NoError(t, err)

	track, err := room.Back(2)
	require.NoError(t, err)
	assert.Equal(t, "Afterglow - Okita", track.String())

	_, err = room.Back(100)
	require.Equal(t, cursor.ErrMinOut, err)
	_, number, err := room.NowPlaying()
	require.NoError(t, err)
	assert.Equal(t, 1, number)
}

func TestPlay(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	track, err := room.Play(5)
	require.NoError(t, err)
	assert.Equal(t, "Glass City - Minor Keys", track.String())

	_, err = room.Play(0)
	require.Equal(t, consts.ErrorsTrackInvalid, err)
	_, err = room.Play(9)
	require.Equal(t, consts.ErrorsTrackInvalid, err)

	// refused jumps leave the playing track alone
	_, number, err := room.NowPlaying()
	require.NoError(t, err)
	assert.Equal(t, 5, number)
}

func TestPlayFirst(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	_, err := room.Skip(4)
	require.NoError(t, err)

	track, err := room.PlayFirst()
	require.NoError(t, err)
	assert.Equal(t, "Night Drive - Vela", track.String())

	_, err = database.CreateRoom(1, nil).PlayFirst()
	require.Equal(t, cursor.ErrEmptyContainer, err)
}

func TestPlayLast(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	track, err := room.PlayLast()
	require.NoError(t, err)
	assert.Equal(t, "Slow Orbit - Minor Keys", track.String())

	_, err = database.CreateRoom(1, nil).PlayLast()
	require.Equal(t, cursor.ErrEmptyContainer, err)
}

func TestAddTrack(t *testing.T) {
	room := database.CreateRoom(1, nil)
	_, _, err := room.NowPlaying()
	require.Equal(t, cursor.ErrEmptyContainer, err)

	total, err := room.AddTrack(database.Track{Title: "Night Drive", Artist: "Vela", Duration: 222 * time.Second})
	require.NoError(t, err)
	require.Equal(t, 1, total)

	// the first added track starts playing
	track, number, err := room.NowPlaying()
	require.NoError(t, err)
	assert.Equal(t, 1, number)
	assert.Equal(t, "Night Drive - Vela", track.String())

	total, err = room.AddTrack(database.Track{Title: "Low Tide", Artist: "Harbor Lights", Duration: 198 * time.Second})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	_, number, err = room.NowPlaying()
	require.NoError(t, err)
	assert.Equal(t, 1, number)
}

func TestAddTrackLimit(t *testing.T) {
	room := database.CreateRoom(1, nil)
	for i := 0; i < consts.MaxTracks; i++ {
		_, err := room.AddTrack(database.Track{Title: "Loop", Artist: "Robot", Duration: 3 * time.Minute})
		require.NoError(t, err)
	}
	_, err := room.AddTrack(database.Track{Title: "One", Artist: "Too Many", Duration: 3 * time.Minute})
	require.Equal(t, consts.ErrorsTracksLimit, err)
	require.Equal(t, consts.MaxTracks, room.TrackCount())
}

func TestRemoveTrack(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	_, err := room.Play(8)
	require.NoError(t, err)

	removed, err := room.RemoveTrack(8)
	require.NoError(t, err)
	assert.Equal(t, "Slow Orbit - Minor Keys", removed.String())
	require.Equal(t, 7, room.TrackCount())

	// the cursor follows the shrunken playlist down to the new last track
	track, number, err := room.NowPlaying()
	require.NoError(t, err)
	assert.Equal(t, 7, number)
	assert.Equal(t, "North Platform - Harbor Lights", track.String())

	_, err = room.RemoveTrack(99)
	require.Equal(t, consts.ErrorsTrackInvalid, err)
}

func TestKeepTracks(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	left := room.KeepTracks("vela")
	require.Equal(t, 2, left)

	tracks, current, ok := room.Snapshot()
	require.True(t, ok)
	require.Equal(t, 0, current)
	require.Equal(t, "Night Drive - Vela", tracks[0].String())
	require.Equal(t, "Static Bloom - Vela", tracks[1].String())

	require.Equal(t, 0, room.KeepTracks("polka"))
	_, _, err := room.NowPlaying()
	require.Equal(t, cursor.ErrEmptyContainer, err)
}

func TestSnapshot(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	_, err := room.Skip(2)
	require.NoError(t, err)

	tracks, current, ok := room.Snapshot()
	require.True(t, ok)
	require.Equal(t, 2, current)
	require.Equal(t, database.StarterTracks(), tracks)

	// snapshots are copies, scribbling on one leaves the room alone
	tracks[0] = database.Track{Title: "Scratched", Artist: "Nobody"}
	fresh, _, _ := room.Snapshot()
	require.Equal(t, "Night Drive - Vela", fresh[0].String())

	none, _, ok := database.CreateRoom(1, nil).Snapshot()
	require.False(t, ok)
	require.Empty(t, none)
}

func TestSetLoop(t *testing.T) {
	room := database.CreateRoom(1, database.StarterTracks())
	require.False(t, room.Looping())

	room.SetLoop(true)
	require.True(t, room.Looping())
	track, err := room.Back(1)
	require.NoError(t, err)
	assert.Equal(t, "Slow Orbit - Minor Keys", track.String())

	room.SetLoop(false)
	require.False(t, room.Looping())
	_, err = room.Skip(1)
	require.Equal(t, cursor.ErrMaxOut, err)
}

func TestJoinRoom(t *testing.T) {
	room := database.CreateRoom(1, nil)
	err := database.JoinRoom(room.ID, 404)
	require.Equal(t, consts.ErrorsExist, err)
	require.Equal(t, 0, room.Listeners)
}

func TestGetRoom(t *testing.T) {
	room := database.CreateRoom(1, nil)
	require.Same(t, room, database.GetRoom(room.ID))
	require.Nil(t, database.GetRoom(987654))
}
