package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/cursor"
	"github.com/ratel-online/cursor/example/playlist/consts"
)

type Room struct {
	sync.Mutex

	ID         int64     `json:"id"`
	Creator    int64     `json:"creator"`
	Listeners  int       `json:"listeners"`
	ActiveTime time.Time `json:"activeTime"`

	playlist *cursor.List[Track]
	loop     bool
	stop     chan struct{}
	stopped  bool
	touch    chan struct{}
}

func (room *Room) NowPlaying() (Track, int, error) {
	room.Lock()
	defer room.Unlock()
	track, err := room.playlist.Current()
	if err != nil {
		return Track{}, 0, err
	}
	value, _ := room.playlist.Cursor()
	return track, value + 1, nil
}

func (room *Room) PlayNext() (Track, bool) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	track, ok := room.playlist.NextAlways()
	if ok {
		room.touched()
	}
	return track, ok
}

func (room *Room) PlayPrev() (Track, bool) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	track, ok := room.playlist.PrevAlways()
	if ok {
		room.touched()
	}
	return track, ok
}

func (room *Room) Skip(n int) (Track, error) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	track, err := room.playlist.NextN(n)
	room.touched()
	return track, err
}

func (room *Room) Back(n int) (Track, error) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	track, err := room.playlist.PrevN(n)
	room.touched()
	return track, err
}

func (room *Room) PlayFirst() (Track, error) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	if room.playlist.Empty() {
		return Track{}, cursor.ErrEmptyContainer
	}
	_ = room.playlist.SetCursor(0)
	room.touched()
	return room.playlist.Current()
}

func (room *Room) PlayLast() (Track, error) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	if room.playlist.Empty() {
		return Track{}, cursor.ErrEmptyContainer
	}
	_ = room.playlist.SetCursor(room.playlist.Len() - 1)
	room.touched()
	return room.playlist.Current()
}

// Play jumps to the 1-based track number.
func (room *Room) Play(number int) (Track, error) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	if number < 1 || number > room.playlist.Len() {
		return Track{}, consts.ErrorsTrackInvalid
	}
	if err := room.playlist.SetCursor(number - 1); err != nil {
		return Track{}, err
	}
	room.touched()
	return room.playlist.Current()
}

func (room *Room) SetLoop(on bool) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	room.loop = on
	room.playlist.SetRotatable(on)
}

func (room *Room) Looping() bool {
	room.Lock()
	defer room.Unlock()
	return room.loop
}

func (room *Room) AddTrack(track Track) (int, error) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	if room.playlist.Len() >= consts.MaxTracks {
		return 0, consts.ErrorsTracksLimit
	}
	room.playlist.Append(track)
	room.playlist.UpdateCursor()
	room.touched()
	return room.playlist.Len(), nil
}

// RemoveTrack drops the 1-based track number and reports the removed track.
func (room *Room) RemoveTrack(number int) (Track, error) {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	track, ok := room.playlist.At(number - 1)
	if !ok {
		return Track{}, consts.ErrorsTrackInvalid
	}
	room.playlist.Modify(func(tracks []Track) []Track {
		return append(tracks[:number-1], tracks[number:]...)
	})
	room.touched()
	return track, nil
}

// KeepTracks drops every track whose title and artist both miss the word.
func (room *Room) KeepTracks(word string) int {
	room.Lock()
	defer room.Unlock()
	room.ActiveTime = time.Now()
	word = strings.ToLower(word)
	room.playlist.Modify(func(tracks []Track) []Track {
		kept := tracks[:0]
		for _, track := range tracks {
			if strings.Contains(strings.ToLower(track.Title), word) ||
				strings.Contains(strings.ToLower(track.Artist), word) {
				kept = append(kept, track)
			}
		}
		return kept
	})
	room.touched()
	return room.playlist.Len()
}

func (room *Room) Snapshot() ([]Track, int, bool) {
	room.Lock()
	defer room.Unlock()
	tracks := make([]Track, 0, room.playlist.Len())
	room.playlist.ForEach(func(track Track) {
		tracks = append(tracks, track)
	})
	value, ok := room.playlist.Cursor()
	return tracks, value, ok
}

func (room *Room) TrackCount() int {
	room.Lock()
	defer room.Unlock()
	return room.playlist.Len()
}

// radio paces the room, moving to the next track when the current one ends.
func (room *Room) radio() {
	d := room.playTime()
	for {
		select {
		case <-room.stop:
			return
		case <-room.touch:
			d = room.playTime()
		case <-time.After(d):
			d = room.advance()
		}
	}
}

// touched nudges the radio to restart its clock on the current track.
func (room *Room) touched() {
	select {
	case room.touch <- struct{}{}:
	default:
	}
}

func (room *Room) playTime() time.Duration {
	room.Lock()
	defer room.Unlock()
	track, err := room.playlist.Current()
	if err != nil || track.Duration <= 0 {
		return consts.IdleTrackTime
	}
	return track.Duration
}

func (room *Room) advance() time.Duration {
	room.Lock()
	defer room.Unlock()
	before, ok := room.playlist.Cursor()
	if !ok {
		return consts.IdleTrackTime
	}
	track, ok := room.playlist.NextAlways()
	if !ok {
		return consts.IdleTrackTime
	}
	if after, _ := room.playlist.Cursor(); after != before {
		room.broadcast(fmt.Sprintf("Now playing %s\n", track.String()))
	}
	if track.Duration <= 0 {
		return consts.IdleTrackTime
	}
	return track.Duration
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	playersIds := getRoomPlayers(room.ID)
	if _, ok := playersIds[player.ID]; ok {
		room.Listeners--
		player.RoomID = 0
		delete(playersIds, player.ID)
		if len(playersIds) > 0 && room.Creator == player.ID {
			for k := range playersIds {
				room.Creator = k
				break
			}
		}
	}
	if len(playersIds) == 0 {
		room.delete()
	}
}

func (room *Room) Cancel() {
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	living := false
	playerIds := getRoomPlayers(room.ID)
	for id := range playerIds {
		if getPlayer(id).online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	roomPlayers := getRoomPlayers(room.ID)
	for playerId := range roomPlayers {
		if player := getPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		if !room.stopped {
			room.stopped = true
			close(room.stop)
		}
	}
}
