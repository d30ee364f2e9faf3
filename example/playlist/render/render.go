package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fatih/color"
	constx "github.com/ratel-online/core/consts"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/cursor"
	"github.com/ratel-online/cursor/example/playlist/database"
)

var (
	green  = color.New(color.FgHiGreen).SprintfFunc()
	yellow = color.New(color.FgHiYellow).SprintfFunc()
	cyan   = color.New(color.FgHiCyan).SprintfFunc()
)

func Welcome(player *database.Player) error {
	return player.WriteObject(model.Data{
		Code: constx.CodeWelcome,
		Msg:  fmt.Sprintf("Hi %s, Welcome to playlist radio! \n", player.Name),
	})
}

func HomeOptions(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString("1.Join\n")
	buf.WriteString("2.New\n")
	return player.WriteObject(model.Options{
		Data: model.Data{
			Code: constx.CodeHomeOptions,
			Msg:  buf.String(),
		},
		Options: []model.Option{
			{ID: 1, Name: "Join"},
			{ID: 2, Name: "New"},
		},
	})
}

func SeedOptions(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString("Please select playlist\n")
	buf.WriteString("1.Empty\n")
	buf.WriteString("2.Starter\n")
	return player.WriteObject(model.Options{
		Data: model.Data{
			Code: constx.CodeGameTypeOptions,
			Msg:  buf.String(),
		},
		Options: []model.Option{
			{ID: 1, Name: "Empty"},
			{ID: 2, Name: "Starter"},
		},
	})
}

func RoomList(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-12s%-10s\n", "ID", "Tracks", "Listeners", "Loop"))
	for _, room := range database.GetRooms() {
		buf.WriteString(fmt.Sprintf("%-10d%-10d%-12d%-10s\n", room.ID, room.TrackCount(), room.Listeners, sprintLoopState(room.Looping())))
	}
	return player.WriteObject(model.Data{
		Code: constx.CodeRoomList,
		Msg:  buf.String(),
	})
}

func RoomInfo(player *database.Player, room *database.Room) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for playerId := range database.RoomPlayers(room.ID) {
		title := "listener"
		if playerId == room.Creator {
			title = "owner"
		}
		info := database.GetPlayer(playerId)
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", info.Name, info.Score, title))
	}
	buf.WriteString(fmt.Sprintf("%-5s%-10s\n", "loop", sprintLoopState(room.Looping())))
	return player.WriteString(buf.String())
}

func Playlist(player *database.Player, room *database.Room) error {
	tracks, current, ok := room.Snapshot()
	return player.WriteString(PlaylistTable(tracks, current, ok))
}

// PlaylistTable lays out the tracks, marking the one behind the cursor.
func PlaylistTable(tracks []database.Track, current int, ok bool) string {
	if len(tracks) == 0 {
		return "Playlist is empty. \n"
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-6s%-24s%-20s%-8s\n", "No", "Title", "Artist", "Time"))
	for i, track := range tracks {
		paint := fmt.Sprintf
		no := fmt.Sprintf(" %d", i+1)
		if ok && i == current {
			paint = green
			no = fmt.Sprintf("*%d", i+1)
		}
		buf.WriteString(paint("%-6s%-24s%-20s%-8s", no, track.Title, track.Artist, fmtDuration(track.Duration)))
		buf.WriteString("\n")
	}
	return buf.String()
}

func NowPlaying(player *database.Player, room *database.Room) error {
	track, number, err := room.NowPlaying()
	if err != nil {
		return MoveFailed(player, err)
	}
	return player.WriteString(NowPlayingLine(track, number, room.TrackCount()))
}

func NowPlayingLine(track database.Track, number, total int) string {
	return cyan("Now playing %s (%s) [%d/%d]", track, fmtDuration(track.Duration), number, total) + "\n"
}

func MoveFailed(player *database.Player, err error) error {
	return player.WriteString(MoveFailedLine(err))
}

// MoveFailedLine turns a refused cursor move into a listener-facing notice.
func MoveFailedLine(err error) string {
	switch err {
	case cursor.ErrMaxOut:
		return yellow("Reached the end of the playlist. ") + "\n"
	case cursor.ErrMinOut:
		return yellow("Reached the start of the playlist. ") + "\n"
	case cursor.ErrEmptyContainer:
		return "Playlist is empty. \n"
	case cursor.ErrOutOfRange:
		return "Track number out of range. \n"
	}
	return err.Error() + "\n"
}

func Help(player *database.Player) error {
	return player.WriteString(helpText)
}

const helpText = `Commands:
n, next          play the next track
p, prev          play the previous track
skip <n>         jump forward n tracks
back <n>         jump back n tracks
play <no>        jump to the numbered track
first, last      jump to the first or last track
loop on|off      turn playlist looping on or off
now              show the playing track
ls, v            show the playlist
who              show room listeners
add <title> - <artist> [- <m:ss>]
del <no>         remove the numbered track
keep <word>      keep only tracks matching word
exit, e          leave the room
`

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func sprintLoopState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
