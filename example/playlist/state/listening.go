package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/cursor"
	"github.com/ratel-online/cursor/example/playlist/consts"
	"github.com/ratel-online/cursor/example/playlist/database"
	"github.com/ratel-online/cursor/example/playlist/render"
)

type listening struct{}

func (s *listening) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	err := listenRoom(player, room)
	if err != nil {
		return 0, err
	}
	return s.Exit(player), nil
}

func (*listening) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d listeners\n", player.Name, room.Listeners))
		if isOwner {
			newOwner := database.GetPlayer(room.Creator)
			database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
		}
	}
	return consts.StateHome
}

func listenRoom(player *database.Player, room *database.Room) error {
	_ = render.NowPlaying(player, room)
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(consts.PollTimeout)
		if err != nil && err != consts.ErrorsTimeout {
			return err
		}
		signal = strings.TrimSpace(signal)
		if len(signal) == 0 {
			continue
		}
		if isExit(signal) {
			return nil
		}
		if isLs(signal) {
			_ = render.Playlist(player, room)
			continue
		}
		handleSignal(player, room, signal)
	}
}

func handleSignal(player *database.Player, room *database.Room, signal string) {
	tags := strings.Split(strings.ToLower(signal), " ")
	switch tags[0] {
	case "n", "next":
		if track, ok := room.PlayNext(); ok {
			database.Broadcast(room.ID, fmt.Sprintf("%s skipped to %s\n", player.Name, track))
		} else {
			_ = render.MoveFailed(player, cursor.ErrEmptyContainer)
		}
	case "p", "prev":
		if track, ok := room.PlayPrev(); ok {
			database.Broadcast(room.ID, fmt.Sprintf("%s went back to %s\n", player.Name, track))
		} else {
			_ = render.MoveFailed(player, cursor.ErrEmptyContainer)
		}
	case "skip":
		n, ok := intArg(player, tags)
		if !ok {
			return
		}
		track, err := room.Skip(n)
		if err != nil {
			_ = render.MoveFailed(player, err)
			return
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s skipped %d tracks to %s\n", player.Name, n, track))
	case "back":
		n, ok := intArg(player, tags)
		if !ok {
			return
		}
		track, err := room.Back(n)
		if err != nil {
			_ = render.MoveFailed(player, err)
			return
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s went back %d tracks to %s\n", player.Name, n, track))
	case "play":
		number, ok := intArg(player, tags)
		if !ok {
			return
		}
		track, err := room.Play(number)
		if err != nil {
			_ = player.WriteError(err)
			return
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s picked %s\n", player.Name, track))
	case "first":
		track, err := room.PlayFirst()
		if err != nil {
			_ = render.MoveFailed(player, err)
			return
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s jumped to %s\n", player.Name, track))
	case "last":
		track, err := room.PlayLast()
		if err != nil {
			_ = render.MoveFailed(player, err)
			return
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s jumped to %s\n", player.Name, track))
	case "loop":
		if len(tags) < 2 || (tags[1] != "on" && tags[1] != "off") {
			_ = player.WriteError(consts.ErrorsInputInvalid)
			return
		}
		room.SetLoop(tags[1] == "on")
		database.Broadcast(room.ID, fmt.Sprintf("%s turned loop %s\n", player.Name, tags[1]))
	case "now":
		_ = render.NowPlaying(player, room)
	case "who":
		_ = render.RoomInfo(player, room)
	case "help", "h":
		_ = render.Help(player)
	case "add":
		track, err := database.ParseTrack(strings.TrimSpace(signal[3:]))
		if err != nil {
			_ = player.WriteError(err)
			return
		}
		total, err := room.AddTrack(track)
		if err != nil {
			_ = player.WriteError(err)
			return
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s added %s, %d tracks total\n", player.Name, track, total))
	case "del":
		number, ok := intArg(player, tags)
		if !ok {
			return
		}
		track, err := room.RemoveTrack(number)
		if err != nil {
			_ = player.WriteError(err)
			return
		}
		database.Broadcast(room.ID, fmt.Sprintf("%s removed %s\n", player.Name, track))
	case "keep":
		if len(tags) < 2 {
			_ = player.WriteError(consts.ErrorsInputInvalid)
			return
		}
		left := room.KeepTracks(tags[1])
		database.Broadcast(room.ID, fmt.Sprintf("%s trimmed the playlist to %d tracks\n", player.Name, left))
	default:
		player.BroadcastChat(fmt.Sprintf("%s say: %s\n", player.Name, signal))
	}
}

func intArg(player *database.Player, tags []string) (int, bool) {
	if len(tags) < 2 {
		_ = player.WriteError(consts.ErrorsInputInvalid)
		return 0, false
	}
	n, err := strconv.Atoi(tags[1])
	if err != nil {
		_ = player.WriteError(consts.ErrorsInputInvalid)
		return 0, false
	}
	return n, true
}
