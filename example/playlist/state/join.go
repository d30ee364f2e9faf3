package state

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/cursor/example/playlist/consts"
	"github.com/ratel-online/cursor/example/playlist/database"
	"github.com/ratel-online/cursor/example/playlist/render"
)

type join struct{}

func (s *join) Next(player *database.Player) (consts.StateID, error) {
	err := render.RoomList(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	signal, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if isExit(signal) {
		return s.Exit(player), nil
	}
	if isLs(signal) {
		return consts.StateJoin, nil
	}
	roomId, err := strconv.ParseInt(signal, 10, 64)
	if err != nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	room := database.GetRoom(roomId)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	err = database.JoinRoom(roomId, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	database.Broadcast(roomId, fmt.Sprintf("%s joined room! room current has %d listeners\n", player.Name, room.Listeners))
	return consts.StateListening, nil
}

func (*join) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}
