package state

import (
	"fmt"

	"github.com/ratel-online/cursor/example/playlist/consts"
	"github.com/ratel-online/cursor/example/playlist/database"
	"github.com/ratel-online/cursor/example/playlist/render"
)

type create struct{}

const (
	seedEmpty   = 1
	seedStarter = 2
)

func (*create) Next(player *database.Player) (consts.StateID, error) {
	err := render.SeedOptions(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	seed, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if seed != seedEmpty && seed != seedStarter {
		return 0, player.WriteError(consts.ErrorsInputInvalid)
	}
	var tracks []database.Track
	if seed == seedStarter {
		tracks = database.StarterTracks()
	}
	room := database.CreateRoom(player.ID, tracks)
	err = player.WriteString(fmt.Sprintf("Create room successful, id : %d\n", room.ID))
	if err != nil {
		return 0, player.WriteError(err)
	}
	err = database.JoinRoom(room.ID, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateListening, nil
}

func (*create) Exit(_ *database.Player) consts.StateID {
	return consts.StateHome
}
