package state

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/cursor/example/playlist/consts"
	"github.com/ratel-online/cursor/example/playlist/database"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateListening, &listening{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

func Run(player *database.Player) {
	player.State(consts.StateWelcome)
	for {
		state, ok := states[player.GetState()]
		if !ok {
			log.Error(consts.ErrorsStateInvalid)
			return
		}
		stateId, err := state.Next(player)
		if err != nil {
			if err1, ok := err.(consts.Error); ok && err1.Exit {
				stateId = state.Exit(player)
				if stateId == 0 {
					log.Infof("player %s left\n", player)
					return
				}
			} else {
				log.Error(err)
				return
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isExit(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "ls" || signal == "v"
}
