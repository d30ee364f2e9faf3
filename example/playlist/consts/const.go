package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateListening
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MaxListeners = 8
	MaxTracks    = 100

	AuthTimeout = 3 * time.Second
	PollTimeout = 1 * time.Second

	// IdleTrackTime paces the radio while the playlist is empty.
	IdleTrackTime = 30 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist        = NewErr(1, true, "Exist. ")
	ErrorsChanClosed   = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout      = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail     = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid  = NewErr(1, true, "Room invalid. ")
	ErrorsRoomFull     = NewErr(1, false, "Room listeners is full. ")
	ErrorsTracksLimit  = NewErr(1, false, "Playlist is full. ")
	ErrorsTrackInvalid = NewErr(1, false, "Track invalid. ")
	ErrorsStateInvalid = NewErr(1, true, "State invalid. ")
)
