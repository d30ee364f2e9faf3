package database

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ratel-online/cursor/example/playlist/consts"
)

type Track struct {
	Title    string        `json:"title"`
	Artist   string        `json:"artist"`
	Duration time.Duration `json:"duration"`
}

func (t Track) String() string {
	return fmt.Sprintf("%s - %s", t.Title, t.Artist)
}

const defaultTrackTime = 210 * time.Second

// ParseTrack reads "title - artist" or "title - artist - m:ss".
func ParseTrack(line string) (Track, error) {
	parts := strings.SplitN(line, " - ", 3)
	if len(parts) < 2 {
		return Track{}, consts.ErrorsTrackInvalid
	}
	track := Track{
		Title:    strings.TrimSpace(parts[0]),
		Artist:   strings.TrimSpace(parts[1]),
		Duration: defaultTrackTime,
	}
	if track.Title == "" || track.Artist == "" {
		return Track{}, consts.ErrorsTrackInvalid
	}
	if len(parts) == 3 {
		duration, err := parseTrackTime(strings.TrimSpace(parts[2]))
		if err != nil {
			return Track{}, consts.ErrorsTrackInvalid
		}
		track.Duration = duration
	}
	return track, nil
}

func parseTrackTime(v string) (time.Duration, error) {
	fields := strings.SplitN(v, ":", 2)
	if len(fields) != 2 {
		return 0, consts.ErrorsTrackInvalid
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes < 0 {
		return 0, consts.ErrorsTrackInvalid
	}
	seconds, err := strconv.Atoi(fields[1])
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, consts.ErrorsTrackInvalid
	}
	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

// StarterTracks fills new rooms that asked for the demo playlist.
func StarterTracks() []Track {
	return []Track{
		{Title: "Night Drive", Artist: "Vela", Duration: 222 * time.Second},
		{Title: "Paper Lanterns", Artist: "Okita", Duration: 254 * time.Second},
		{Title: "Low Tide", Artist: "Harbor Lights", Duration: 198 * time.Second},
		{Title: "Static Bloom", Artist: "Vela", Duration: 247 * time.Second},
		{Title: "Glass City", Artist: "Minor Keys", Duration: 211 * time.Second},
		{Title: "Afterglow", Artist: "Okita", Duration: 263 * time.Second},
		{Title: "North Platform", Artist: "Harbor Lights", Duration: 189 * time.Second},
		{Title: "Slow Orbit", Artist: "Minor Keys", Duration: 236 * time.Second},
	}
}
