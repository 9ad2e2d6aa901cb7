package proficiency

import "strings"

// Named proficiency levels shared by every component that compares
// user skill levels against role requirements.
const (
	LevelNone         = "none"
	LevelAware        = "aware"
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
	LevelMaster       = "master"
)

// Expert and master share a score: master is a display-only distinction.
var scores = map[string]int{
	LevelNone:         0,
	LevelAware:        1,
	LevelBeginner:     2,
	LevelIntermediate: 3,
	LevelAdvanced:     4,
	LevelExpert:       5,
	LevelMaster:       5,
}

const (
	MinScore = 0
	MaxScore = 5

	// IntermediateScore is the conventional fallback for requirements
	// carrying an unrecognized required level.
	IntermediateScore = 3
)

// Score maps a level name to its numeric score. Matching is
// case-insensitive; unknown input returns fallback, never an error.
func Score(level string, fallback int) int {
	s, ok := scores[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return fallback
	}
	return s
}

// Known reports whether level is a recognized proficiency name.
func Known(level string) bool {
	_, ok := scores[strings.ToLower(strings.TrimSpace(level))]
	return ok
}
