package config

import "fmt"

// StateID identifies a character state for animation selection.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	WalkLeft
	WalkRight
	Jump
	JumpLeft
	JumpRight
)

// StateToName maps StateID to the key used in animation definition files.
var StateToName = map[StateID]string{
	Idle:      "idle",
	WalkLeft:  "walk_left",
	WalkRight: "walk_right",
	Jump:      "jump",
	JumpLeft:  "jump_left",
	JumpRight: "jump_right",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	if s == StateNone {
		return "none"
	}
	return fmt.Sprintf("StateID(%d)", int(s))
}

// ParseStateID resolves a definition file key.
func ParseStateID(name string) (StateID, bool) {
	for id, n := range StateToName {
		if n == name {
			return id, true
		}
	}
	return StateNone, false
}
