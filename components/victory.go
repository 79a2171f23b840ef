package components

import (
	"github.com/automoto/platformer/assets/animations"
	"github.com/yohamta/donburi"
)

// VictoryData is the rescue banner. The scene ends once the one-shot Banner
// animation has played through.
type VictoryData struct {
	Banner  *animations.Animation
	Message string
	Record  string
}

var Victory = donburi.NewComponentType[VictoryData]()
