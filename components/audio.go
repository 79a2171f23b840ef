package components

import (
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects raised during one update (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
