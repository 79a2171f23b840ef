package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	DieBlock = donburi.NewTag().SetName("DieBlock")
	Princess = donburi.NewTag().SetName("Princess")
)

// Resolv tags for contact checks
const (
	ResolvSolid    = "solid"
	ResolvDie      = "die"
	ResolvPlayer   = "player"
	ResolvPrincess = "princess"
)
