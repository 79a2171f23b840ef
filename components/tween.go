package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HoverData bobs an entity around its resting Y position.
type HoverData struct {
	BaseY float64
	Tween *gween.Sequence
}

var Hover = donburi.NewComponentType[HoverData]()
