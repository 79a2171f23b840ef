package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VictoryScene plays the rescue banner once and then moves on.
type VictoryScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	res          factory.Resources
	record       *systems.SavedRecord
	next         func() interface{}
	once         sync.Once
}

// NewVictoryScene creates the rescue screen. record may be nil. next builds
// the scene shown afterwards.
func NewVictoryScene(sc SceneChanger, res factory.Resources, record *systems.SavedRecord, next func() interface{}) *VictoryScene {
	return &VictoryScene{sceneChanger: sc, res: res, record: record, next: next}
}

func (vs *VictoryScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *VictoryScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *VictoryScene) configure() {
	vs.ecs = ecs.NewECS(donburi.NewWorld())

	vs.ecs.AddSystem(systems.NewUpdateVictory(vs.sceneChanger, vs.next))
	vs.ecs.AddRenderer(cfg.Default, systems.DrawVictory)

	victory := components.VictoryData{Message: cfg.Victory.Message}
	if vs.record != nil {
		victory.Record = fmt.Sprintf(cfg.Victory.RecordFormat,
			vs.record.Rescues, vs.record.Deaths, vs.record.FastestRescue)
	}
	if def, ok := cfg.CharacterAnimations["victory"][cfg.Idle]; ok {
		banner, err := factory.NewAnimation(def, vs.res)
		if err != nil {
			log.Printf("Warning: victory banner: %v", err)
		} else {
			banner.Play()
			victory.Banner = banner
		}
	}

	entry := vs.ecs.World.Entry(vs.ecs.World.Create(components.Victory))
	components.Victory.SetValue(entry, victory)
}
