package systems

import (
	"image"
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64 { return c.now }

func testResources(clock *fakeClock) factory.Resources {
	return factory.Resources{
		Loader: animations.LoaderFunc(func(path string) (animations.Image, error) {
			return image.NewRGBA(image.Rect(0, 0, 22, 32)), nil
		}),
		Clock: clock.Now,
		Flip:  assets.FlipHorizontal,
	}
}

// newTestECS returns a world with a contact space and fixed 60 TPS ticks.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	saved := tickSeconds
	tickSeconds = func() float32 { return 1.0 / 60 }
	t.Cleanup(func() { tickSeconds = saved })

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 1280, 800, 16, 16)
	return e
}
