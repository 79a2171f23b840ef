package systems

import (
	"strings"
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/systems/factory"
)

func TestDebugLines(t *testing.T) {
	e := newTestECS(t)
	clock := &fakeClock{}
	res := testResources(clock)
	if _, err := factory.CreatePlayer(e, assets.Spawn{X: 10, Y: 10}, res); err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	if _, err := factory.CreatePrincesses(e, []assets.Spawn{{X: 64, Y: 64}, {X: 128, Y: 64}}, res); err != nil {
		t.Fatalf("CreatePrincesses: %v", err)
	}

	clock.now = 0.9
	lines := DebugLines(e)
	if len(lines) != 4 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "player idle") {
		t.Errorf("player line %q", lines[0])
	}
	if !strings.Contains(lines[1], "playing frame 1/1") {
		t.Errorf("animation line %q", lines[1])
	}
	for _, line := range lines[2:] {
		if !strings.HasPrefix(line, "princess") || !strings.Contains(line, "frame 2/2") {
			t.Errorf("princess line %q", line)
		}
	}
}
