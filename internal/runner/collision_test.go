package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestFirstHit(t *testing.T) {
	actor := core.NewBox(50, 220, 40, 40)

	tests := []struct {
		name      string
		obstacles []Obstacle
		wantIdx   int
		wantHit   bool
	}{
		{
			name:    "no obstacles",
			wantIdx: -1,
		},
		{
			name:      "overlapping obstacle",
			obstacles: []Obstacle{{X: 60, Y: 230, Width: 20, Height: 40}},
			wantIdx:   0,
			wantHit:   true,
		},
		{
			name:      "distant obstacle",
			obstacles: []Obstacle{{X: 500, Y: 230, Width: 20, Height: 40}},
			wantIdx:   -1,
		},
		{
			name:      "touching right edge",
			obstacles: []Obstacle{{X: 90, Y: 230, Width: 20, Height: 40}},
			wantIdx:   -1,
		},
		{
			name: "first in list order wins",
			obstacles: []Obstacle{
				{X: 400, Y: 230, Width: 20, Height: 40},
				{X: 70, Y: 230, Width: 20, Height: 40},
				{X: 55, Y: 230, Width: 20, Height: 40},
			},
			wantIdx: 1,
			wantHit: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, hit := FirstHit(actor, tc.obstacles)
			if idx != tc.wantIdx || hit != tc.wantHit {
				t.Errorf("FirstHit() = (%d, %v), expected (%d, %v)", idx, hit, tc.wantIdx, tc.wantHit)
			}
		})
	}
}

func TestFirstHitAirborneClears(t *testing.T) {
	// Actor bottom at 180 clears a 40-tall obstacle standing on 260
	actor := core.NewBox(50, 140, 40, 40)
	if _, hit := FirstHit(actor, []Obstacle{{X: 60, Y: 220, Width: 20, Height: 40}}); hit {
		t.Error("actor above the obstacle should not collide")
	}
}
