package planetary

import (
	"fmt"

	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/games/planetary/sim"
)

// Entity kinds reported in a snapshot.
const (
	KindPlayer    = "player"
	KindRobot     = "robot"
	KindRobotArm  = "robot-arm"
	KindPlatform  = "platform"
	KindBullet    = "bullet"
	KindSpaceship = "spaceship"
	KindCity      = "city"
)

// Entity is the render state of one world entity for a single tick.
// Positions are world Cartesian coordinates, with y pointing down.
type Entity struct {
	Kind        string  `json:"kind"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Rotation    float64 `json:"rotation"`
	Visible     bool    `json:"visible"`
	Animation   string  `json:"animation,omitempty"`
	FacingScale float64 `json:"facing_scale"`
	Alpha       float64 `json:"alpha"`
}

// Snapshot is everything an external renderer needs to draw one tick.
type Snapshot struct {
	Tick     int      `json:"tick"`
	Score    int      `json:"score"`
	GameOver bool     `json:"game_over"`
	Paused   bool     `json:"paused"`
	Entities []Entity `json:"entities"`
}

// Snapshot returns the current per-entity render state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:     w.Tick(),
		Score:    w.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}

	p := w.Player
	animation := p.Animation()
	if wpn := p.Weapon(); wpn != nil && wpn.Fired {
		animation = "fire-" + wpn.Kind.String()
	}
	snap.Entities = append(snap.Entities, Entity{
		Kind:        KindPlayer,
		X:           p.X,
		Y:           p.Y,
		Rotation:    p.Rotation,
		Visible:     true,
		Animation:   animation,
		FacingScale: p.FacingScale(),
		Alpha:       1,
	})

	for _, pl := range w.Platforms().All() {
		mid := pl.StartAngle + pl.AngularWidth/2
		x, y := core.PolarToCartesian(pl.SurfaceRadius, mid)
		snap.Entities = append(snap.Entities, Entity{
			Kind:        KindPlatform,
			X:           x,
			Y:           y,
			Rotation:    mid,
			Visible:     true,
			FacingScale: 1,
			Alpha:       1,
		})
	}

	for _, c := range w.Cities().All() {
		snap.Entities = append(snap.Entities, Entity{
			Kind:        KindCity,
			X:           c.X,
			Y:           c.Y,
			Rotation:    c.Rotation,
			Visible:     c.Alive(),
			Animation:   c.Tier().String(),
			FacingScale: 1,
			Alpha:       1,
		})
	}

	for _, r := range w.Robots().All() {
		snap.Entities = append(snap.Entities, Entity{
			Kind:        KindRobot,
			X:           r.X,
			Y:           r.Y,
			Rotation:    r.Rotation,
			Visible:     r.Alive(),
			Animation:   r.Animation(),
			FacingScale: r.FacingScale(),
			Alpha:       r.Alpha,
		}, Entity{
			Kind:        KindRobotArm,
			X:           r.X,
			Y:           r.Y,
			Rotation:    r.Rotation,
			Visible:     r.Alive() && r.State == sim.RobotAttacking,
			Animation:   fmt.Sprintf("arm-%d", r.Arm.Frame()),
			FacingScale: r.FacingScale(),
			Alpha:       r.Alpha,
		})
	}

	for _, b := range w.Bullets().All() {
		snap.Entities = append(snap.Entities, Entity{
			Kind:        KindBullet,
			X:           b.X,
			Y:           b.Y,
			Rotation:    b.Angle(),
			Visible:     b.Alive(),
			FacingScale: 1,
			Alpha:       1,
		})
	}

	for _, s := range w.Ships().All() {
		snap.Entities = append(snap.Entities, Entity{
			Kind:        KindSpaceship,
			X:           s.X,
			Y:           s.Y,
			Rotation:    s.Rotation,
			Visible:     s.Alive(),
			Animation:   s.Animation(),
			FacingScale: 1,
			Alpha:       s.Alpha,
		})
	}

	return snap
}

// Count returns how many entities of kind the snapshot holds.
func (s Snapshot) Count(kind string) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
