package planetary

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/games/planetary/sim"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	RobotChar    = 'Ř'
	AttackChar   = '¤'
	BulletChar   = '•'
	ShipChar     = '◆'
	ShipWingChar = '═'
	PlatformChar = '▬'
	PlanetCore   = '░'
	PlanetRim    = '▓'
	BorderHoriz  = '─'
)

// hudRows is the number of rows reserved at the top of the screen.
const hudRows = 2

// cityGlyphs maps a damage tier to the glyph and color a city is drawn with.
var cityGlyphs = map[sim.Tier]struct {
	glyph rune
	color core.Color
}{
	sim.TierIntact:    {'█', core.ColorBrightWhite},
	sim.TierCracked:   {'▓', core.ColorWhite},
	sim.TierDamaged:   {'▒', core.ColorYellow},
	sim.TierBurning:   {'▒', core.ColorOrange},
	sim.TierCrumbling: {'░', core.ColorRed},
}

// star is a background point fixed in world polar coordinates.
type star struct {
	radius float64 // Fraction of the view radius
	angle  float64
	glyph  rune
}

// newStarField scatters stars using a generator separate from the
// simulation so that rendering never perturbs gameplay.
func newStarField(seed int64, n int) []star {
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			radius: 0.75 + rng.Float64()*0.8,
			angle:  rng.Float64() * core.TwoPi,
			glyph:  []rune{'.', '·', '*'}[rng.Intn(3)],
		}
	}
	return stars
}

// camera maps world polar coordinates onto the screen. It co-rotates with
// the player so the player always stands at the top of the planet.
type camera struct {
	cx, cy      float64 // Screen position of the world center
	unitsPerCol float64
	unitsPerRow float64
	rotation    float64
	viewRadius  float64
}

func (g *Game) newCamera(dst *core.Screen) camera {
	view := g.cfg.Render.ViewRadius
	if view <= 0 {
		sc := g.cfg.Spaceships
		view = sim.StopRadius(g.world.Planet(), g.world.Platforms(), sc.Height, sc.HoverMargin) * 1.08
	}
	aspect := g.cfg.Render.CellAspect
	if aspect <= 0 {
		aspect = 2
	}

	playH := float64(dst.Height() - hudRows)
	playW := float64(dst.Width())

	// Fit the view circle vertically and horizontally, keeping cells' aspect.
	perRow := view / (playH / 2)
	if perCol := view / (playW / 2); perCol*aspect > perRow {
		perRow = perCol * aspect
	}

	return camera{
		cx:          playW / 2,
		cy:          float64(hudRows) + playH/2,
		unitsPerRow: perRow,
		unitsPerCol: perRow / aspect,
		rotation:    g.world.Player.Angle,
		viewRadius:  view,
	}
}

// project returns the screen cell for a world polar position.
func (c camera) project(radius, angle float64) (int, int) {
	x, y := core.PolarToCartesian(radius, angle-c.rotation)
	return int(math.Round(c.cx + x/c.unitsPerCol)), int(math.Round(c.cy + y/c.unitsPerRow))
}

// projectXY returns the screen cell for a world Cartesian position.
func (c camera) projectXY(x, y float64) (int, int) {
	r, a := core.CartesianToPolar(x, y)
	return c.project(r, a)
}

// arcStep returns an angular step small enough to touch every cell along
// an arc at radius.
func (c camera) arcStep(radius float64) float64 {
	return c.unitsPerCol / (2 * math.Max(radius, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	cam := g.newCamera(dst)

	g.renderStars(dst, cam)
	g.renderPlanet(dst, cam)
	g.renderPlatforms(dst, cam)
	g.renderCities(dst, cam)
	g.renderShips(dst, cam)
	g.renderRobots(dst, cam)
	g.renderBullets(dst, cam)
	g.renderPlayer(dst, cam)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderStars(dst *core.Screen, cam camera) {
	for _, s := range g.stars {
		x, y := cam.project(s.radius*cam.viewRadius, s.angle)
		if y < hudRows {
			continue
		}
		dst.SetColored(x, y, s.glyph, core.ColorDarkGray)
	}
}

// renderPlanet fills every cell whose center lies inside the planet disc.
func (g *Game) renderPlanet(dst *core.Screen, cam camera) {
	radius := g.world.Planet().Radius
	rim := radius - cam.unitsPerRow

	for y := hudRows; y < dst.Height(); y++ {
		dy := (float64(y) - cam.cy) * cam.unitsPerRow
		for x := 0; x < dst.Width(); x++ {
			dx := (float64(x) - cam.cx) * cam.unitsPerCol
			d := math.Hypot(dx, dy)
			switch {
			case d <= rim:
				dst.SetColored(x, y, PlanetCore, core.ColorGreen)
			case d <= radius:
				dst.SetColored(x, y, PlanetRim, core.ColorBrightGreen)
			}
		}
	}
}

func (g *Game) renderPlatforms(dst *core.Screen, cam camera) {
	for _, p := range g.world.Platforms().All() {
		step := cam.arcStep(p.SurfaceRadius)
		for a := 0.0; a <= p.AngularWidth; a += step {
			x, y := cam.project(p.SurfaceRadius, p.StartAngle+a)
			if y >= hudRows {
				dst.SetColored(x, y, PlatformChar, core.ColorCyan)
			}
		}
	}
}

func (g *Game) renderCities(dst *core.Screen, cam camera) {
	for _, c := range g.world.Cities().All() {
		style := cityGlyphs[c.Tier()]
		half := c.HalfAngularWidth()
		step := cam.arcStep(c.Radius)
		for a := -half; a <= half; a += step {
			x, y := cam.project(c.Radius, c.Angle+a)
			if y >= hudRows {
				dst.SetColored(x, y, style.glyph, style.color)
			}
		}
	}
}

func (g *Game) renderShips(dst *core.Screen, cam camera) {
	for _, s := range g.world.Ships().All() {
		color := core.Fade(s.Alpha, core.ColorBrightMagenta, core.ColorMagenta, core.ColorDarkGray)
		half := s.Width / (2 * s.Radius)
		step := cam.arcStep(s.Radius)
		for a := -half; a <= half; a += step {
			x, y := cam.project(s.Radius, s.Angle+a)
			if y >= hudRows {
				dst.SetColored(x, y, ShipWingChar, color)
			}
		}
		x, y := cam.project(s.Radius, s.Angle)
		if y >= hudRows {
			dst.SetColored(x, y, ShipChar, color)
		}
	}
}

func (g *Game) renderRobots(dst *core.Screen, cam camera) {
	for _, r := range g.world.Robots().All() {
		glyph := RobotChar
		if r.State == sim.RobotAttacking {
			glyph = AttackChar
		}
		color := core.Fade(r.Alpha, core.ColorBrightRed, core.ColorRed, core.ColorDarkGray)
		x, y := cam.project(r.Radius, r.Angle)
		if y >= hudRows {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

func (g *Game) renderBullets(dst *core.Screen, cam camera) {
	for _, b := range g.world.Bullets().All() {
		x, y := cam.projectXY(b.X, b.Y)
		if y >= hudRows {
			dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, cam camera) {
	p := g.world.Player
	x, y := cam.project(p.Radius, p.Angle)
	dst.SetColored(x, y, PlayerChar, core.ColorBrightWhite)

	// Facing marker one cell ahead.
	marker := '›'
	if p.Direction == sim.DirLeft {
		marker = '‹'
	}
	dst.SetColored(x+int(p.Direction.Sign()), y, marker, core.ColorWhite)
}

// renderHUD draws the score, weapon and city health.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.world.Player

	// Score on left
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", p.Score))

	// Weapon in center
	weapon := "Unarmed"
	if w := p.Weapon(); w != nil {
		weapon = w.Kind.String()
		if !w.Ready() {
			weapon += "…"
		}
	}
	if g.strafing {
		weapon += " [strafe]"
	}
	dst.DrawTextCentered(0, weapon)

	// Kills on right
	kills := fmt.Sprintf("Robots: %d Ships: %d", p.RobotsKilled, p.ShipsKilled)
	dst.DrawText(dst.Width()-len(kills)-1, 0, kills)

	// City health on row 1 over a separator
	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}
	var parts []string
	for _, c := range g.world.Cities().All() {
		parts = append(parts, fmt.Sprintf(" %s %d%% ", c.Name, int(math.Ceil(c.Fraction()*100))))
	}
	x := 1
	for i, part := range parts {
		c := g.world.Cities().All()[i]
		dst.DrawTextColored(x, 1, part, cityGlyphs[c.Tier()].color)
		x += len([]rune(part)) + 1
	}
}

// renderOverlay draws the pause and game-over boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.gameOver:
		s := g.world.Stats()
		drawMessageBox(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("Robots: %d  Ships: %d", s.RobotsKilled, s.ShipsKilled),
			fmt.Sprintf("Survived %ds", s.Ticks/max(g.runtime.TickRate, 1)),
			"",
			"R restart  ·  Q quit",
		})
	case g.paused:
		drawMessageBox(dst, []string{"PAUSED", "", "P to resume"})
	}
}

// drawMessageBox draws centered lines inside a cleared box.
func drawMessageBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w := width + 4
	h := len(lines) + 2
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	for i, l := range lines {
		pad := (width - len([]rune(l))) / 2
		dst.DrawText(r.X+2+pad, r.Y+1+i, strings.TrimRight(l, " "))
	}
}
