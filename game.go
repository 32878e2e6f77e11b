package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mischieflink/common"
	"github.com/milk9111/mischieflink/level"
	"github.com/milk9111/mischieflink/physics"
	"github.com/milk9111/mischieflink/prefabs"
	"github.com/milk9111/mischieflink/render"
)

const ballRadius = 0.25

type Game struct {
	frames int

	configName string
	debug      bool
	showInfo   bool

	cam     render.Camera
	world   *physics.World
	level   *level.Level
	ui      *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(configName string, debug bool) (*Game, error) {
	g := &Game{
		configName: configName,
		debug:      debug,
		cam:        render.NewCamera(common.ScreenWidth, common.ScreenHeight),
		world:      physics.NewWorld(),
	}
	if err := g.reload(); err != nil {
		return nil, err
	}
	return g, nil
}

// Watch reloads the level whenever a config or script under dirs changes.
func (g *Game) Watch(dirs ...string) error {
	w, err := prefabs.NewWatcher(100*time.Millisecond, dirs...)
	if err != nil {
		return fmt.Errorf("watch prefabs: %w", err)
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) reload() error {
	cfg, err := level.LoadConfig(g.configName)
	if err != nil {
		return err
	}
	lvl := level.Build(cfg)

	g.world.ClearStatic()
	shapes := lvl.Attach(g.world)
	g.level = lvl
	g.ui = NewInfoUI(g)

	log.Printf("Game: loaded %s: %d pieces, %d triangles, %d collider shapes, %d failures",
		g.configName, len(lvl.Pieces), lvl.Triangles(), shapes, len(lvl.Failures))
	return nil
}

func (g *Game) dropBall() {
	x, y := ebiten.CursorPosition()
	g.world.DropBall(g.cam.ToWorld(float64(x), float64(y)), ballRadius)
}

func (g *Game) clearBalls() {
	g.world.Prune(math.Inf(1))
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: %s changed, reloading", c.Name)
			if err := g.reload(); err != nil {
				log.Printf("Game: reload failed, keeping previous level: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Game: watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showInfo = !g.showInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reload(); err != nil {
			log.Printf("Game: reload failed, keeping previous level: %v", err)
		}
	}

	if g.showInfo {
		g.ui.Update()
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dropBall()
	}

	g.world.Step(1.0 / common.TickRate)
	g.world.Prune(g.level.Config.MinY())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.level.Config.Palette
	screen.Fill(pal.Background)

	for _, p := range g.level.Pieces {
		render.DrawFill(screen, p.Shape.Fill, g.cam, p.Color)
	}
	for _, b := range g.world.Balls() {
		render.DrawDisc(screen, b.Position(), b.Radius, g.cam, pal.Text)
	}
	if g.debug {
		for _, p := range g.level.Pieces {
			render.DrawWireframe(screen, p.Shape.Wireframe, g.cam, 1, pal.Wireframe)
		}
		render.DrawSpace(screen, g.world.Space(), g.cam)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  balls: %d  [click] drop  [tab] info  [f3] debug  [r] reload",
		ebiten.ActualFPS(), len(g.world.Balls())))

	if g.showInfo {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
