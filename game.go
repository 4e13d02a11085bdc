package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/actionmap/common"
	"github.com/milk9111/actionmap/device"
	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
	"github.com/milk9111/actionmap/ecs/entity"
	"github.com/milk9111/actionmap/ecs/system"
	"github.com/milk9111/actionmap/input"
	"github.com/milk9111/actionmap/prefabs"
	"golang.design/x/clipboard"
)

var (
	backgroundColor = color.NRGBA{R: 0x1b, G: 0x1e, B: 0x26, A: 0xff}
	floorColor      = color.NRGBA{R: 0x5c, G: 0x63, B: 0x70, A: 0xff}
	playerColor     = color.NRGBA{R: 0xe0, G: 0x8a, B: 0x3c, A: 0xff}
	aimColor        = color.NRGBA{R: 0x6c, G: 0xc4, B: 0xe8, A: 0xff}
)

type Options struct {
	Profile string
	Watch   bool
	Debug   bool
}

type Game struct {
	world    *ecs.World
	always   *ecs.Scheduler
	gameplay *ecs.Scheduler

	inputSys *system.InputSystem
	pause    *system.PauseSystem
	bus      input.Bus

	profile *prefabs.Profile
	watcher *prefabs.Watcher
	player  ecs.Entity

	pauseUI   *ebitenui.UI
	pauseFade float32

	clipboardReady bool
	quit           bool
	debug          bool
}

func NewGame(opts Options) (*Game, error) {
	profile, err := prefabs.LoadProfile(opts.Profile)
	if err != nil {
		return nil, err
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:   ecs.NewWorld(),
		profile: profile,
		debug:   opts.Debug,
	}
	if err := profile.Apply(g.world.Mapper()); err != nil {
		return nil, err
	}

	g.player, err = entity.NewPlayer(g.world, spec)
	if err != nil {
		return nil, err
	}

	scripts := system.NewActionScriptSystem()
	for _, name := range profile.Scripts {
		if err := scripts.Load(name); err != nil {
			log.Printf("game: %v", err)
		}
	}

	g.inputSys = system.NewInputSystem(device.NewEbiten(), &g.bus)
	g.pause = system.NewPauseSystem(func(paused bool) {
		if paused {
			g.pauseUI = NewPauseUI(g)
		}
	})

	g.always = ecs.NewScheduler()
	if opts.Watch {
		g.watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: watch prefabs: %v", err)
		} else {
			reload := system.NewProfileReloadSystem(g.watcher.Events, opts.Profile, scripts)
			reload.OnReload(func(p *prefabs.Profile) {
				g.profile = p
				if g.pause.Paused() {
					g.pauseUI = NewPauseUI(g)
				}
			})
			g.always.Add(reload)
		}
	}
	g.always.Add(g.inputSys)
	g.always.Add(g.pause)
	g.always.Add(scripts)
	if opts.Debug {
		g.always.Add(system.NewEventLogSystem(false))
	}
	g.gameplay = ecs.NewScheduler(
		system.NewPlayerControllerSystem(),
		system.NewAimSystem(),
		system.NewPhysicsSystem(common.BaseWidth, common.BaseHeight),
	)

	g.bus.On(input.EventStarted, system.ActionQuit, func(input.Event) { g.quit = true })
	g.bus.On(input.EventStarted, system.ActionCopyActions, func(input.Event) { g.copyActions() })

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	return g, nil
}

func (g *Game) Update() error {
	g.always.Update(g.world)

	if g.pause.Paused() {
		g.pauseFade = common.Lerp(g.pauseFade, 1, 0.2)
		if g.pauseUI != nil {
			g.pauseUI.Update()
		}
	} else {
		g.pauseFade = 0
		g.gameplay.Update(g.world)
	}

	if g.quit {
		g.Close()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	vector.DrawFilledRect(screen, 0, common.BaseHeight-4, common.BaseWidth, 4, floorColor, false)

	transform, hasTransform := ecs.Get(g.world, g.player, component.TransformComponent)
	body, hasBody := ecs.Get(g.world, g.player, component.PhysicsBodyComponent)
	if hasTransform && hasBody {
		x := float32(transform.X - body.Width/2)
		y := float32(transform.Y - body.Height/2)
		vector.DrawFilledRect(screen, x, y, float32(body.Width), float32(body.Height), playerColor, false)

		if aim, ok := ecs.Get(g.world, g.player, component.AimTargetComponent); ok && aim.Active {
			cx := float32(transform.X + aim.OffsetX)
			cy := float32(transform.Y + aim.OffsetY)
			vector.StrokeCircle(screen, cx, cy, 8, 2, aimColor, true)
		}
	}

	ebitenutil.DebugPrint(screen, g.hudText())

	if g.pause.Paused() && g.pauseUI != nil {
		shade := color.NRGBA{A: uint8(120 * g.pauseFade)}
		vector.DrawFilledRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, shade, false)
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the profile watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) hudText() string {
	m := g.world.Mapper()
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  frame: %d  profile: %s\n", ebiten.ActualFPS(), m.Frame(), g.profile.Name)
	for _, action := range m.Actions() {
		v, _ := m.Lookup(action)
		if v == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-12s %6.2f %s\n", action, v, m.Phase(action))
	}
	if g.debug {
		b.WriteString("\n")
		b.WriteString(g.actionTable())
	}
	return b.String()
}

// actionTable renders every bound action with its sources and current value.
func (g *Game) actionTable() string {
	m := g.world.Mapper()
	var b strings.Builder
	for _, action := range m.BoundActions() {
		fmt.Fprintf(&b, "%s\t%g\t%s\n", action, m.Value(action), strings.Join(m.Sources(action), ", "))
	}
	return b.String()
}

func (g *Game) copyActions() {
	if !g.clipboardReady {
		log.Printf("game: copy_actions: clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.actionTable()))
	log.Printf("game: copied %d actions to clipboard", len(g.world.Mapper().BoundActions()))
}
