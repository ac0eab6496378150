//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"drainage/internal/core"
	"drainage/internal/drainage"
	"drainage/internal/logging"
	"drainage/internal/render"
	"drainage/internal/tile"
	"drainage/internal/ui"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

// Game adapts a tile loader to the ebiten.Game interface.
type Game struct {
	loader   *tile.Loader
	cfg      drainage.Config
	painters map[core.Coord]*render.TilePainter
	overlay  *ui.Overlay
	hud      *ui.HUD
	throttle *core.Throttle
	log      *log.Logger

	center    core.Coord
	requested core.Coord
	dirty     bool

	scale         int
	width, height int

	mu      sync.Mutex
	pending *drainage.Config
}

// New constructs a Game around loader. The loader must not have been
// started yet.
func New(loader *tile.Loader, scale, width, height int, logger *log.Logger) *Game {
	g := &Game{
		loader:   loader,
		cfg:      loader.Generator().Config(),
		painters: make(map[core.Coord]*render.TilePainter),
		overlay:  ui.NewOverlay(),
		throttle: core.NewThrottle(10),
		log:      logging.OrDiscard(logger),
		dirty:    true,
		scale:    scale,
		width:    width,
		height:   height,
	}
	g.hud = ui.NewHUD(g, hudWidth)
	loader.Start()
	return g
}

// Close stops the background loader.
func (g *Game) Close() error {
	return g.loader.Close()
}

// Parameters implements ui.Tuner.
func (g *Game) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

// Controls implements ui.Tuner.
func (g *Game) Controls() []core.ParameterControl { return g.cfg.Controls() }

// SetParameter implements ui.Tuner. It regenerates every tile on success.
func (g *Game) SetParameter(key string, value float64) bool {
	next, err := g.cfg.WithParameter(key, value)
	if err != nil {
		g.log.Printf("set %s: %v", key, err)
		return false
	}
	return g.apply(next)
}

// SetConfig queues a configuration for the next Update. It is safe to
// call from other goroutines.
func (g *Game) SetConfig(cfg drainage.Config) {
	g.mu.Lock()
	g.pending = &cfg
	g.mu.Unlock()
}

func (g *Game) apply(cfg drainage.Config) bool {
	gen, err := tile.NewGenerator(cfg)
	if err != nil {
		g.log.Printf("rejected config: %v", err)
		return false
	}
	g.cfg = cfg
	g.loader.SetGenerator(gen)
	g.throttle.Reset()
	for c, p := range g.painters {
		p.Dispose()
		delete(g.painters, c)
	}
	g.dirty = true
	return true
}

// Update handles input, requests tiles around the camera and uploads the
// tiles the loader finished.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleMovement()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.apply(g.cfg)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		cfg := g.cfg
		cfg.Seed = time.Now().UnixNano()
		g.apply(cfg)
	}

	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()
	if pending != nil {
		g.apply(*pending)
	}

	g.overlay.Update()
	g.hud.Update(g.width)

	if (g.dirty || g.center != g.requested) && g.throttle.Ready(time.Now()) {
		g.loader.Request(g.center)
		g.requested = g.center
		g.dirty = false
	}
	g.drainReady()
	g.updateStatus()
	return nil
}

func (g *Game) handleMovement() {
	switch {
	case justPressed(ebiten.KeyArrowLeft, ebiten.KeyA):
		g.center = g.center.Add(-1, 0)
	case justPressed(ebiten.KeyArrowRight, ebiten.KeyD):
		g.center = g.center.Add(1, 0)
	case justPressed(ebiten.KeyArrowUp, ebiten.KeyW):
		g.center = g.center.Add(0, -1)
	case justPressed(ebiten.KeyArrowDown, ebiten.KeyS):
		g.center = g.center.Add(0, 1)
	}
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) drainReady() {
	for {
		select {
		case t := <-g.loader.Ready():
			// Tiles from a replaced generator are no longer registered.
			if cur, ok := g.loader.Tile(t.Coord); !ok || cur != t {
				continue
			}
			p, ok := g.painters[t.Coord]
			if !ok || p.Resolution() != t.Resolution {
				if ok {
					p.Dispose()
				}
				p = render.NewTilePainter(t.Resolution)
				g.painters[t.Coord] = p
			}
			p.Paint(t)
		default:
			return
		}
	}
}

func (g *Game) updateStatus() {
	tiles := g.loader.Loaded()
	var sinks int
	var elapsed time.Duration
	for _, t := range tiles {
		sinks += len(t.World)
		elapsed += t.Elapsed
	}
	var mean time.Duration
	if len(tiles) > 0 {
		mean = elapsed / time.Duration(len(tiles))
	}
	g.hud.SetStatus(
		fmt.Sprintf("tile %s", g.center),
		fmt.Sprintf("loaded %s of %s tiles", humanize.Comma(int64(len(tiles))), humanize.Comma(int64(g.loader.Len()))),
		fmt.Sprintf("world sinks %s", humanize.Comma(int64(sinks))),
		fmt.Sprintf("mean gen %s", mean.Round(time.Microsecond)),
		"1 sinks 2 world 3 links 4 majors",
		"R regen  N reseed  Q quit",
	)
}

// Draw renders the loaded tiles and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 12, A: 255})
	view := ui.Centered(g.center, g.cfg.Resolution, float64(g.scale), g.width, g.height)
	tiles := g.loader.Loaded()
	for _, t := range tiles {
		p, ok := g.painters[t.Coord]
		if !ok {
			continue
		}
		x, y := view.TileOrigin(t.Coord)
		p.Draw(screen, x, y, float64(g.scale), g.overlay.ShowSinks())
	}
	g.overlay.Draw(screen, tiles, view)
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hud.Width(), g.height
}
