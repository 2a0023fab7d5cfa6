package main

import (
	"flag"
	"image/color"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/bounce/sim"
	"github.com/plus3/bounce/sim/assets"
)

const (
	ScreenWidth   = 1280
	ScreenHeight  = 720
	VelocityRange = 50.0
)

type Game struct {
	sim     *sim.Simulation
	sprites *assets.Registry[*ebiten.Image]
	backend *ebitenbackend.EbitenBackend
	chart   *PerformanceChart

	drawOpts ebiten.DrawImageOptions

	// One-entry sprite cache; every body in the demo shares a handle.
	lastSpriteID assets.SpriteID
	lastSprite   *ebiten.Image
}

func main() {
	bodies := flag.Int("bodies", 100000, "The number of bodies to spawn.")
	flag.Parse()

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("bounce", ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	arena, err := sim.NewArena(ScreenWidth, ScreenHeight)
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}

	simulation, err := sim.New(arena, sim.WithSurfaceArena())
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}
	defer simulation.Close()

	sprites := assets.NewRegistry[*ebiten.Image]()
	ball := ebiten.NewImage(4, 4)
	ball.Fill(color.White)
	ballID := sprites.Register(ball)

	log.Printf("Spawning %d bodies...", *bodies)
	if err := simulation.SpawnBodies(*bodies, VelocityRange, ballID); err != nil {
		log.Fatalf("Failed to spawn bodies: %v", err)
	}

	game := &Game{
		sim:     simulation,
		sprites: sprites,
		backend: backend,
		chart:   NewPerformanceChart(),
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Begin the ImGui frame before ticking so overlay windows can render
	// from this frame's stats.
	g.backend.BeginFrame()

	g.sim.Tick(1.0 / 60.0)

	g.chart.Record(g.sim)
	g.chart.Render(g.sim)

	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	store := g.sim.Store()
	xs, ys := store.Positions()
	ids := store.Sprites()

	height := float64(screen.Bounds().Dy())

	for i := range xs {
		sprite := g.lookupSprite(ids[i])
		if sprite == nil {
			continue
		}

		g.drawOpts.GeoM.Reset()
		g.drawOpts.GeoM.Translate(float64(xs[i]), height-float64(ys[i]))
		screen.DrawImage(sprite, &g.drawOpts)
	}

	g.backend.Draw(screen)
}

func (g *Game) lookupSprite(id assets.SpriteID) *ebiten.Image {
	if id == g.lastSpriteID && g.lastSprite != nil {
		return g.lastSprite
	}
	sprite, ok := g.sprites.Lookup(id)
	if !ok {
		return nil
	}
	g.lastSpriteID = id
	g.lastSprite = sprite
	return sprite
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	g.sim.SetSurfaceSize(float32(outsideWidth), float32(outsideHeight))
	return outsideWidth, outsideHeight
}
