// Command nesview is a text-only live HUD over a running diagnostic
// Machine: register file, the most recently decoded instruction and
// the $6000 status byte, redrawn every ebiten tick. It deliberately
// does not implement PPU framebuffer rendering - spec.md §6 Non-goals
// excludes a real PPU, so there are no tiles or sprites to draw. This
// keeps ebiten (the teacher's one real GUI dependency, console/bus.go)
// wired to a legitimate component instead of dropping it outright.
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"nesdiag/driver"
)

const (
	screenWidth  = 420
	screenHeight = 240

	// stepsPerFrame caps how much emulated time advances per drawn
	// frame. The HUD shows only the last of these instructions, not a
	// log of them.
	stepsPerFrame = 200
)

type game struct {
	machine *driver.Machine
	status  string
}

func (g *game) Update() error {
	for i := 0; i < stepsPerFrame; i++ {
		tr := g.machine.Step()
		g.status = tr.String()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := g.machine.CPU
	result := g.machine.Read(0x6000)
	msg := fmt.Sprintf(
		"nesview\n\nA:%02X X:%02X Y:%02X PC:%04X SP:%02X P:%08b\n\n%s\n\n$6000: %02X",
		c.A, c.X, c.Y, c.PC, c.SP, c.Status, g.status, result,
	)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nesview <rom>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	m := driver.New()
	if err := m.LoadROM(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	m.Reset()

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("nesview")

	if err := ebiten.RunGame(&game{machine: m}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
