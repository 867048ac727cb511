// Command nesdebug is an interactive breakpoint/single-step debugger,
// replacing the teacher's blocking fmt.Scanf-based BIOS() console
// (console/bus.go, console/machine.go) with a bubbletea event loop so
// the UI redraws without blocking on stdin between commands.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"nesdiag/driver"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nesdebug <rom>")
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

	p := tea.NewProgram(newModel(m))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
