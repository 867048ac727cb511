// Command nesdiag runs a headless diagnostic ROM to completion and
// reports the result SRAM convention ($6000 status byte, $6004
// NUL-terminated message). CLI flag handling is grounded on the
// master-g-childhood chr2png tool's gopkg.in/urfave/cli.v2 usage
// (go/chr2png/main.go), the oldest urfave import path the example
// corpus actually uses.
package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"nesdiag/driver"
	"nesdiag/trace"
)

func main() {
	app := &cli.App{
		Name:    "nesdiag",
		Usage:   "run a NES diagnostic ROM headlessly and report its result",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to the iNES ROM to run",
			},
			&cli.IntFlag{
				Name:  "max-steps",
				Usage: "give up after this many executed instructions",
				Value: 50_000_000,
			},
			&cli.StringFlag{
				Name:  "trace",
				Usage: "trace sink: none, text, or dump",
				Value: "none",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("missing required --rom flag", 86)
	}

	f, err := os.Open(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("opening ROM: %v", err), 1)
	}
	defer f.Close()

	m := driver.New()
	if err := m.LoadROM(f); err != nil {
		return cli.Exit(fmt.Sprintf("loading ROM: %v", err), 1)
	}
	m.Reset()

	var sink driver.Sink
	switch c.String("trace") {
	case "text":
		sink = trace.NewTextSink(os.Stdout)
	case "dump":
		sink = trace.NewDumpSink(os.Stdout)
	case "none":
	default:
		return cli.Exit(fmt.Sprintf("unknown --trace value %q", c.String("trace")), 1)
	}

	res := m.Run(c.Context, c.Int("max-steps"), sink)

	if res.TimedOut {
		fmt.Fprintf(os.Stderr, "nesdiag: timed out after %d steps\n", res.StepCount)
		return cli.Exit("", 2)
	}

	fmt.Printf("result: 0x%02X\n", res.Code)
	if res.Message != "" {
		fmt.Printf("message: %s\n", res.Message)
	}

	if res.Code != 0x00 {
		return cli.Exit("", 1)
	}
	return nil
}
