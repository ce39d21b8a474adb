// Demo program for the selection menu engine
//
// Shows a menu, reports the result, and repeats until the menu is cancelled.
// Try both backends and a slow typing speed:
//
//	demo-menu --backend stream --speed 20ms
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/ui"
)

type demoTerminal interface {
	ui.Terminal
	Close() error
}

func main() {
	var backend, prefix string
	var speed time.Duration

	cmd := &cobra.Command{
		Use:           "demo-menu",
		Short:         "Exercise the selection menu engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := open(backend)
			if err != nil {
				return err
			}
			defer term.Close()

			engine := ui.NewEngine(term, ui.WithLogger(output.NewNopLogger()))
			return runDemo(engine, ui.Options{
				Items:  []string{"Cups", "Pentacles", "Swords", "Wands", "Major Arcana"},
				Marker: prefix,
				Speed:  speed,
			})
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "screen", "screen or stream")
	cmd.Flags().StringVar(&prefix, "prefix", ui.DefaultPrefix, "marker for the hovered row")
	cmd.Flags().DurationVar(&speed, "speed", 0, "typewriter delay per character")

	if err := cmd.Execute(); err != nil {
		output.NewFormatter(os.Stderr).Error("%v", err)
		os.Exit(1)
	}
}

func open(backend string) (demoTerminal, error) {
	if backend == "stream" {
		t, err := ui.OpenStream(os.Stdin, os.Stdout)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	t, err := ui.OpenScreen()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func runDemo(engine *ui.Engine, opts ui.Options) error {
	for picks := 1; ; picks++ {
		prompt := fmt.Sprintf("Pick a suit (%s)", helpLine(engine.Keys()))
		r, err := engine.Run(fmt.Sprintf("Menu Engine Demo #%d", picks), prompt, opts)
		if err != nil {
			return err
		}
		if r.IsCancelled() {
			return engine.Say("Cancelled. Goodbye.", ui.StyleInfo, opts.Speed)
		}

		idx, _ := r.Index()
		if err := engine.Say(fmt.Sprintf("%s -> %s", r, opts.Items[idx-1]), ui.StyleMystical, opts.Speed); err != nil {
			return err
		}
		if err := engine.PressAnyKey(); err != nil {
			return err
		}
	}
}

func helpLine(keys ui.KeyMap) string {
	var parts []string
	for _, b := range keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, ", ")
}
