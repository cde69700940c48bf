package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	printer "github.com/zii-bee/os-multithreadedprinter"
	"github.com/zii-bee/os-multithreadedprinter/core"
)

func main() {
	app := &cli.App{
		Name:  "paragraphdemo",
		Usage: "print a paragraph with a ring of synchronized workers, then again without synchronization",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"n"},
				Value:   printer.DefaultWorkerCount,
				Usage:   "number of worker goroutines",
			},
			&cli.StringFlag{
				Name:  "text",
				Value: printer.DefaultParagraph,
				Usage: "source text to tokenize and print",
			},
			&cli.DurationFlag{
				Name:  "min-delay",
				Value: core.DefaultMinDelay,
				Usage: "lower bound of the random per-print delay",
			},
			&cli.DurationFlag{
				Name:  "max-delay",
				Value: core.DefaultMaxDelay,
				Usage: "upper bound of the random per-print delay",
			},
			&cli.DurationFlag{
				Name:  "pause",
				Value: time.Second,
				Usage: "pause between the two runs",
			},
			&cli.BoolFlag{
				Name:  "sync-only",
				Usage: "run only the synchronized pass",
			},
			&cli.BoolFlag{
				Name:  "chaos-only",
				Usage: "run only the unsynchronized pass",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "paragraphdemo:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	delay, err := core.NewRandomDelayGenerator(c.Duration("min-delay"), c.Duration("max-delay"))
	if err != nil {
		return err
	}

	orch, err := printer.NewOrchestrator(c.Int("workers"), &printer.Config{
		Delay: delay,
		// Keep the demonstration output clean of lifecycle logs.
		Logger: core.NewNoOpLogger(),
	})
	if err != nil {
		return err
	}

	tokens := core.Tokenize(c.String("text"))
	ctx := c.Context

	runSync := !c.Bool("chaos-only")
	runChaos := !c.Bool("sync-only")

	if runSync {
		fmt.Println("\n=== Normal Mode (With Ring Synchronization) ===")
		if err := orch.Run(ctx, tokens, core.Synchronized); err != nil {
			return err
		}
	}

	if runSync && runChaos {
		time.Sleep(c.Duration("pause"))
	}

	if runChaos {
		fmt.Println("\n=== Chaos Mode (Without Synchronization) ===")
		if err := orch.Run(ctx, tokens, core.Unsynchronized); err != nil {
			return err
		}
	}

	fmt.Println()
	return nil
}
