package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

var (
	version = versioninfo.Short()
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "splayctl",
		Usage:   "exercise, inspect and benchmark splay trees",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"SPLAYCTL_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format (text, json)",
				Value:   "text",
				EnvVars: []string{"SPLAYCTL_LOG_FORMAT"},
			},
		},
	}

	scriptFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "string-keys",
			Usage:   "treat keys as strings instead of base-10 integers",
			EnvVars: []string{"SPLAYCTL_STRING_KEYS"},
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "replay",
			Usage:     "apply an operation script and print a summary",
			ArgsUsage: "<script>",
			Flags:     scriptFlags,
			Action:    runReplay,
		},
		{
			Name:      "dump",
			Usage:     "apply an operation script and print the resulting tree shape",
			ArgsUsage: "<script>",
			Flags:     scriptFlags,
			Action:    runDump,
		},
		{
			Name:      "verify",
			Usage:     "apply an operation script, checking tree invariants after every step",
			ArgsUsage: "<script>",
			Flags:     scriptFlags,
			Action:    runVerify,
		},
		{
			Name:   "bench",
			Usage:  "run a generated workload against an instrumented tree",
			Flags:  benchFlags,
			Action: runBench,
		},
		{
			Name:  "version",
			Usage: "print version",
			Action: func(cctx *cli.Context) error {
				fmt.Println(version)
				return nil
			},
		},
	}

	return app.Run(args)
}
