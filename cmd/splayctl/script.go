package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/cbehopkins/splaytree/internal/verify"
	"github.com/cbehopkins/splaytree/internal/workload"
	"github.com/cbehopkins/splaytree/splay"
)

type scriptMode int

const (
	modeReplay scriptMode = iota
	modeDump
	modeVerify
)

func runReplay(cctx *cli.Context) error { return runScript(cctx, modeReplay) }
func runDump(cctx *cli.Context) error   { return runScript(cctx, modeDump) }
func runVerify(cctx *cli.Context) error { return runScript(cctx, modeVerify) }

func runScript(cctx *cli.Context, mode scriptMode) error {
	logger, err := configLogger(cctx)
	if err != nil {
		return err
	}

	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide a script path as an argument")
	}
	ops, err := loadScript(path)
	if err != nil {
		return err
	}
	logger = logger.With("script", path)
	logger.Info("loaded script", "ops", len(ops))

	if cctx.Bool("string-keys") {
		return applyScript(splay.New[string, string](), ops, workload.ParseStringKey, logger, mode)
	}
	return applyScript(splay.New[int64, string](), ops, workload.ParseInt64Key, logger, mode)
}

func loadScript(path string) ([]workload.Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	ops, err := workload.ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ops, nil
}

func applyScript[K any](tree *splay.Tree[K, string], ops []workload.Op, parse workload.KeyParser[K], logger *slog.Logger, mode scriptMode) error {
	var check workload.CheckFunc
	if mode == modeVerify {
		check = func() error { return verify.Tree(tree) }
	}

	res, err := workload.Run[K](tree, ops, parse, logger, check)
	if err != nil {
		return err
	}
	printSummary(res)

	switch mode {
	case modeDump:
		fmt.Println(renderTree(tree))
	case modeVerify:
		logger.Info("all invariants held", "ops", len(ops), "size", res.FinalSize, "depth", verify.Depth(tree))
	}
	return nil
}

func printSummary(res workload.Result) {
	kinds := make([]string, 0, len(res.Counts))
	for k := range res.Counts {
		kinds = append(kinds, string(k))
	}
	slices.Sort(kinds)

	for _, k := range kinds {
		fmt.Printf("%-8s %d\n", k, res.Counts[workload.OpKind(k)])
	}
	fmt.Printf("applied  %d\n", res.Applied)
	fmt.Printf("no-ops   %d\n", res.NoOps)
	fmt.Printf("size     %d\n", res.FinalSize)
}
