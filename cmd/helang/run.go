package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"

	"helang/interpreter-go/pkg/driver"
	"helang/interpreter-go/pkg/session"
)

var (
	dumpEnvFlag = cli.BoolFlag{
		Name:  "dump-env",
		Usage: "Print the final environment after a successful run",
	}

	runCommand = cli.Command{
		Action:    runAction,
		Name:      "run",
		Usage:     "Run a source file or a manifest target",
		ArgsUsage: "[FILE|TARGET]",
		Flags:     []cli.Flag{dumpEnvFlag},
		Category:  "LANGUAGE COMMANDS",
		Description: `
The run command executes FILE, or the named target of the nearest helang.yml.
Without an argument the manifest's first target runs. Preload units execute
before the main unit in the same environment. The first error stops the run.`,
	}
)

// exitStatus makes run return a specific status after the action has
// already reported the failure.
type exitStatus int

func (s exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(s)) }

func runAction(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() > 1 {
		return fmt.Errorf("run: expected at most one argument, got %d", ctx.NArg())
	}
	units, err := resolveUnits(ctx.Args().First())
	if err != nil {
		return err
	}

	sess, err := session.New(session.Config{Output: ctx.App.Writer, CacheSize: cfg.Parser.CacheSize})
	if err != nil {
		return err
	}
	for _, unit := range units {
		if err := sess.Exec(unit.Name, unit.Text); err != nil {
			printError(ctx.App.ErrWriter, err)
			return exitStatus(1)
		}
	}
	if ctx.Bool(dumpEnvFlag.Name) {
		writeBindings(ctx.App.Writer, sess.Bindings())
	}
	return nil
}

// resolveUnits treats arg as a file path when one exists, and as a target
// name of the nearest manifest otherwise.
func resolveUnits(arg string) ([]*driver.Source, error) {
	loader := driver.NewLoader(driver.NewGitFetcher(driver.DefaultCacheDir()))
	if arg != "" {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			src, err := loader.LoadFile(arg)
			if err != nil {
				return nil, err
			}
			return []*driver.Source{src}, nil
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	path, err := driver.FindManifest(wd)
	if err != nil {
		if errors.Is(err, driver.ErrManifestNotFound) && arg != "" {
			return nil, fmt.Errorf("run: %s is neither a file nor a target (no %s found)", arg, driver.ManifestFileName)
		}
		return nil, err
	}
	manifest, err := driver.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	log.Debug("Loaded manifest", "path", path, "name", manifest.Name)
	plan, err := loader.PlanTarget(manifest, arg)
	if err != nil {
		return nil, err
	}
	return plan.Units(), nil
}
