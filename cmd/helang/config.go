package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"helang/interpreter-go/pkg/driver"
	"helang/interpreter-go/pkg/parser"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "[FILE]",
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values, optionally writing them to FILE.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
	noColorFlag = cli.BoolFlag{
		Name:  "nocolor",
		Usage: "Disable coloured terminal output",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type replConfig struct {
	Prompt      string
	HistoryFile string `toml:",omitempty"`
}

type logConfig struct {
	Verbosity int
	Color     bool
}

type parserConfig struct {
	CacheSize int
}

type helangConfig struct {
	REPL   replConfig
	Log    logConfig
	Parser parserConfig
}

func defaultConfig() helangConfig {
	return helangConfig{
		REPL: replConfig{
			Prompt:      "> ",
			HistoryFile: filepath.Join(driver.HomeDir(), "history"),
		},
		Log: logConfig{
			Verbosity: verbosityFlag.Value,
			Color:     true,
		},
		Parser: parserConfig{
			CacheSize: parser.DefaultCacheSize,
		},
	}
}

func loadConfig(file string, cfg *helangConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads defaults, then the config file, then applies flags.
func makeConfig(ctx *cli.Context) (*helangConfig, error) {
	cfg := defaultConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return nil, err
		}
	}
	if ctx.GlobalIsSet(verbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.GlobalInt(verbosityFlag.Name)
	}
	if ctx.GlobalBool(noColorFlag.Name) {
		cfg.Log.Color = false
	}
	if cfg.Parser.CacheSize <= 0 {
		return nil, fmt.Errorf("config: Parser.CacheSize must be positive, got %d", cfg.Parser.CacheSize)
	}
	return &cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = io.WriteString(dump, string(out))
	return err
}
