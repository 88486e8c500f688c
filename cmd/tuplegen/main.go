// The tuplegen command generates the fixed-arity sources
// of the tuple packages. It's invoked by go generate.
package main

import (
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"

	"github.com/rogpeppe/generictuple/internal/tuplegen"
)

var version = "(devel)"

func setupLogger(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logConsole := os.Stderr

	handlers := []slog.Handler{
		tint.NewHandler(logConsole, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
			NoColor:    !isatty.IsTerminal(logConsole.Fd()),
		}),
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Panic", "err", err, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var verbose bool
	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	kinds := lo.Map(tuplegen.Kinds(), func(k tuplegen.Kind, _ int) string {
		return string(k)
	})
	return &cli.App{
		Name:                   "tuplegen",
		Usage:                  "generate fixed-arity tuple sources",
		UsageText:              "tuplegen [options] (" + strings.Join(kinds, "|") + ")",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "verbose output (includes debug)",
				Destination: &verbose,
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "size of the largest tuple; for tuplefunc and lotuple, at most the size the package at --tuple-path was generated with",
				Value: tuplegen.DefaultMaxArity,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file (stdout if empty)",
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "name of the generated package (defaults to the kind)",
			},
			&cli.StringFlag{
				Name:  "tuple-path",
				Usage: "import path of the tuple package",
				Value: tuplegen.DefaultTuplePath,
			},
		},
		Before: func(_ *cli.Context) error {
			setupLogger(verbose)
			return nil
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 1 {
				return errors.Errorf("expected exactly one kind argument, one of %s", strings.Join(kinds, ", "))
			}
			return errors.Wrapf(generate(generateParams{
				Params: tuplegen.Params{
					Kind:      tuplegen.Kind(cCtx.Args().First()),
					Package:   cCtx.String("package"),
					MaxArity:  cCtx.Int("max"),
					TuplePath: cCtx.String("tuple-path"),
				},
				Output: cCtx.String("output"),
			}), "failed to generate %s", cCtx.Args().First())
		},
	}
}

type generateParams struct {
	tuplegen.Params
	Output string
}

func generate(p generateParams) error {
	src, err := tuplegen.Generate(p.Params)
	if err != nil {
		return err
	}
	if p.Output == "" {
		_, err := os.Stdout.Write(src)
		return errors.Wrapf(err, "writing to stdout")
	}
	if err := os.WriteFile(p.Output, src, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", p.Output)
	}
	slog.Debug("Generated", "kind", p.Kind, "max", p.MaxArity, "file", p.Output, "bytes", len(src))
	return nil
}
