package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"golang.org/x/term"

	"intList/controllers/listDemo"
	"intList/gates/storage"
	"intList/gates/storage/list"
	"intList/gates/storage/naive"
	"intList/pkg"
)

func newApp(out io.Writer) *cli.App {
	flags := []cli.Flag{
		altsrc.NewIntSliceFlag(&cli.IntSliceFlag{
			Name:    "append",
			Aliases: []string{"a"},
			Value:   cli.NewIntSlice(1, 2, 3),
			Usage:   "Values appended to the list, in order",
			EnvVars: []string{"INTLIST_VALUES"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   string(listDemo.FormatText),
			Usage:   "Output format: text or json",
			EnvVars: []string{"INTLIST_FORMAT"},
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "color",
			Usage: "Style the BEFORE/AFTER labels (defaults to on when stdout is a terminal)",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "naive",
			Usage: "Use the list without the empty-list append case (reproduces the absent tail fault)",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "log-file",
			Usage:   "Also append log lines to this file",
			EnvVars: []string{"INTLIST_LOG_FILE"},
		}),
		&cli.StringFlag{
			Name:    "load",
			Aliases: []string{"l"},
			Usage:   "Load flag values from a YAML file",
		},
	}

	return &cli.App{
		Name:      "intList",
		Usage:     "Build a singly linked list of integers and print it before and after appending",
		Version:   "v0.1.0",
		Compiled:  time.Now().UTC(),
		Writer:    out,
		Flags:     flags,
		Before:    altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("load")),
		Action:    runAction(out),
		ErrWriter: os.Stderr,
	}
}

func runAction(out io.Writer) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		format, err := listDemo.ParseFormat(cCtx.String("format"))
		if err != nil {
			pkg.NewWrappedError("runAction()").Specify(err, "listDemo.ParseFormat()").LogError()
			return err
		}

		styled := isTerminal(out)
		if cCtx.IsSet("color") {
			styled = cCtx.Bool("color")
		}

		newStorage := func() storage.Storage { return list.NewList() }
		if cCtx.Bool("naive") {
			newStorage = func() storage.Storage { return naive.NewList() }
		}

		demo := listDemo.NewDemo(newStorage, out,
			listDemo.WithFormat(format),
			listDemo.WithStyle(styled),
			listDemo.WithLogFile(cCtx.String("log-file")),
		)
		if _, err := demo.Run(cCtx.IntSlice("append")); err != nil {
			return errors.Wrap(err, "run")
		}
		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
