// Copyright 2026 Tamás Gulácsi.

// Command tab2xlsx builds an xlsx workbook from tab-delimited text
// files, one sheet per file. When the output file already exists, the
// rows are appended after its current content.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/xlsbook"
	"github.com/UNO-SOFT/xlsbook/xlsx"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	fs := flag.NewFlagSet("tab2xlsx", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagEnc := fs.String("charset", xlsbook.EncName, "input charset name")
	flagOut := fs.String("o", "out.xlsx", "output file name")

	app := ffcli.Command{Name: "tab2xlsx", FlagSet: fs,
		ShortUsage: "tab2xlsx [flags] [sheet:]file.txt ...",
		Exec: func(ctx context.Context, args []string) error {
			wb, err := xlsx.Open(*flagOut, xlsbook.WithLogger(logger))
			if err != nil {
				return err
			}
			for i, fn := range args {
				sheetName := fmt.Sprintf("Sheet%d", i+1)
				if i := strings.IndexByte(fn, ':'); i >= 0 {
					sheetName, fn = fn[:i], fn[i+1:]
				} else if fn != "" && fn != "-" {
					sheetName = strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
				}
				if err := addFile(wb, sheetName, *flagEnc, fn); err != nil {
					return err
				}
			}
			return wb.Save(*flagOut)
		},
	}

	if err := app.Parse(os.Args[1:]); err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

func addFile(wb *xlsbook.Workbook, sheetName, encName, fn string) error {
	tr, err := xlsbook.OpenTab(fn, encName)
	if err != nil {
		return err
	}
	defer tr.Close()
	lines, err := tr.ReadAll()
	if err != nil {
		return err
	}
	sheet, err := wb.AddSheet(sheetName)
	if err != nil {
		return err
	}
	// The first row of a fresh sheet is its header.
	if sheet.Fresh() && len(lines) > 0 {
		sheet.AddTitleRow(strings.Split(lines[0], "\t"))
		lines = lines[1:]
	}
	sheet.AppendTabbed(lines)
	slog.Debug("added", "sheet", sheetName, "file", fn, "rows", sheet.Pending())
	return nil
}
