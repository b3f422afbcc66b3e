// coldump converts between binary column dumps and tab-separated text.
package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"

	"github.com/trinhvc/colstore/internal"
	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/dump"
	"github.com/trinhvc/colstore/internal/schema"
)

func main() {
	mode := flag.String("mode", "bin2tsv", "bin2tsv or tsv2bin")
	in := flag.String("in", "", "input file")
	out := flag.String("out", "", "output file")
	schemaDesc := flag.String("schema", "", `column description for tsv2bin, e.g. "id UInt64"`)
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	granularity := 8192
	level := slog.LevelInfo
	if *configPath != "" {
		cfg, err := internal.LoadConfig(*configPath)
		if err != nil {
			slog.Error("load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		if cfg.Dump.Granularity > 0 {
			granularity = cfg.Dump.Granularity
		}
		if cfg.Log.Level == "debug" {
			level = slog.LevelDebug
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *in == "" || *out == "" {
		slog.Error("both -in and -out are required")
		os.Exit(2)
	}

	var err error
	switch *mode {
	case "bin2tsv":
		err = binToTSV(*in, *out)
	case "tsv2bin":
		err = tsvToBin(*in, *out, *schemaDesc, granularity)
	default:
		slog.Error("unknown mode", "mode", *mode)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("conversion failed", "mode", *mode, "err", err)
		os.Exit(1)
	}
}

func binToTSV(in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	name, dt, col, err := dump.ReadColumn(src)
	if err != nil {
		return err
	}
	slog.Debug("read binary dump", "column", name, "type", dt.Name(), "rows", col.Len())

	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	defer dst.Close()

	w := bufio.NewWriter(dst)
	s := schema.Schema{Cols: []schema.Column{{Name: name, Type: dt}}}
	if err := dump.WriteTabSeparated(w, s, []column.Column{col}); err != nil {
		return err
	}
	return w.Flush()
}

func tsvToBin(in, out, schemaDesc string, granularity int) error {
	s, err := schema.Parse(schemaDesc)
	if err != nil {
		return err
	}
	if s.NumCols() != 1 {
		slog.Error("tsv2bin expects exactly one column", "schema", s.String())
		os.Exit(2)
	}

	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	cols, err := dump.ReadTabSeparated(bufio.NewReader(src), s)
	if err != nil {
		return err
	}
	slog.Debug("read tsv", "rows", cols[0].Len())

	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	defer dst.Close()

	w := bufio.NewWriter(dst)
	ix, err := dump.WriteColumnIndexed(w, s.Cols[0].Name, s.Cols[0].Type, cols[0], granularity)
	if err != nil {
		return err
	}
	slog.Debug("wrote binary dump", "rows", cols[0].Len(), "marks", len(ix.Marks()))
	return w.Flush()
}
