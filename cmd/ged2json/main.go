// Command ged2json converts a GEDCOM file to structured JSON.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/pflag"

	"github.com/dgallion1/gedgest/internal/gedcom"
	"github.com/dgallion1/gedgest/internal/project"
)

func main() {
	var (
		output  = pflag.StringP("output", "o", "", "write JSON to this file instead of stdout")
		kinds   = pflag.StringSlice("kinds", []string{"INDI", "FAM", "HEAD"}, "record kinds to project")
		inline  = pflag.Bool("inline-pointers", false, "render pointer targets inline instead of as ids")
		compact = pflag.Bool("compact", false, "emit compact JSON instead of indented")
		quiet   = pflag.BoolP("quiet", "q", false, "suppress warnings")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE.ged\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(pflag.Arg(0), *output, *kinds, *inline, *compact, *quiet, log); err != nil {
		log.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(path, output string, kinds []string, inline, compact, quiet bool, log *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := gedcom.Parse(f)
	if err != nil {
		return err
	}

	if !quiet {
		for _, warn := range doc.Warnings {
			log.Warn(warn, "file", path)
		}
	}

	for i, k := range kinds {
		kinds[i] = strings.ToUpper(strings.TrimSpace(k))
	}
	projected := project.Project(doc, project.Options{
		Kinds:          kinds,
		InlinePointers: inline,
	})

	var data []byte
	if compact {
		data, err = json.Marshal(projected)
	} else {
		data, err = json.MarshalIndent(projected, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := atomic.WriteFile(output, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
