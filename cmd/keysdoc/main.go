// Command keysdoc prints the configuration reference generated from the
// key catalog.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-tracker-config/internal/keys/catalog"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
)

func main() {
	log := logger.NewLogger("keysdoc")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("error writing configuration reference")
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("keysdoc", flag.ContinueOnError)
	format := fs.String("format", "markdown", "output format: markdown or json")
	out := fs.String("out", "", "output file, stdout when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	write, err := writerFor(*format)
	if err != nil {
		return err
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *out, err)
		}
		defer f.Close()
		w = f
	}

	return write(w, catalog.Reference(catalog.Registry()))
}

func writerFor(format string) (func(io.Writer, []catalog.Entry) error, error) {
	switch format {
	case "markdown", "md":
		return catalog.WriteMarkdown, nil
	case "json":
		return catalog.WriteJSON, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
