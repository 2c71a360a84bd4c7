package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"assertkit/introspection"
	"assertkit/presentation"
)

var (
	noPrivate      bool
	representation string
)

var extractCmd = &cobra.Command{
	Use:   "extract <path> [file]",
	Short: "Print the value of a field path for each object of a document",
	Long: `Print the value of a dotted field path for each object of a YAML or JSON
document, one rendered value per line. The document is read from file, or from
stdin when file is omitted or "-". A single object is treated as a list of one.

Examples:
  fieldvalues extract name.first employees.yaml
  curl -s https://api.example.com/users | fieldvalues extract address.city`,
	Args: cobra.RangeArgs(1, 2),
	RunE: extractCommand,
}

func init() {
	extractCmd.Flags().BoolVar(&noPrivate, "no-private", false, "fail on non-exported fields")
	extractCmd.Flags().StringVarP(&representation, "representation", "r", "", "value rendering: standard or spew")
}

func extractCommand(cmd *cobra.Command, args []string) error {
	cfg, cleanup, err := loadConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	if representation != "" {
		cfg.Extraction.Representation = representation
	}

	if noPrivate {
		allow := false
		cfg.Extraction.AllowExtractingPrivateFields = &allow
	}

	opts, err := cfg.ExtractionOptions()
	if err != nil {
		return err
	}

	repr, _ := presentation.ByName(cfg.Extraction.Representation)
	fs := introspection.New(append(opts, introspection.WithLogger(slog.Default()))...)

	in := cmd.InOrStdin()

	if len(args) == 2 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()

		in = f
	}

	return runExtract(in, cmd.OutOrStdout(), args[0], fs, repr)
}

// runExtract decodes the document from in and writes one rendered value per object to out.
func runExtract(in io.Reader, out io.Writer, path string, fs *introspection.FieldSupport, repr presentation.Representation) error {
	fp, err := introspection.ParsePath(path)
	if err != nil {
		return err
	}

	var doc any

	if err := yaml.NewDecoder(in).Decode(&doc); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	targets, ok := doc.([]any)
	if !ok && doc != nil {
		targets = []any{doc}
	}

	slog.Debug("extracting field values",
		"segments", fp.Segments(),
		"nested", fp.IsNested(),
		"targets", len(targets))

	values, err := introspection.FieldValues[any](fs, path, targets)
	if err != nil {
		return err
	}

	for _, v := range values {
		if _, err := fmt.Fprintln(out, repr.ToStringOf(v)); err != nil {
			return err
		}
	}

	return nil
}
