package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validation/pkg/binder"
	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/shape"
)

const stdinName = "-"

func newValidateCmd(a *app) *cobra.Command {
	var (
		shapeName string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate documents against a built-in shape",
		Long: `Validate JSON or YAML documents against one of the built-in shapes.
Run "shapecheck shapes" to list them.

Files ending in .json are decoded as JSON, anything else as YAML. With no
files, or with "-", the document is read from stdin. The exit status is 1
when any document is invalid or cannot be read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shapeName == "" {
				shapeName = a.cfg.Shape
			}
			if format == "" {
				format = a.cfg.Format
			}
			if shapeName == "" {
				return errors.New("no shape: pass --shape or set SHAPECHECK_SHAPE")
			}
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q: must be %q or %q", format, formatText, formatJSON)
			}
			if len(args) == 0 {
				args = []string{stdinName}
			}
			return a.validate(cmd, shapeName, format, args)
		},
	}

	cmd.Flags().StringVarP(&shapeName, "shape", "s", "", "Name of the built-in shape")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: text or json")
	return cmd
}

func (a *app) validate(cmd *cobra.Command, shapeName, format string, files []string) error {
	b, err := lookupBuiltin(shapeName)
	if err != nil {
		return err
	}
	a.log.Debug("validating documents", slog.String("shape", shapeName), slog.Int("documents", len(files)))

	reports := make([]report, 0, len(files))
	for _, file := range files {
		rep := check(b.New, file, cmd.InOrStdin())
		if rep.Valid {
			a.log.Debug("document valid", logger.Path(file))
		} else {
			a.log.Debug("document invalid", logger.Path(file), logger.InvalidFields(rep.Invalid))
		}
		reports = append(reports, rep)
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	} else {
		for _, rep := range reports {
			rep.print(out)
		}
	}

	for _, rep := range reports {
		if !rep.Valid {
			return errInvalid
		}
	}
	return nil
}

// check runs one document through a fresh tree from factory.
func check(factory func() shape.Node, file string, stdin io.Reader) report {
	rep := report{File: file}
	doc, err := readDocument(file, stdin)
	if err != nil {
		rep.Error = err.Error()
		return rep
	}

	res := factory().ValidateSafe(doc)
	if !res.Valid() {
		rep.Invalid = res.Invalid
		return rep
	}
	rep.Valid = true
	return rep
}

func readDocument(file string, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)
	if file == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		// An empty document is an absent value, which only optional roots accept.
		return shape.Undefined, nil
	}

	if strings.EqualFold(filepath.Ext(file), ".json") {
		return binder.DecodeJSON(data)
	}
	return binder.DecodeYAML(data)
}
