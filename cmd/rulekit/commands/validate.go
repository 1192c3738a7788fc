package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/async"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
	"github.com/dmitrymomot/rulekit/pkg/validator/schema"
)

const stdinName = "-"

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <target> [file.json ...]",
		Short: "Validate JSON documents against a declared target",
		Long: `Validate one or more JSON documents against a target declared in the
schema file. Each input may hold a single object, an array of objects, or a
stream of objects. Without files, or with "-", documents are read from stdin.

Exit codes:
  0 - every document is valid
  1 - at least one document is invalid, or the input could not be read`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args[1:]
			if len(files) == 0 {
				files = []string{stdinName}
			}
			return a.runValidate(cmd, validator.Target(args[0]), files)
		},
	}
}

// document is one decoded input object with its origin.
type document struct {
	source string
	index  int
	data   map[string]any
}

func (a *app) runValidate(cmd *cobra.Command, target validator.Target, files []string) error {
	ctx := cmd.Context()
	if a.schema == nil {
		return errNoSchema
	}
	if len(a.engine.Store().Bindings(target)) == 0 {
		return fmt.Errorf("%w: %q (declared: %v)", schema.ErrUnknownTarget, target, a.engine.Store().Targets())
	}

	var docs []document
	for _, name := range files {
		decoded, err := readDocuments(name, cmd.InOrStdin())
		if err != nil {
			return err
		}
		docs = append(docs, decoded...)
	}

	var opts []validator.Option
	if a.cfg.FailFast {
		opts = append(opts, validator.WithFailFast())
	}

	futures := make([]*async.Future[validator.Result[map[string]any]], 0, len(docs))
	for _, d := range docs {
		futures = append(futures, a.engine.ValidateTargetAsync(ctx, target, d.data, opts...))
	}

	rep := report{Target: string(target), Valid: true}
	for i, fut := range futures {
		res, err := fut.AwaitContext(ctx)
		if err != nil {
			return err
		}
		entry := newDocumentReport(docs[i], res)
		if !entry.Valid {
			rep.Valid = false
		}
		rep.Documents = append(rep.Documents, entry)
	}

	a.log.DebugContext(ctx, "documents validated",
		logger.Target(string(target)),
		slog.Int("documents", len(docs)),
		slog.Bool("valid", rep.Valid),
	)

	if err := newReporter(cmd.OutOrStdout(), a.jsonOut).validation(rep); err != nil {
		return err
	}
	if !rep.Valid {
		return errValidationFailed
	}
	return nil
}

// readDocuments decodes every JSON value of a file. Objects are documents;
// arrays contribute each of their objects.
func readDocuments(name string, stdin io.Reader) ([]document, error) {
	var r io.Reader
	if name == stdinName {
		r = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	source := name
	if name == stdinName {
		source = "stdin"
	}

	var docs []document
	dec := json.NewDecoder(r)
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: invalid JSON: %w", source, err)
		}

		switch val := v.(type) {
		case map[string]any:
			docs = append(docs, document{source: source, index: len(docs), data: val})
		case []any:
			for _, item := range val {
				obj, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("%s: array item %d is %T, want an object", source, len(docs), item)
				}
				docs = append(docs, document{source: source, index: len(docs), data: obj})
			}
		default:
			return nil, fmt.Errorf("%s: document is %T, want an object", source, v)
		}
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: no documents", source)
	}
	return docs, nil
}
