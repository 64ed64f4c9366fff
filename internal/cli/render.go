package cli

import (
	"cmp"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidgen/pkg/errors"
	"github.com/matzehuels/mermaidgen/pkg/graph"
	"github.com/matzehuels/mermaidgen/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; empty means stdout
	refresh bool   // bypass the cache and recompile
	noCache bool   // disable the cache entirely
}

// newRenderCmd creates the render command for compiling documents.
//
// The command reads a JSON document file, compiles it to Mermaid text,
// and writes the result to stdout or to --output. Results are cached by
// document content hash; --refresh forces recompilation.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Compile a diagram document to Mermaid text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and recompile")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if opts.noCache && opts.refresh {
		printWarning("--refresh has no effect with --no-cache")
	}

	doc, err := loadDocument(cfg, path)
	if err != nil {
		return err
	}

	runner, err := newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}

	prog := newProgress(logger)
	result, err := runner.Render(ctx, doc, pipeline.Options{Refresh: opts.refresh})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compiled %s document", doc.Dialect))

	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Text)
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(result.Text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printSuccess("Rendered %s", path)
	printFile(opts.output)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Cached)
	return nil
}

// loadDocument reads a document file and applies configured defaults to
// fields the document leaves empty.
func loadDocument(cfg *Config, path string) (graph.Document, error) {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return graph.Document{}, err
	}

	doc, err := graph.ReadDocumentFile(path)
	if err != nil {
		return graph.Document{}, err
	}

	doc.Direction = cmp.Or(doc.Direction, cfg.Defaults.Direction)
	doc.Theme = cmp.Or(doc.Theme, cfg.Defaults.Theme)
	doc.Look = cmp.Or(doc.Look, cfg.Defaults.Look)
	doc.Layout = cmp.Or(doc.Layout, cfg.Defaults.Layout)
	return doc, nil
}

// newCheckCmd creates the check command for validating documents.
//
// The command compiles the document but discards the output, reporting
// validation problems with their machine-readable error codes.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate diagram documents without writing output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())

			failed := 0
			for _, path := range args {
				if err := checkDocument(cfg, path); err != nil {
					classified := errors.Classify(err)
					printError("%s: %s", path, classified.Message)
					printKeyValue("code", string(classified.Code))
					failed++
					continue
				}
				printSuccess("%s", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
			}
			return nil
		},
	}
}

func checkDocument(cfg *Config, path string) error {
	doc, err := loadDocument(cfg, path)
	if err != nil {
		return err
	}
	_, err = graph.Compile(doc)
	return err
}

// newDialectsCmd creates the dialects command.
func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported diagram dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(graph.Dialects(), "\n"))
			return nil
		},
	}
}
