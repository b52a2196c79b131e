package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xiam/parsec/ast"
	"github.com/xiam/parsec/parser"
)

type fileResult struct {
	name string
	size int
	root *ast.Node
	err  error
}

func newParseCommand(conf *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse each file and write its tree",
		Long: `
Parses every file concurrently and writes the trees in the order the files
were given. Use "-" to read from standard input.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, conf, args)
		},
	}

	cmd.Flags().String("format", "sexpr", "Output format, one of [sexpr, tree, yaml, msgpack].")
	cmd.Flags().Bool("auto-close", false, "Close open vectors at the end of the input.")
	cmd.Flags().Int("jobs", runtime.NumCPU(), "Number of files parsed at the same time.")

	return cmd
}

func runParse(cmd *cobra.Command, conf *viper.Viper, args []string) error {
	format := conf.GetString("format")
	if !isFormat(format) {
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	logger, err := newLogger(conf)
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := parser.ParserOptions{
		AutoCloseOnEOF: conf.GetBool("auto-close"),
	}
	if conf.GetBool("verbose") {
		opts.Logger = logger.Named("grammar")
	}

	jobs := conf.GetInt("jobs")
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	results := make([]fileResult, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, name := range args {
		i, name := i, name
		in, err := readInput(cmd, name)
		if err != nil {
			results[i] = fileResult{name: name, err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = parseFile(name, in, opts)
			logger.Debug("parsed file",
				zap.String("file", name),
				zap.Int("bytes", len(in)),
				zap.Error(results[i].err),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return report(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, results)
}

func parseFile(name string, in []byte, opts parser.ParserOptions) fileResult {
	p := parser.NewParser(bytes.NewReader(in))
	p.SetOptions(opts)
	if err := p.Parse(); err != nil {
		return fileResult{name: name, size: len(in), err: err}
	}
	return fileResult{name: name, size: len(in), root: p.Root()}
}

// report writes the trees to out and a summary to errOut. It fails when any
// of the files could not be parsed.
func report(out, errOut io.Writer, format string, results []fileResult) error {
	errColor := color.New(color.FgRed)

	var failed, size, values int
	for _, res := range results {
		if res.err != nil {
			failed++
			errColor.Fprintf(errOut, "%s: %v\n", res.name, res.err)
			continue
		}
		if err := render(out, format, res.root); err != nil {
			return errors.Wrapf(err, "writing %s", res.name)
		}
		size += res.size
		values += countValues(res.root)
	}

	fmt.Fprintf(errOut, "parsed %d of %d files (%s, %s values)\n",
		len(results)-failed, len(results),
		humanize.Bytes(uint64(size)), humanize.Comma(int64(values)))

	if failed > 0 {
		return errors.Errorf("%d of %d files could not be parsed", failed, len(results))
	}
	return nil
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		in, err := io.ReadAll(cmd.InOrStdin())
		return in, errors.Wrap(err, "reading standard input")
	}
	in, err := os.ReadFile(name)
	return in, errors.Wrapf(err, "reading %s", name)
}
