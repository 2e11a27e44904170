package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/config"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/render"
	"github.com/ukaji3/exchart-go/pkg/exchart/resolve"
)

var errQuit = errors.New("quit")

// browser is the interactive entity selector. Each entered value re-runs
// the pipeline from scratch against the loaded workbook.
type browser struct {
	wb     *models.Workbook
	cfg    *config.Config
	opts   exchart.Options
	logger *slog.Logger
	rl     *readline.Instance
	values *valueCompleter
	out    io.Writer
}

// valueCompleter completes distinct values of the filter column.
type valueCompleter struct {
	values []string
}

var _ readline.AutoCompleter = (*valueCompleter)(nil)

// Do implements readline.AutoCompleter.
func (c *valueCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	prefix := string(line[:pos])
	if strings.HasPrefix(prefix, "/") {
		return nil, 0
	}

	var out [][]rune
	for _, v := range c.values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, []rune(v[len(prefix):]))
		}
	}
	return out, len([]rune(prefix))
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	wb, err := exchart.Load(args[0], logger)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	opts, err := runOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}
	col, err := filterColumn(wb)
	if err != nil {
		return err
	}

	completer := &valueCompleter{}
	if primary, ok := wb.Primary(); ok {
		for _, v := range resolve.DistinctValues(primary.Table, col) {
			completer.values = append(completer.values, models.FormatValue(v))
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mexchart>\033[0m ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return err
	}

	b := &browser{wb: wb, cfg: cfg, opts: opts, logger: logger, rl: rl, values: completer, out: os.Stdout}
	return b.run(cmd.Context())
}

func (b *browser) run(ctx context.Context) error {
	defer b.rl.Close()

	fmt.Fprintln(b.out, "Type a value to chart its entity. Empty input charts the smallest value.")
	fmt.Fprintln(b.out, "Commands: /values, /where <expr>, /invert, /help, /quit")
	fmt.Fprintln(b.out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := b.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "/") {
			if err := b.handleCommand(ctx, line); err != nil {
				if err == errQuit {
					return nil
				}
				fmt.Fprintf(b.out, "Error: %v\n", err)
			}
			continue
		}

		if err := b.show(ctx, line, ""); err != nil {
			fmt.Fprintf(b.out, "Error: %v\n", err)
		}
	}
}

func (b *browser) handleCommand(ctx context.Context, line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "/quit", "/exit", "/q":
		return errQuit
	case "/help", "/h":
		fmt.Fprintln(b.out, "  <value>        chart the entity selected by value")
		fmt.Fprintln(b.out, "  /values        list selectable values")
		fmt.Fprintln(b.out, "  /where <expr>  chart the first row matching expr")
		fmt.Fprintln(b.out, "  /invert        toggle radar inversion")
		fmt.Fprintln(b.out, "  /quit          exit")
	case "/values":
		for _, v := range b.values.values {
			fmt.Fprintln(b.out, "  "+v)
		}
	case "/where":
		if rest == "" {
			return errors.New("usage: /where <expr>")
		}
		return b.show(ctx, "", rest)
	case "/invert":
		b.opts.Charts.Invert = !b.opts.Charts.Invert
		fmt.Fprintf(b.out, "radar inversion: %v\n", b.opts.Charts.Invert)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

func (b *browser) show(ctx context.Context, text, expression string) error {
	sel, err := selection(b.wb, text)
	if err != nil {
		return err
	}
	opts := b.opts
	opts.Where = expression

	res, err := exchart.Run(b.wb, sel, opts)
	if err != nil {
		return err
	}
	addNarrative(ctx, res, b.cfg, b.logger)
	return render.Terminal(b.out, res)
}
