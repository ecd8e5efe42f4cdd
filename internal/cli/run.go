// Package cli implements the shared workflow behind the arbor
// commands: load configuration, assemble an engine and transport, run
// the built-in suite and present the report.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/presentation/report"
	"github.com/aretw0/arbor/internal/selftest"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
)

// RunOptions carries the command-line switches shared by run and
// search.
type RunOptions struct {
	Target     string
	Search     bool
	ConfigPath string
	NoColor    bool
	Raw        bool
}

// ErrTestsFailed signals a completed run whose report carries at least
// one non-passing result, so hosts can map it to a non-zero exit code.
var ErrTestsFailed = fmt.Errorf("one or more tests failed")

// Run executes the built-in suite according to the options and
// configuration, and presents the report. Flags override the config
// file.
func Run(ctx context.Context, opts RunOptions, logger *slog.Logger) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	target := cfg.Target
	if opts.Target != "" {
		target = opts.Target
	}
	if target == "" {
		target = domain.RootTag
	}
	search := cfg.Search || opts.Search

	transport, closer, err := buildTransport(cfg)
	if err != nil {
		return err
	}

	// Without an external sink the report is captured in memory and
	// rendered below.
	var captured *memory.Transport
	if transport == nil {
		captured = memory.New()
		transport = captured
	}
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warn("closing report transport", "error", err)
			}
		}()
	}

	engine := createEngine(cfg, logger, transport)

	logger.Info("starting run", "target", target, "search", search, "transport", cfg.Transport.Kind)

	if search {
		_, err = engine.Search(ctx, target, selftest.Trunk)
	} else {
		_, err = engine.Run(ctx, target, selftest.Trunk)
	}
	if err != nil {
		return fmt.Errorf("running suite: %w", err)
	}

	if captured == nil {
		return nil
	}
	return present(captured.Report(), opts)
}

func loadConfig(opts RunOptions) (*config.Config, error) {
	if opts.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(opts.ConfigPath)
}

// present renders a captured report to stdout, either raw wire format
// or the colorized terminal view. A failing report is surfaced as
// ErrTestsFailed after rendering.
func present(body string, opts RunOptions) error {
	if opts.Raw {
		fmt.Print(body)
		if len(body) > 0 && body[len(body)-1] != '\n' {
			fmt.Println()
		}
	}

	rep, err := report.Parse(body)
	if err != nil {
		return fmt.Errorf("parsing report: %w", err)
	}

	if !opts.Raw {
		renderer := report.NewRenderer(os.Stdout, colorProfile(opts))
		if err := renderer.Render(rep); err != nil {
			return err
		}
	}

	if rep.Failed() {
		return ErrTestsFailed
	}
	return nil
}

// colorProfile picks the terminal color profile; piped output and
// --no-color degrade to plain text.
func colorProfile(opts RunOptions) termenv.Profile {
	if opts.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
