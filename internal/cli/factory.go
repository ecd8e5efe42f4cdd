package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	redisAdapter "github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/adapters/writer"
	"github.com/aretw0/arbor/pkg/ports"
)

// createEngine initializes an arbor engine with standard CLI
// conventions: config-driven buffer sizes on top of library defaults.
func createEngine(cfg *config.Config, logger *slog.Logger, transport ports.Transport) *arbor.Engine {
	engineOpts := []arbor.Option{
		arbor.WithLogger(logger),
		arbor.WithTransport(transport),
	}

	if cfg.Engine.RootTag != "" {
		engineOpts = append(engineOpts, arbor.WithRootTag(cfg.Engine.RootTag))
	}
	if cfg.Engine.MaxDepth > 0 {
		engineOpts = append(engineOpts, arbor.WithMaxDepth(cfg.Engine.MaxDepth))
	}
	if cfg.Engine.PathCapacity > 0 {
		engineOpts = append(engineOpts, arbor.WithPathCapacity(cfg.Engine.PathCapacity))
	}
	if cfg.Engine.ReportCapacity > 0 {
		engineOpts = append(engineOpts, arbor.WithReportCapacity(cfg.Engine.ReportCapacity))
	}

	return arbor.New(engineOpts...)
}

// buildTransport resolves the configured transport kind. The returned
// closer releases any underlying resource and may be nil-safe to call
// more than once.
func buildTransport(cfg *config.Config) (ports.Transport, io.Closer, error) {
	switch cfg.Transport.Kind {
	case "file":
		opts, err := cfg.Transport.File()
		if err != nil {
			return nil, nil, err
		}
		f, err := os.Create(opts.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening report file: %w", err)
		}
		return writer.New(f), f, nil

	case "redis":
		opts, err := cfg.Transport.Redis()
		if err != nil {
			return nil, nil, err
		}
		var redisOpts []redisAdapter.Option
		if opts.Channel != "" {
			redisOpts = append(redisOpts, redisAdapter.WithChannel(opts.Channel))
		}
		tr := redisAdapter.New(opts.Address, opts.Password, opts.DB, redisOpts...)
		return tr, tr, nil

	default:
		// stdout and memory render from a captured buffer; the caller
		// owns that path.
		return nil, nil, nil
	}
}
