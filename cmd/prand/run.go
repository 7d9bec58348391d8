package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sot-tech/prand/pkg/log"
	"github.com/sot-tech/prand/pkg/metrics"
	"github.com/sot-tech/prand/prng"
	"github.com/sot-tech/prand/shuffle"
)

var (
	logger = log.NewLogger("runner")

	outputsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prand_outputs_total",
		Help: "Number of outputs emitted, partitioned by output mode.",
	}, []string{"mode"})
)

// Runner holds the state of a configured generation run.
type Runner struct {
	gen     prng.Generator
	out     outputConfig
	metrics *metrics.Server
}

// NewRunner builds the random source and output settings from cfg and
// starts the metrics server if one is configured.
func NewRunner(cfg *Config) (*Runner, error) {
	r := new(Runner)

	var gc generatorConfig
	if err := cfg.Generator.Unmarshal(&gc); err != nil {
		return nil, fmt.Errorf("failed to read generator config: %w", err)
	}
	var err error
	if r.gen, err = buildGenerator(gc); err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	if err = cfg.Output.Unmarshal(&r.out); err != nil {
		return nil, fmt.Errorf("failed to read output config: %w", err)
	}
	if r.out.Mode == "" {
		r.out.Mode = "words"
	}

	if len(cfg.MetricsAddr) > 0 {
		log.Info().Str("address", cfg.MetricsAddr).Msg("starting metrics server")
		r.metrics = metrics.NewServer(cfg.MetricsAddr)
	}

	logger.Info().
		Str("tag", r.gen.Tag()).
		Str("mode", r.out.Mode).
		Uint64("count", r.out.Count).
		Msg("runner configured")
	return r, nil
}

// Run emits outputs to w until the configured count is reached or ctx
// is cancelled.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	emit, err := r.emitter()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	counter := outputsGenerated.WithLabelValues(r.out.Mode)
	for i := uint64(0); r.out.Count == 0 || i < r.out.Count; i++ {
		if ctx.Err() != nil {
			break
		}
		if err := emit(bw); err != nil {
			return err
		}
		counter.Inc()
	}
	return bw.Flush()
}

// emitter resolves the output mode into a per-line producer.
func (r *Runner) emitter() (func(w *bufio.Writer) error, error) {
	switch r.out.Mode {
	case "words":
		return func(w *bufio.Writer) error {
			_, err := fmt.Fprintf(w, "%016X\n", r.gen.NextWord())
			return err
		}, nil
	case "floats":
		return func(w *bufio.Writer) error {
			if _, err := w.WriteString(strconv.FormatFloat(prng.Float64(r.gen), 'g', -1, 64)); err != nil {
				return err
			}
			return w.WriteByte('\n')
		}, nil
	case "ulid":
		entropy := prng.NewReader(r.gen)
		return func(w *bufio.Writer) error {
			id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
			if err != nil {
				return err
			}
			if _, err = w.WriteString(id.String()); err != nil {
				return err
			}
			return w.WriteByte('\n')
		}, nil
	case "deal":
		sh, err := shuffle.New(r.gen, r.out.Items)
		if err != nil {
			return nil, fmt.Errorf("failed to create shuffler: %w", err)
		}
		return func(w *bufio.Writer) error {
			if _, err := w.WriteString(sh.Next()); err != nil {
				return err
			}
			return w.WriteByte('\n')
		}, nil
	default:
		return nil, fmt.Errorf("unknown output mode %q", r.out.Mode)
	}
}

// Dispose logs the final state if requested and shuts down the
// metrics server.
func (r *Runner) Dispose() {
	if r.out.PrintState {
		logger.Info().Str("state", prng.Serialize(r.gen)).Msg("final generator state")
	}
	if r.metrics != nil {
		logger.Debug().Msg("stopping metrics server")
		if err := r.metrics.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("error occurred while shutting down metrics server")
		}
	}
}
