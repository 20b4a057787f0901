package check

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/pkg/concurrent"
)

// Runner evaluates the configured properties.
type Runner struct {
	cfg    Config
	logger log.Log
}

func NewRunner(cfg Config, logger log.Log) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

func (r *Runner) Config() Config { return r.cfg }

// Run checks every selected property cfg.Samples times, at most cfg.Workers
// properties at once. A cancelled context aborts the run with its error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	props, err := Select(r.cfg.Properties)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := r.logger.With(
		log.String("run_id", runID.String()),
		log.Uint64("seed", r.cfg.Seed),
	)
	logger.Info("Property run started",
		log.Int("properties", len(props)),
		log.Int("samples", r.cfg.Samples),
		log.Int("workers", r.cfg.Workers),
	)

	start := time.Now()
	results, err := concurrent.Map(ctx, props, r.cfg.Workers, func(ctx context.Context, p Property) (Result, error) {
		return r.runProperty(ctx, logger, p)
	})
	if err != nil {
		logger.Error("Property run aborted", log.Error(err))
		return nil, err
	}

	report := &Report{
		RunID:   runID,
		Seed:    r.cfg.Seed,
		Samples: r.cfg.Samples,
		Results: results,
		Digest:  digestResults(results),
		Elapsed: time.Since(start),
	}

	logger.Info("Property run finished",
		log.Bool("passed", report.Passed()),
		log.Int("failures", report.Failures()),
		log.String("digest", formatDigest(report.Digest)),
		log.Duration("elapsed", report.Elapsed),
	)

	return report, nil
}

func (r *Runner) runProperty(ctx context.Context, logger log.Log, p Property) (Result, error) {
	logger = logger.With(log.String("property", p.Name))
	sampler := NewSampler(r.cfg.Seed, p.Name)
	res := Result{Name: p.Name, Samples: r.cfg.Samples}

	start := time.Now()
	for i := 0; i < r.cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := p.Check(sampler, r.cfg.Epsilon); err != nil {
			res.Failures++
			if res.Counterexample == "" {
				res.Counterexample = err.Error()
				logger.Warn("Property violated", log.Int("sample", i), log.Error(err))
			}
		}
	}
	res.Digest = sampler.Sum64()
	res.Elapsed = time.Since(start)

	logger.Debug("Property checked",
		log.Int("failures", res.Failures),
		log.String("digest", formatDigest(res.Digest)),
		log.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

func digestResults(results []Result) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, res := range results {
		_, _ = d.WriteString(res.Name)
		binary.LittleEndian.PutUint64(buf[:], res.Digest)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
