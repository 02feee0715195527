// Package fontes probes the availability of the upstream services and
// static resources the accessors depend on.
package fontes

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fonte is one upstream probe target.
type Fonte struct {
	Nome string `json:"nome"`
	URL  string `json:"url"`
}

// Resultado is the outcome of probing a single source.
type Resultado struct {
	Fonte      string `json:"fonte"`
	URL        string `json:"url"`
	OK         bool   `json:"ok"`
	Status     int    `json:"status,omitempty"`
	LatenciaMS int64  `json:"latencia_ms"`
	Erro       string `json:"erro,omitempty"`
}

// Snapshot is a point-in-time view of upstream health.
type Snapshot struct {
	Resultados []Resultado `json:"resultados"`
	Saudaveis  int         `json:"saudaveis"`
	Total      int         `json:"total"`
	ColetadoEm time.Time   `json:"coletado_em"`
}

// Config configures a Checker.
type Config struct {
	Fontes []Fonte
	// Timeout bounds each individual probe. Defaults to 10s.
	Timeout time.Duration
	// Concurrency caps simultaneous probes. Defaults to 4.
	Concurrency int
}

// Checker probes the sources, on demand or on a schedule, and keeps the
// most recent snapshot.
type Checker struct {
	client      *http.Client
	fontes      []Fonte
	concurrency int

	mu   sync.RWMutex
	last *Snapshot
}

// NewChecker creates a source checker.
func NewChecker(cfg Config) *Checker {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Checker{
		client:      &http.Client{Timeout: timeout},
		fontes:      cfg.Fontes,
		concurrency: concurrency,
	}
}

// Verificar probes every source in parallel, caches the snapshot and
// returns it.
func (c *Checker) Verificar(ctx context.Context) *Snapshot {
	resultados := make([]Resultado, len(c.fontes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, f := range c.fontes {
		i, f := i, f
		g.Go(func() error {
			resultados[i] = c.probe(gctx, f)
			return nil
		})
	}
	_ = g.Wait()

	snap := &Snapshot{
		Resultados: resultados,
		Total:      len(resultados),
		ColetadoEm: time.Now().UTC(),
	}
	for _, r := range resultados {
		if r.OK {
			snap.Saudaveis++
		}
	}

	c.mu.Lock()
	c.last = snap
	c.mu.Unlock()
	return snap
}

// Ultimo returns the most recent snapshot, or nil before the first check.
func (c *Checker) Ultimo() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// Run probes on a fixed interval until ctx is cancelled. The first check
// happens immediately so Ultimo is populated as soon as the loop starts.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	log := zap.L().With(zap.String("component", "fontes.checker"))
	log.Info("starting source checker",
		zap.Duration("interval", interval),
		zap.Int("fontes", len(c.fontes)),
	)

	c.check(ctx, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("source checker stopped")
			return
		case <-ticker.C:
			c.check(ctx, log)
		}
	}
}

func (c *Checker) check(ctx context.Context, log *zap.Logger) {
	snap := c.Verificar(ctx)
	if snap.Saudaveis < snap.Total {
		log.Warn("fontes: sources degraded",
			zap.Int("saudaveis", snap.Saudaveis),
			zap.Int("total", snap.Total),
		)
		return
	}
	log.Debug("fontes: all sources healthy", zap.Int("total", snap.Total))
}

func (c *Checker) probe(ctx context.Context, f Fonte) Resultado {
	res := Resultado{Fonte: f.Nome, URL: f.URL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		res.Erro = err.Error()
		return res
	}
	req.Header.Set("User-Agent", "dadosbr/1.0")

	start := time.Now()
	resp, err := c.client.Do(req)
	res.LatenciaMS = time.Since(start).Milliseconds()
	if err != nil {
		res.Erro = err.Error()
		return res
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	res.Status = resp.StatusCode
	res.OK = resp.StatusCode >= 200 && resp.StatusCode < 400
	if !res.OK {
		res.Erro = resp.Status
	}
	return res
}
