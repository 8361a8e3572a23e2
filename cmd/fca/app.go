package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/crosstable"
	"github.com/katalvlaran/galois/dfs"
	"github.com/katalvlaran/galois/formal"
	"github.com/katalvlaran/galois/interval"
	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/load"
	"github.com/katalvlaran/galois/metrics"
	"github.com/katalvlaran/galois/prune"
)

// app carries the state shared by every subcommand.
type app struct {
	cfg      *Config
	logger   *slog.Logger
	out      io.Writer
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

func newApp(cfg *Config, out, logOut io.Writer) (*app, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()

	return &app{
		cfg:      cfg,
		logger:   slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})),
		out:      out,
		registry: reg,
		recorder: metrics.NewRecorder(reg),
	}, nil
}

// readContext reads a context file honoring input.format.
func (a *app) readContext(path string) (*formal.Context, error) {
	var (
		doc *load.Document
		err error
	)
	if a.cfg.Input.Format == "" {
		doc, err = load.ReadFile(path)
	} else {
		doc, err = a.readForced(path)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("context loaded", "path", path, "objects", len(doc.Objects), "attributes", len(doc.Attributes))

	return doc.Context()
}

func (a *app) readForced(path string) (*load.Document, error) {
	f, err := load.ParseFormat(a.cfg.Input.Format)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return load.Read(fh, f)
}

// buildLattice builds the concept lattice of a context file and registers its gauges.
func (a *app) buildLattice(path string) (*lattice.Lattice, error) {
	ctx, err := a.readContext(path)
	if err != nil {
		return nil, err
	}
	l, err := ctx.AsConceptLattice(nil,
		lattice.WithLogger(a.logger),
		lattice.WithInsertHook(a.recorder.Observe),
	)
	if err != nil {
		return nil, err
	}
	a.observe(l)
	a.logger.Info("lattice built", "concepts", l.Size(), "covers", l.Order())

	return l, nil
}

func (a *app) observe(l *lattice.Lattice) {
	c := metrics.NewCollector(l, prometheus.Labels{"context": a.cfg.Metrics.Context})
	if err := a.registry.Register(c); err != nil {
		a.logger.Warn("lattice gauges not registered", "error", err)
	}
}

// flushMetrics writes the registry to the configured textfile, if any.
func (a *app) flushMetrics() error {
	if a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.Textfile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", "path", a.cfg.Metrics.Textfile)

	return nil
}

func (a *app) runLattice(path string, pruneEmpty bool) error {
	l, err := a.buildLattice(path)
	if err != nil {
		return err
	}
	g := l.Graph()
	if pruneEmpty {
		p := prune.NewBuilder(func(x, y concept.Concept) bool { return x.Equal(y) }).WithWeights(0).Build()
		g = prune.Apply(g, p)
	}
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "concepts %d covers %d\n", g.VertexCount(), g.EdgeCount())
	for _, id := range order {
		c, err := g.Label(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, c)
	}

	return nil
}

func (a *app) runMarginal(path string, attrs []string) error {
	l, err := a.buildLattice(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%.6g\n", l.Marginal(attrs))

	return nil
}

func (a *app) runConditional(path string, x, given []string) error {
	l, err := a.buildLattice(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%.6g\n", l.Conditional(x, given))

	return nil
}

func (a *app) runClosure(path string, attrs []string) error {
	l, err := a.buildLattice(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, l.LeastUpperBound(attrs))

	return nil
}

func (a *app) runTable(path string, complement bool) error {
	ctx, err := a.readContext(path)
	if err != nil {
		return err
	}
	t := ctx.AsCrossTable()
	if complement {
		t = crosstable.Complement(t)
	}
	fmt.Fprintln(a.out, strings.Join(ctx.Attributes(), " "))
	for i, obj := range ctx.Objects() {
		row, err := t.Row(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s\t%s\n", obj, cells(row, t.Columns()))
	}

	return nil
}

// cells renders a row as 'x'/'.' characters.
func cells(r crosstable.Row, width int) string {
	var sb strings.Builder
	for j := 0; j < width; j++ {
		if r.Intent().Test(j) {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// runIntervals reads "id<TAB>lo<TAB>hi" lines (a bare MAGIC line adds the
// sentinel) and prints the size of the resulting interval lattice.
func (a *app) runIntervals(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	il, err := interval.NewLattice[float64](
		lattice.WithLogger(a.logger),
		lattice.WithInsertHook(a.recorder.Observe),
	)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(fh)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		iv, err := parseInterval(fields)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
		if _, err = il.Insert(iv); err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
	if err = scanner.Err(); err != nil {
		return err
	}
	l := il.Lattice()
	a.observe(l)
	fmt.Fprintf(a.out, "intervals %d concepts %d covers %d\n", il.Len(), l.Size(), l.Order())

	return nil
}

func parseInterval(fields []string) (interval.Interval[float64], error) {
	if len(fields) == 1 && fields[0] == interval.MagicID {
		return interval.Magic[float64](), nil
	}
	if len(fields) != 3 {
		return interval.Interval[float64]{}, fmt.Errorf("want id, lo, hi; got %d fields", len(fields))
	}
	lo, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return interval.Interval[float64]{}, err
	}
	hi, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return interval.Interval[float64]{}, err
	}

	return interval.New(fields[0], lo, hi)
}
