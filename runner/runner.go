// Package runner wires discovery, fetching, parsing, and rule evaluation
// into one validation run. Vocabularies are checked sequentially in
// discovery order; each check owns its graph and violations, nothing is
// shared between iterations.
package runner

import (
	"context"
	"log/slog"

	"github.com/c360studio/vocval/config"
	"github.com/c360studio/vocval/fetch"
	"github.com/c360studio/vocval/rdf"
	"github.com/c360studio/vocval/registry"
	"github.com/c360studio/vocval/report"
	"github.com/c360studio/vocval/rules"
	"github.com/c360studio/vocval/vocabulary"
)

// Runner executes one validation run.
type Runner struct {
	cfg      *config.Config
	fetcher  *fetch.Fetcher
	registry *registry.Client
	logger   *slog.Logger
	match    string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithMatch restricts discovery to vocabularies matching a glob pattern.
func WithMatch(pattern string) Option {
	return func(r *Runner) { r.match = pattern }
}

// New creates a Runner from a validated configuration.
func New(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.fetcher = fetch.NewFetcher(cfg.HTTP.Timeout,
		fetch.WithUserAgent(cfg.HTTP.UserAgent),
		fetch.WithLogger(r.logger))
	r.registry = registry.NewClient(cfg.Registry.ListingURL, cfg.Registry.BaseURI,
		cfg.HTTP.Timeout, registry.WithLogger(r.logger))
	return r
}

// Run validates the given vocabulary URIs, or every vocabulary the registry
// lists when uris is empty. Per-vocabulary failures are recorded in the
// report and never abort the run; the returned error is non-nil only when
// discovery itself was needed and failed.
func (r *Runner) Run(ctx context.Context, uris []string) (*report.Report, error) {
	var refs []vocabulary.Reference
	if len(uris) == 0 {
		discovered, err := r.registry.Discover(ctx)
		if err != nil {
			return nil, err
		}
		refs, err = registry.Filter(discovered, r.match)
		if err != nil {
			return nil, err
		}
	} else {
		for _, uri := range uris {
			refs = append(refs, vocabulary.Reference(uri))
		}
	}

	rep := report.New()
	r.logger.Info("Starting validation run",
		slog.String("run_id", rep.RunID),
		slog.Int("vocabularies", len(refs)))

	for _, ref := range refs {
		violations := r.checkVocabulary(ctx, ref)
		rep.Add(ref, violations)
		r.logger.Debug("Checked vocabulary",
			slog.String("uri", ref.String()),
			slog.Int("violations", len(violations)))
	}
	return rep, nil
}

// representation is one fetched-and-possibly-parsed form of a vocabulary.
type representation struct {
	data []byte
	err  error
}

// checkVocabulary retrieves every negotiable representation of one
// vocabulary, builds a term graph from the best one available, and runs the
// checklist plus the representation-level checks against it.
func (r *Runner) checkVocabulary(ctx context.Context, ref vocabulary.Reference) []vocabulary.Violation {
	turtle := r.retrieve(ctx, ref, fetch.FormatTurtle)
	rdfxml := r.retrieve(ctx, ref, fetch.FormatRDFXML)
	desise := r.retrieve(ctx, ref, fetch.FormatDesise)

	// Nothing retrievable at all: one fetch-stage violation, move on.
	if turtle.err != nil && rdfxml.err != nil && desise.err != nil {
		return []vocabulary.Violation{stageViolation("fetch", turtle.err)}
	}

	var violations []vocabulary.Violation

	// Each representation the server could not hand out is a finding of its
	// own once we know the vocabulary is otherwise reachable.
	for _, missing := range []struct {
		rep    representation
		format fetch.Format
	}{
		{turtle, fetch.FormatTurtle},
		{rdfxml, fetch.FormatRDFXML},
		{desise, fetch.FormatDesise},
	} {
		if missing.rep.err != nil {
			violations = append(violations, vocabulary.Violationf("serialization", "",
				"%s representation not retrievable: %v", missing.format, missing.rep.err))
		}
	}

	graph, fromRDF, parseViolations := r.buildGraph(ref, turtle, rdfxml, desise)
	violations = append(violations, parseViolations...)
	if graph == nil {
		return violations
	}

	violations = append(violations, rules.Evaluate(graph, r.cfg.Rules.Skip...)...)

	if turtle.err == nil && !rdf.DeclaresBase(ref, turtle.data) {
		violations = append(violations, vocabulary.Violationf("turtle-base", "",
			"turtle representation does not declare <%s> as its base URI", ref))
	}

	// Comparing the digest against itself tells us nothing, so the
	// cross-format check only runs when the graph came from actual RDF.
	if desise.err == nil && fromRDF {
		violations = append(violations, crossFormatCheck(ref, desise.data, graph)...)
	}

	return violations
}

func (r *Runner) retrieve(ctx context.Context, ref vocabulary.Reference, format fetch.Format) representation {
	data, err := r.fetcher.Fetch(ctx, ref, format)
	return representation{data: data, err: err}
}

// buildGraph parses the richest representation available into a term graph:
// Turtle first, then RDF/XML, then the desise digest. A representation that
// fetched but does not parse contributes a parse-stage violation and the
// next one is tried.
func (r *Runner) buildGraph(ref vocabulary.Reference, turtle, rdfxml, desise representation) (*vocabulary.TermGraph, bool, []vocabulary.Violation) {
	var violations []vocabulary.Violation

	if turtle.err == nil {
		g, err := rdf.ParseTurtle(ref, turtle.data)
		if err == nil {
			return g, true, violations
		}
		violations = append(violations, stageViolation("parse", err))
	}
	if rdfxml.err == nil {
		g, err := rdf.ParseRDFXML(ref, rdfxml.data)
		if err == nil {
			return g, true, violations
		}
		violations = append(violations, stageViolation("parse", err))
	}
	if desise.err == nil {
		d, err := rdf.ParseDesise(ref, desise.data)
		if err == nil {
			return d.Graph(ref), false, violations
		}
		violations = append(violations, stageViolation("parse", err))
	}
	return nil, false, violations
}

// crossFormatCheck verifies that the terms the desise digest announces are
// present in the parsed RDF graph, each with exactly one label.
func crossFormatCheck(ref vocabulary.Reference, desiseData []byte, graph *vocabulary.TermGraph) []vocabulary.Violation {
	d, err := rdf.ParseDesise(ref, desiseData)
	if err != nil {
		return []vocabulary.Violation{stageViolation("parse", err)}
	}

	dg := d.Graph(ref)
	var out []vocabulary.Violation
	for _, ident := range dg.Identifiers() {
		term, ok := graph.Terms[ident]
		if !ok {
			out = append(out, vocabulary.Violationf("cross-format", ident,
				"term listed in desise digest but absent from RDF graph"))
			continue
		}
		if len(term.Labels) != 1 {
			out = append(out, vocabulary.Violationf("cross-format", ident,
				"term has %d labels in RDF graph, expected exactly one", len(term.Labels)))
		}
	}
	return out
}

func stageViolation(stage string, err error) vocabulary.Violation {
	return vocabulary.Violationf(stage, "", "%v", err)
}
