// Package pipeline orchestrates one incremental build pass: resolve
// sources, detect changes, compile the changed subset, digest artifacts.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
	"go.whl.build/whl/internal/engine/changeset"
	"golang.org/x/sync/errgroup"
)

// Pipeline wires the source resolver, the change detector, the external
// compiler and the artifact hasher into one build pass.
type Pipeline struct {
	resolver  ports.SourceResolver
	stores    ports.SnapshotStoreFactory
	compiler  ports.Compiler
	hasher    ports.ArtifactHasher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Pipeline.
func New(
	resolver ports.SourceResolver,
	stores ports.SnapshotStoreFactory,
	compiler ports.Compiler,
	hasher ports.ArtifactHasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		resolver:  resolver,
		stores:    stores,
		compiler:  compiler,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Options control a single build pass.
type Options struct {
	// Force compiles every existing candidate regardless of the snapshot.
	Force bool
}

// Run executes one build pass for the project. Per-file compile failures are
// collected in the report, never returned as errors: one broken file must
// not prevent attempts on the others, and the report's Compiled list holds
// only the files that actually succeeded.
func (p *Pipeline) Run(ctx context.Context, project *domain.Project, opts Options) (*domain.BuildReport, error) {
	sources, err := p.resolver.Resolve(project.Root, project.Sources)
	if err != nil {
		return nil, err
	}

	detector := changeset.NewDetector(p.stores.Open(project.CachePath), p.logger)
	_, vtx := p.telemetry.Record(ctx, "detect changes")
	changed, err := detector.ChangedOrAll(sources, opts.Force)
	if err != nil {
		if !errors.Is(err, domain.ErrCachePersist) {
			vtx.Complete(err)
			return nil, err
		}
		// The change set is still valid; the next pass just re-detects
		// against the stale baseline.
		p.logger.Warn("snapshot cache not persisted: " + err.Error())
	}

	report := &domain.BuildReport{
		Candidates: len(sources),
		Changed:    changed,
	}

	if len(changed) == 0 {
		vtx.Cached()
		vtx.Complete(nil)
		p.logger.Info("no source changes detected, skipping compile step")
		report.Skipped = true
		return report, nil
	}
	vtx.Complete(nil)

	p.logger.Info(fmt.Sprintf("detected %d changed source file(s), rebuilding", len(changed)))
	p.compileAll(ctx, project.Compiler, changed, report)
	p.digestArtifacts(project, report)

	return report, nil
}

// compileAll compiles every changed file, bounded by the configured worker
// count, and sorts the outcomes into the report in candidate order.
func (p *Pipeline) compileAll(ctx context.Context, spec domain.CompilerSpec, changed []string, report *domain.BuildReport) {
	workers := spec.Workers
	if workers < 1 {
		workers = 1
	}

	// Indexed results keep the report in candidate order regardless of
	// completion order.
	results := make([]error, len(changed))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range changed {
		g.Go(func() error {
			vctx, vtx := p.telemetry.Record(ctx, "compile "+path)
			err := p.compiler.Compile(vctx, spec, path)
			vtx.Complete(err)
			results[i] = err
			return nil
		})
	}
	_ = g.Wait()

	for i, path := range changed {
		if err := results[i]; err != nil {
			p.logger.Error(err)
			report.Failed = append(report.Failed, domain.CompileFailure{Path: path, Err: err})
			continue
		}
		report.Compiled = append(report.Compiled, path)
	}
}

// digestArtifacts records content digests for configured artifact globs.
// Digest failures degrade to warnings; the build outcome is already decided.
func (p *Pipeline) digestArtifacts(project *domain.Project, report *domain.BuildReport) {
	for _, pattern := range project.Artifacts {
		matches, err := filepath.Glob(filepath.Join(project.Root, pattern))
		if err != nil {
			p.logger.Warn("bad artifact pattern " + pattern + ": " + err.Error())
			continue
		}
		for _, match := range matches {
			digest, err := p.hasher.DigestFile(match)
			if err != nil {
				p.logger.Warn("failed to digest artifact " + match + ": " + err.Error())
				continue
			}
			report.Artifacts = append(report.Artifacts, domain.Artifact{
				Path:   match,
				Digest: digest,
			})
		}
	}
}
