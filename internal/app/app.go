// Package app implements the application layer for whl.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports"
	"go.whl.build/whl/internal/engine/pipeline"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	cleaner      ports.ArtifactCleaner
	stager       ports.WorkspaceStager
	logger       ports.Logger
	configPath   string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pl *pipeline.Pipeline,
	cleaner ports.ArtifactCleaner,
	stager ports.WorkspaceStager,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		pipeline:     pl,
		cleaner:      cleaner,
		stager:       stager,
		logger:       logger,
		configPath:   ".",
	}
}

// SetConfigPath overrides where the configuration is loaded from. The path
// is either a working directory or a configuration file.
func (a *App) SetConfigPath(path string) {
	if path != "" {
		a.configPath = path
	}
}

// Build runs one incremental build pass in the current working directory.
// Per-file compile failures are reported through the logger and the summary;
// they do not fail the pass.
func (a *App) Build(ctx context.Context, force bool) error {
	project, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	report, err := a.pipeline.Run(ctx, project, pipeline.Options{Force: force})
	if err != nil {
		return zerr.Wrap(err, "build pass failed")
	}

	a.logReport(report)
	return nil
}

// Clean removes generated artifacts according to the project configuration.
func (a *App) Clean(_ context.Context) error {
	project, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	removed, err := a.cleaner.Clean(project.Root, project.Clean)
	if err != nil {
		return zerr.Wrap(err, "cleanup failed")
	}

	a.logger.Info(fmt.Sprintf("removed %d artifact(s)", len(removed)))
	return nil
}

// Stage copies the configured packages into a clean temporary build
// workspace and reports the resulting package-dir mapping.
func (a *App) Stage(_ context.Context) error {
	project, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if project.Workspace.Dir == "" || len(project.Workspace.Packages) == 0 {
		return zerr.New("no workspace configured")
	}

	mapping, err := a.stager.Stage(project.Root, project.Workspace.Packages, project.Workspace.Dir)
	if err != nil {
		return zerr.Wrap(err, "staging failed")
	}

	for pkg, dir := range mapping {
		a.logger.Info("staged " + pkg + " -> " + dir)
	}
	return nil
}

// logReport writes the build summary through the logger, field by field.
func (a *App) logReport(report *domain.BuildReport) {
	if report.Skipped {
		a.logger.Info(fmt.Sprintf("up to date (%d candidate(s))", report.Candidates))
		return
	}

	a.logger.Info(fmt.Sprintf(
		"build finished: %d candidate(s), %d changed, %d compiled, %d failed",
		report.Candidates, len(report.Changed), len(report.Compiled), len(report.Failed),
	))
	for _, failure := range report.Failed {
		a.logger.Warn("failed: " + failure.Path)
	}
	for _, artifact := range report.Artifacts {
		a.logger.Info("artifact " + artifact.Path + " " + artifact.Digest)
	}
}
