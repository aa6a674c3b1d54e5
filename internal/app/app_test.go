package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.whl.build/whl/internal/adapters/snapshot"
	"go.whl.build/whl/internal/adapters/telemetry"
	"go.whl.build/whl/internal/app"
	"go.whl.build/whl/internal/core/domain"
	"go.whl.build/whl/internal/core/ports/mocks"
	"go.whl.build/whl/internal/engine/pipeline"
)

type testEnv struct {
	ctrl     *gomock.Controller
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockSourceResolver
	compiler *mocks.MockCompiler
	cleaner  *mocks.MockArtifactCleaner
	stager   *mocks.MockWorkspaceStager
	logger   *mocks.MockLogger
	app      *app.App
	project  *domain.Project
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	dir := t.TempDir()
	project := &domain.Project{
		Root:      dir,
		CachePath: filepath.Join(dir, ".whlcache"),
		Compiler:  domain.CompilerSpec{Cmd: []string{"cc"}, Workers: 1},
		Sources:   domain.SourceSpec{Targets: []string{"."}},
		Clean:     domain.CleanSpec{Patterns: []string{"*.c"}},
	}

	env := &testEnv{
		ctrl:     ctrl,
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockSourceResolver(ctrl),
		compiler: mocks.NewMockCompiler(ctrl),
		cleaner:  mocks.NewMockArtifactCleaner(ctrl),
		stager:   mocks.NewMockWorkspaceStager(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		project:  project,
	}

	pl := pipeline.New(
		env.resolver,
		snapshot.NewFactory(),
		env.compiler,
		mocks.NewMockArtifactHasher(ctrl),
		telemetry.NewNoOp(),
		env.logger,
	)
	env.app = app.New(env.loader, pl, env.cleaner, env.stager, env.logger)
	return env
}

func (e *testEnv) writeSource(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(e.project.Root, name)
	require.NoError(t, os.WriteFile(path, []byte("pass"), 0o600))
	mtime := time.Unix(1700000000, 0)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestApp_Build(t *testing.T) {
	env := newTestEnv(t)
	a := env.writeSource(t, "a.py")

	env.loader.EXPECT().Load(".").Return(env.project, nil)
	env.resolver.EXPECT().Resolve(env.project.Root, env.project.Sources).Return([]string{a}, nil)
	env.compiler.EXPECT().Compile(gomock.Any(), env.project.Compiler, a).Return(nil)
	env.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	err := env.app.Build(context.Background(), false)
	assert.NoError(t, err)
}

func TestApp_Build_ConfigError(t *testing.T) {
	env := newTestEnv(t)

	env.loader.EXPECT().Load(".").Return(nil, os.ErrPermission)

	err := env.app.Build(context.Background(), false)
	assert.Error(t, err)
}

func TestApp_Clean(t *testing.T) {
	env := newTestEnv(t)

	env.loader.EXPECT().Load(".").Return(env.project, nil)
	env.cleaner.EXPECT().Clean(env.project.Root, env.project.Clean).Return([]string{"a.c", "b.so"}, nil)
	env.logger.EXPECT().Info(gomock.Any())

	err := env.app.Clean(context.Background())
	assert.NoError(t, err)
}

func TestApp_Stage(t *testing.T) {
	env := newTestEnv(t)
	env.project.Workspace = domain.WorkspaceSpec{
		Dir:      ".whl_build",
		Packages: []string{"pkg"},
	}

	env.loader.EXPECT().Load(".").Return(env.project, nil)
	env.stager.EXPECT().
		Stage(env.project.Root, []string{"pkg"}, ".whl_build").
		Return(map[string]string{"pkg": filepath.Join(".whl_build", "pkg")}, nil)
	env.logger.EXPECT().Info(gomock.Any())

	err := env.app.Stage(context.Background())
	assert.NoError(t, err)
}

func TestApp_Stage_Unconfigured(t *testing.T) {
	env := newTestEnv(t)

	env.loader.EXPECT().Load(".").Return(env.project, nil)

	err := env.app.Stage(context.Background())
	assert.Error(t, err)
}
