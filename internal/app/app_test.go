package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kubesetup/internal/adapters/logger"
	"go.trai.ch/kubesetup/internal/app"
	"go.trai.ch/kubesetup/internal/core/domain"
	"go.trai.ch/kubesetup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	resolver *mocks.MockVersionResolver
	acquirer *mocks.MockToolAcquirer
	cache    *mocks.MockToolCache
	host     *mocks.MockHost
	logger   *mocks.MockLogger
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		resolver: mocks.NewMockVersionResolver(ctrl),
		acquirer: mocks.NewMockToolAcquirer(ctrl),
		cache:    mocks.NewMockToolCache(ctrl),
		host:     mocks.NewMockHost(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.resolver, f.acquirer, f.cache, f.host, f.logger, domain.DefaultSettings(t.TempDir()))
	return f
}

func TestApp_Setup(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join("cache", "kubectl", "v1.27.15", "amd64", "kubectl")

	var debug []string
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { debug = append(debug, msg) }).AnyTimes()

	gomock.InOrder(
		f.resolver.EXPECT().Resolve(gomock.Any(), "1.27").Return("v1.27.15", nil),
		f.acquirer.EXPECT().Acquire(gomock.Any(), "v1.27.15").Return(path, nil),
		f.host.EXPECT().AddPath(filepath.Dir(path)).Return(nil),
		f.host.EXPECT().SetOutput(domain.OutputPathName, path).Return(nil),
		f.host.EXPECT().SetOutput(domain.OutputVersionName, "v1.27.15").Return(nil),
	)

	res, err := f.app.Setup(context.Background(), "1.27")
	require.NoError(t, err)
	assert.Equal(t, app.Result{Version: "v1.27.15", Path: path}, res)
	assert.Contains(t, debug, "kubectl tool version: 'v1.27.15' has been cached at "+path)
}

func TestApp_Setup_HostInput(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	f.host.EXPECT().Input(domain.InputVersionName).Return("latest")
	f.resolver.EXPECT().Resolve(gomock.Any(), "latest").Return("v1.15.0", nil)
	f.acquirer.EXPECT().Acquire(gomock.Any(), "v1.15.0").Return("/t/kubectl", nil)
	f.host.EXPECT().AddPath(gomock.Any()).Return(nil)
	f.host.EXPECT().SetOutput(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := f.app.Setup(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "v1.15.0", res.Version)
}

func TestApp_Setup_MissingVersion(t *testing.T) {
	f := newFixture(t)
	f.host.EXPECT().Input(domain.InputVersionName).Return("")

	_, err := f.app.Setup(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMissingVersion.Error())
}

func TestApp_Setup_ResolveFailure(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "1.99").
		Return("", &domain.PatchResolutionFailedError{MajorMinor: "1.99"})

	_, err := f.app.Setup(context.Background(), "1.99")

	var patchErr *domain.PatchResolutionFailedError
	require.ErrorAs(t, err, &patchErr)
	assert.Equal(t, "1.99", patchErr.MajorMinor)
}

func TestApp_Setup_AcquireFailure(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.resolver.EXPECT().Resolve(gomock.Any(), "v1.30.2").Return("v1.30.2", nil)
	f.acquirer.EXPECT().Acquire(gomock.Any(), "v1.30.2").
		Return("", &domain.NotFoundError{Tool: "kubectl", Version: "v1.30.2", Arch: "s390x"})

	_, err := f.app.Setup(context.Background(), "v1.30.2")

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestApp_Setup_HostFailure(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("v1.30.2", nil)
	f.acquirer.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return("/t/kubectl", nil)
	f.host.EXPECT().AddPath(filepath.Dir("/t/kubectl")).Return(nil)
	f.host.EXPECT().SetOutput(domain.OutputPathName, gomock.Any()).Return(errors.New("read-only file system"))

	_, err := f.app.Setup(context.Background(), "v1.30.2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrHostOutputFailed.Error())
}

func TestApp_Resolve(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), "latest").Return("v1.31.0", nil)

	got, err := f.app.Resolve(context.Background(), "latest")
	require.NoError(t, err)
	assert.Equal(t, "v1.31.0", got)
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	root := filepath.Join(t.TempDir(), "tools")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "kubectl", "v1.30.2", "amd64"), 0o750))

	f.cache.EXPECT().Root().Return(root)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	require.NoError(t, f.app.Clean(context.Background()))
	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}

func TestApp_Clean_MissingRoot(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Root().Return(filepath.Join(t.TempDir(), "absent"))
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	assert.NoError(t, f.app.Clean(context.Background()))
}

func newLoggerApp(t *testing.T, env map[string]string) (*app.App, *logger.Logger, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	buf := new(bytes.Buffer)
	l.SetOutput(buf)

	a := app.New(
		mocks.NewMockVersionResolver(ctrl),
		mocks.NewMockToolAcquirer(ctrl),
		mocks.NewMockToolCache(ctrl),
		mocks.NewMockHost(ctrl),
		l,
		domain.DefaultSettings(t.TempDir()),
	).WithGetenv(func(k string) string { return env[k] })

	return a, l, buf
}

func TestApp_ConfigureLogging(t *testing.T) {
	t.Run("debug flag", func(t *testing.T) {
		a, l, buf := newLoggerApp(t, nil)
		require.NoError(t, a.ConfigureLogging(app.LogOptions{Debug: true}))

		l.Debug("probe")
		assert.Contains(t, buf.String(), "probe")
	})

	t.Run("debug off by default", func(t *testing.T) {
		a, l, buf := newLoggerApp(t, nil)
		require.NoError(t, a.ConfigureLogging(app.LogOptions{}))

		l.Debug("probe")
		assert.Empty(t, buf.String())
	})

	t.Run("runner debug", func(t *testing.T) {
		a, l, buf := newLoggerApp(t, map[string]string{app.EnvRunnerDebug: "1"})
		require.NoError(t, a.ConfigureLogging(app.LogOptions{}))

		l.Debug("probe")
		assert.Contains(t, buf.String(), "probe")
	})

	t.Run("actions format detected", func(t *testing.T) {
		a, l, buf := newLoggerApp(t, map[string]string{app.EnvActions: "true"})
		require.NoError(t, a.ConfigureLogging(app.LogOptions{}))

		l.Warn("GetStableVersionFailed")
		assert.Equal(t, "::warning::GetStableVersionFailed\n", buf.String())
	})

	t.Run("explicit format wins", func(t *testing.T) {
		a, l, buf := newLoggerApp(t, map[string]string{app.EnvActions: "true"})
		require.NoError(t, a.ConfigureLogging(app.LogOptions{Format: "json"}))

		l.Info("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		a, _, _ := newLoggerApp(t, nil)
		err := a.ConfigureLogging(app.LogOptions{Format: "xml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), logger.ErrUnknownFormat.Error())
	})
}
