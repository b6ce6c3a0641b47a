package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kitfetch/internal/app"
	"go.trai.ch/kitfetch/internal/core/domain"
)

type stubResolver struct {
	err error
}

func (s *stubResolver) Resolve(_ context.Context, _ domain.Selection) (domain.Catalog, error) {
	return domain.Catalog{}, s.err
}

type stubManifests struct{}

func (s *stubManifests) Resolve(_ context.Context, _ string, _ domain.Version, _ string) (*domain.Manifest, error) {
	return &domain.Manifest{}, nil
}

type stubFetcher struct{}

func (s *stubFetcher) Fetch(_ context.Context, _, _ string) error { return nil }

type stubExtractor struct{}

func (s *stubExtractor) Extract(_ context.Context, _ string) error { return nil }

type stubRenderer struct{}

func (s *stubRenderer) RenderCatalog(_ io.Writer, _ domain.Catalog) error { return nil }

type stubLogger struct {
	errors []error
}

func (s *stubLogger) Info(string)           {}
func (s *stubLogger) Warn(string)           {}
func (s *stubLogger) Error(err error)       { s.errors = append(s.errors, err) }
func (s *stubLogger) SetOutput(_ io.Writer) {}

func newTestComponents(resolver *stubResolver, logger *stubLogger) *app.Components {
	application := app.New(
		resolver,
		&stubManifests{},
		&stubFetcher{},
		&stubExtractor{},
		&stubRenderer{},
		logger,
		domain.DefaultSettings(),
	)
	return &app.Components{App: application, Logger: logger}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	logger := &stubLogger{}
	components := newTestComponents(&stubResolver{}, logger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	logger := &stubLogger{}
	components := newTestComponents(&stubResolver{err: errors.New("crawl failed")}, logger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"list", "linux"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.NotEmpty(t, logger.errors)
}

// TestRun_Interrupted verifies that a canceled context is reported calmly
// instead of being logged as a failure.
func TestRun_Interrupted(t *testing.T) {
	logger := &stubLogger{}
	components := newTestComponents(&stubResolver{err: context.Canceled}, logger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stderr := new(bytes.Buffer)
	exitCode := run(ctx, []string{"list", "linux"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "interrupted")
	assert.Empty(t, logger.errors)
}
