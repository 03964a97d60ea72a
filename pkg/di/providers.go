package di

import (
	"os"

	"github.com/devantler-tech/mimegen/pkg/fsutil/generator"
	lighttpdgenerator "github.com/devantler-tech/mimegen/pkg/fsutil/generator/lighttpd"
	"github.com/devantler-tech/mimegen/pkg/mimedb"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root
// command and tests. It registers the system mime database source, the
// conflict diagnostics logger and the configuration generator.
func NewRuntime() *Runtime {
	return New(
		provideSource,
		provideDiagnostics,
		provideGenerator,
	)
}

// provideSource registers the system mime database as the input source.
func provideSource(i Injector) error {
	do.Provide(i, func(Injector) (mimedb.Source, error) {
		return mimedb.FileSource{Path: mimedb.DefaultPath}, nil
	})

	return nil
}

// provideDiagnostics registers the logger that reports unresolved media
// type conflicts. It stays below debug level until the verbose flag raises
// it, so diagnostics are advisory and off by default.
func provideDiagnostics(i Injector) error {
	do.Provide(i, func(Injector) (*logrus.Logger, error) {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
		logger.SetLevel(logrus.InfoLevel)

		return logger, nil
	})

	return nil
}

// provideGenerator registers the lighttpd configuration generator.
func provideGenerator(i Injector) error {
	do.Provide(i, func(Injector) (generator.Generator[[]mimedb.Entry, lighttpdgenerator.Options], error) {
		return lighttpdgenerator.NewGenerator(), nil
	})

	return nil
}
