package di

import (
	"fmt"

	"github.com/devantler-tech/mimegen/pkg/fsutil/generator"
	lighttpdgenerator "github.com/devantler-tech/mimegen/pkg/fsutil/generator/lighttpd"
	"github.com/devantler-tech/mimegen/pkg/mimedb"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// Dependency resolvers.

// ResolveSource retrieves the mime database source from the injector with
// consistent error handling.
func ResolveSource(injector Injector) (mimedb.Source, error) {
	source, err := do.Invoke[mimedb.Source](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve mime database source dependency: %w", err)
	}

	return source, nil
}

// ResolveDiagnostics retrieves the conflict diagnostics logger from the
// injector with consistent error handling.
func ResolveDiagnostics(injector Injector) (*logrus.Logger, error) {
	logger, err := do.Invoke[*logrus.Logger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve diagnostics logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveGenerator retrieves the configuration generator from the injector
// with consistent error handling.
func ResolveGenerator(
	injector Injector,
) (generator.Generator[[]mimedb.Entry, lighttpdgenerator.Options], error) {
	gen, err := do.Invoke[generator.Generator[[]mimedb.Entry, lighttpdgenerator.Options]](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve configuration generator dependency: %w", err)
	}

	return gen, nil
}
