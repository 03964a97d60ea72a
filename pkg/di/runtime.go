// Package di wires the tool's dependencies through a samber/do container.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector aliases the samber/do injector used across the CLI.
type Injector = do.Injector

// Module registers dependencies on an injector.
type Module func(Injector) error

// Runtime owns the base modules shared by the root command and tests.
type Runtime struct {
	modules []Module
}

// New constructs a runtime from the given modules. Nil modules are skipped.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke runs handler against a fresh injector populated by the runtime's
// modules plus any extras, in registration order, and shuts the injector
// down afterwards.
func (r *Runtime) Invoke(handler func(Injector) error, extras ...Module) error {
	scope := do.New()
	defer func() { _ = scope.Shutdown() }()

	modules := make([]Module, 0, len(r.modules)+len(extras))
	modules = append(modules, r.modules...)
	modules = append(modules, extras...)

	for _, module := range modules {
		if module == nil {
			continue
		}

		if err := module(scope); err != nil {
			return err
		}
	}

	return handler(scope)
}

// RunEWithRuntime adapts a runtime-aware handler to a cobra RunE.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		})
	}
}
