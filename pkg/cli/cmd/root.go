// Package cmd assembles the mimegen command line interface.
package cmd

import (
	"fmt"

	"github.com/devantler-tech/mimegen/pkg/cli/flags"
	"github.com/devantler-tech/mimegen/pkg/di"
	lighttpdgenerator "github.com/devantler-tech/mimegen/pkg/fsutil/generator/lighttpd"
	"github.com/devantler-tech/mimegen/pkg/mimedb"
	"github.com/devantler-tech/mimegen/pkg/utils/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command with version info, wired to the
// default runtime container.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(di.NewRuntime(), version, commit, date)
}

// NewRootCmdWithRuntime creates the root command against a caller-supplied
// runtime container. Tests use it to swap the mime database source.
func NewRootCmdWithRuntime(runtime *di.Runtime, version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mimegen",
		Short: "mimegen generates a lighttpd mimetype.assign block from the system mime database",
		Long: "mimegen reads " + mimedb.DefaultPath + ", resolves conflicting registrations, " +
			"and prints a lighttpd mimetype.assign configuration block on stdout.",
		RunE:         di.RunEWithRuntime(runtime, handleRootRunE),
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	flags.AddVerbose(cmd.Flags())

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE reads the mime database, resolves it and prints the
// configuration block. A database that cannot be opened is a warning, not
// a failure: the consuming server ships its own default mapping, so the
// command prints nothing and still exits zero.
func handleRootRunE(cmd *cobra.Command, injector di.Injector) error {
	diag, err := di.ResolveDiagnostics(injector)
	if err != nil {
		return err
	}

	diag.SetOutput(cmd.ErrOrStderr())

	if flags.Verbose(cmd.Flags()) {
		diag.SetLevel(logrus.DebugLevel)
	}

	source, err := di.ResolveSource(injector)
	if err != nil {
		return err
	}

	reader, err := source.Open()
	if err != nil {
		notify.Warningf(cmd.ErrOrStderr(), "no configuration generated: %v", err)

		return nil
	}
	defer func() { _ = reader.Close() }()

	registry := mimedb.NewRegistry(diag)

	err = mimedb.Load(reader, registry)
	if err != nil {
		return err
	}

	mimedb.ApplySupplements(registry)

	generator, err := di.ResolveGenerator(injector)
	if err != nil {
		return err
	}

	out, err := generator.Generate(registry.Entries(), lighttpdgenerator.Options{})
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	if err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}

	return nil
}
