package flags_test

import (
	"testing"

	"github.com/devantler-tech/mimegen/pkg/cli/flags"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVerbose_DefaultsToFalse(t *testing.T) {
	t.Parallel()

	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.AddVerbose(set)

	require.NoError(t, set.Parse(nil))

	assert.False(t, flags.Verbose(set))
}

func TestAddVerbose_ShorthandEnables(t *testing.T) {
	t.Parallel()

	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.AddVerbose(set)

	require.NoError(t, set.Parse([]string{"-v"}))

	assert.True(t, flags.Verbose(set))
}

func TestVerbose_UnregisteredFlagReadsFalse(t *testing.T) {
	t.Parallel()

	set := pflag.NewFlagSet("test", pflag.ContinueOnError)

	assert.False(t, flags.Verbose(set))
}
