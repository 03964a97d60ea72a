// Package flags defines the flag surface shared by commands and tests.
package flags

import "github.com/spf13/pflag"

// VerboseFlagName is the name of the conflict diagnostics flag.
const VerboseFlagName = "verbose"

// AddVerbose registers the -v flag on the given flag set.
func AddVerbose(set *pflag.FlagSet) {
	set.BoolP(
		VerboseFlagName,
		"v",
		false,
		"Report unresolved media type conflicts on stderr",
	)
}

// Verbose reads the verbose flag value from the flag set. An unregistered
// flag reads as false.
func Verbose(set *pflag.FlagSet) bool {
	verbose, err := set.GetBool(VerboseFlagName)
	if err != nil {
		return false
	}

	return verbose
}
