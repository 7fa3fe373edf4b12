// Package cli wires the cobra command tree that drives the core:
// medication listing and mutations, the scan flow, and the live watch
// view. Services are injected by main through the Set* functions.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driving"
	"github.com/pillziy/pillziy-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	medicationRepo driving.MedicationRepository

	// intakeFactory builds a one-shot intake pipeline for a capture
	// source. The camera adapter needs the image path, which is only
	// known once the scan command parses its flags.
	intakeFactory func(imagePath string, rotation int) driving.IntakeService

	// storePath is the durable store location observed by watch.
	storePath string

	configStore driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "pillziy",
	Short: "Track prescription medications from the terminal",
	Long: `Pillziy keeps a local record of your prescription medications.

Scan a prescription label photo to add a medication, or manage the
collection directly with list, add, remove, and update. Everything is
stored locally; there is no server and no account.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// SetMedicationRepository wires the repository used by the medication
// commands.
func SetMedicationRepository(repo driving.MedicationRepository) {
	medicationRepo = repo
}

// SetIntakeFactory wires the constructor the scan command uses to build
// an intake pipeline for a given capture source.
func SetIntakeFactory(factory func(imagePath string, rotation int) driving.IntakeService) {
	intakeFactory = factory
}

// SetConfigStore wires the settings store used by the config command.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetStorePath wires the durable store file observed by the watch command.
func SetStorePath(path string) {
	storePath = path
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
