package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pillziy/pillziy-cli/internal/adapters/driving/tui/intakeform"
	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driving"
)

var (
	scanImage     string
	scanRotation  int
	scanName      string
	scanDosage    string
	scanFrequency string
	scanYes       bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a prescription label and add the medication",
	Long: `Runs the intake flow over a prescription label photo:
recognize the label text, derive a candidate medication name, and open
the confirmation form. Nothing is saved until you confirm.

Use --rotate when the photo was taken sideways; recognition needs
upright pixels.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanImage, "image", "i", "", "path to the label photo (required)")
	scanCmd.Flags().IntVar(&scanRotation, "rotate", 0, "clockwise degrees to rotate the photo upright (0, 90, 180, 270)")
	scanCmd.Flags().StringVar(&scanName, "name", "", "override the medication name")
	scanCmd.Flags().StringVar(&scanDosage, "dosage", "", "dosage, e.g. 500mg")
	scanCmd.Flags().StringVar(&scanFrequency, "frequency", "", "schedule, preset or free text")
	scanCmd.Flags().BoolVarP(&scanYes, "yes", "y", false, "confirm without the interactive form")
	_ = scanCmd.MarkFlagRequired("image")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	if intakeFactory == nil {
		return errors.New("intake pipeline not configured")
	}

	if scanRotation%90 != 0 {
		return fmt.Errorf("invalid rotation %d: must be a multiple of 90", scanRotation)
	}

	intake := intakeFactory(scanImage, scanRotation)
	ctx := context.Background()

	results, err := intake.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start scan: %w", err)
	}

	res := <-results
	if res.Err != nil {
		if errors.Is(res.Err, domain.ErrCaptureCancelled) {
			cmd.Println("Scan cancelled.")
			return nil
		}
		return fmt.Errorf("scan failed: %w", res.Err)
	}

	if res.Draft.ExtractedText != "" {
		cmd.Println("Extracted text:")
		cmd.Println()
		cmd.Println(res.Draft.ExtractedText)
		cmd.Println()
	} else {
		cmd.Println("No text recognized on the label.")
	}

	form, confirmed, err := resolveForm(res.Draft)
	if err != nil {
		intake.Cancel()
		return err
	}
	if !confirmed {
		intake.Cancel()
		cmd.Println("Scan cancelled.")
		return nil
	}

	med, err := intake.Confirm(ctx, form)
	if err != nil {
		return fmt.Errorf("failed to save medication: %w", err)
	}

	cmd.Printf("Added %s (%s, %s)\n", med.Name, med.Dosage, med.Frequency)
	return nil
}

// resolveForm produces the confirmation form, either from flags
// (--yes) or through the interactive TUI.
func resolveForm(draft domain.IntakeDraft) (driving.IntakeForm, bool, error) {
	if scanYes {
		name := scanName
		if name == "" {
			name = draft.CandidateName
		}
		return driving.IntakeForm{
			Name:      name,
			Dosage:    scanDosage,
			Frequency: domain.Frequency(scanFrequency),
		}, true, nil
	}

	result, err := intakeform.Run(draft)
	if err != nil {
		return driving.IntakeForm{}, false, fmt.Errorf("confirmation form: %w", err)
	}
	return result.Form, result.Confirmed, nil
}
