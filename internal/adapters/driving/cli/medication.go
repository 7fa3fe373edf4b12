package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked medications",
	RunE:  runList,
}

var (
	addName      string
	addDosage    string
	addFrequency string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a medication without scanning",
	Long:  `Adds a medication record directly, bypassing the scan flow.`,
	RunE:  runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a medication",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var (
	updateName      string
	updateDosage    string
	updateFrequency string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a medication's fields",
	Long:  `Updates the given fields of a medication. Unset flags leave fields unchanged.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "medication name (required)")
	addCmd.Flags().StringVar(&addDosage, "dosage", "", "dosage, e.g. 500mg")
	addCmd.Flags().StringVar(&addFrequency, "frequency", domain.FrequencyOnceDaily.String(), "schedule, preset or free text")
	_ = addCmd.MarkFlagRequired("name")

	updateCmd.Flags().StringVar(&updateName, "name", "", "new medication name")
	updateCmd.Flags().StringVar(&updateDosage, "dosage", "", "new dosage")
	updateCmd.Flags().StringVar(&updateFrequency, "frequency", "", "new schedule")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if medicationRepo == nil {
		return errors.New("medication repository not configured")
	}

	meds := medicationRepo.List(context.Background())
	printMedications(cmd, meds)
	return nil
}

func printMedications(cmd *cobra.Command, meds []domain.Medication) {
	if len(meds) == 0 {
		cmd.Println("No medications yet. Run 'pillziy scan' to add one.")
		return
	}

	cmd.Println("Medications:")
	cmd.Println()
	for i := range meds {
		cmd.Printf("  %s\n", meds[i].Name)
		cmd.Printf("    ID: %s\n", meds[i].ID)
		cmd.Printf("    Dosage: %s\n", meds[i].Dosage)
		cmd.Printf("    Frequency: %s\n", meds[i].Frequency)
		if len(meds[i].LabelImage) > 0 {
			cmd.Printf("    Label image: %d bytes\n", len(meds[i].LabelImage))
		}
		cmd.Printf("    Added: %s\n", meds[i].CreatedAt.Format("2006-01-02 15:04"))
		cmd.Println()
	}
	cmd.Printf("Total: %d medications\n", len(meds))
}

func runAdd(cmd *cobra.Command, _ []string) error {
	if medicationRepo == nil {
		return errors.New("medication repository not configured")
	}

	med, err := medicationRepo.Add(context.Background(), domain.Medication{
		Name:      addName,
		Dosage:    addDosage,
		Frequency: domain.Frequency(addFrequency),
	})
	if err != nil {
		return fmt.Errorf("failed to add medication: %w", err)
	}

	cmd.Printf("Added %s (%s)\n", med.Name, med.ID)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	if medicationRepo == nil {
		return errors.New("medication repository not configured")
	}

	if err := medicationRepo.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove medication: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if medicationRepo == nil {
		return errors.New("medication repository not configured")
	}

	ctx := context.Background()
	id := args[0]

	var current *domain.Medication
	for _, med := range medicationRepo.List(ctx) {
		if med.ID == id {
			m := med
			current = &m
			break
		}
	}
	if current == nil {
		cmd.Printf("No medication found with ID: %s\n", id)
		return nil
	}

	if cmd.Flags().Changed("name") {
		current.Name = updateName
	}
	if cmd.Flags().Changed("dosage") {
		current.Dosage = updateDosage
	}
	if cmd.Flags().Changed("frequency") {
		current.Frequency = domain.Frequency(updateFrequency)
	}

	if err := medicationRepo.Update(ctx, *current); err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}

	cmd.Printf("Updated %s\n", current.Name)
	return nil
}
