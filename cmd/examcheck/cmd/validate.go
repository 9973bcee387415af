package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scorely/examcheck/pkg/crossval"
	"github.com/scorely/examcheck/pkg/errors"
	"github.com/scorely/examcheck/pkg/extraction"
	"github.com/scorely/examcheck/pkg/logging"
)

var (
	primaryProvider   string
	secondaryProvider string
	strict            bool
)

// validateCmd cross-validates two extraction documents.
var validateCmd = &cobra.Command{
	Use:   "validate <primary-file> <secondary-file>",
	Short: "Reconcile two extractions of the same exam",
	Long: `Validate reads two extraction documents (YAML or JSON), reconciles
them into one record, and prints the result together with every detected
inconsistency.

With --strict, exit code 2 signals that the reconciled result needs human
confirmation before it can be trusted.`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&primaryProvider, "primary-provider", "", "identifier of the primary extraction provider")
	validateCmd.Flags().StringVar(&secondaryProvider, "secondary-provider", "", "identifier of the secondary extraction provider")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "exit with code 2 when user confirmation is needed")
}

func runValidate(cmd *cobra.Command, args []string) error {
	primary, err := extraction.DecodeFile(args[0])
	if err != nil {
		return err
	}
	secondary, err := extraction.DecodeFile(args[1])
	if err != nil {
		return err
	}

	primaryID := providerID(primaryProvider, "primary-provider", args[0])
	secondaryID := providerID(secondaryProvider, "secondary-provider", args[1])

	validator, err := crossval.New(crossval.WithLogger(logging.Default()))
	if err != nil {
		return err
	}

	result := validator.Validate(*primary, *secondary, primaryID, secondaryID)

	logging.Info().
		Str("report_id", result.Details.ReportID).
		Int("inconsistencies", len(result.Details.Inconsistencies)).
		Bool("needs_confirmation", result.Details.NeedsUserConfirmation).
		Msg("Cross-validation complete")

	if err := printResult(cmd, result); err != nil {
		return err
	}

	if strict && result.Details.NeedsUserConfirmation {
		return errors.ErrConfirmationRequired
	}
	return nil
}

// providerID resolves a provider identifier from flag, config, or filename.
func providerID(flagValue, configKey, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString(configKey); v != "" {
		return v
	}
	return fallback
}

func printResult(cmd *cobra.Command, result *crossval.Result) error {
	switch outputMode {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	default:
		cmd.Println(result.Summary())
		for _, entry := range result.Details.Inconsistencies {
			cmd.Println(fmt.Sprintf("  %s: %s", entry.Field, entry.Reason))
		}
		return nil
	}
}
