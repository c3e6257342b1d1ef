package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/engine"
	"github.com/sells-group/advisor-cli/internal/model"
)

var (
	assessInput  string
	assessOutput string
	assessNoSave bool
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a risk assessment for a single profile",
	Long:  "Reads a JSON file with the user profile and investments, runs the assessment, and prints the report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(assessInput)
		if err != nil {
			return eris.Wrap(err, "read input file")
		}

		var input model.AssessmentInput
		if err := json.Unmarshal(data, &input); err != nil {
			return eris.Wrap(err, "parse input file")
		}

		if v := input.Profile.Validate(); !v.IsValid {
			if len(v.MissingFields) > 0 {
				return eris.Errorf("incomplete profile: missing %s", strings.Join(v.MissingFields, ", "))
			}
			return eris.Errorf("invalid profile: %s", strings.Join(v.Issues, "; "))
		}

		var st *engine.State
		var eng *engine.Engine

		if assessNoSave {
			eng, err = engine.New(cfg.Engine, nil)
			if err != nil {
				return err
			}
		} else {
			s, storeErr := initStore(ctx)
			if storeErr != nil {
				return storeErr
			}
			defer s.Close() //nolint:errcheck
			if err := s.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}
			eng, err = engine.New(cfg.Engine, s)
			if err != nil {
				return err
			}
		}

		st = engine.NewState(input.Profile, input.Investments)
		result, err := eng.Run(ctx, st)
		if err != nil {
			return eris.Wrap(err, "run assessment")
		}

		zap.L().Info("assessment complete",
			zap.String("run_id", result.RunID),
			zap.Int("risk_score", result.Report.RiskAssessment.RiskScore),
			zap.String("risk_category", string(result.Report.RiskAssessment.RiskCategory)),
		)

		switch assessOutput {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Report)
		case "markdown":
			fmt.Println(engine.FormatReport(result.Report, result.Phases))
			return nil
		default:
			return eris.Errorf("unsupported output format: %s", assessOutput)
		}
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessInput, "input", "", "path to JSON file with profile and investments (required)")
	assessCmd.Flags().StringVar(&assessOutput, "output", "markdown", "output format: markdown or json")
	assessCmd.Flags().BoolVar(&assessNoSave, "no-save", false, "skip persisting the run to the store")
	_ = assessCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(assessCmd)
}
