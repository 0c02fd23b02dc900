package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"skincare-backend/internal/plans/recommendations"
)

type buildOptions struct {
	file               string
	output             string
	guaranteeSPF       bool
	allowEmptyConcerns bool
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a plan from a YAML or JSON survey file",
		Long: `Reads a survey (YAML or JSON, "-" for stdin) and prints the plan.
Invalid answers are listed one per line and the command exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "survey file, or - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatYAML, "output format: json or yaml")
	cmd.Flags().BoolVar(&opts.guaranteeSPF, "guarantee-spf", false, "keep the SPF step when the product cap is reached")
	cmd.Flags().BoolVar(&opts.allowEmptyConcerns, "allow-empty-concerns", false, "accept surveys without concerns")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	raw, err := readSurvey(cmd.InOrStdin(), opts.file)
	if err != nil {
		return err
	}
	var survey recommendations.Survey
	if err := yaml.Unmarshal(raw, &survey); err != nil {
		return fmt.Errorf("parse survey %s: %w", opts.file, err)
	}

	var engineOpts []recommendations.Option
	if opts.guaranteeSPF {
		engineOpts = append(engineOpts, recommendations.WithSPFGuaranteed())
	}
	if opts.allowEmptyConcerns {
		engineOpts = append(engineOpts, recommendations.WithEmptyConcernsAllowed())
	}

	plan, err := recommendations.New(engineOpts...).BuildPlan(survey)
	if err != nil {
		var verr *recommendations.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.Field, f.Issue)
			}
			return fmt.Errorf("survey has %d invalid answer(s): %w", len(verr.Fields), recommendations.ErrInvalidInput)
		}
		return err
	}
	return writeOutput(cmd.OutOrStdout(), opts.output, plan)
}

func readSurvey(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read survey: %w", err)
	}
	return raw, nil
}
