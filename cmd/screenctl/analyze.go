package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/hr/screening/pkg/analysis"
	"github.com/artem13815/hr/screening/pkg/nlp"
	"github.com/artem13815/hr/screening/pkg/vacancy"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		resumePath string
		jobPath    string
		jobText    string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a resume against a job description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jobPath != "" && jobText != "" {
				return errors.New("use either --job or --job-text, not both")
			}
			job := jobText
			if jobPath != "" {
				b, err := os.ReadFile(jobPath)
				if err != nil {
					return fmt.Errorf("failed to read job description: %w", err)
				}
				job = string(b)
			}
			job = vacancy.PlainText(job)
			if err := (vacancy.Input{JobDescription: job}).Validate(); err != nil {
				return err
			}
			text, err := readResume(resumePath)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return errors.New("could not extract text from resume")
			}

			engine, closeFn, err := openEngine(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := engine.Analyze(cmd.Context(), text, job)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to resume (pdf, docx, doc or txt)")
	cmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path to job description file (text or HTML)")
	cmd.Flags().StringVar(&jobText, "job-text", "", "Job description given inline")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}

func displaySkills(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = nlp.DisplaySkill(id)
	}
	return strings.Join(out, ", ")
}

func printResult(w io.Writer, res analysis.MatchResult) {
	fmt.Fprintf(w, "Match score:    %.1f%%\n", res.MatchScore)
	fmt.Fprintf(w, "Prediction:     %s (confidence: %s)\n", res.Prediction, res.Confidence)
	fmt.Fprintf(w, "Should apply:   %t\n", res.ShouldApply)
	fmt.Fprintf(w, "Experience:     %s\n", res.ExperienceMatch)
	fmt.Fprintf(w, "Matched skills: %s\n", displaySkills(res.MatchedSkills))
	fmt.Fprintf(w, "Missing skills: %s\n", displaySkills(res.MissingSkills))
	fmt.Fprintf(w, "\n%s\n", res.Recommendation)
	fmt.Fprintln(w, "\nStrengths:")
	for _, s := range res.Strengths {
		fmt.Fprintf(w, "  + %s\n", s)
	}
	fmt.Fprintln(w, "Improvements:")
	for _, s := range res.Improvements {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	d := res.Details
	fmt.Fprintf(w, "\nskills %.1f | experience %.1f | semantic %.1f | role %.1f\n",
		d.SkillsScore, d.ExperienceScore, d.SemanticScore, d.RoleScore)
}
