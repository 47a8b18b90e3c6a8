package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/qbank/internal/questions"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the question file is in lettered-option format",
	Long: `Validate ` + questions.DefaultPath + ` against the converted question schema
and list questions the quiz cannot grade: duplicate ids, options out of
letter order and a correct_answer that names no option.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	rep, err := questions.Check(questions.DefaultPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rep.OK() {
		fmt.Fprintf(out, "%s: %d questions OK\n", rep.Path, rep.Count)
		return nil
	}

	fmt.Fprintf(out, "%-6s  %-8s  %s\n", "Index", "ID", "Problem")
	fmt.Fprintln(out, strings.Repeat("─", 60))
	for _, p := range rep.Problems {
		fmt.Fprintf(out, "%-6d  %-8d  %s\n", p.Index, p.ID, p.Message)
	}

	return fmt.Errorf("%s: %d problems in %d questions", rep.Path, len(rep.Problems), rep.Count)
}
