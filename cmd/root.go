package cmd

import (
	"fmt"

	"github.com/abhisek/qbank/internal/questions"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qbank",
	Short: "Rewrite a question bank file into lettered-option format",
	Long: `qbank rewrites ` + questions.DefaultPath + ` in place.

Each question's free-text options become lettered {id, text} pairs, its
correct_answer becomes the matching letter and questions are renumbered
from ` + fmt.Sprint(questions.FirstID) + `. The file is only replaced once every question has
been converted.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRewrite,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	res, err := questions.RewriteFile(questions.DefaultPath)
	if err != nil {
		return err
	}

	if len(res.Unresolved) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d of %d questions have no matching correct_answer: %v\n",
			len(res.Unresolved), res.Count, res.Unresolved)
	}
	return nil
}
