package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"assertkit/comparison"
	"assertkit/description"
	"assertkit/errmsg"
)

var (
	ignoreCase bool
	describeAs string
)

var onceCmd = &cobra.Command{
	Use:   "once <text> <substring>",
	Short: "Check that a substring appears exactly once in a text",
	Long: `Check that substring appears exactly once in text. On failure the assertion
message is printed and the exit code is 1.

Examples:
  fieldvalues once aaamotifaaa motif
  fieldvalues once --ignore-case --as greeting "Hello hello" HELLO`,
	Args: cobra.ExactArgs(2),
	RunE: onceCommand,
}

func init() {
	onceCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare ignoring case")
	onceCmd.Flags().StringVar(&describeAs, "as", "", "description prefixed to the failure message")
}

func onceCommand(cmd *cobra.Command, args []string) error {
	_, cleanup, err := loadConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	strategy := comparison.Standard()
	if ignoreCase {
		strategy = comparison.ComparatorBased(comparison.CaseInsensitiveStringComparator{})
	}

	return runOnce(cmd.OutOrStdout(), args[0], args[1], strategy, description.Text(describeAs))
}

// runOnce reports success on out, or returns the failure message as a *failure.
func runOnce(out io.Writer, text, substring string, strategy comparison.Strategy, d description.Description) error {
	occurrences := strategy.CountOccurrences(text, substring)
	if occurrences == 1 {
		green := color.New(color.FgGreen).SprintFunc()
		_, err := fmt.Fprintln(out, green("ok"))

		return err
	}

	return &failure{message: errmsg.ShouldContainOnlyOnce(text, substring, occurrences, strategy).Create(d)}
}
