package main

import (
	"fmt"

	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand an axiom through the rewrite rules and print the sequence",
	Example: `  # One Koch iteration
  lindenmayer expand --axiom F --rule "F -> F+F--F+F" --iterations 1

  # Length only, from a built-in preset
  lindenmayer expand --preset dragon-curve --iterations 12 --length`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveInputs(cmd)
		if err != nil {
			return err
		}

		rules, err := p.RuleSet()
		if err != nil {
			return err
		}

		sequence := lsystem.Expand(lsystem.ParseSequence(p.Axiom), rules, p.Iterations)

		lengthOnly, _ := cmd.Flags().GetBool("length")
		if lengthOnly {
			fmt.Fprintln(cmd.OutOrStdout(), len(sequence))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), lsystem.Sequence(sequence).String())
		return nil
	},
}

func init() {
	addSystemFlags(expandCmd)
	expandCmd.Flags().Bool("length", false, "Print only the sequence length")
	rootCmd.AddCommand(expandCmd)
}
