package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/stripe/sortedcontainers/pkg/log"
	"github.com/stripe/sortedcontainers/pkg/sortedbag"
)

func buildOccurrencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "occurrences FILE",
		Short: "Count how many times each element occurs in FILE",
		Args:  cobra.ExactArgs(1),
	}

	numeric := cmd.Flags().Bool("numeric", false, "Compare elements as numbers instead of byte-wise strings")
	outputFlags := createOutputFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		format, err := outputFlags.parseFormat()
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true

		lines, err := readLines(args[0])
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			log.SimpleLogger().Warnf("%q has no elements", args[0])
		}

		return withOutput(outputFlags, func(w io.Writer) error {
			if *numeric {
				numbers, err := parseNumbers(args[0], lines)
				if err != nil {
					return err
				}
				return writeEntries(w, format, bagEntries[float64](sortedbag.NewArrayNatural(numbers...)))
			}
			return writeEntries(w, format, bagEntries[string](sortedbag.NewArrayNatural(lines...)))
		})
	}

	return cmd
}
