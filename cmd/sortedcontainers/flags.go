package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type outputFormat string

const (
	outputFormatPlain  outputFormat = "plain"
	outputFormatLogfmt outputFormat = "logfmt"
)

type operandFlags struct {
	numeric *bool
	bag     *bool
}

func createOperandFlags(cmd *cobra.Command) *operandFlags {
	var f operandFlags
	f.numeric = cmd.Flags().Bool("numeric", false, "Compare elements as numbers instead of byte-wise strings")
	f.bag = cmd.Flags().Bool("bag", false, "Use multiset semantics: duplicate lines are counted, not collapsed")
	return &f
}

type outputFlags struct {
	output            *string
	format            *string
	skipConfirmPrompt *bool
}

func createOutputFlags(cmd *cobra.Command) *outputFlags {
	var f outputFlags
	f.output = cmd.Flags().String("output", "", "Write the result to a file instead of stdout")
	f.format = cmd.Flags().String("format", string(outputFormatPlain), "Output format. Either \"plain\" or \"logfmt\"")
	f.skipConfirmPrompt = cmd.Flags().Bool("skip-confirm-prompt", false, "Skips prompt asking for user to confirm before overwriting the output file")
	return &f
}

func (f *outputFlags) parseFormat() (outputFormat, error) {
	switch outputFormat(*f.format) {
	case outputFormatPlain, outputFormatLogfmt:
		return outputFormat(*f.format), nil
	default:
		return "", fmt.Errorf("unknown format %q: must be %q or %q", *f.format, outputFormatPlain, outputFormatLogfmt)
	}
}
