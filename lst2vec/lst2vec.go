// lst2vec reads an assembler listing on stdin and writes the instruction
// words as VHDL hex literals to stdout, ready to paste into a program
// memory initializer. Only lines starting with a 0 (the zero padded
// address column) are code lines, of the form:
//
//	AAAAAA  WWWW [WWWW]  source...
//
// A summary of lines and vectors processed is written to stderr.
package main

import (
	"log"

	"github.com/jmchacon/cpuvec/lstvec"
	"github.com/spf13/cobra"
)

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "lst2vec < file.lst > vectors.txt",
		Short:         "Extract instruction words from a listing as VHDL hex literals",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, err := lstvec.Convert(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), lstvec.Options{})
			return err
		},
	}
}

func main() {
	log.SetFlags(0)
	if err := newCommand().Execute(); err != nil {
		log.Fatalf("lst2vec: %v", err)
	}
}
