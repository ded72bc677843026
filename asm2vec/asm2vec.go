// asm2vec reads an annotated assembly source file on stdin and writes a
// VHDL testbench skeleton with the expected bus test vectors to stdout.
// Any line accessing data memory must have a comment starting with R or W
// followed by the data and the address, space separated:
//
//	LDI R16, 0x00    ;R AB 1234
//
// A summary of lines and vectors processed is written to stderr.
package main

import (
	"log"

	"github.com/jmchacon/cpuvec/asmvec"
	"github.com/spf13/cobra"
)

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "asm2vec < file.asm > file_tb.vhd",
		Short: "Convert an annotated assembly file into VHDL testbench vectors",
		Args:  cobra.NoArgs,
		// main reports errors itself.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, err := asmvec.Convert(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), asmvec.Options{})
			return err
		},
	}
}

func main() {
	log.SetFlags(0)
	if err := newCommand().Execute(); err != nil {
		log.Fatalf("asm2vec: %v", err)
	}
}
