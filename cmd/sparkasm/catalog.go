package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zlovro/sparkAssembler/assembler"
)

var catalogCommand = &cobra.Command{
	Use:   "catalog",
	Short: "List the instruction, macro, and register catalogues",
	RunE: func(cmd *cobra.Command, args []string) error {
		return catalogCmd(cmd)
	},
}

func init() {
	rootCmd.AddCommand(catalogCommand)
}

func catalogCmd(cmd *cobra.Command) error {
	reg := assembler.Default()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', 0)

	fmt.Fprintln(w, "OPCODE\tID\tOPERANDS")
	for _, t := range reg.Instructions() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", t.Name, t.Opcode, layoutString(t))
	}

	fmt.Fprintln(w, "\nMACRO\tEXPANDS TO")
	for _, t := range reg.Instructions() {
		for _, m := range reg.MacrosFor(t.Opcode) {
			fmt.Fprintf(w, "%s\t%s\n", m.Name, t.Name)
		}
	}

	fmt.Fprintln(w, "\nREGISTERS")
	for i := 0; i < 32; i += 8 {
		names := make([]string, 8)
		for j := range names {
			names[j] = assembler.Register(i + j).String()
		}
		fmt.Fprintln(w, strings.Join(names, " "))
	}
	return w.Flush()
}

func layoutString(t *assembler.InstructionType) string {
	if len(t.Operands) == 0 {
		return "-"
	}
	parts := make([]string, len(t.Operands))
	for i, op := range t.Operands {
		parts[i] = fmt.Sprintf("%s:%d", op.Kind, op.Bits)
	}
	return strings.Join(parts, " ")
}
