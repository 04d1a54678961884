package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zlovro/sparkAssembler/assembler"
)

var disassembleCommand = &cobra.Command{
	Use:     "disassemble",
	Aliases: []string{"d", "D", "DISASSEMBLE"},
	Short:   "Translate machine words back into SPARK source",
	Example: `  sparkasm disassemble -i boot.bin -o boot.s --hexdump`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return disassembleCmd(cmd)
	},
}

var (
	disassembleInput   string
	disassembleOutput  string
	disassembleHexdump bool
)

func init() {
	flags := disassembleCommand.Flags()
	flags.StringVarP(&disassembleInput, "input", "i", "", "binary file to disassemble")
	flags.StringVarP(&disassembleOutput, "output", "o", "", "output file for assembly text")
	flags.BoolVar(&disassembleHexdump, "hexdump", false, "annotate each line with its word and byte offset")
	_ = disassembleCommand.MarkFlagRequired("input")
	_ = disassembleCommand.MarkFlagRequired("output")
	rootCmd.AddCommand(disassembleCommand)
}

func disassembleCmd(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("hexdump") {
		disassembleHexdump = runtimeConfig.Hexdump
	}
	dis := assembler.NewDisassembler(assembler.Default())
	dis.Hexdump = disassembleHexdump
	lines, err := dis.DisassembleFile(disassembleInput)
	if err != nil {
		return err
	}
	text := strings.Join(lines, "\n")
	if len(lines) > 0 {
		text += "\n"
	}
	if err := os.WriteFile(disassembleOutput, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", disassembleOutput)
	}
	logrus.Infof("disassembled %d instructions into %s", len(lines), disassembleOutput)
	return nil
}
