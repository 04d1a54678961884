package main

import (
	"os"

	"github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zlovro/sparkAssembler/assembler"
)

var assembleCommand = &cobra.Command{
	Use:     "assemble",
	Aliases: []string{"a", "A", "ASSEMBLE"},
	Short:   "Translate SPARK source into machine words",
	Example: `  sparkasm assemble -i boot.s -o boot.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return assembleCmd()
	},
}

var (
	assembleInput  string
	assembleOutput string
)

func init() {
	flags := assembleCommand.Flags()
	flags.StringVarP(&assembleInput, "input", "i", "", "source file to assemble")
	flags.StringVarP(&assembleOutput, "output", "o", "", "output file for machine words")
	_ = assembleCommand.MarkFlagRequired("input")
	_ = assembleCommand.MarkFlagRequired("output")
	rootCmd.AddCommand(assembleCommand)
}

func assembleCmd() error {
	asm := assembler.NewAssembler(assembler.Default())
	for _, dir := range runtimeConfig.IncludePaths {
		if err := asm.Context().AddIncludePath(dir); err != nil {
			return err
		}
	}
	words, err := asm.AssembleFile(assembleInput)
	if err != nil {
		return err
	}
	data := assembler.BytesFromWords(words)
	if err := os.WriteFile(assembleOutput, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", assembleOutput)
	}
	logrus.Infof("assembled %d instructions (%s) into %s",
		len(words), units.HumanSize(float64(len(data))), assembleOutput)
	return nil
}
