package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xiam/parsec/lexer"
)

func newTokensCommand(conf *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE...",
		Short: "List the tokens of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeColor := color.New(color.FgCyan)
			for _, name := range args {
				in, err := readInput(cmd, name)
				if err != nil {
					return err
				}
				tokens, err := lexer.Tokenize(in)
				if err != nil {
					return errors.Wrap(err, name)
				}
				for _, tok := range tokens {
					line, col := tok.Pos()
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d\t%s\t%q\n",
						name, line, col, typeColor.Sprint(tok.Type()), tok.Text())
				}
			}
			return nil
		},
	}
}
