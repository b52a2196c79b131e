package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "SEXPR"

func newRootCommand() *cobra.Command {
	conf := viper.New()

	root := &cobra.Command{
		Use:   "sexpr",
		Short: "Read s-expression documents",
		Long: `
sexpr lists the tokens of s-expression documents or parses them into trees.
Flags can also be set with SEXPR_ environment variables or a config file.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := conf.GetString("config")
			if cfg == "" {
				return nil
			}
			conf.SetConfigFile(cfg)
			return errors.Wrap(conf.ReadInConfig(), "reading config")
		},
	}

	root.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	root.PersistentFlags().Bool("verbose", false,
		"Log every value the grammar tries.")

	tokens := newTokensCommand(conf)
	parse := newParseCommand(conf)
	root.AddCommand(tokens, parse)

	if err := conf.BindPFlags(root.PersistentFlags()); err != nil {
		panic(err)
	}
	if err := conf.BindPFlags(parse.Flags()); err != nil {
		panic(err)
	}
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	return root
}

func newLogger(conf *viper.Viper) (*zap.Logger, error) {
	if conf.GetBool("verbose") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
