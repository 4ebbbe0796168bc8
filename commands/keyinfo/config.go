package keyinfo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/signatory-io/keyinfo/core"
	"github.com/signatory-io/keyinfo/utils"
	"github.com/spf13/cobra"
)

func newConfigCommand(ctx *rootContext) *cobra.Command {
	cmd := cobra.Command{
		Use:     "config",
		Aliases: []string{"conf"},
		Short:   "keyinfo configuration commands",
	}
	cmd.AddCommand(newConfigInitCommand(ctx))
	return &cmd
}

func newConfigInitCommand(ctx *rootContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create new configuration file with provided parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := yaml.Marshal(&ctx.conf)
			if err != nil {
				return err
			}
			confPath, err := cmd.Flags().GetString("config-file")
			if err != nil {
				panic(err)
			}
			confPath = core.GetPath(confPath, ctx.conf.BasePath)

			if err := os.MkdirAll(filepath.Dir(confPath), 0700); err != nil {
				return err
			}
			if err := utils.AtomicWrite(confPath, buf, 0600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is successfully created\n", confPath)
			return nil
		},
	}
}
