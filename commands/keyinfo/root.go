package keyinfo

import (
	"io"
	"os"

	"github.com/signatory-io/keyinfo/core"
	"github.com/signatory-io/keyinfo/logger"
	"github.com/spf13/cobra"
)

type rootContext struct {
	conf   core.Config
	logger logger.Logger
}

func NewRootCommand() *cobra.Command {
	var ctx rootContext
	ctx.conf.Default()

	cmd := cobra.Command{
		Use:           "keyinfo [options]",
		Short:         "PKCS#8 private key container inspector",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.conf.FromCmdline(true, cmd.Flags()); err != nil {
				return err
			}
			ctx.logger = logger.NewLogrus(cmd.ErrOrStderr(), ctx.conf.LogLevel)
			return nil
		},
	}
	ctx.conf.RegisterFlags(cmd.PersistentFlags(), &cmd)

	cmd.AddCommand(newClassifyCommand(&ctx))
	cmd.AddCommand(newInspectCommand(&ctx))
	cmd.AddCommand(newConfigCommand(&ctx))
	return &cmd
}

// readInput reads a file or stdin if name is "-"
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
