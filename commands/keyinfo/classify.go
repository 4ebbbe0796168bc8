package keyinfo

import (
	"fmt"

	"github.com/signatory-io/keyinfo/crypto/pkcs8"
	"github.com/signatory-io/keyinfo/inspect"
	"github.com/spf13/cobra"
)

func newClassifyCommand(ctx *rootContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE",
		Short: "Print the container type of a PKCS#8 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			body, err := inspect.DecodeInput(data)
			if err != nil {
				return err
			}
			kind, err := pkcs8.Classify(body)
			if err != nil {
				return err
			}
			ctx.logger.With("file", args[0]).Debugf("Classified as %v", kind)
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}
}
