package keyinfo

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signatory-io/keyinfo/inspect"
	"github.com/signatory-io/keyinfo/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newInspectCommand(ctx *rootContext) *cobra.Command {
	var output, public string

	cmd := cobra.Command{
		Use:   "inspect FILE",
		Short: "Decode a PKCS#8 container (PEM or DER, \"-\" for stdin) and print its report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			l := ctx.logger.With("file", args[0])
			opts := inspect.Options{
				RevealPrivate: ctx.conf.RevealPrivate,
				Logger:        l,
			}
			if public != "" {
				buf, err := os.ReadFile(public)
				if err != nil {
					return err
				}
				if opts.PublicKey, err = inspect.DecodePublicKey(buf); err != nil {
					return err
				}
			}
			report, err := inspect.Inspect(data, &opts)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := inspect.Render(&buf, report, ctx.conf.Format); err != nil {
				return err
			}
			if output != "" {
				if err := utils.AtomicWrite(output, buf.Bytes(), 0600); err != nil {
					return err
				}
				l.With("output", output).Info("Report written")
			} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
				return err
			}

			if ctx.conf.RandomArt && report.Fingerprint != nil && isTerminal(cmd.ErrOrStderr()) {
				fmt.Fprint(cmd.ErrOrStderr(), inspect.RandomArt(artTitle(report), report.Fingerprint))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVarP(&public, "public", "p", "", "Public key of the same key pair (PEM or DER SubjectPublicKeyInfo)")
	cmd.MarkFlagFilename("output")
	cmd.MarkFlagFilename("public")
	return &cmd
}

func artTitle(r *inspect.Report) string {
	switch {
	case r.Plain != nil && r.Plain.RSA != nil:
		return fmt.Sprintf("RSA %d", r.Plain.RSA.Bits)
	case r.Plain != nil && r.Plain.DSA != nil:
		return "DSA"
	default:
		return ""
	}
}
