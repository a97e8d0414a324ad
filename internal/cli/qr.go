package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arlovane/mersig/internal/output"
	"github.com/arlovane/mersig/internal/shamir"
	ssserr "github.com/arlovane/mersig/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var qrCmd = &cobra.Command{
	Use:   "qr <share>",
	Short: "Render a share as a terminal QR code",
	Long: `Render a single share as a QR code in the terminal, for offline paper
backup alongside (or instead of) the text form printed by split.

Example:
  mersig qr 01-64`,
	Args: cobra.ExactArgs(1),
	RunE: runQR,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(qrCmd)
}

func runQR(_ *cobra.Command, args []string) error {
	if _, err := shamir.ParsePoint(args[0]); err != nil {
		return err
	}

	if !output.CanRenderQR(os.Stdout) {
		return ssserr.WithSuggestion(
			ssserr.ErrIllegalState,
			"stdout is not a terminal; run this in an interactive terminal to see the QR code",
		)
	}

	return output.RenderQR(os.Stdout, args[0], output.DefaultQRConfig())
}
