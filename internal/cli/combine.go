package cli

import (
	"encoding/hex"
	"os"

	"github.com/spf13/cobra"

	"github.com/arlovane/mersig/internal/output"
	"github.com/arlovane/mersig/internal/secure"
	"github.com/arlovane/mersig/internal/shamir"
	ssserr "github.com/arlovane/mersig/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command/flag variables
var (
	combineCmd = &cobra.Command{
		Use:   "combine",
		Short: "Reconstruct a secret from shares",
		Long: `Reconstruct a secret from at least k of the shares produced by split.

Examples:
  mersig combine --share 01-64 --share 02-C8 --share 03-2C
  mersig combine --shares-file shares.txt --as utf8
  mersig combine --bundle ./shares/bundle.age`,
		RunE: runCombine,
	}

	combineShares     []string
	combineSharesFile string
	combineBundle     string
	combineAs         string
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().StringArrayVar(&combineShares, "share", nil, "a single share, in HEX-HEX form (repeatable)")
	combineCmd.Flags().StringVar(&combineSharesFile, "shares-file", "", "path to a file of newline-separated shares")
	combineCmd.Flags().StringVar(&combineBundle, "bundle", "", "path to a bundle.age file produced by split --encrypt")
	combineCmd.Flags().StringVar(&combineAs, "as", "hex", "how to render the reconstructed secret: bytes, hex, or utf8")
}

func runCombine(cmd *cobra.Command, _ []string) error {
	input, err := resolveCombineInput()
	if err != nil {
		return err
	}

	combiner := shamir.NewCombiner()
	secret, err := combiner.Reconstruct(input)
	if err != nil {
		return err
	}

	rendered, err := renderSecret(secret)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if formatter != nil && formatter.Format() == output.FormatJSON {
		return writeJSON(w, map[string]any{
			"level":  combiner.Level(),
			"secret": rendered,
			"as":     combineAs,
		})
	}
	outln(w, rendered)
	return nil
}

func resolveCombineInput() (any, error) {
	switch {
	case combineBundle != "":
		return decryptBundleShares(combineBundle)
	case combineSharesFile != "":
		// #nosec G304 -- path is an explicit, user-supplied CLI argument
		data, err := os.ReadFile(combineSharesFile)
		if err != nil {
			return nil, ssserr.Wrap(err, "reading shares file")
		}
		return string(data), nil
	case len(combineShares) > 0:
		return combineShares, nil
	default:
		return nil, ssserr.WithSuggestion(
			ssserr.ErrInvalidArgument,
			"one of --share (repeated), --shares-file, or --bundle is required",
		)
	}
}

func decryptBundleShares(path string) (string, error) {
	// #nosec G304 -- path is an explicit, user-supplied CLI argument
	ciphertext, err := os.ReadFile(path)
	if err != nil {
		return "", ssserr.Wrap(err, "reading bundle file")
	}

	password, err := promptPassword("Enter decryption password: ")
	if err != nil {
		return "", err
	}
	defer secure.ZeroBytes(password)

	plaintext, err := secure.DecryptBundle(ciphertext, string(password))
	if err != nil {
		return "", ssserr.WithSuggestion(ssserr.ErrBundleDecryption, "check the password and try again")
	}

	return string(plaintext), nil
}

func renderSecret(secret shamir.Secret) (string, error) {
	b := secret.Bytes()
	switch combineAs {
	case "hex":
		return hex.EncodeToString(b), nil
	case "utf8":
		return string(b), nil
	case "bytes":
		return string(b), nil
	default:
		return "", ssserr.WithDetails(ssserr.ErrInvalidFormat, map[string]string{
			"value": combineAs,
			"valid": "bytes, hex, or utf8",
		})
	}
}
