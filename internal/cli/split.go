package cli

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arlovane/mersig/internal/fileutil"
	"github.com/arlovane/mersig/internal/output"
	"github.com/arlovane/mersig/internal/secure"
	"github.com/arlovane/mersig/internal/shamir"
	ssserr "github.com/arlovane/mersig/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command/flag variables
var (
	splitCmd = &cobra.Command{
		Use:   "split",
		Short: "Split a secret into shares",
		Long: `Split a secret into n shares such that any k of them reconstruct it,
using Shamir's (k,n)-threshold scheme over a Mersenne-prime field.

Examples:
  mersig split --secret-int 12345 --k 3 --n 7
  mersig split --secret-file seed.txt --k 3 --n 7 --level 1279
  mersig split --secret-file seed.txt --k 3 --n 7 --out ./shares
  mersig split --secret-file seed.txt --k 3 --n 7 --out ./shares --encrypt`,
		RunE: runSplit,
	}

	splitSecretFile string
	splitSecretInt  int64
	splitK          int
	splitN          int
	splitLevel      int
	splitLegacy     bool
	splitOutDir     string
	splitEncrypt    bool
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVar(&splitSecretFile, "secret-file", "", "path to a file containing the secret bytes")
	splitCmd.Flags().Int64Var(&splitSecretInt, "secret-int", 0, "non-negative integer secret")
	splitCmd.Flags().IntVar(&splitK, "k", 0, "threshold: number of shares required to reconstruct")
	splitCmd.Flags().IntVar(&splitN, "n", 0, "total number of shares to produce")
	splitCmd.Flags().IntVar(&splitLevel, "level", 0, "security level (Mersenne exponent), raised if the secret needs more; 0 uses the configured default")
	splitCmd.Flags().BoolVar(&splitLegacy, "legacy", false, "allow security levels below the modern floor for this split")
	splitCmd.Flags().StringVar(&splitOutDir, "out", "", "write one file per share into this directory instead of stdout")
	splitCmd.Flags().BoolVar(&splitEncrypt, "encrypt", false,
		"write a single password-encrypted bundle.age file into --out instead of one file per share")
}

func runSplit(cmd *cobra.Command, _ []string) error {
	if splitLegacy {
		shamir.SetLegacyMode(true)
	}

	if splitK == 0 {
		return ssserr.WithSuggestion(ssserr.ErrInvalidArgument, "--k is required")
	}
	if splitN == 0 {
		return ssserr.WithSuggestion(ssserr.ErrInvalidArgument, "--n is required")
	}
	if splitEncrypt && splitOutDir == "" {
		return ssserr.WithSuggestion(ssserr.ErrInvalidArgument, "--encrypt requires --out")
	}

	secret, err := resolveSplitSecret(cmd)
	if err != nil {
		return err
	}

	splitter := shamir.NewSplitter()
	if cfg != nil {
		_ = splitter.SetLevel(cfg.Shamir.DefaultLevel)
	}

	var ss shamir.ShareSet
	switch {
	case splitLevel != 0:
		ss, err = splitter.MakeSharesAt(splitK, splitN, secret, splitLevel)
	default:
		ss, err = splitter.MakeSharesWithSecret(splitK, splitN, secret)
	}
	if err != nil {
		return err
	}

	jsonOutput := formatter != nil && formatter.Format() == output.FormatJSON

	switch {
	case splitOutDir != "" && splitEncrypt:
		if err := writeEncryptedBundle(splitOutDir, ss); err != nil {
			return err
		}
		if !jsonOutput {
			output.Successf("wrote encrypted bundle to %s", filepath.Join(splitOutDir, "bundle.age"))
		}
		return nil
	case splitOutDir != "":
		if err := writeShareFiles(splitOutDir, ss); err != nil {
			return err
		}
		if !jsonOutput {
			output.Successf("wrote %d share files to %s", len(ss.Points()), splitOutDir)
		}
		return nil
	}

	w := cmd.OutOrStdout()
	if formatter != nil && formatter.Format() == output.FormatJSON {
		return writeJSON(w, splitSharesJSON(splitter, ss))
	}
	outln(w, ss.String())
	return nil
}

func resolveSplitSecret(cmd *cobra.Command) (shamir.Secret, error) {
	switch {
	case splitSecretFile != "":
		// #nosec G304 -- path is an explicit, user-supplied CLI argument
		data, err := os.ReadFile(splitSecretFile)
		if err != nil {
			return shamir.Secret{}, ssserr.Wrap(err, "reading secret file")
		}
		return shamir.NewSecretFromBytes(data)
	case cmd.Flags().Changed("secret-int"):
		return shamir.NewSecretFromInt(splitSecretInt)
	default:
		return shamir.Secret{}, ssserr.WithSuggestion(
			ssserr.ErrInvalidArgument,
			"one of --secret-file or --secret-int is required",
		)
	}
}

func writeShareFiles(dir string, ss shamir.ShareSet) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ssserr.Wrap(err, "creating output directory")
	}

	for i, p := range ss.Points() {
		path := filepath.Join(dir, "share-"+strconv.Itoa(i+1)+".txt")
		if err := fileutil.WriteAtomic(path, []byte(p.String()+"\n"), 0o600); err != nil {
			return ssserr.Wrap(err, "writing share file %s", path)
		}
	}
	return nil
}

func writeEncryptedBundle(dir string, ss shamir.ShareSet) error {
	password, err := promptNewPassword()
	if err != nil {
		return err
	}
	defer secure.ZeroBytes(password)

	ciphertext, err := secure.EncryptBundle([]byte(ss.String()), string(password))
	if err != nil {
		return ssserr.Wrap(err, "encrypting share bundle")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return ssserr.Wrap(err, "creating output directory")
	}

	path := filepath.Join(dir, "bundle.age")
	if err := fileutil.WriteAtomic(path, ciphertext, 0o600); err != nil {
		return ssserr.Wrap(err, "writing encrypted bundle %s", path)
	}
	return nil
}

type splitSharesOutput struct {
	Level  int      `json:"level"`
	K      int      `json:"k"`
	N      int      `json:"n"`
	Shares []string `json:"shares"`
}

func splitSharesJSON(s *shamir.Splitter, ss shamir.ShareSet) splitSharesOutput {
	points := ss.Points()
	shares := make([]string, len(points))
	for i, p := range points {
		shares[i] = p.String()
	}
	return splitSharesOutput{
		Level:  s.Level(),
		K:      splitK,
		N:      splitN,
		Shares: shares,
	}
}
