package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arlovane/mersig/internal/output"
	"github.com/arlovane/mersig/internal/shamir"
	ssserr "github.com/arlovane/mersig/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command/flag variables
var (
	levelCmd = &cobra.Command{
		Use:   "level",
		Short: "Inspect security levels",
		Long:  `Utilities for working with mersig security levels (Mersenne exponents).`,
	}

	levelSnapCmd = &cobra.Command{
		Use:   "snap <v>",
		Short: "Snap a requested level to the next permitted Mersenne exponent",
		Long: `Print the security level that split/combine would actually use for a
requested value v: rejected if below the absolute floor, raised to the
modern floor unless --legacy is given, then rounded up to the next known
Mersenne-prime exponent.

Examples:
  mersig level snap 40
  mersig level snap 7 --legacy`,
		Args: cobra.ExactArgs(1),
		RunE: runLevelSnap,
	}

	levelSnapLegacy bool
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(levelCmd)
	levelCmd.AddCommand(levelSnapCmd)

	levelSnapCmd.Flags().BoolVar(&levelSnapLegacy, "legacy", false, "snap as if LEGACY_MODE were enabled")
}

func runLevelSnap(cmd *cobra.Command, args []string) error {
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return ssserr.WithDetails(ssserr.ErrInvalidArgument, map[string]string{
			"value": args[0],
			"valid": "an integer",
		})
	}

	legacy := levelSnapLegacy || shamir.LegacyMode()
	snapped, err := shamir.SnapLevel(v, legacy)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if formatter != nil && formatter.Format() == output.FormatJSON {
		return writeJSON(w, map[string]int{"requested": v, "level": snapped})
	}
	outln(w, snapped)
	return nil
}
