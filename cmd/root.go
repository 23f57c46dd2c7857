package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"heic2jpg/internal/config"
	"heic2jpg/internal/converter"
	"heic2jpg/pkg/imgutil"
)

// resolveConfig is swapped in tests to point at a temporary folder.
var resolveConfig = config.Default

var rootCmd = &cobra.Command{
	Use:   "heic2jpg",
	Short: "heic2jpg - convert HEIC photos in pictures/ to JPEG",
	Long: "heic2jpg converts every .heic/.HEIC file in the pictures folder next to the executable " +
		"into a .jpg with the same name (quality 90). Existing JPEG and PNG files are skipped.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		if err := cfg.EnsureDir(); err != nil {
			return err
		}

		_, err = converter.Run(cfg, imgutil.DefaultCodec{}, converter.TextReporter{
			Out: cmd.OutOrStdout(),
			Err: cmd.ErrOrStderr(),
		})
		return err
	},
}

// Execute exits 1 when any file failed to convert. Per-file failures were
// already printed, so nothing more is written for them.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, converter.ErrConversionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
