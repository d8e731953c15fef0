package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chksum/internal/fileutil"
	"chksum/internal/logging"
)

func newCopyCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <src> <dst>",
		Short: "Copy a file and verify the copy by MD5",
		Long: "Copy src to dst while hashing both sides of the transfer. The\n" +
			"destination is removed if its size or digest disagrees with the\n" +
			"source.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.loggerValue(), "copy")

			src, dst := args[0], args[1]
			if err := fileutil.CopyFileVerified(src, dst); err != nil {
				return fmt.Errorf("copy %s to %s: %w", src, dst, err)
			}
			logger.Info("verified copy complete",
				logging.String("src", src),
				logging.String("dst", dst))
			fmt.Fprintf(cmd.OutOrStdout(), "copied %s -> %s (verified)\n", src, dst)
			return nil
		},
	}
	return cmd
}
