package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"chksum/internal/checkfile"
	"chksum/internal/chksum"
	"chksum/internal/logging"
	"chksum/internal/md5"
	"chksum/internal/sumdb"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var quiet bool
	var noCache bool

	cmd := &cobra.Command{
		Use:   "verify <checkfile> [checkfile ...]",
		Short: "Verify recorded MD5 digests against current contents",
		Long: "Read md5sum-format checksum files and recompute each recorded\n" +
			"digest. Mismatches and unreadable paths are reported per line and\n" +
			"summarized in the exit status.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.loggerValue(), "verify")

			store, err := ctx.openStore(noCache)
			if err != nil {
				logger.Warn("digest cache unavailable", logging.Error(err))
				store = nil
			}
			if store != nil {
				defer store.Close()
			}

			var mismatched, unreadable int
			for _, checkPath := range args {
				entries, err := readCheckfile(checkPath)
				if err != nil {
					return err
				}
				for _, entry := range entries {
					switch verifyEntry(cmd, store, entry, logger) {
					case verifyOK:
						if !quiet {
							fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", entry.Path)
						}
					case verifyMismatch:
						mismatched++
						fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", entry.Path)
					case verifyUnreadable:
						unreadable++
						fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED open or read\n", entry.Path)
					}
				}
			}

			if mismatched > 0 || unreadable > 0 {
				return verifySummaryError(mismatched, unreadable)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report failures")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the digest cache")
	return cmd
}

type verifyOutcome int

const (
	verifyOK verifyOutcome = iota
	verifyMismatch
	verifyUnreadable
)

func verifyEntry(cmd *cobra.Command, store *sumdb.Store, entry checkfile.Entry, logger *slog.Logger) verifyOutcome {
	digest, err := recomputeDigest(cmd, store, entry.Path, logger)
	if err != nil {
		return verifyUnreadable
	}
	if digest != entry.Digest {
		logger.Debug("digest mismatch",
			logging.String(logging.FieldPath, entry.Path),
			logging.String("expected", entry.Digest.Hex()),
			logging.String("actual", digest.Hex()))
		return verifyMismatch
	}
	return verifyOK
}

func recomputeDigest(cmd *cobra.Command, store *sumdb.Store, path string, logger *slog.Logger) (md5.Digest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return md5.Digest{}, err
	}
	if info.IsDir() {
		return chksum.SumTree(path)
	}
	return sumdb.SumFile(cmd.Context(), store, path, logger)
}

func readCheckfile(path string) ([]checkfile.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checksum file: %w", err)
	}
	defer f.Close()

	entries, err := checkfile.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

func verifySummaryError(mismatched, unreadable int) error {
	switch {
	case mismatched > 0 && unreadable > 0:
		return fmt.Errorf("%d computed checksums did not match, %d listed paths could not be read", mismatched, unreadable)
	case mismatched > 0:
		return fmt.Errorf("%d computed checksums did not match", mismatched)
	default:
		return fmt.Errorf("%d listed paths could not be read", unreadable)
	}
}
