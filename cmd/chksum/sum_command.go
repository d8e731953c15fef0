package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"chksum/internal/checkfile"
	"chksum/internal/chksum"
	"chksum/internal/fileutil"
	"chksum/internal/logging"
	"chksum/internal/md5"
	"chksum/internal/sumdb"
)

type sumResult struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
	Kind   string `json:"kind"` // "file", "dir", or "stdin"

	digest md5.Digest
}

func newSumCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var uppercase bool
	var noCache bool
	var outputFile string

	cmd := &cobra.Command{
		Use:   "sum [path ...]",
		Short: "Compute MD5 digests of files, directories, or stdin",
		Long: strings.TrimSpace(`
Compute MD5 digests. Each argument may be a file or a directory; a
directory is digested as a deterministic manifest of its contents. With
no arguments (or "-") the digest of stdin is computed. Plain output is
md5sum-compatible.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.loggerValue(), "sum")

			store, err := ctx.openStore(noCache)
			if err != nil {
				// A busy or broken cache must not block hashing.
				logger.Warn("digest cache unavailable", logging.Error(err))
				store = nil
			}
			if store != nil {
				defer store.Close()
			}

			if len(args) == 0 {
				args = []string{"-"}
			}

			var results []sumResult
			var failed int
			for _, arg := range args {
				result, err := digestOne(cmd, store, arg, logger)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "chksum: %v\n", err)
					continue
				}
				results = append(results, result)
			}

			upper := uppercase || cfg.Output.Uppercase
			format := resolveFormat(formatFlag, cfg.Output.Format, cmd.Flags().Changed("format"))
			if err := renderResults(cmd, format, upper, results); err != nil {
				return err
			}

			if outputFile != "" {
				if err := writeCheckfile(outputFile, results); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs could not be hashed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: plain, table, or json")
	cmd.Flags().BoolVarP(&uppercase, "uppercase", "U", false, "Render digests in uppercase hex")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the digest cache")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Also write an md5sum-format checksum file")
	return cmd
}

func digestOne(cmd *cobra.Command, store *sumdb.Store, arg string, logger *slog.Logger) (sumResult, error) {
	if arg == "-" {
		digest, err := chksum.SumReader(cmd.InOrStdin())
		if err != nil {
			return sumResult{}, fmt.Errorf("stdin: %w", err)
		}
		return newSumResult("-", "stdin", digest), nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		return sumResult{}, err
	}

	var digest md5.Digest
	kind := "file"
	if info.IsDir() {
		kind = "dir"
		digest, err = chksum.SumTree(arg)
	} else {
		digest, err = sumdb.SumFile(cmd.Context(), store, arg, logger)
	}
	if err != nil {
		return sumResult{}, err
	}
	logger.Debug("digest computed",
		logging.String(logging.FieldPath, arg),
		logging.String(logging.FieldDigest, digest.Hex()))
	return newSumResult(arg, kind, digest), nil
}

func newSumResult(path, kind string, digest md5.Digest) sumResult {
	return sumResult{Path: path, Digest: digest.Hex(), Kind: kind, digest: digest}
}

// resolveFormat picks the output format: an explicit flag wins, then the
// config default, and plain output upgrades to a table on a terminal.
func resolveFormat(flagValue, configValue string, flagSet bool) string {
	if flagSet && flagValue != "" {
		return strings.ToLower(flagValue)
	}
	format := configValue
	if format == "" {
		format = "plain"
	}
	if format == "plain" && stdoutIsTerminal() {
		return "table"
	}
	return format
}

func renderResults(cmd *cobra.Command, format string, uppercase bool, results []sumResult) error {
	out := cmd.OutOrStdout()
	render := func(d md5.Digest) string {
		if uppercase {
			return d.HexUpper()
		}
		return d.Hex()
	}

	switch format {
	case "json":
		payload := make([]sumResult, len(results))
		copy(payload, results)
		for i := range payload {
			payload[i].Digest = render(payload[i].digest)
		}
		return writeJSON(cmd, payload)
	case "table":
		headers := []string{"PATH", "KIND", "MD5"}
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{r.Path, r.Kind, render(r.digest)})
		}
		if len(rows) > 0 {
			fmt.Fprintln(out, renderTable(headers, rows))
		}
		return nil
	case "plain":
		for _, r := range results {
			if _, err := fmt.Fprintf(out, "%s  %s\n", render(r.digest), r.Path); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("output format: unsupported value %q", format)
	}
}

// writeCheckfile records the results in md5sum format for later `chksum
// verify` runs. Stdin has no stable path and is skipped.
func writeCheckfile(path string, results []sumResult) error {
	entries := make([]checkfile.Entry, 0, len(results))
	for _, r := range results {
		if r.Kind == "stdin" {
			continue
		}
		entries = append(entries, checkfile.Entry{Path: r.Path, Digest: r.digest})
	}
	if err := fileutil.WriteFileAtomic(path, checkfile.Format(entries), 0o644); err != nil {
		return fmt.Errorf("write checksum file %s: %w", path, err)
	}
	return nil
}
