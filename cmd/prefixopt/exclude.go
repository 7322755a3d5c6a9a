package main

import (
	"os"

	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newExcludeCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "exclude target file",
		Short: "Subtract target's addresses from file (file may be - for stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(args[0])
			if err != nil {
				return fatalf("invalid target %q: %v", args[0], err)
			}

			var basePath string
			if args[1] != "-" {
				basePath = args[1]
			}
			base, err := readSource(basePath)
			if err != nil {
				return fatalf("%v", err)
			}

			result, err := cidrset.Subtract(base, target)
			if err != nil {
				return fatalf("%v", err)
			}

			w, closeFn, err := openOutput(output)
			if err != nil {
				return fatalf("%v", err)
			}
			defer func() { _ = closeFn() }()

			if err := writeList(w, result, format); err != nil {
				return fatalf("%v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "list", "output format: list|csv")
	return cmd
}

// resolveTarget loads the exclude set for exclude: target may itself
// be a path to a prefix-list file, or a single CIDR/address literal.
func resolveTarget(target string) ([]cidrset.Prefix, error) {
	if len(target) < cidrset.PathProbeLimit {
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			return cidrset.ReadNetworks(target)
		}
	}
	p, err := cidrset.ParsePrefix(target)
	if err != nil {
		return nil, err
	}
	return []cidrset.Prefix{p}, nil
}
