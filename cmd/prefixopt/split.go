package main

import (
	"strconv"

	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newSplitCommand() *cobra.Command {
	var (
		output     string
		format     string
		filePath   string
		maxSubnets int
	)

	cmd := &cobra.Command{
		Use:   "split target_length [prefix]",
		Short: "Break a single prefix into subnets of target_length",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetLen, err := strconv.Atoi(args[0])
			if err != nil {
				return fatalf("invalid target length %q: %v", args[0], err)
			}

			var source cidrset.Prefix
			switch {
			case len(args) == 2:
				source, err = cidrset.ParsePrefix(args[1])
				if err != nil {
					return fatalf("invalid prefix %q: %v", args[1], err)
				}
			case filePath != "":
				prefixes, err := cidrset.ReadNetworks(filePath)
				if err != nil {
					return fatalf("%v", err)
				}
				if len(prefixes) == 0 {
					return fatalf("%s contains no prefixes", filePath)
				}
				source = prefixes[0]
			default:
				prefixes, err := readSource("")
				if err != nil {
					return fatalf("%v", err)
				}
				if len(prefixes) == 0 {
					return fatalf("stdin contains no prefixes")
				}
				source = prefixes[0]
			}

			result, err := cidrset.Split(source, targetLen, maxSubnets)
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
	cmd.Flags().StringVar(&filePath, "file", "", "read the source prefix from a file instead of stdin")
	cmd.Flags().IntVar(&maxSubnets, "max-subnets", 0, "cap on generated subnet count (0 = default)")
	return cmd
}
