package main

import (
	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newOptimizeCommand() *cobra.Command {
	var (
		output       string
		format       string
		ipv4Only     bool
		ipv6Only     bool
		keepComments bool
	)

	cmd := &cobra.Command{
		Use:   "optimize [file]",
		Short: "Canonicalize a prefix set: sort, dedup, remove nested, aggregate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keepComments && format == "csv" {
				return fatalf("--keep-comments is mutually exclusive with --format csv")
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			flags := cidrset.FilterFlags{IPv4Only: ipv4Only, IPv6Only: ipv6Only}

			w, closeFn, err := openOutput(output)
			if err != nil {
				return fatalf("%v", err)
			}
			defer func() { _ = closeFn() }()

			if keepComments {
				entries, err := readAnnotatedSource(path)
				if err != nil {
					return fatalf("%v", err)
				}
				kept := entries[:0]
				for _, e := range entries {
					if (ipv4Only && e.Prefix.Family() != cidrset.FamilyV4) ||
						(ipv6Only && e.Prefix.Family() != cidrset.FamilyV6) {
						continue
					}
					kept = append(kept, e)
				}
				entries = cidrset.MergeAnnotated(kept)
				if err := writeAnnotated(w, entries); err != nil {
					return fatalf("%v", err)
				}
				return nil
			}

			prefixes, err := readSource(path)
			if err != nil {
				return fatalf("%v", err)
			}
			seq := cidrset.Apply(cidrset.FromSlice(prefixes), flags)
			result := cidrset.CanonicalizeSeq(seq)

			if err := writeList(w, result, format); err != nil {
				return fatalf("%v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "list", "output format: list|csv")
	cmd.Flags().BoolVar(&ipv4Only, "ipv4-only", false, "drop every IPv6 prefix")
	cmd.Flags().BoolVar(&ipv6Only, "ipv6-only", false, "drop every IPv4 prefix")
	cmd.Flags().BoolVar(&keepComments, "keep-comments", false, "preserve trailing comments; disables aggregation")
	return cmd
}
