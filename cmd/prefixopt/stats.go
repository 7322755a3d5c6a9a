package main

import (
	"fmt"
	"sort"

	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Report counts and aggregation ratio for a prefix set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			prefixes, err := readSource(path)
			if err != nil {
				return fatalf("%v", err)
			}

			result := cidrset.Canonicalize(prefixes)
			report := cidrset.Stats(result, len(prefixes))

			fmt.Printf("original prefixes: %d\n", report.OriginalCount)
			fmt.Printf("canonical prefixes: %d (IPv4=%d, IPv6=%d)\n",
				report.TotalCount, report.IPv4Count, report.IPv6Count)
			fmt.Printf("reduction ratio: %.2f%%\n", report.ReductionRatio*100)

			if details {
				fmt.Printf("approx memory: %d bytes\n", report.ApproxBytes)
				fmt.Printf("addresses covered: IPv4=%s IPv6=%s\n", report.AddressesV4, report.AddressesV6)
				printLengthHistogram(cidrset.FamilyV4, report.LengthHistogram[cidrset.FamilyV4])
				printLengthHistogram(cidrset.FamilyV6, report.LengthHistogram[cidrset.FamilyV6])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "include memory estimate, addresses covered and prefix-length histograms")
	return cmd
}

// printLengthHistogram prints a family's prefix-length counts in ascending
// order of length.
func printLengthHistogram(fam cidrset.Family, counts map[int]int) {
	if len(counts) == 0 {
		return
	}
	lengths := make([]int, 0, len(counts))
	for l := range counts {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	fmt.Printf("%s length histogram:\n", fam)
	for _, l := range lengths {
		fmt.Printf("  /%d: %d\n", l, counts[l])
	}
}
