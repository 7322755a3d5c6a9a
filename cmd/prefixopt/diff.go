package main

import (
	"fmt"
	"io"

	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newDiffCommand() *cobra.Command {
	var (
		output   string
		summary  bool
		mode     string
		ipv4Only bool
		ipv6Only bool
	)

	cmd := &cobra.Command{
		Use:   "diff new_file old_file",
		Short: "Compare two prefix sets by address-space membership",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			newPrefixes, err := readSource(args[0])
			if err != nil {
				return fatalf("%v", err)
			}
			oldPrefixes, err := readSource(args[1])
			if err != nil {
				return fatalf("%v", err)
			}

			if ipv4Only || ipv6Only {
				flags := cidrset.FilterFlags{IPv4Only: ipv4Only, IPv6Only: ipv6Only}
				newPrefixes = cidrset.Collect(cidrset.Apply(cidrset.FromSlice(newPrefixes), flags))
				oldPrefixes = cidrset.Collect(cidrset.Apply(cidrset.FromSlice(oldPrefixes), flags))
			}

			result, err := cidrset.Diff(oldPrefixes, newPrefixes)
			if err != nil {
				return fatalf("%v", err)
			}

			w, closeFn, err := openOutput(output)
			if err != nil {
				return fatalf("%v", err)
			}
			defer func() { _ = closeFn() }()

			if summary {
				_, err = fmt.Fprintf(w, "added=%d removed=%d unchanged=%d\n",
					len(result.Added), len(result.Removed), len(result.Unchanged))
				if err != nil {
					return fatalf("%v", err)
				}
				return nil
			}

			return writeDiffReport(w, result, mode)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&summary, "summary", false, "print only the added/removed/unchanged counts")
	cmd.Flags().StringVar(&mode, "mode", "changes", "which categories to print: changes|added|removed|unchanged|all")
	cmd.Flags().BoolVar(&ipv4Only, "ipv4-only", false, "compare only IPv4 prefixes")
	cmd.Flags().BoolVar(&ipv6Only, "ipv6-only", false, "compare only IPv6 prefixes")
	return cmd
}

func writeDiffReport(w io.Writer, result cidrset.DiffResult, mode string) error {
	printTagged := func(tag string, prefixes []cidrset.Prefix) error {
		for _, p := range prefixes {
			if _, err := fmt.Fprintf(w, "%s %s\n", tag, p.String()); err != nil {
				return fatalf("%v", err)
			}
		}
		return nil
	}

	switch mode {
	case "added":
		return printTagged("+", result.Added)
	case "removed":
		return printTagged("-", result.Removed)
	case "unchanged":
		return printTagged("=", result.Unchanged)
	case "all":
		if err := printTagged("+", result.Added); err != nil {
			return err
		}
		if err := printTagged("-", result.Removed); err != nil {
			return err
		}
		return printTagged("=", result.Unchanged)
	case "changes", "":
		if err := printTagged("+", result.Added); err != nil {
			return err
		}
		return printTagged("-", result.Removed)
	default:
		return fatalf("unknown diff mode %q", mode)
	}
}
