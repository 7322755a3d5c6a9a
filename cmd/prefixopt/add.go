package main

import (
	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newAddCommand() *cobra.Command {
	var (
		output       string
		format       string
		keepComments bool
	)

	cmd := &cobra.Command{
		Use:   "add new_prefix file",
		Short: "Add a single prefix to an existing set and re-canonicalize",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keepComments && format == "csv" {
				return fatalf("--keep-comments is mutually exclusive with --format csv")
			}

			newPrefix, err := cidrset.ParsePrefix(args[0])
			if err != nil {
				return fatalf("invalid prefix %q: %v", args[0], err)
			}

			w, closeFn, err := openOutput(output)
			if err != nil {
				return fatalf("%v", err)
			}
			defer func() { _ = closeFn() }()

			if keepComments {
				entries, err := readAnnotatedSource(args[1])
				if err != nil {
					return fatalf("%v", err)
				}
				entries = append(entries, cidrset.Annotated{Prefix: newPrefix})
				entries = cidrset.MergeAnnotated(entries)
				if err := writeAnnotated(w, entries); err != nil {
					return fatalf("%v", err)
				}
				return nil
			}

			prefixes, err := readSource(args[1])
			if err != nil {
				return fatalf("%v", err)
			}
			prefixes = append(prefixes, newPrefix)
			result := cidrset.Canonicalize(prefixes)

			if err := writeList(w, result, format); err != nil {
				return fatalf("%v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "list", "output format: list|csv")
	cmd.Flags().BoolVar(&keepComments, "keep-comments", false, "preserve trailing comments; disables aggregation")
	return cmd
}
