package main

import (
	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newMergeCommand() *cobra.Command {
	var (
		output       string
		format       string
		keepComments bool
	)

	cmd := &cobra.Command{
		Use:   "merge file1 file2",
		Short: "Combine two prefix sets and re-canonicalize",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keepComments && format == "csv" {
				return fatalf("--keep-comments is mutually exclusive with --format csv")
			}

			w, closeFn, err := openOutput(output)
			if err != nil {
				return fatalf("%v", err)
			}
			defer func() { _ = closeFn() }()

			if keepComments {
				a, err := readAnnotatedSource(args[0])
				if err != nil {
					return fatalf("%v", err)
				}
				b, err := readAnnotatedSource(args[1])
				if err != nil {
					return fatalf("%v", err)
				}
				entries := cidrset.MergeAnnotated(append(a, b...))
				if err := writeAnnotated(w, entries); err != nil {
					return fatalf("%v", err)
				}
				return nil
			}

			a, err := readSource(args[0])
			if err != nil {
				return fatalf("%v", err)
			}
			b, err := readSource(args[1])
			if err != nil {
				return fatalf("%v", err)
			}
			result := cidrset.Canonicalize(append(a, b...))

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
