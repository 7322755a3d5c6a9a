package main

import (
	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newIntersectCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "intersect file1 file2",
		Short: "Keep only addresses present in both sets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readSource(args[0])
			if err != nil {
				return fatalf("%v", err)
			}
			b, err := readSource(args[1])
			if err != nil {
				return fatalf("%v", err)
			}
			result := cidrset.Intersect(a, b)

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
