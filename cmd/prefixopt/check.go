package main

import (
	"fmt"

	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check target [file]",
		Short: "Report whether target is covered by a prefix set",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 2 {
				path = args[1]
			}

			prefixes, err := readSource(path)
			if err != nil {
				return fatalf("%v", err)
			}

			ok, err := cidrset.Check(cidrset.FromSlice(prefixes), args[0])
			if err != nil {
				return fatalf("invalid target %q: %v", args[0], err)
			}

			fmt.Println(ok)
			return nil
		},
	}
	return cmd
}
