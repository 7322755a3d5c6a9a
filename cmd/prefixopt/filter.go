package main

import (
	"github.com/prefixopt/cidrset"
	"github.com/spf13/cobra"
)

func newFilterCommand() *cobra.Command {
	var (
		output         string
		format         string
		noPrivate      bool
		noLoopback     bool
		noLinkLocal    bool
		noMulticast    bool
		noReserved     bool
		noUnspecified  bool
		bogons         bool
	)

	cmd := &cobra.Command{
		Use:   "filter [file]",
		Short: "Drop prefixes matching classification rules (private, loopback, bogons, ...)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			flags := cidrset.FilterFlags{
				ExcludePrivate:     noPrivate,
				ExcludeLoopback:    noLoopback,
				ExcludeLinkLocal:   noLinkLocal,
				ExcludeMulticast:   noMulticast,
				ExcludeReserved:    noReserved,
				ExcludeUnspecified: noUnspecified,
			}
			if bogons {
				flags = flags.Bogons()
			}

			prefixes, err := readSource(path)
			if err != nil {
				return fatalf("%v", err)
			}

			result := cidrset.Collect(cidrset.Apply(cidrset.FromSlice(prefixes), flags))

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
	cmd.Flags().BoolVar(&noPrivate, "no-private", false, "exclude RFC 1918 / ULA ranges")
	cmd.Flags().BoolVar(&noLoopback, "no-loopback", false, "exclude loopback ranges")
	cmd.Flags().BoolVar(&noLinkLocal, "no-link-local", false, "exclude link-local ranges")
	cmd.Flags().BoolVar(&noMulticast, "no-multicast", false, "exclude multicast ranges")
	cmd.Flags().BoolVar(&noReserved, "no-reserved", false, "exclude IETF-reserved ranges")
	cmd.Flags().BoolVar(&noUnspecified, "no-unspecified", false, "exclude the unspecified address")
	cmd.Flags().BoolVar(&bogons, "bogons", false, "shorthand for all exclude_* flags")
	return cmd
}
