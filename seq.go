package cidrset

import "iter"

// Seq is the lazy stream type every pipeline layer consumes and produces
// (§2): a sequence of prefixes with no implicit buffering. This is the same
// range-over-func shape gaissmai/bart uses for its table iterators
// (Table.All, Table.Subnets, Table.Supernets).
type Seq = iter.Seq[Prefix]

// FromSlice adapts a materialized slice into a Seq.
func FromSlice(prefixes []Prefix) Seq {
	return func(yield func(Prefix) bool) {
		for _, p := range prefixes {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect drains seq into a slice. This is the one place streaming
// necessarily stops (§5): anything downstream of Collect works on a
// materialized buffer.
func Collect(seq Seq) []Prefix {
	out := make([]Prefix, 0)
	seq(func(p Prefix) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Filter returns a Seq yielding only the prefixes of seq for which keep
// returns true. Pure streaming — O(1) memory beyond the caller's own state.
func Filter(seq Seq, keep func(Prefix) bool) Seq {
	return func(yield func(Prefix) bool) {
		seq(func(p Prefix) bool {
			if keep(p) {
				return yield(p)
			}
			return true
		})
	}
}

// Concat chains multiple sequences into one, in order.
func Concat(seqs ...Seq) Seq {
	return func(yield func(Prefix) bool) {
		for _, s := range seqs {
			cont := true
			s(func(p Prefix) bool {
				if !yield(p) {
					cont = false
					return false
				}
				return true
			})
			if !cont {
				return
			}
		}
	}
}
