package cidrset

// Hard limits enforced by the owning component; exceeding any is fatal.
const (
	// MaxFileSizeBytes is the largest input file the reader will open.
	MaxFileSizeBytes = 700 * 1024 * 1024

	// MaxLineCount is the largest number of text lines (or CSV rows) the
	// reader will process from a single source.
	MaxLineCount = 8_000_000

	// MaxJSONItems is the largest number of JSON array items the reader
	// will process from a single source.
	MaxJSONItems = 8_000_000

	// MaxOutputFragments bounds Subtract's worst-case fragment count.
	MaxOutputFragments = 2_000_000

	// DefaultMaxSubnets bounds Split's worst-case subnet count unless the
	// caller supplies its own positive cap.
	DefaultMaxSubnets = 4_000_000

	// PathProbeLimit is the cheap-probing threshold below which a string is
	// considered for stat(2) as a candidate file path.
	PathProbeLimit = 255
)
