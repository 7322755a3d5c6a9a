package cidrset

// Family distinguishes the two address spaces a Prefix can live in.
type Family uint8

const (
	// FamilyV4 is the 32-bit address space.
	FamilyV4 Family = iota
	// FamilyV6 is the 128-bit address space.
	FamilyV6
)

// Width returns the address width in bits for the family.
func (f Family) Width() int {
	if f == FamilyV4 {
		return 32
	}
	return 128
}

func (f Family) String() string {
	if f == FamilyV4 {
		return "v4"
	}
	return "v6"
}
