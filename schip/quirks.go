package schip

// Quirks are the behavioural divergences between historical CHIP-8
// interpreters. ROMs written against a particular interpreter depend on a
// particular combination, so every toggle is independent. The zero value is
// the original COSMAC VIP behaviour; NewQuirks is what SUPER-CHIP 1.1 did.
type Quirks struct {
	// Shift makes 8xy6/8xyE shift Vx in place instead of shifting Vy into Vx.
	Shift bool

	// LoadStore leaves I unchanged after Fx55/Fx65 instead of advancing it
	// by x+1.
	LoadStore bool

	// Jump makes Bnnn use Vx (x = high nibble of nnn) as the offset register
	// instead of V0.
	Jump bool

	// Clip clips sprites at the display edge instead of wrapping them.
	Clip bool

	// Logic leaves VF untouched after 8xy1/8xy2/8xy3. When false, VF is
	// forced to 0, reproducing the COSMAC VIP behaviour some ROMs probe.
	Logic bool
}

// NewQuirks returns the SUPER-CHIP 1.1 quirk set.
func NewQuirks() Quirks {
	return Quirks{
		Shift:     true,
		LoadStore: true,
		Jump:      true,
		Clip:      true,
		Logic:     true,
	}
}

// DefaultOpsPerFrame is the instruction budget per 60Hz frame. ROMs assume
// wildly different speeds, so it is a tunable, not a constant of the
// architecture.
const DefaultOpsPerFrame = 11

// Config is the immutable startup configuration of a machine.
type Config struct {
	Quirks      Quirks
	OpsPerFrame int
	HighRes     bool

	// Seed for the Cxnn random source. Zero means time-based.
	Seed int64
}
