package design

// PayloadType is the class of cargo molecule carried by a nanobot.
type PayloadType string

const (
	SmallMolecules PayloadType = "small_molecules"
	MRNA           PayloadType = "mRNA"
	Proteins       PayloadType = "proteins"
	Plasmids       PayloadType = "plasmids"
)

// ParsePayload maps a payload name to its type. Unrecognized names
// fall back to mRNA, matching the efficiency table default.
func ParsePayload(s string) PayloadType {
	switch PayloadType(s) {
	case SmallMolecules, MRNA, Proteins, Plasmids:
		return PayloadType(s)
	default:
		return MRNA
	}
}

// Nanobot is a completed vehicle design. Constructed once per design
// request and immutable afterwards; field names are a stable contract
// with the presentation and report layers.
type Nanobot struct {
	Size       float64     `json:"size"`
	Payload    PayloadType `json:"payload"`
	Efficiency float64     `json:"efficiency"`
	Factors    Factors     `json:"efficiency_factors"`
	Mechanism  Mechanism   `json:"delivery_mechanism"`
	Specs      Specs       `json:"design_specs"`
}

// Design builds a nanobot configuration for the given size (nm) and
// payload. Fails with ErrInvalidSize for non-positive sizes; no
// partial result is returned.
func Design(size float64, payload PayloadType) (*Nanobot, error) {
	eff, err := ComputeEfficiency(size, payload)
	if err != nil {
		return nil, err
	}

	return &Nanobot{
		Size:       size,
		Payload:    payload,
		Efficiency: eff.Overall,
		Factors:    eff.Factors,
		Mechanism:  SelectMechanism(size),
		Specs:      NewSpecs(size, payload),
	}, nil
}
