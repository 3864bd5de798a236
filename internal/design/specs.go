package design

// SurfaceChemistry describes the vehicle surface tuned to a payload.
type SurfaceChemistry struct {
	Charge         string `json:"charge"`
	Hydrophobicity string `json:"hydrophobicity"`
}

// Coating is the protective coating specification.
type Coating struct {
	Material        string  `json:"material"`
	ThicknessNM     float64 `json:"thickness_nm"`
	DegradationRate string  `json:"degradation_rate"`
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Stability bounds the storage and operating envelope of a design.
type Stability struct {
	TemperatureRange Range   `json:"temperature_range"`
	PHRange          Range   `json:"ph_range"`
	ShelfLifeDays    int     `json:"shelf_life_days"`
	ZetaPotentialMV  float64 `json:"zeta_potential"`
}

// Specs are the manufacturing-facing design specifications. They are
// derived deterministically from size and payload and consumed only by
// the external report generator.
type Specs struct {
	SurfaceChemistry SurfaceChemistry `json:"surface_chemistry"`
	Coating          Coating          `json:"coating_requirements"`
	Stability        Stability        `json:"stability_parameters"`
	Manufacturing    []string         `json:"manufacturing_protocol"`
}

var surfaceTable = map[PayloadType]SurfaceChemistry{
	SmallMolecules: {Charge: "neutral", Hydrophobicity: "moderate"},
	MRNA:           {Charge: "positive", Hydrophobicity: "low"},
	Proteins:       {Charge: "variable", Hydrophobicity: "moderate"},
	Plasmids:       {Charge: "positive", Hydrophobicity: "low"},
}

// NewSpecs derives the design specifications for a size/payload pair.
func NewSpecs(size float64, payload PayloadType) Specs {
	surface, ok := surfaceTable[payload]
	if !ok {
		surface = surfaceTable[MRNA]
	}

	return Specs{
		SurfaceChemistry: surface,
		Coating: Coating{
			Material:        "PEG",
			ThicknessNM:     size * 0.1,
			DegradationRate: "0.1nm/hour",
		},
		Stability: Stability{
			TemperatureRange: Range{Min: 4, Max: 40},
			PHRange:          Range{Min: 6.5, Max: 7.5},
			ShelfLifeDays:    30,
			ZetaPotentialMV:  -30,
		},
		Manufacturing: []string{
			"Prepare biocompatible polymer solution",
			"Add payload under controlled conditions",
			"Perform nanoprecipitation",
			"Apply surface coating",
			"Purify using tangential flow filtration",
			"Perform quality control",
		},
	}
}
