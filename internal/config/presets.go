package config

var Presets = map[string]*Config{
	"small_molecule_probe": {
		Size: 8, Payload: "small_molecules",
		Target: [3]float64{1, 1, 1}, Runs: 1,
		Sweep: SweepConfig{MinSize: 5, MaxSize: 9, Step: 1},
	},
	"mrna_standard": {
		Size: 20, Payload: "mRNA",
		Target: [3]float64{1, 1, 1}, Runs: 1,
		Sweep: SweepConfig{MinSize: 10, MaxSize: 49, Step: 3},
	},
	"mrna_optimal": {
		Size: 30, Payload: "mRNA",
		Target: [3]float64{1, 1, 1}, Runs: 8,
		Sweep: SweepConfig{MinSize: 25, MaxSize: 35, Step: 1},
	},
	"protein_carrier": {
		Size: 35, Payload: "proteins",
		Target: [3]float64{2, 0, 1}, Runs: 4,
		Sweep: SweepConfig{MinSize: 10, MaxSize: 49, Step: 3},
	},
	"plasmid_hauler": {
		Size: 60, Payload: "plasmids",
		Target: [3]float64{1, 1, 1}, Runs: 4,
		Sweep: SweepConfig{MinSize: 50, MaxSize: 100, Step: 5},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
