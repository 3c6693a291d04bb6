package config

var Presets = map[string]*Config{
	"minimal": {
		Stars: 10000, MaxDt: DefaultMaxDt, FrameRate: 30,
	},
	"showcase": {
		Stars: 200000, MaxDt: DefaultMaxDt, FrameRate: 60,
	},
	"dense": {
		Stars: 1000000, MaxDt: DefaultMaxDt, FrameRate: 60,
	},
	"ring-demo": {
		Stars: 50000, Morphology: "ring", MaxDt: DefaultMaxDt, FrameRate: 60,
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
