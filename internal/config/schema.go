package config

// PuzzlesConfig holds the tunable parameters of every puzzle day
type PuzzlesConfig struct {
	Day01 Day01Config `yaml:"day01"`
	Day02 Day02Config `yaml:"day02"`
	Day03 Day03Config `yaml:"day03"`
}

// Day01Config controls how spelled out numbers are decoded
type Day01Config struct {
	TeenWords bool `yaml:"teen_words"`
}

// Day02Config contains the cube counts loaded into the bag
type Day02Config struct {
	Bag BagConfig `yaml:"bag"`
}

type BagConfig struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

// Day03Config defines the schematic markers. Both must be a single character.
type Day03Config struct {
	Blank string `yaml:"blank"`
	Gear  string `yaml:"gear"`
}
