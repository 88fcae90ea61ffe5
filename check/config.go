package check

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RunParametersFile is the on-disk shape RunParameters loads from.
type RunParametersFile struct {
	NumCases   int   `yaml:"num_cases"`
	Seed       int64 `yaml:"seed"`
	MaxShrinks int   `yaml:"max_shrinks"`
	Workers    int   `yaml:"workers"`
}

// LoadRunParameters reads RunParameters from a YAML file at path, falling
// back to DefaultRunParameters for any field left unset (zero) in the
// file.
func LoadRunParameters(path string) (RunParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunParameters{}, err
	}

	var f RunParametersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return RunParameters{}, err
	}

	params := DefaultRunParameters()
	if f.NumCases > 0 {
		params.NumCases = f.NumCases
	}
	if f.Seed != 0 {
		params.Seed = f.Seed
	}
	if f.MaxShrinks > 0 {
		params.MaxShrinks = f.MaxShrinks
	}
	if f.Workers > 0 {
		params.Workers = f.Workers
	}
	return params, nil
}
