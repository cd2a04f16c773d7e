package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type problemFile struct {
	Problems []problemEntry `yaml:"problems"`
}

type problemEntry struct {
	Title      string `yaml:"title"`
	Difficulty string `yaml:"difficulty"`
	Topic      string `yaml:"topic"`
}

// LoadFile appends the problems listed in a YAML file and returns how many were added.
// Entries get fresh IDs in file order.
func (c *Catalog) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var pf problemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return 0, fmt.Errorf("failed to parse problems file: %w", err)
	}
	if len(pf.Problems) == 0 {
		return 0, fmt.Errorf("problems file has no entries")
	}
	added := 0
	for i, e := range pf.Problems {
		if _, err := c.Add(e.Title, e.Difficulty, e.Topic); err != nil {
			return added, fmt.Errorf("problem %d: %w", i+1, err)
		}
		added++
	}
	return added, nil
}
