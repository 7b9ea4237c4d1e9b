package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/sci-calc/internal/calcerr"
)

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		if c.Expression == "" {
			return nil, fmt.Errorf("case %q has no expression", c.ID)
		}
		if (c.Expect == nil) == (c.Error == "") {
			return nil, fmt.Errorf("case %q must set exactly one of expect and error", c.ID)
		}
		if c.Error != "" && !knownCode(c.Error) {
			return nil, fmt.Errorf("case %q references unknown error code %q", c.ID, c.Error)
		}
		if c.Tolerance < 0 {
			return nil, fmt.Errorf("case %q has negative tolerance", c.ID)
		}
	}

	return &s, nil
}

func knownCode(code string) bool {
	for _, e := range calcerr.All() {
		if e.Code() == code {
			return true
		}
	}
	return false
}
