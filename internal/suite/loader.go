package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/logic-hunter/internal/token"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

var validErrorKinds = map[string]bool{
	"empty_expression":           true,
	"missing_operator":           true,
	"dangling_operator":          true,
	"invalid_operator_placement": true,
	"mismatched_parentheses":     true,
	"incomplete_expression":      true,
	"unknown_operator":           true,
}

func validate(s *Suite) error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if c.Expression == "" && c.ExpectError == "" {
			return fmt.Errorf("case %q has no expression", c.ID)
		}
		if !c.HasExpectation() {
			return fmt.Errorf("case %q has no expectation", c.ID)
		}
		if c.Expect != nil && c.ExpectError != "" {
			return fmt.Errorf("case %q has both expect and expect_error", c.ID)
		}
		if len(c.ExpectTable) > 0 && (c.Expect != nil || c.ExpectError != "") {
			return fmt.Errorf("case %q mixes expect_table with another expectation", c.ID)
		}
		if c.ExpectError != "" && !validErrorKinds[c.ExpectError] {
			return fmt.Errorf("case %q has unknown error kind %q", c.ID, c.ExpectError)
		}
		for name := range c.Vars {
			if !token.IsFreeName(name) {
				return fmt.Errorf("case %q sets unknown variable %q", c.ID, name)
			}
		}
		for j, ta := range c.ExpectTable {
			for name := range ta.Vars {
				if !token.IsFreeName(name) {
					return fmt.Errorf("case %q table row %d sets unknown variable %q", c.ID, j, name)
				}
			}
		}
	}
	if s.Runs.Warmup < 0 {
		s.Runs.Warmup = 0
	}
	if s.Runs.Iterations <= 0 {
		s.Runs.Iterations = 1
	}
	return nil
}
