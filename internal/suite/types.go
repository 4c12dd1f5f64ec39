package suite

type Suite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Version     string     `yaml:"version"`
	Runs        RunsConfig `yaml:"runs"`
	Cases       []Case     `yaml:"cases"`
}

type RunsConfig struct {
	Warmup     int `yaml:"warmup"`
	Iterations int `yaml:"iterations"`
}

type Case struct {
	ID          string           `yaml:"id"`
	Description string           `yaml:"description"`
	Expression  string           `yaml:"expression"`
	Vars        map[string]bool  `yaml:"vars,omitempty"`
	Expect      *bool            `yaml:"expect,omitempty"`
	ExpectError string           `yaml:"expect_error,omitempty"`
	ExpectTable []TableAssertion `yaml:"expect_table,omitempty"`
}

type TableAssertion struct {
	Vars   map[string]bool `yaml:"vars"`
	Result bool            `yaml:"result"`
}

// HasExpectation reports whether the case asserts anything at all.
func (c *Case) HasExpectation() bool {
	return c.Expect != nil || c.ExpectError != "" || len(c.ExpectTable) > 0
}
