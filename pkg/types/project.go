package types

// ProjectInfo is the project metadata section of the project config.
type ProjectInfo struct {
	Name        string `yaml:"name,omitempty" mapstructure:"name"`
	Description string `yaml:"description,omitempty" mapstructure:"description"`
}

// ProjectConfig is the typed, read-only view of .dwf/config.yml. Writers go
// through pkg/project, which only touches the blocks key.
type ProjectConfig struct {
	Version string      `yaml:"version" mapstructure:"version"`
	Project ProjectInfo `yaml:"project" mapstructure:"project"`
	Tools   []string    `yaml:"tools" mapstructure:"tools"`
	Mode    string      `yaml:"mode" mapstructure:"mode"`
	Blocks  []string    `yaml:"blocks" mapstructure:"blocks"`
}

// HasBlock reports whether id is registered in the config.
func (c ProjectConfig) HasBlock(id string) bool {
	for _, b := range c.Blocks {
		if b == id {
			return true
		}
	}
	return false
}
