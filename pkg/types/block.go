package types

// BlockRule is a rule as declared inside a block definition.
type BlockRule struct {
	ID       string   `yaml:"id" mapstructure:"id"`
	Scope    string   `yaml:"scope" mapstructure:"scope"`
	Severity string   `yaml:"severity" mapstructure:"severity"`
	Content  string   `yaml:"content" mapstructure:"content"`
	Tags     []string `yaml:"tags,omitempty" mapstructure:"tags"`
}

// BlockDefinition is a named, versioned bundle of rules loaded from the
// registry. It is treated as immutable once loaded.
type BlockDefinition struct {
	ID          string      `yaml:"id" mapstructure:"id"`
	Name        string      `yaml:"name" mapstructure:"name"`
	Description string      `yaml:"description" mapstructure:"description"`
	Version     string      `yaml:"version" mapstructure:"version"`
	Rules       []BlockRule `yaml:"rules" mapstructure:"rules"`
}
