package types

import "gopkg.in/yaml.v3"

// Severity levels recognised by the compiler. Other values are kept as-is.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Rule is a single rule as seen by the rest of the system. Identity is
// (Scope, ID).
type Rule struct {
	ID       string
	Scope    string
	Severity string
	Content  string
	Enabled  bool
	// SourceBlock names the block that installed the rule. Empty for
	// project-local rules, which block operations never touch.
	SourceBlock string
	Tags        []string
}

// RuleEntry is the on-disk shape of a rule inside a scope file. The scope is
// carried by the enclosing RuleFile.
type RuleEntry struct {
	ID          string   `yaml:"id" mapstructure:"id"`
	Severity    string   `yaml:"severity,omitempty" mapstructure:"severity"`
	Content     string   `yaml:"content" mapstructure:"content"`
	Enabled     *bool    `yaml:"enabled,omitempty" mapstructure:"enabled"`
	Tags        []string `yaml:"tags,omitempty" mapstructure:"tags"`
	SourceBlock string   `yaml:"sourceBlock,omitempty" mapstructure:"sourceBlock"`

	// Raw is the stored node of an entry that did not decode cleanly. Such
	// entries are written back exactly as they were read.
	Raw *yaml.Node `yaml:"-" mapstructure:"-"`
}

// IsRule reports whether the entry describes a rule. Stored entries that are
// not mappings are carried along but never become rules.
func (e RuleEntry) IsRule() bool {
	return e.Raw == nil || e.Raw.Kind == yaml.MappingNode
}

// IsEnabled reports whether the entry is enabled. A missing flag means enabled.
func (e RuleEntry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// RuleFile is the per-scope document stored at <rulesDir>/<scope>.yml.
type RuleFile struct {
	Scope string      `yaml:"scope"`
	Rules []RuleEntry `yaml:"rules"`
}

// ToRules expands the file's entries into Rules carrying the file scope.
func (f RuleFile) ToRules() []Rule {
	rules := make([]Rule, 0, len(f.Rules))
	for _, e := range f.Rules {
		if !e.IsRule() {
			continue
		}
		rules = append(rules, Rule{
			ID:          e.ID,
			Scope:       f.Scope,
			Severity:    e.Severity,
			Content:     e.Content,
			Enabled:     e.IsEnabled(),
			SourceBlock: e.SourceBlock,
			Tags:        e.Tags,
		})
	}
	return rules
}
