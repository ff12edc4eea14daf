package rules

import (
	"bytes"

	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// ParseRuleFile validates a scope document and coerces it to a RuleFile.
// It returns false when data is not a YAML mapping. A missing or non-string
// scope key falls back to fallbackScope; a missing or non-list rules key
// yields no rules.
//
// Entries are never dropped. Fields that cannot be coerced are left empty,
// and an entry that did not decode cleanly keeps its stored node in Raw so
// that saving the file reproduces it unchanged.
func ParseRuleFile(data []byte, fallbackScope string) (types.RuleFile, bool) {
	log := logging.GetLogger("rules.parse")

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		log.Debug().Err(err).Str("scope", fallbackScope).Msg("Rule file is not valid YAML")
		return types.RuleFile{}, false
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return types.RuleFile{}, false
	}
	doc := root.Content[0]

	file := types.RuleFile{Scope: fallbackScope, Rules: []types.RuleEntry{}}
	if scope := mappingValue(doc, "scope"); scope != nil && scope.Kind == yaml.ScalarNode &&
		scope.ShortTag() == "!!str" && scope.Value != "" {
		file.Scope = scope.Value
	}

	list := mappingValue(doc, "rules")
	if list == nil || list.Kind != yaml.SequenceNode {
		return file, true
	}
	for i, item := range list.Content {
		entry, clean := parseEntry(item)
		if !clean {
			log.Warn().Str("scope", file.Scope).Int("index", i).Str("id", entry.ID).
				Msg("Rule entry did not decode cleanly, keeping it as stored")
		}
		file.Rules = append(file.Rules, entry)
	}

	return file, true
}

// mappingValue returns the value node for key in a mapping node.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// parseEntry decodes one stored entry. It reports false, and keeps the node
// in Raw, when the entry is not a mapping, has fields of the wrong type or
// carries keys a RuleEntry does not know.
func parseEntry(node *yaml.Node) (types.RuleEntry, bool) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return types.RuleEntry{Raw: node}, false
	}

	var raw map[string]interface{}
	if err := node.Decode(&raw); err != nil {
		return types.RuleEntry{Raw: node}, false
	}

	var entry types.RuleEntry
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &entry,
		WeaklyTypedInput: true,
		Metadata:         &md,
	})
	if err != nil {
		return types.RuleEntry{Raw: node}, false
	}
	// Fields that fail to decode stay empty; the others are still set.
	if err := decoder.Decode(raw); err != nil || len(md.Unused) > 0 {
		entry.Raw = node
		return entry, false
	}
	return entry, true
}

// storedFile is the encoded shape of a RuleFile. Each rule is either a
// RuleEntry or the *yaml.Node it was read from.
type storedFile struct {
	Scope string        `yaml:"scope"`
	Rules []interface{} `yaml:"rules"`
}

// MarshalRuleFile renders a RuleFile the way it is stored on disk.
func MarshalRuleFile(file types.RuleFile) ([]byte, error) {
	doc := storedFile{Scope: file.Scope, Rules: make([]interface{}, 0, len(file.Rules))}
	for _, e := range file.Rules {
		if e.Raw != nil {
			doc.Rules = append(doc.Rules, e.Raw)
			continue
		}
		doc.Rules = append(doc.Rules, e)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
