package blocks

import (
	"path/filepath"
	"strings"

	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/paths"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the serialisation of a block definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor returns the format implied by a file name's extension.
func FormatFor(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	}
	return "", false
}

// ParseBlock validates a block definition document. It returns false when
// data is not a mapping, when the block has no id, or when one of its rules
// has no id or an invalid scope.
func ParseBlock(data []byte, format Format) (types.BlockDefinition, bool) {
	log := logging.GetLogger("blocks.parse")

	var doc map[string]interface{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		log.Debug().Err(err).Str("format", string(format)).Msg("Block file does not parse")
		return types.BlockDefinition{}, false
	}
	if doc == nil {
		return types.BlockDefinition{}, false
	}

	var block types.BlockDefinition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &block,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return types.BlockDefinition{}, false
	}
	if err := decoder.Decode(doc); err != nil {
		log.Debug().Err(err).Msg("Block file has the wrong shape")
		return types.BlockDefinition{}, false
	}

	if block.ID == "" {
		log.Debug().Msg("Block file has no id")
		return types.BlockDefinition{}, false
	}
	if block.Rules == nil {
		block.Rules = []types.BlockRule{}
	}
	for i, rule := range block.Rules {
		if rule.ID == "" {
			log.Debug().Str("block", block.ID).Int("index", i).Msg("Block rule has no id")
			return types.BlockDefinition{}, false
		}
		if err := paths.ValidateScope(rule.Scope); err != nil {
			log.Debug().Str("block", block.ID).Str("rule", rule.ID).Err(err).Msg("Block rule has an invalid scope")
			return types.BlockDefinition{}, false
		}
	}

	return block, true
}

// ToRules expands a block into Rules stamped with the block id. Block rules
// are always enabled.
func ToRules(block types.BlockDefinition) []types.Rule {
	rules := make([]types.Rule, 0, len(block.Rules))
	for _, r := range block.Rules {
		rules = append(rules, types.Rule{
			ID:          r.ID,
			Scope:       r.Scope,
			Severity:    r.Severity,
			Content:     r.Content,
			Enabled:     true,
			SourceBlock: block.ID,
			Tags:        append([]string(nil), r.Tags...),
		})
	}
	return rules
}

// toEntry converts a block rule into the stored shape, stamped with blockID.
func toEntry(blockID string, r types.BlockRule) types.RuleEntry {
	return types.RuleEntry{
		ID:          r.ID,
		Severity:    r.Severity,
		Content:     r.Content,
		Tags:        append([]string(nil), r.Tags...),
		SourceBlock: blockID,
	}
}
