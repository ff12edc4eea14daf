package project

import (
	"bytes"
	"os"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

const blocksKey = "blocks"

// DefaultVersion is the config format version written by Init.
const DefaultVersion = "0.1"

// Store tracks which blocks are installed in a project.
type Store interface {
	// AddBlock inserts id into the blocks list. It reports whether the
	// config changed; adding a present id is a no-op.
	AddBlock(id string) (bool, error)

	// RemoveBlock removes id from the blocks list. It reports whether the
	// config changed; removing an absent id is a no-op.
	RemoveBlock(id string) (bool, error)
}

// FileStore is a Store over a config.yml file.
type FileStore struct {
	fs   types.FS
	path string
}

// NewFileStore creates a store for the config file at path.
func NewFileStore(fs types.FS, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Path returns the config file path
func (s *FileStore) Path() string { return s.path }

// AddBlock implements Store.
func (s *FileStore) AddBlock(id string) (bool, error) {
	return s.update(func(seq *yaml.Node) bool {
		for _, item := range seq.Content {
			if item.Kind == yaml.ScalarNode && item.Value == id {
				return false
			}
		}
		if len(seq.Content) == 0 {
			seq.Style = 0
		}
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id})
		return true
	})
}

// RemoveBlock implements Store.
func (s *FileStore) RemoveBlock(id string) (bool, error) {
	return s.update(func(seq *yaml.Node) bool {
		kept := seq.Content[:0]
		for _, item := range seq.Content {
			if item.Kind == yaml.ScalarNode && item.Value == id {
				continue
			}
			kept = append(kept, item)
		}
		changed := len(kept) != len(seq.Content)
		seq.Content = kept
		return changed
	})
}

// update applies fn to the blocks sequence and writes the document back when
// fn reports a change. A missing or non-sequence blocks value is handed to fn
// as an empty sequence.
func (s *FileStore) update(fn func(seq *yaml.Node) bool) (bool, error) {
	log := logging.GetLogger("project.config")

	doc, err := s.readDocument()
	if err != nil {
		return false, err
	}

	root := doc.Content[0]
	seq := blocksNode(root)
	if !fn(seq) {
		return false, nil
	}
	setBlocksNode(root, seq)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigWrite, "failed to encode %s", s.path)
	}
	if err := enc.Close(); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigWrite, "failed to encode %s", s.path)
	}

	perm := os.FileMode(0644)
	if info, statErr := s.fs.Stat(s.path); statErr == nil {
		perm = info.Mode().Perm()
	}
	if err := s.fs.WriteFile(s.path, buf.Bytes(), perm); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", s.path)
	}

	log.Debug().Str("path", s.path).Int("blocks", len(seq.Content)).Msg("Updated project config")
	return true, nil
}

func (s *FileStore) readDocument() (*yaml.Node, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "project config not found at %s (run 'devw init')", s.path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", s.path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid project config %s", s.path)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigParse, "invalid project config %s: expected a mapping", s.path)
	}
	return &doc, nil
}

// blocksNode returns the blocks sequence of a mapping node, or a fresh empty
// sequence when the key is missing or holds something else.
func blocksNode(mapping *yaml.Node) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == blocksKey && mapping.Content[i+1].Kind == yaml.SequenceNode {
			return mapping.Content[i+1]
		}
	}
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func setBlocksNode(mapping, seq *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == blocksKey {
			mapping.Content[i+1] = seq
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: blocksKey},
		seq,
	)
}

// Load returns the typed view of the config at path. Fields of the wrong
// type are coerced where possible and left empty otherwise.
func Load(fs types.FS, path string) (types.ProjectConfig, error) {
	var cfg types.ProjectConfig

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "project config not found at %s (run 'devw init')", path)
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "invalid project config %s", path)
	}
	if raw == nil {
		return cfg, errors.Newf(errors.ErrConfigParse, "invalid project config %s: expected a mapping", path)
	}

	log := logging.GetLogger("project.config")
	for key, val := range raw {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return cfg, errors.Wrap(err, errors.ErrInternal, "failed to build config decoder")
		}
		// Decoding key by key keeps one bad field from discarding the rest.
		if err := decoder.Decode(map[string]interface{}{key: val}); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("Ignoring malformed config field")
		}
	}

	return cfg, nil
}

// Default returns the config written by Init for a new project.
func Default(name string) types.ProjectConfig {
	return types.ProjectConfig{
		Version: DefaultVersion,
		Project: types.ProjectInfo{Name: name},
		Tools:   []string{"claude"},
		Mode:    "copy",
		Blocks:  []string{},
	}
}

// Marshal renders cfg as config.yml content.
func Marshal(cfg types.ProjectConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
