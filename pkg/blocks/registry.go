package blocks

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/registry"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/rs/zerolog"
)

// Registry reads block definitions from a directory, one block per file.
type Registry struct {
	fs     types.FS
	dir    string
	logger zerolog.Logger
}

// NewRegistry creates a registry over dir.
func NewRegistry(fs types.FS, dir string) *Registry {
	return &Registry{
		fs:     fs,
		dir:    dir,
		logger: logging.GetLogger("blocks.registry"),
	}
}

// Dir returns the registry directory
func (r *Registry) Dir() string { return r.dir }

// LoadAll parses every block file in the directory, sorted by file name.
// Unparseable files and files with other extensions are skipped. A missing
// directory yields no blocks.
func (r *Registry) LoadAll() ([]types.BlockDefinition, error) {
	entries, err := r.fs.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug().Str("dir", r.dir).Msg("Registry directory does not exist")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read registry directory %s", r.dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := FormatFor(entry.Name()); ok {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var blocks []types.BlockDefinition
	for _, name := range names {
		path := filepath.Join(r.dir, name)
		data, err := r.fs.ReadFile(path)
		if err != nil {
			r.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable block file")
			continue
		}
		format, _ := FormatFor(name)
		block, ok := ParseBlock(data, format)
		if !ok {
			r.logger.Warn().Str("path", path).Msg("Skipping invalid block file")
			continue
		}
		blocks = append(blocks, block)
	}

	r.logger.Debug().Str("dir", r.dir).Int("blocks", len(blocks)).Msg("Loaded block registry")
	return blocks, nil
}

// Index loads every block keyed by id. When two files declare the same id
// the first in file-name order wins.
func (r *Registry) Index() (registry.Registry[types.BlockDefinition], error) {
	blocks, err := r.LoadAll()
	if err != nil {
		return nil, err
	}

	index := registry.New[types.BlockDefinition]()
	for _, block := range blocks {
		if err := index.Register(block.ID, block); err != nil {
			r.logger.Warn().Str("block", block.ID).Msg("Ignoring duplicate block id")
		}
	}
	return index, nil
}

// Load returns the block with the given id.
func (r *Registry) Load(id string) (types.BlockDefinition, bool, error) {
	index, err := r.Index()
	if err != nil {
		return types.BlockDefinition{}, false, err
	}
	block, ok := index.Get(id)
	return block, ok, nil
}

// LoadAllBlocks loads every block in dir from the local filesystem. Read
// errors are logged and yield no blocks.
func LoadAllBlocks(dir string) []types.BlockDefinition {
	blocks, err := NewRegistry(filesystem.NewOS(), dir).LoadAll()
	if err != nil {
		log := logging.GetLogger("blocks.registry")
		log.Warn().Err(err).Msg("Could not load block registry")
		return nil
	}
	return blocks
}

// LoadBlock loads the block with the given id from dir on the local
// filesystem.
func LoadBlock(id, dir string) (types.BlockDefinition, bool) {
	block, ok, err := NewRegistry(filesystem.NewOS(), dir).Load(id)
	if err != nil {
		log := logging.GetLogger("blocks.registry")
		log.Warn().Err(err).Msg("Could not load block registry")
		return types.BlockDefinition{}, false
	}
	return block, ok
}
