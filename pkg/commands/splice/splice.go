package splice

import (
	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/filesystem"
	"github.com/devw-tools/devw/pkg/logging"
	"github.com/devw-tools/devw/pkg/markers"
	"github.com/devw-tools/devw/pkg/types"
)

// SpliceOptions defines the options for the Splice command.
type SpliceOptions struct {
	// Target is the file whose marked region is replaced.
	Target string
	// Content is the generated text for the region.
	Content string
	// FS defaults to the OS filesystem.
	FS types.FS
}

// Splice replaces the marked region of the target with the given content,
// creating the region or the file when missing. Text outside the region is
// left as is.
func Splice(opts SpliceOptions) (*types.SpliceResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Splice").Str("target", opts.Target).Msg("Executing command")

	if opts.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput, "target file cannot be empty")
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	out, err := markers.MergeFile(fs, opts.Target, opts.Content)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Splice").Bool("changed", out.Changed).Bool("replaced", out.Replaced).Msg("Command finished")
	return &types.SpliceResult{
		Target:   opts.Target,
		Changed:  out.Changed,
		Created:  out.Created,
		Replaced: out.Replaced,
	}, nil
}
