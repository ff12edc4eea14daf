package devw

import (
	"fmt"
	"io"

	"github.com/devw-tools/devw/pkg/style"
	"github.com/devw-tools/devw/pkg/types"
	"github.com/jedib0t/go-pretty/v6/table"
)

func renderInstalled(w io.Writer, changes []types.BlockChange) {
	for _, c := range changes {
		_, _ = fmt.Fprintf(w, MsgBlockInstalled, style.SuccessIndicator(), style.BlockStyle.Render(c.BlockID), c.Rules)
	}
}

// renderRemoved reports a block that removed no rules as not installed.
func renderRemoved(w io.Writer, changes []types.BlockChange) {
	for _, c := range changes {
		if c.Rules == 0 {
			_, _ = fmt.Fprintf(w, MsgBlockNotPresent, style.InfoIndicator(), style.BlockStyle.Render(c.BlockID))
			continue
		}
		_, _ = fmt.Fprintf(w, MsgBlockRemoved, style.SuccessIndicator(), style.BlockStyle.Render(c.BlockID), c.Rules)
	}
}

func blockStatus(b types.BlockInfo) style.Status {
	switch {
	case b.Missing:
		return style.StatusMissing
	case b.Installed:
		return style.StatusInstalled
	default:
		return style.StatusAvailable
	}
}

func renderBlockList(w io.Writer, result *types.ListBlocksResult, registryDir string) {
	if len(result.Blocks) == 0 {
		_, _ = fmt.Fprintf(w, MsgNoBlocksFound, style.PathStyle.Render(registryDir))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Block", "Version", "Rules", "Status", "Description"})

	installed := 0
	for _, b := range result.Blocks {
		if b.Installed {
			installed++
		}
		rules := fmt.Sprint(b.Rules)
		if b.Missing {
			rules = "-"
		}
		t.AppendRow(table.Row{
			style.BlockStyle.Render(b.ID),
			b.Version,
			rules,
			style.Badge(blockStatus(b)),
			style.MutedStyle.Render(b.Description),
		})
	}
	t.Render()

	_, _ = fmt.Fprintf(w, MsgBlocksSummary, len(result.Blocks), installed)
}

func renderStatus(w io.Writer, result *types.StatusResult) {
	stored := result.StoredHash
	if stored == "" {
		stored = MsgNoStoredHash
	}
	state := style.StatusCurrent
	if result.Changed {
		state = style.StatusStale
	}

	_, _ = fmt.Fprintf(w, MsgStatusRules, result.Rules)
	_, _ = fmt.Fprintf(w, MsgStatusHash, result.Hash)
	_, _ = fmt.Fprintf(w, MsgStatusStored, style.MutedStyle.Render(stored))
	_, _ = fmt.Fprintf(w, MsgStatusState, style.Badge(state))
	if result.Written {
		_, _ = fmt.Fprintf(w, MsgStatusWritten, style.SuccessIndicator())
	}
}

func renderSplice(w io.Writer, result *types.SpliceResult) {
	target := style.PathStyle.Render(result.Target)
	switch {
	case !result.Changed:
		_, _ = fmt.Fprintf(w, MsgSpliceUnchanged, style.InfoIndicator(), target)
	case result.Created:
		_, _ = fmt.Fprintf(w, MsgSpliceCreated, style.SuccessIndicator(), target)
	case result.Replaced:
		_, _ = fmt.Fprintf(w, MsgSpliceChanged, style.SuccessIndicator(), target)
	default:
		_, _ = fmt.Fprintf(w, MsgSpliceAppended, style.SuccessIndicator(), target)
	}
}

func renderInit(w io.Writer, result *types.InitResult) {
	if len(result.Created) == 0 {
		_, _ = fmt.Fprintf(w, MsgInitNothingToDo, style.InfoIndicator(), style.PathStyle.Render(result.Root))
		return
	}
	for _, path := range result.Created {
		_, _ = fmt.Fprintf(w, MsgInitCreated, style.SuccessIndicator(), style.PathStyle.Render(path))
	}
}
