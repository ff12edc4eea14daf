package devw

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/devw-tools/devw/pkg/errors"
	"github.com/devw-tools/devw/pkg/style"
)

// PrintError writes err in the error style, followed by any details carried
// by a coded error. The list of available blocks gets its own line.
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, style.ErrorIndicator(), style.ErrorStyle.Render(fmt.Sprintf(MsgErrorPrefix, err)))

	details := errors.GetErrorDetails(err)
	if available, ok := details["available"].([]string); ok && len(available) > 0 {
		_, _ = fmt.Fprintf(w, MsgAvailableBlocks, strings.Join(available, ", "))
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		if k != "available" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, MsgErrorDetail, k, details[k])
	}
}
