package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/clubsync/internal/client/optimistic"
)

// field binds a command flag to the json key of the entity it changes.
type field struct {
	value any
	flag  string
	key   string
}

// changedFields returns the changes for the flags set on the command line.
func changedFields(cmd *cobra.Command, fields ...field) map[string]any {
	changes := make(map[string]any)
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			changes[f.key] = f.value
		}
	}
	return changes
}

// pendingMark помечает сущности, еще не подтвержденные сервером
func pendingMark(id string) string {
	if optimistic.IsTemporaryID(id) {
		return "  (pending sync)"
	}
	return ""
}

// formatBytes formats a byte count for humans
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
