// Cause-of-death join: attach the human-readable cause description.
package pipeline

import (
	"strings"

	"github.com/mesh-intelligence/mortalidash/internal/dataset"
)

// JoinCauses left-joins records against the cause-code table on the cause
// code, trimming both sides. If the code or name column is unresolved the
// join is skipped and every cause name falls back to the raw code, or to
// the unclassified sentinel when the code itself is empty. On non-match
// the name also falls back to the raw code, never to an empty type.
func JoinCauses(records []Record, causes dataset.Table) {
	codeCol, okCode := dataset.ResolveColumn(causes, causeCodeCols...)
	nameCol, okName := dataset.ResolveColumn(causes, causeNameCols...)
	if !okCode || !okName {
		for i := range records {
			if records[i].CauseCode == "" {
				records[i].CauseName = CauseUnclassified
			} else {
				records[i].CauseName = records[i].CauseCode
			}
		}
		return
	}

	index := make(map[string]string, causes.Len())
	for _, row := range causes.Rows {
		code := strings.TrimSpace(row[codeCol])
		if _, dup := index[code]; dup {
			continue
		}
		index[code] = strings.TrimSpace(row[nameCol])
	}

	for i := range records {
		if name, ok := index[records[i].CauseCode]; ok {
			records[i].CauseName = name
			continue
		}
		records[i].CauseName = records[i].CauseCode
	}
}
