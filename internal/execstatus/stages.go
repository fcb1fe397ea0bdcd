package execstatus

import (
	"strings"

	"github.com/pipecraft/platform-shell/internal/domain"
)

// stageLabels maps engine pipeline stage tags to dashboard copy.
var stageLabels = map[string]string{
	domain.StageOrgsSourced:        "Sourcing organizations",
	domain.StageContactsDiscovered: "Discovering contacts",
	domain.StageContactsScored:     "Scoring contacts",
	domain.StageReadinessChecked:   "Checking readiness",
	domain.StageLeadsCreated:       "Creating leads",
	domain.StageEmailsDrafted:      "Drafting outreach emails",
}

// StageLabel resolves a stage tag to display copy. Unknown tags render as the
// tag with underscores spaced out, no casing applied, so stages added to the
// engine show up readably without a shell deploy.
func StageLabel(stage string) string {
	if label, ok := stageLabels[stage]; ok {
		return label
	}
	return strings.ReplaceAll(stage, "_", " ")
}
