// Package execstatus turns raw sales-engine execution statuses into the
// display records the dashboard renders on campaign cards.
package execstatus

import (
	"fmt"

	"github.com/pipecraft/platform-shell/internal/domain"
)

// Colors is the utility-class triple a status card is styled with.
type Colors struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
}

// Display is a fully resolved status card: an icon tag the dashboard maps to
// an SVG, the copy to render, and the color scheme.
type Display struct {
	Icon   string `json:"icon"`
	Copy   string `json:"copy"`
	Colors Colors `json:"colors"`
}

var (
	colorsGray  = Colors{Background: "bg-gray-50", Text: "text-gray-600", Border: "border-gray-200"}
	colorsBlue  = Colors{Background: "bg-blue-50", Text: "text-blue-700", Border: "border-blue-200"}
	colorsAmber = Colors{Background: "bg-amber-50", Text: "text-amber-700", Border: "border-amber-200"}
	colorsGreen = Colors{Background: "bg-green-50", Text: "text-green-700", Border: "border-green-200"}
	colorsRed   = Colors{Background: "bg-red-50", Text: "text-red-700", Border: "border-red-200"}
)

// Project maps an engine-reported execution status to its display record.
// It is total: every input combination yields a usable Display and no input
// is an error. Unknown status tags get the neutral "Awaiting events" card so
// a newer engine never blanks the dashboard.
func Project(status, stage string, awaitingApprovals int) Display {
	switch domain.ExecutionStatus(status) {
	case domain.ExecutionIdle:
		return Display{Icon: "idle", Copy: "Idle", Colors: colorsGray}
	case domain.ExecutionQueued, domain.ExecutionRunRequested:
		return Display{Icon: "queued", Copy: "Run queued", Colors: colorsBlue}
	case domain.ExecutionRunning:
		copy := "Run in progress"
		if stage != "" {
			copy = StageLabel(stage)
		}
		return Display{Icon: "spinner", Copy: copy, Colors: colorsBlue}
	case domain.ExecutionAwaitingApprovals:
		copy := "Awaiting lead approvals"
		if awaitingApprovals > 0 {
			copy = fmt.Sprintf("Awaiting lead approvals (%d leads)", awaitingApprovals)
		}
		return Display{Icon: "approval", Copy: copy, Colors: colorsAmber}
	case domain.ExecutionCompleted:
		return Display{Icon: "check", Copy: "Run completed", Colors: colorsGreen}
	case domain.ExecutionFailed:
		return Display{Icon: "error", Copy: "Run failed", Colors: colorsRed}
	case domain.ExecutionPartial:
		return Display{Icon: "warning", Copy: "Run completed with issues", Colors: colorsAmber}
	case domain.ExecutionBlocked:
		return Display{Icon: "blocked", Copy: "Blocked", Colors: colorsRed}
	default:
		return Display{Icon: "pulse", Copy: "Awaiting events", Colors: colorsGray}
	}
}
