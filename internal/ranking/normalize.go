package ranking

import (
	"encoding/json"
	"math"

	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

const (
	triviaMaxPoints = 10
	gridCells       = 9
)

type pointsMetadata struct {
	Points    float64  `json:"points"`
	MaxPoints *float64 `json:"maxPoints"`
}

type percentageMetadata struct {
	Percentage *float64 `json:"percentage"`
}

type resultMetadata struct {
	Result string `json:"result"`
}

type gridMetadata struct {
	CellsFilled *float64 `json:"cellsFilled"`
}

// Normalize converts one attempt's raw metadata to the common 0-100 scale.
// Unknown modes and absent or malformed metadata normalize to 0 rather than
// erroring, so one bad record never blocks a board from rendering. The
// caller cannot tell "legitimately zero" from "unparseable"; that ambiguity
// is accepted.
func Normalize(mode types.GameMode, metadata json.RawMessage) int {
	if len(metadata) == 0 {
		return 0
	}

	switch mode {
	case types.ModeCareerPath:
		var m pointsMetadata
		if json.Unmarshal(metadata, &m) != nil || m.MaxPoints == nil || *m.MaxPoints <= 0 {
			return 0
		}
		return roundPercent(m.Points / *m.MaxPoints)

	case types.ModeDailyTrivia:
		var m pointsMetadata
		if json.Unmarshal(metadata, &m) != nil {
			return 0
		}
		return roundPercent(m.Points / triviaMaxPoints)

	case types.ModeTransferTracker:
		var m percentageMetadata
		if json.Unmarshal(metadata, &m) != nil || m.Percentage == nil {
			return 0
		}
		return int(math.Round(*m.Percentage))

	case types.ModeMatchResult:
		var m resultMetadata
		if json.Unmarshal(metadata, &m) != nil {
			return 0
		}
		switch m.Result {
		case "win":
			return 100
		case "draw":
			return 50
		default:
			return 0
		}

	case types.ModeGuessTheGrid:
		var m gridMetadata
		if json.Unmarshal(metadata, &m) != nil || m.CellsFilled == nil {
			return 0
		}
		return roundPercent(*m.CellsFilled / gridCells)
	}

	return 0
}

func roundPercent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
