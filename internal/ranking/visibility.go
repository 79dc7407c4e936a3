package ranking

import (
	"github.com/charliearlie/football-IQ-sub007/internal/types"
)

// StickyVisibility decides whether the sticky bar showing the current
// user's own rank should be displayed. It is shown when the user has a
// qualifying score but their row is scrolled out of the visible window, or
// when they fall outside the fetched entries entirely (UserIndex -1).
// A nil UserRank means the user has no score yet and the bar never shows.
func StickyVisibility(input types.StickyInput) types.StickyResult {
	if input.UserRank == nil {
		return types.StickyResult{UserIndex: -1}
	}

	index := -1
	for i := range input.Entries {
		if input.Entries[i].UserID == input.CurrentUserID {
			index = i
			break
		}
	}

	if index < 0 {
		return types.StickyResult{
			UserIndex:           -1,
			ShouldShowStickyBar: true,
		}
	}

	visible := index >= input.VisibleRange.Start && index <= input.VisibleRange.End

	return types.StickyResult{
		IsUserVisible:       visible,
		UserIndex:           index,
		ShouldShowStickyBar: !visible,
	}
}
