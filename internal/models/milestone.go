package models

type LevelMilestone struct {
	ID       string   `json:"id"`
	Tier     int      `json:"tier"`
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl"`
	Rewards  []string `json:"rewards"`
}

const MILESTONE_PREVIEW_REWARDS = 2

// PreviewRewards returns the rewards shown on the milestone card.
func (m *LevelMilestone) PreviewRewards() []string {
	if len(m.Rewards) <= MILESTONE_PREVIEW_REWARDS {
		return m.Rewards
	}
	return m.Rewards[:MILESTONE_PREVIEW_REWARDS]
}

// HiddenRewards is the count behind the "+N more..." hint.
func (m *LevelMilestone) HiddenRewards() int {
	if len(m.Rewards) <= MILESTONE_PREVIEW_REWARDS {
		return 0
	}
	return len(m.Rewards) - MILESTONE_PREVIEW_REWARDS
}
