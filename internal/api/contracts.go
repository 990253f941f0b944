package api

import (
	"fmt"
	"net/url"
)

// Endpoints of the rewards records API. Reads are cached under their path.
const (
	PathLeaderboardSettings = "/api/leaderboard/settings"
	PathLeaderboardEntries  = "/api/leaderboard/entries"
	PathMilestones          = "/api/milestones"
	PathChallenges          = "/api/challenges"
	PathFreeSpins           = "/api/free-spins"
)

// ReadPaths lists every cached read endpoint.
var ReadPaths = []string{
	PathLeaderboardSettings,
	PathLeaderboardEntries,
	PathMilestones,
	PathChallenges,
	PathFreeSpins,
}

func PathChallengeClaim(id string) string {
	return fmt.Sprintf("%s/%s/claim", PathChallenges, url.PathEscape(id))
}
