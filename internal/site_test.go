package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationMarksCurrentRoute(t *testing.T) {
	groups := Navigation(ROUTE_CHALLENGES, DISCORD_INVITE_URL)
	require.Len(t, groups, 4)

	var active []string
	for _, group := range groups {
		for _, item := range group.Items {
			if item.Active {
				active = append(active, item.Label)
			}
		}
	}
	assert.Equal(t, []string{"Challenges"}, active)
}

func TestNavigationExternalNeverActive(t *testing.T) {
	for _, group := range Navigation(DISCORD_INVITE_URL, DISCORD_INVITE_URL) {
		for _, item := range group.Items {
			assert.False(t, item.Active, item.Label)
		}
	}
}

func TestNavigationGroups(t *testing.T) {
	groups := Navigation("/", DISCORD_INVITE_URL)
	labels := make([]string, 0, len(groups))
	for _, group := range groups {
		labels = append(labels, group.Label)
	}
	assert.Equal(t, []string{"Main", "Community", "Gamdom", "Support"}, labels)
	assert.True(t, groups[0].Items[0].Active)
	assert.True(t, groups[2].Items[1].External)
	assert.Equal(t, GAMDOM_SIGNUP_URL, groups[2].Items[1].Route)
}

func TestSupportFollowsInviteURL(t *testing.T) {
	groups := Navigation("/", "https://discord.gg/other")
	assert.Equal(t, "https://discord.gg/other", groups[3].Items[0].Route)

	links := SocialLinks("https://discord.gg/other")
	assert.Equal(t, "Discord", links[0].Name)
	assert.Equal(t, "https://discord.gg/other", links[0].URL)
}
