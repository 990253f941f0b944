package internal

const (
	SITE_TITLE    = "MojoTX Rewards"
	SITE_NAME     = "MojoTX"
	SITE_TAGLINE  = "Rewards Hub"
	SITE_LOGO_URL = "https://files.kick.com/images/user/565379/profile_image/conversion/6165ea43-dffd-419e-b4ea-b3ebde51a45e-fullsize.webp"

	REFERRAL_CODE      = "mojokick"
	DISCORD_INVITE_URL = "https://discord.gg/mojotx"
	GAMDOM_SIGNUP_URL  = "https://gamdom.com/r/mojokick"
)

const (
	ROUTE_LEADERBOARD = "/"
	ROUTE_MILESTONES  = "/milestones"
	ROUTE_CHALLENGES  = "/challenges"
	ROUTE_FREE_SPINS  = "/free-spins"
	ROUTE_REFERRAL    = "/referral"
)

type NavItem struct {
	Label    string
	Route    string
	Icon     string
	External bool
	Active   bool
}

type NavGroup struct {
	Label string
	Items []NavItem
}

type SocialLink struct {
	Name  string
	URL   string
	Icon  string
	Color string
}

type ContactLink struct {
	Label string
	URL   string
	Icon  string
	Color string
}

func navGroups(supportURL string) []NavGroup {
	return []NavGroup{
		{"Main", []NavItem{
			{Label: "Leaderboard", Route: ROUTE_LEADERBOARD, Icon: "trophy"},
			{Label: "Milestones", Route: ROUTE_MILESTONES, Icon: "award"},
		}},
		{"Community", []NavItem{
			{Label: "Challenges", Route: ROUTE_CHALLENGES, Icon: "target"},
			{Label: "Free Spins", Route: ROUTE_FREE_SPINS, Icon: "gift"},
		}},
		{"Gamdom", []NavItem{
			{Label: "Referral Program", Route: ROUTE_REFERRAL, Icon: "users"},
			{Label: "Gamdom Sign Up", Route: GAMDOM_SIGNUP_URL, Icon: "store", External: true},
		}},
		{"Support", []NavItem{
			{Label: "Help & Support", Route: supportURL, Icon: "help", External: true},
		}},
	}
}

// Navigation returns the sidebar with the item routed at current marked
// active. External links are never active. Support goes to supportURL.
func Navigation(current string, supportURL string) []NavGroup {
	groups := navGroups(supportURL)
	for i := range groups {
		for j := range groups[i].Items {
			item := &groups[i].Items[j]
			item.Active = !item.External && item.Route == current
		}
	}
	return groups
}

// SocialLinks lists the community links, Discord pointing at discordURL.
func SocialLinks(discordURL string) []SocialLink {
	return []SocialLink{
		{"Discord", discordURL, "discord", "#5865F2"},
		{"Kick", "https://kick.com/mojotx", "kick", "#53FC18"},
		{"Twitter", "https://twitter.com/MojoTxOnX", "x", ""},
		{"Instagram", "https://instagram.com/MojoTxKick", "instagram", "#E4405F"},
	}
}

func ContactLinks() []ContactLink {
	return []ContactLink{
		{"Discord: mojotxkick", "https://discord.com/users/mojotxkick", "discord", "#5865F2"},
		{"Telegram: mojotx", "https://t.me/mojotx", "telegram", "#26A5E4"},
	}
}
