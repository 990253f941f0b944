package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"mojorewards/internal/models"
	"mojorewards/internal/pkg"
	"mojorewards/internal/pkg/countdown"

	"github.com/fatih/color"
)

var (
	colorTitle   = color.New(color.FgHiWhite, color.Bold)
	colorMuted   = color.New(color.FgHiBlack)
	colorPrimary = color.New(color.FgHiGreen, color.Bold)
	colorError   = color.New(color.FgRed, color.Bold)

	tierColors = map[string]*color.Color{
		models.RANK_TIER_GOLD:   color.New(color.FgYellow, color.Bold),
		models.RANK_TIER_SILVER: color.New(color.FgWhite, color.Bold),
		models.RANK_TIER_BRONZE: color.New(color.FgRed),
	}
)

func printLeaderboard(w io.Writer, board *models.LeaderboardResponse, now time.Time) {
	colorTitle.Fprintln(w, "Monthly Leaderboard")
	if board.Settings != nil {
		fmt.Fprintf(w, "Time remaining: %s\n", countdown.Until(board.Settings.EndDate, now))
		fmt.Fprintf(w, "Total prize pool: %s\n", colorPrimary.Sprint(board.TotalPrizePool))
	}
	fmt.Fprintln(w)

	if len(board.Leaderboard) == 0 {
		colorMuted.Fprintln(w, "No leaderboard entries yet")
		return
	}

	for _, item := range board.Leaderboard {
		rank := fmt.Sprintf("#%d", item.Rank)
		if c, ok := tierColors[item.Tier]; ok {
			rank = c.Sprint(rank)
		}
		fmt.Fprintf(w, "%-4s %-20s wagered %-14s prize %s\n", rank, item.Username, item.Wagered, colorPrimary.Sprint(item.Prize))
	}
}

func printMilestones(w io.Writer, milestones []models.LevelMilestone) {
	colorTitle.Fprintln(w, "Level Milestones")
	if len(milestones) == 0 {
		colorMuted.Fprintln(w, "No milestones available yet")
		return
	}

	for i := range milestones {
		m := &milestones[i]
		fmt.Fprintf(w, "Tier %d  %s\n", m.Tier, colorPrimary.Sprint(m.Name))
		for _, reward := range m.PreviewRewards() {
			fmt.Fprintf(w, "  • %s\n", reward)
		}
		if hidden := m.HiddenRewards(); hidden > 0 {
			colorMuted.Fprintf(w, "  +%d more...\n", hidden)
		}
	}
}

func printMilestone(w io.Writer, m *models.LevelMilestone, claimURL string) {
	colorTitle.Fprintln(w, m.Name)
	colorMuted.Fprintln(w, "Create a ticket on Discord to claim your rewards")
	for _, reward := range m.Rewards {
		fmt.Fprintf(w, "  • %s\n", reward)
	}
	fmt.Fprintf(w, "Claim on Discord: %s\n", claimURL)
}

func printChallenges(w io.Writer, challenges []models.Challenge) {
	colorTitle.Fprintln(w, "Challenges")
	if len(challenges) == 0 {
		colorMuted.Fprintln(w, "No Active Challenges")
		colorMuted.Fprintln(w, "Check back later for new challenges and opportunities to win!")
		return
	}

	for _, c := range challenges {
		fmt.Fprintf(w, "[%s] %s  min %sx @ $%s  prize %s\n",
			c.ID, c.GameName, pkg.FormatPlain(c.MinMultiplier), pkg.FormatPlain(c.MinBet), colorPrimary.Sprint(pkg.FormatMoney(c.Prize)))
	}
}

func printFreeSpins(w io.Writer, offers []models.FreeSpinsOffer, now time.Time) {
	colorTitle.Fprintln(w, "Free Spins")
	if len(offers) == 0 {
		colorMuted.Fprintln(w, "No active free spins offers at the moment")
		return
	}

	for i := range offers {
		o := &offers[i]
		fmt.Fprintf(w, "%s by %s  code %s\n", o.GameName, o.GameProvider, colorPrimary.Sprint(o.Code))
		fmt.Fprintf(w, "  %d × $%s spins, %d / %d claims left, %s claimed\n",
			o.SpinsCount, pkg.FormatPlain(o.SpinValue), o.ClaimsRemaining, o.TotalClaims, pkg.FormatPercent(o.ClaimPercent()))
		fmt.Fprintf(w, "  expires in %s\n", countdown.Until(o.ExpiresAt, now))
		for _, req := range o.Requirements {
			fmt.Fprintf(w, "  • %s\n", req)
		}
	}
}

func printReferral(w io.Writer, program *models.ReferralProgram) {
	colorTitle.Fprintln(w, "Referral Program")
	fmt.Fprintf(w, "Earn up to %s per referral! Your code: %s\n\n", program.MaxPayout, colorPrimary.Sprint(program.Code))
	for _, step := range program.Steps {
		fmt.Fprintf(w, "%d. %s: %s\n", step.Number, step.Title, step.Description)
	}
	fmt.Fprintln(w)
	for i, tier := range program.Tiers {
		payout := tier.Payout
		if i == len(program.Tiers)-1 {
			payout = colorPrimary.Sprint(payout)
		}
		fmt.Fprintf(w, "%-24s %s\n", tier.Wager, payout)
	}
	fmt.Fprintf(w, "\nBonus cash: %s for every first deposit (minimum %s)\n", program.BonusCash, program.MinDeposit)
	fmt.Fprintf(w, "Claim your rewards on Discord: %s\n", program.ClaimURL)
}

func printToast(w io.Writer, toast *models.Toast) {
	c := colorPrimary
	if toast.Destructive() {
		c = colorError
	}
	c.Fprintln(w, toast.Title)
	fmt.Fprintln(w, strings.TrimSpace(toast.Description))
}
