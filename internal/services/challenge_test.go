package services

import (
	"context"
	"testing"

	"mojorewards/internal/api"
	"mojorewards/internal/models"
	"mojorewards/internal/pkg/ratelimit"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDialog(t *testing.T, service *ServiceChallenge, id string, username string, discord string) *ClaimDialog {
	t.Helper()

	selected, err := service.FindActiveChallenge(context.Background(), id)
	require.NoError(t, err)

	dialog := &ClaimDialog{Username: username, DiscordUsername: discord}
	dialog.Open(selected)
	return dialog
}

func TestGetActiveChallenges(t *testing.T) {
	f := newFixture(t, nil)
	service := do.MustInvoke[*ServiceChallenge](f.container)

	challenges, err := service.GetActiveChallenges(context.Background())
	require.NoError(t, err)

	ids := []string{}
	for _, c := range challenges {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c1", "c2"}, ids)

	_, err = service.FindActiveChallenge(context.Background(), "c3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitBlankUsernameMakesNoRequest(t *testing.T) {
	f := newFixture(t, nil)
	service := do.MustInvoke[*ServiceChallenge](f.container)

	dialog := openDialog(t, service, "c1", "   ", "alice#1")
	outcome := service.Submit(context.Background(), dialog, "1.2.3.4")

	assert.ErrorIs(t, outcome.Err, ErrMissingInformation)
	assert.Equal(t, CLAIM_OUTCOME_INVALID, outcome.Status())
	assert.Equal(t, TOAST_MISSING_INFO_TITLE, outcome.Toast.Title)
	assert.Equal(t, "Please fill in all fields", outcome.Toast.Description)
	assert.True(t, outcome.Toast.Destructive())
	assert.Empty(t, outcome.RedirectURL)

	assert.Zero(t, f.stub.Hits("POST "+api.PathChallengeClaim("c1")))
	assert.True(t, dialog.IsOpen())
	assert.Equal(t, "   ", dialog.Username)
}

func TestSubmitWithoutSelection(t *testing.T) {
	f := newFixture(t, nil)
	service := do.MustInvoke[*ServiceChallenge](f.container)

	outcome := service.Submit(context.Background(), &ClaimDialog{Username: "alice", DiscordUsername: "alice#1"}, "")
	assert.ErrorIs(t, outcome.Err, ErrMissingInformation)
	assert.Empty(t, f.stub.Claims())
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture(t, nil)
	service := do.MustInvoke[*ServiceChallenge](f.container)

	dialog := openDialog(t, service, "c1", "  alice ", " alice#1 ")
	outcome := service.Submit(context.Background(), dialog, "1.2.3.4")

	require.NoError(t, outcome.Err)
	assert.True(t, outcome.Succeeded())
	assert.Equal(t, CLAIM_OUTCOME_SUCCESS, outcome.Status())
	assert.Equal(t, "Prize Claimed!", outcome.Toast.Title)
	assert.Equal(t, "Join our Discord server and open a ticket to receive your prize.", outcome.Toast.Description)
	assert.False(t, outcome.Toast.Destructive())
	assert.Equal(t, "https://discord.gg/mojotx", outcome.RedirectURL)

	assert.False(t, dialog.IsOpen())
	assert.Empty(t, dialog.Username)
	assert.Empty(t, dialog.DiscordUsername)
	assert.False(t, dialog.Pending)

	claims := f.stub.Claims()
	require.Len(t, claims, 1)
	assert.Equal(t, "c1", claims[0].ChallengeID)
	assert.Equal(t, models.ClaimRequest{Username: "alice", DiscordUsername: "alice#1"}, claims[0].ClaimRequest)

	// the claimed challenge leaves the active set on the next read
	challenges, err := service.GetActiveChallenges(context.Background())
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, "c2", challenges[0].ID)
}

func TestSubmitFailurePreservesDialog(t *testing.T) {
	f := newFixture(t, nil)
	service := do.MustInvoke[*ServiceChallenge](f.container)
	f.stub.SetFailClaims(true)

	dialog := openDialog(t, service, "c2", "alice", "alice#1")
	outcome := service.Submit(context.Background(), dialog, "1.2.3.4")

	require.Error(t, outcome.Err)
	assert.Equal(t, CLAIM_OUTCOME_FAILED, outcome.Status())
	assert.Equal(t, "Claim Failed", outcome.Toast.Title)
	assert.Equal(t, "Something went wrong. Please try again.", outcome.Toast.Description)
	assert.True(t, outcome.Toast.Destructive())
	assert.Empty(t, outcome.RedirectURL)

	require.True(t, dialog.IsOpen())
	assert.Equal(t, "c2", dialog.Selected.ID)
	assert.Equal(t, "alice", dialog.Username)
	assert.Equal(t, "alice#1", dialog.DiscordUsername)
	assert.False(t, dialog.Pending)

	// retry after the upstream recovers
	f.stub.SetFailClaims(false)
	outcome = service.Submit(context.Background(), dialog, "1.2.3.4")
	assert.NoError(t, outcome.Err)
	assert.False(t, dialog.IsOpen())
}

func TestSubmitRejectsConcurrentClaim(t *testing.T) {
	f := newFixture(t, nil)
	service := do.MustInvoke[*ServiceChallenge](f.container)

	release, err := f.locker.TryLock(context.Background(), LockKeyClaim("c1", "Alice"))
	require.NoError(t, err)

	dialog := openDialog(t, service, "c1", "alice", "alice#1")
	outcome := service.Submit(context.Background(), dialog, "")

	assert.ErrorIs(t, outcome.Err, ErrClaimInProgress)
	assert.Equal(t, CLAIM_OUTCOME_IN_PROGRESS, outcome.Status())
	assert.Equal(t, TOAST_IN_PROGRESS_TITLE, outcome.Toast.Title)
	assert.Empty(t, f.stub.Claims())
	assert.True(t, dialog.IsOpen())

	release()
	outcome = service.Submit(context.Background(), dialog, "")
	assert.NoError(t, outcome.Err)
}

func TestSubmitRateLimited(t *testing.T) {
	f := newFixture(t, map[string]string{ENV_CLAIM_RATE_LIMIT_PER_MINUTE: "1"})
	service := do.MustInvoke[*ServiceChallenge](f.container)
	f.stub.SetFailClaims(true)

	first := service.Submit(context.Background(), openDialog(t, service, "c1", "alice", "a#1"), "1.2.3.4")
	assert.Equal(t, CLAIM_OUTCOME_FAILED, first.Status())

	second := service.Submit(context.Background(), openDialog(t, service, "c1", "alice", "a#1"), "1.2.3.4")
	assert.ErrorIs(t, second.Err, ratelimit.ErrRateLimited)
	assert.Equal(t, CLAIM_OUTCOME_RATE_LIMITED, second.Status())
	assert.Equal(t, TOAST_RATE_LIMITED_DESCRIPTION, second.Toast.Description)
	assert.Equal(t, 1, f.stub.Hits("POST "+api.PathChallengeClaim("c1")))

	// no client key, no limit
	third := service.Submit(context.Background(), openDialog(t, service, "c1", "alice", "a#1"), "")
	assert.Equal(t, CLAIM_OUTCOME_FAILED, third.Status())
}

func TestClaimDialogClose(t *testing.T) {
	dialog := &ClaimDialog{Username: "alice", DiscordUsername: "alice#1"}
	dialog.Open(&models.Challenge{ID: "c1"})
	assert.True(t, dialog.IsOpen())

	dialog.Close()
	assert.False(t, dialog.IsOpen())
	assert.Equal(t, "alice", dialog.Username)
}

func TestInviteURLFromEnv(t *testing.T) {
	f := newFixture(t, map[string]string{ENV_DISCORD_INVITE_URL: "https://discord.gg/other"})
	service := do.MustInvoke[*ServiceChallenge](f.container)
	assert.Equal(t, "https://discord.gg/other", service.InviteURL())
}
