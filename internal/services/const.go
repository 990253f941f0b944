package services

import (
	"errors"
	"fmt"
	"strings"

	"mojorewards/internal"
)

var ErrMissingInformation = errors.New("missing information")
var ErrClaimInProgress = errors.New("claim in progress")
var ErrNotFound = errors.New("not found")

const (
	ENV_API_MODE                    = "API_MODE"
	ENV_DISCORD_INVITE_URL          = "DISCORD_INVITE_URL"
	ENV_CLAIM_RATE_LIMIT_PER_MINUTE = "CLAIM_RATE_LIMIT_PER_MINUTE"
	ENV_REFERRAL_CODE               = "REFERRAL_CODE"

	CLAIM_RATE_LIMIT_PER_MINUTE = 5

	TOAST_CLAIM_SUCCESS_TITLE       = "Prize Claimed!"
	TOAST_CLAIM_SUCCESS_DESCRIPTION = "Join our Discord server and open a ticket to receive your prize."
	TOAST_CLAIM_FAILED_TITLE        = "Claim Failed"
	TOAST_CLAIM_FAILED_DESCRIPTION  = "Something went wrong. Please try again."
	TOAST_MISSING_INFO_TITLE        = "Missing Information"
	TOAST_MISSING_INFO_DESCRIPTION  = "Please fill in all fields"
	TOAST_RATE_LIMITED_DESCRIPTION  = "Too many claim attempts. Please wait a minute and try again."
	TOAST_IN_PROGRESS_TITLE         = "Claim In Progress"
	TOAST_IN_PROGRESS_DESCRIPTION   = "Your claim is already being submitted."

	CLAIM_OUTCOME_SUCCESS      = "success"
	CLAIM_OUTCOME_INVALID      = "invalid"
	CLAIM_OUTCOME_RATE_LIMITED = "rate_limited"
	CLAIM_OUTCOME_IN_PROGRESS  = "in_progress"
	CLAIM_OUTCOME_FAILED       = "failed"
)

func LockKeyClaim(challengeID string, username string) string {
	return fmt.Sprintf("lock:challenge-claim:%s:%s", challengeID, strings.ToLower(username))
}

func LimitKeyClaim(clientKey string) string {
	return fmt.Sprintf("limit:challenge-claim:%s", clientKey)
}

// InviteURL is the configured Discord invite, the built-in one when unset.
func InviteURL(vs map[string]string) string {
	if v := strings.TrimSpace(vs[ENV_DISCORD_INVITE_URL]); v != "" {
		return v
	}
	return internal.DISCORD_INVITE_URL
}
