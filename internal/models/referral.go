package models

type PayoutTier struct {
	Wager  string `json:"wager"`
	Payout string `json:"payout"`
}

type ReferralStep struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ReferralProgram struct {
	Code       string         `json:"code"`
	MaxPayout  string         `json:"maxPayout"`
	Steps      []ReferralStep `json:"steps"`
	Tiers      []PayoutTier   `json:"tiers"`
	BonusCash  string         `json:"bonusCash"`
	MinDeposit string         `json:"minDeposit"`
	ClaimURL   string         `json:"claimUrl"`
}
