package domain

import "time"

// Account is a user's economy record
type Account struct {
	ID             string    `json:"id"`
	Points         int64     `json:"points"`
	Level          int       `json:"level"`
	Experience     int64     `json:"experience"`
	Wins           int       `json:"wins"`
	GamesPlayed    int       `json:"games_played"`
	LastDailyClaim time.Time `json:"last_daily_claim"`
}

// NewAccount returns a freshly bootstrapped account
func NewAccount(id string) *Account {
	return &Account{
		ID:     id,
		Points: StartingPoints,
		Level:  StartingLevel,
	}
}

// ProfileUpdate carries the profile fields a caller wants to overwrite.
// Nil fields are left unchanged. Points are never written through here.
type ProfileUpdate struct {
	Experience     *int64
	Wins           *int
	GamesPlayed    *int
	Level          *int
	LastDailyClaim *time.Time
}

// IsEmpty reports whether the update carries no fields
func (u ProfileUpdate) IsEmpty() bool {
	return u.Experience == nil && u.Wins == nil && u.GamesPlayed == nil && u.Level == nil && u.LastDailyClaim == nil
}

// Apply writes the non-nil fields onto the account
func (u ProfileUpdate) Apply(a *Account) {
	if u.Experience != nil {
		a.Experience = *u.Experience
	}
	if u.Wins != nil {
		a.Wins = *u.Wins
	}
	if u.GamesPlayed != nil {
		a.GamesPlayed = *u.GamesPlayed
	}
	if u.Level != nil {
		a.Level = *u.Level
	}
	if u.LastDailyClaim != nil {
		a.LastDailyClaim = *u.LastDailyClaim
	}
}

// Player identifies the principal behind an inbound command
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Bot  bool   `json:"bot,omitempty"`
}

// Playable reports whether the principal may take part in games and transfers
func (p Player) Playable() bool {
	return !p.Bot && p.ID != "" && p.ID != HouseAccountID
}

// LeaderboardEntry is one row of the points leaderboard
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"user_id"`
	Points int64  `json:"points"`
}

// ShopItem is a catalog entry
type ShopItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Emoji       string `json:"emoji"`
	Category    string `json:"category"`
}

// InventoryItem is a catalog item owned by a user
type InventoryItem struct {
	UserID   string   `json:"user_id"`
	Item     ShopItem `json:"item"`
	Quantity int      `json:"quantity"`
}
