package domain

// UserAuth identifies the user against the tournament API.
type UserAuth struct {
	EventID  int
	SteamID  string
	AuthCode string
}

type TournamentLayout struct {
	Sections []TournamentSection
}

type TournamentSection struct {
	SectionID int
	Name      string
	Groups    []MatchGroup
}

type MatchGroup struct {
	GroupID       int
	Name          string
	PointsPerPick int
	PicksAllowed  bool
	Teams         []Team

	// Picks holds the authoritative result once the match has concluded.
	// Empty until then.
	Picks []Pick
}

type Team struct {
	PickID int
	Name   string
}

// Pick is one resolved slot of a match group. Multi-slot groups
// (best-of series legs) carry one entry per index.
type Pick struct {
	Index   int
	PickIDs []int
}

type UserPredictions struct {
	Predictions []Prediction
}

type Prediction struct {
	GroupID int
	Pick    int
}

type ItemType string

const (
	ItemTypeTeam   ItemType = "team"
	ItemTypePlayer ItemType = "player"
)

// TournamentItem is a claimable asset the user must hold to submit a
// prediction for the team or player it represents.
type TournamentItem struct {
	ItemID   string
	Type     ItemType
	TeamID   int
	PlayerID int
}

type TournamentItems struct {
	Items []TournamentItem
}

// SteamInventory is the raw two-part inventory: assets and the
// descriptions they join to via the class/instance pair.
type SteamInventory struct {
	Assets       []InventoryAsset
	Descriptions []InventoryDescription
	TotalCount   int
}

type InventoryAsset struct {
	AssetID    string
	ClassID    string
	InstanceID string
}

type InventoryDescription struct {
	ClassID    string
	InstanceID string
	Name       string
	MarketName string
}

type FantasyLineup struct {
	Teams []FantasyTeam
}

type FantasyTeam struct {
	SectionID int
	Picks     []int
}

type LineupEntry struct {
	PickID int
	ItemID string
}

type UploadPrediction struct {
	UserAuth
	SectionID int
	GroupID   int
	Index     int
	PickID    int
	ItemID    string
}

type UploadMultiple struct {
	UserAuth
	Predictions []UploadEntry
}

type UploadEntry struct {
	SectionID int
	GroupID   int
	Index     int
	PickID    int
	ItemID    string
}

type UploadLineup struct {
	UserAuth
	SectionID int
	Lineup    []LineupEntry
}

// UploadResult echoes the item IDs the upstream consumed.
type UploadResult struct {
	ItemID      string
	SlotItemIDs []string
}

type BracketScore struct {
	TotalPoints        int
	CorrectPredictions int
	PossiblePoints     int
	SectionScores      []SectionScore
}

type SectionScore struct {
	SectionID    int
	SectionName  string
	Points       int
	CorrectPicks int
	TotalPicks   int
}

type CoinTier string

const (
	TierBronze  CoinTier = "Bronze"
	TierSilver  CoinTier = "Silver"
	TierGold    CoinTier = "Gold"
	TierDiamond CoinTier = "Diamond"
)
