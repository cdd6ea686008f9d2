package market

import (
	"fmt"
	"net/url"

	"pickem-tracker/internal/domain"
)

const searchBase = "https://steamcommunity.com/market/search"

// TournamentNames maps event IDs to market search names. Caller-owned;
// register new events as they are announced.
type TournamentNames map[int]string

func DefaultTournamentNames() TournamentNames {
	return TournamentNames{
		21: "Paris 2023",
		22: "Copenhagen 2024",
		23: "Shanghai 2024",
		24: "Austin 2025",
		25: "Budapest 2025",
	}
}

// Name returns the display name for a tournament, falling back to
// "Tournament <id>" for unregistered events.
func (n TournamentNames) Name(tournamentID int) string {
	if name, ok := n[tournamentID]; ok {
		return name
	}
	return fmt.Sprintf("Tournament %d", tournamentID)
}

// Register adds or overrides an event name.
func (n TournamentNames) Register(tournamentID int, name string) {
	n[tournamentID] = name
}

type URLParams struct {
	Type         domain.ItemType
	TeamID       int
	PlayerTag    string
	TournamentID int
}

// BuildURL builds a Steam Community Market sticker-search URL for a
// team or player of the given tournament.
func BuildURL(names TournamentNames, params URLParams) string {
	tournamentName := names.Name(params.TournamentID)

	values := url.Values{}
	values.Set("appid", "730")
	values.Set("category_730_Type", "tag_CSGO_Type_Sticker")

	switch {
	case params.Type == domain.ItemTypeTeam && params.TeamID != 0:
		values.Set("q", tournamentName)
	case params.Type == domain.ItemTypePlayer && params.PlayerTag != "":
		values.Set("q", fmt.Sprintf("%s %s", params.PlayerTag, tournamentName))
	}

	return searchBase + "?" + values.Encode()
}
