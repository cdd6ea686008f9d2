package service

import (
	"strings"

	"github.com/rs/zerolog"

	"pickem-tracker/internal/domain"
)

// TeamNames is an authoritative pickID→name override table. It is
// caller-owned; register known branding before constructing the service.
type TeamNames map[int]string

func DefaultTeamNames() TeamNames {
	return TeamNames{}
}

const unknownTeamName = "Unknown"

// marketNameDelimiter separates the three segments of a sticker market
// name: kind | team | event.
const marketNameDelimiter = " | "

type ReconcileService struct {
	teamNames TeamNames
	logger    zerolog.Logger
}

func NewReconcileService(teamNames TeamNames, logger zerolog.Logger) *ReconcileService {
	if teamNames == nil {
		teamNames = TeamNames{}
	}
	return &ReconcileService{teamNames: teamNames, logger: logger}
}

type classInstance struct {
	classID    string
	instanceID string
}

// EnrichLayout returns a copy of layout with placeholder team names
// resolved through the override table, the user's claimable items and
// the raw inventory. Unresolvable teams keep their original name; the
// output always has the same section/group/team cardinality as the input.
func (s *ReconcileService) EnrichLayout(layout domain.TournamentLayout, items domain.TournamentItems, inventory domain.SteamInventory) domain.TournamentLayout {
	assetClass := make(map[string]classInstance, len(inventory.Assets))
	for _, asset := range inventory.Assets {
		assetClass[asset.AssetID] = classInstance{classID: asset.ClassID, instanceID: asset.InstanceID}
	}

	marketNames := make(map[classInstance]string, len(inventory.Descriptions))
	for _, desc := range inventory.Descriptions {
		marketNames[classInstance{classID: desc.ClassID, instanceID: desc.InstanceID}] = desc.MarketName
	}

	teamItems := make(map[int]string)
	for _, item := range items.Items {
		if item.Type == domain.ItemTypeTeam {
			if _, ok := teamItems[item.TeamID]; !ok {
				teamItems[item.TeamID] = item.ItemID
			}
		}
	}

	resolved := 0
	out := domain.TournamentLayout{Sections: make([]domain.TournamentSection, len(layout.Sections))}
	for si, section := range layout.Sections {
		outSection := section
		outSection.Groups = make([]domain.MatchGroup, len(section.Groups))
		for gi, group := range section.Groups {
			outGroup := group
			outGroup.Teams = make([]domain.Team, len(group.Teams))
			for ti, team := range group.Teams {
				outTeam := team
				if name, ok := s.resolveTeamName(team.PickID, teamItems, assetClass, marketNames); ok {
					outTeam.Name = name
					resolved++
				}
				outGroup.Teams[ti] = outTeam
			}
			outSection.Groups[gi] = outGroup
		}
		out.Sections[si] = outSection
	}

	s.logger.Debug().
		Int("resolved_teams", resolved).
		Int("team_items", len(teamItems)).
		Int("inventory_assets", len(inventory.Assets)).
		Msg("layout reconciled")

	return out
}

func (s *ReconcileService) resolveTeamName(pickID int, teamItems map[int]string, assetClass map[string]classInstance, marketNames map[classInstance]string) (string, bool) {
	if name, ok := s.teamNames[pickID]; ok && name != unknownTeamName {
		return name, true
	}

	itemID, ok := teamItems[pickID]
	if !ok {
		return "", false
	}
	ci, ok := assetClass[itemID]
	if !ok {
		return "", false
	}
	marketName, ok := marketNames[ci]
	if !ok || marketName == "" {
		return "", false
	}

	// sticker market names follow "kind | team | event"
	parts := strings.Split(marketName, marketNameDelimiter)
	if len(parts) >= 2 {
		return parts[1], true
	}
	return marketName, true
}
