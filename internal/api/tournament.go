package api

import (
	"context"
	"strconv"

	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/retry"
	"pickem-tracker/internal/validate"
)

type rawLayoutResponse struct {
	Result struct {
		Sections []rawSection `json:"sections"`
	} `json:"result"`
}

type rawSection struct {
	SectionID int        `json:"sectionid"`
	Name      string     `json:"name"`
	Groups    []rawGroup `json:"groups"`
}

type rawGroup struct {
	GroupID       int       `json:"groupid"`
	Name          string    `json:"name"`
	PointsPerPick int       `json:"points_per_pick"`
	PicksAllowed  bool      `json:"picks_allowed"`
	Teams         []rawTeam `json:"teams"`
	Picks         []rawPick `json:"picks"`
}

type rawTeam struct {
	PickID int    `json:"pickid"`
	Name   string `json:"name"`
}

type rawPick struct {
	Index   int   `json:"index"`
	PickIDs []int `json:"pickids"`
}

// GetTournamentLayout fetches the bracket layout for an event.
func (c *Client) GetTournamentLayout(ctx context.Context, eventID int) (*domain.TournamentLayout, error) {
	if err := validate.EventID(eventID); err != nil {
		return nil, err
	}

	raw, err := retry.Do(ctx, c.retry, nil, func(ctx context.Context) (*rawLayoutResponse, error) {
		return doGet[rawLayoutResponse](ctx, c, c.baseURL+layoutEndpoint, map[string]string{
			"key":   c.apiKey,
			"event": strconv.Itoa(eventID),
		})
	})
	if err != nil {
		return nil, err
	}

	layout := transformLayout(raw)
	return &layout, nil
}

func transformLayout(raw *rawLayoutResponse) domain.TournamentLayout {
	layout := domain.TournamentLayout{
		Sections: make([]domain.TournamentSection, 0, len(raw.Result.Sections)),
	}

	for _, section := range raw.Result.Sections {
		out := domain.TournamentSection{
			SectionID: section.SectionID,
			Name:      section.Name,
			Groups:    make([]domain.MatchGroup, 0, len(section.Groups)),
		}
		for _, group := range section.Groups {
			outGroup := domain.MatchGroup{
				GroupID:       group.GroupID,
				Name:          group.Name,
				PointsPerPick: group.PointsPerPick,
				PicksAllowed:  group.PicksAllowed,
			}
			for _, team := range group.Teams {
				outGroup.Teams = append(outGroup.Teams, domain.Team{PickID: team.PickID, Name: team.Name})
			}
			for _, pick := range group.Picks {
				outGroup.Picks = append(outGroup.Picks, domain.Pick{Index: pick.Index, PickIDs: pick.PickIDs})
			}
			out.Groups = append(out.Groups, outGroup)
		}
		layout.Sections = append(layout.Sections, out)
	}

	return layout
}
