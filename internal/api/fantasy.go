package api

import (
	"context"
	"fmt"
	"strconv"

	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/retry"
	"pickem-tracker/internal/validate"
)

type rawFantasyResponse struct {
	Result struct {
		Teams []rawFantasyTeam `json:"teams"`
	} `json:"result"`
}

type rawFantasyTeam struct {
	SectionID int   `json:"sectionid"`
	Picks     []int `json:"picks"`
}

// GetFantasyLineup fetches the user's fantasy lineup for an event.
func (c *Client) GetFantasyLineup(ctx context.Context, auth domain.UserAuth) (*domain.FantasyLineup, error) {
	if err := validate.UserAuth(auth); err != nil {
		return nil, err
	}

	raw, err := retry.Do(ctx, c.retry, nil, func(ctx context.Context) (*rawFantasyResponse, error) {
		return doGet[rawFantasyResponse](ctx, c, c.baseURL+fantasyEndpoint, c.authParams(auth))
	})
	if err != nil {
		return nil, err
	}

	out := &domain.FantasyLineup{Teams: make([]domain.FantasyTeam, 0, len(raw.Result.Teams))}
	for _, team := range raw.Result.Teams {
		out.Teams = append(out.Teams, domain.FantasyTeam{SectionID: team.SectionID, Picks: team.Picks})
	}
	return out, nil
}

// UploadFantasyLineup submits a five-player fantasy lineup for a section.
func (c *Client) UploadFantasyLineup(ctx context.Context, params domain.UploadLineup) (*domain.UploadResult, error) {
	if err := validate.UploadLineup(params); err != nil {
		return nil, err
	}

	body := c.authParams(params.UserAuth)
	body["sectionid"] = strconv.Itoa(params.SectionID)
	for idx, player := range params.Lineup {
		body[fmt.Sprintf("pickid%d", idx)] = strconv.Itoa(player.PickID)
		body[fmt.Sprintf("itemid%d", idx)] = player.ItemID
	}

	raw, err := doPost[rawUploadResponse](ctx, c, c.baseURL+uploadFantasyEndpoint, body)
	if err != nil {
		return nil, err
	}
	return transformUploadResult(raw), nil
}
