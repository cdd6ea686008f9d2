package api

import (
	"context"

	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/retry"
	"pickem-tracker/internal/validate"
)

type rawItemsResponse struct {
	Result struct {
		Items []rawItem `json:"items"`
	} `json:"result"`
}

type rawItem struct {
	ItemID   string `json:"itemid"`
	Type     string `json:"type"`
	TeamID   int    `json:"teamid"`
	PlayerID int    `json:"playerid"`
}

// GetTournamentItems fetches the user's claimable tournament items.
func (c *Client) GetTournamentItems(ctx context.Context, auth domain.UserAuth) (*domain.TournamentItems, error) {
	if err := validate.UserAuth(auth); err != nil {
		return nil, err
	}

	raw, err := retry.Do(ctx, c.retry, nil, func(ctx context.Context) (*rawItemsResponse, error) {
		return doGet[rawItemsResponse](ctx, c, c.baseURL+itemsEndpoint, c.authParams(auth))
	})
	if err != nil {
		return nil, err
	}

	out := &domain.TournamentItems{Items: make([]domain.TournamentItem, 0, len(raw.Result.Items))}
	for _, item := range raw.Result.Items {
		out.Items = append(out.Items, domain.TournamentItem{
			ItemID:   item.ItemID,
			Type:     domain.ItemType(item.Type),
			TeamID:   item.TeamID,
			PlayerID: item.PlayerID,
		})
	}
	return out, nil
}
