package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"pickem-tracker/internal/apierror"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/retry"
	"pickem-tracker/internal/validate"
)

type rawInventory struct {
	Assets              []rawInventoryAsset       `json:"assets"`
	Descriptions        []rawInventoryDescription `json:"descriptions"`
	TotalInventoryCount int                       `json:"total_inventory_count"`
}

type rawInventoryAsset struct {
	AssetID    string `json:"assetid"`
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
}

type rawInventoryDescription struct {
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	Name       string `json:"name"`
	MarketName string `json:"market_name"`
}

// GetInventory fetches the user's CS2 inventory from the community
// endpoint. Private or empty inventories come back as upstream
// rejections; those degrade to an empty inventory so reconciliation can
// still run. Network failures propagate.
func (c *Client) GetInventory(ctx context.Context, steamID string) (*domain.SteamInventory, error) {
	if err := validate.SteamID(steamID); err != nil {
		return nil, err
	}

	route := fmt.Sprintf("%s/inventory/%s/730/2", c.communityURL, steamID)

	raw, err := retry.Do(ctx, c.retry, nil, func(ctx context.Context) (*rawInventory, error) {
		return doGet[rawInventory](ctx, c, route, map[string]string{
			"l":     "english",
			"count": strconv.Itoa(constants.InventoryPageSize),
		})
	})
	if err != nil {
		var apiErr *apierror.Error
		if errors.As(err, &apiErr) && apiErr.Kind == apierror.KindAPI {
			c.logger.Debug().Int("status", apiErr.StatusCode).Msg("inventory unavailable, continuing without it")
			return &domain.SteamInventory{}, nil
		}
		return nil, err
	}

	out := &domain.SteamInventory{TotalCount: raw.TotalInventoryCount}
	for _, asset := range raw.Assets {
		out.Assets = append(out.Assets, domain.InventoryAsset{
			AssetID:    asset.AssetID,
			ClassID:    asset.ClassID,
			InstanceID: asset.InstanceID,
		})
	}
	for _, desc := range raw.Descriptions {
		out.Descriptions = append(out.Descriptions, domain.InventoryDescription{
			ClassID:    desc.ClassID,
			InstanceID: desc.InstanceID,
			Name:       desc.Name,
			MarketName: desc.MarketName,
		})
	}
	return out, nil
}
