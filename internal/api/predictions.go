package api

import (
	"context"
	"fmt"
	"strconv"

	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/retry"
	"pickem-tracker/internal/validate"
)

type rawPredictionsResponse struct {
	Result struct {
		// older events answer under "picks" instead of "predictions";
		// both carry the same entries
		Predictions []rawPrediction `json:"predictions"`
		Picks       []rawPrediction `json:"picks"`
	} `json:"result"`
}

type rawPrediction struct {
	GroupID int `json:"groupid"`
	Pick    int `json:"pick"`
}

type rawUploadResponse struct {
	Result rawUploadResult `json:"result"`
}

type rawUploadResult struct {
	ItemID  string `json:"itemid"`
	ItemID0 string `json:"itemid0"`
	ItemID1 string `json:"itemid1"`
	ItemID2 string `json:"itemid2"`
	ItemID3 string `json:"itemid3"`
	ItemID4 string `json:"itemid4"`
}

// GetPredictions fetches the user's submitted predictions for an event.
func (c *Client) GetPredictions(ctx context.Context, auth domain.UserAuth) (*domain.UserPredictions, error) {
	if err := validate.UserAuth(auth); err != nil {
		return nil, err
	}

	raw, err := retry.Do(ctx, c.retry, nil, func(ctx context.Context) (*rawPredictionsResponse, error) {
		return doGet[rawPredictionsResponse](ctx, c, c.baseURL+predictionsEndpoint, c.authParams(auth))
	})
	if err != nil {
		return nil, err
	}

	return transformPredictions(raw), nil
}

func transformPredictions(raw *rawPredictionsResponse) *domain.UserPredictions {
	entries := raw.Result.Predictions
	if entries == nil {
		entries = raw.Result.Picks
	}

	out := &domain.UserPredictions{Predictions: make([]domain.Prediction, 0, len(entries))}
	for _, p := range entries {
		out.Predictions = append(out.Predictions, domain.Prediction{GroupID: p.GroupID, Pick: p.Pick})
	}
	return out
}

// UploadPrediction submits a single prediction. Validation failures are
// raised before any network call; uploads are never auto-retried.
func (c *Client) UploadPrediction(ctx context.Context, params domain.UploadPrediction) (*domain.UploadResult, error) {
	if err := validate.UploadPrediction(params); err != nil {
		return nil, err
	}

	body := c.authParams(params.UserAuth)
	body["sectionid"] = strconv.Itoa(params.SectionID)
	body["groupid"] = strconv.Itoa(params.GroupID)
	body["index"] = strconv.Itoa(params.Index)
	body["pickid"] = strconv.Itoa(params.PickID)
	body["itemid"] = params.ItemID

	raw, err := doPost[rawUploadResponse](ctx, c, c.baseURL+uploadPredictionsEndpoint, body)
	if err != nil {
		return nil, err
	}
	return transformUploadResult(raw), nil
}

// UploadMultiplePredictions submits a batch in one call using the
// upstream's numbered-parameter convention.
func (c *Client) UploadMultiplePredictions(ctx context.Context, params domain.UploadMultiple) (*domain.UploadResult, error) {
	if err := validate.UploadMultiple(params); err != nil {
		return nil, err
	}

	body := c.authParams(params.UserAuth)
	for idx, pred := range params.Predictions {
		body[fmt.Sprintf("sectionid%d", idx)] = strconv.Itoa(pred.SectionID)
		body[fmt.Sprintf("groupid%d", idx)] = strconv.Itoa(pred.GroupID)
		body[fmt.Sprintf("index%d", idx)] = strconv.Itoa(pred.Index)
		body[fmt.Sprintf("pickid%d", idx)] = strconv.Itoa(pred.PickID)
		body[fmt.Sprintf("itemid%d", idx)] = pred.ItemID
	}

	raw, err := doPost[rawUploadResponse](ctx, c, c.baseURL+uploadPredictionsEndpoint, body)
	if err != nil {
		return nil, err
	}
	return transformUploadResult(raw), nil
}

func transformUploadResult(raw *rawUploadResponse) *domain.UploadResult {
	out := &domain.UploadResult{ItemID: raw.Result.ItemID}
	for _, id := range []string{raw.Result.ItemID0, raw.Result.ItemID1, raw.Result.ItemID2, raw.Result.ItemID3, raw.Result.ItemID4} {
		if id != "" {
			out.SlotItemIDs = append(out.SlotItemIDs, id)
		}
	}
	return out
}
