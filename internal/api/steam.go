package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"pickem-tracker/internal/apierror"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/retry"
)

const (
	layoutEndpoint            = "/ICSGOTournaments_730/GetTournamentLayout/v1"
	predictionsEndpoint       = "/ICSGOTournaments_730/GetTournamentPredictions/v1"
	uploadPredictionsEndpoint = "/ICSGOTournaments_730/UploadTournamentPredictions/v1"
	itemsEndpoint             = "/ICSGOTournaments_730/GetTournamentItems/v1"
	fantasyEndpoint           = "/ICSGOTournaments_730/GetTournamentFantasyLineup/v1"
	uploadFantasyEndpoint     = "/ICSGOTournaments_730/UploadTournamentFantasyLineup/v1"

	defaultCommunityURL = "https://steamcommunity.com"
)

// Client talks to the Steam tournament WebAPI. Fetches that fail with a
// rate-limit error are retried with exponential backoff; everything else
// surfaces immediately as an apierror kind.
type Client struct {
	apiKey       string
	baseURL      string
	communityURL string
	http         *fasthttp.Client
	retry        retry.Config
	logger       zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:       cfg.SteamAPIKey,
		baseURL:      cfg.BaseURL,
		communityURL: defaultCommunityURL,
		http: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		retry: retry.Config{
			MaxAttempts:  cfg.RetryMaxAttempts,
			InitialDelay: cfg.RetryInitialDelay,
		},
		logger: logger,
	}
}

func (c *Client) authParams(auth domain.UserAuth) map[string]string {
	return map[string]string{
		"key":        c.apiKey,
		"event":      strconv.Itoa(auth.EventID),
		"steamid":    auth.SteamID,
		"steamidkey": auth.AuthCode,
	}
}

func doGet[T any](ctx context.Context, c *Client, route string, params map[string]string) (*T, error) {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return execute[T](ctx, c, fasthttp.MethodGet, route, route+"?"+values.Encode(), "")
}

func doPost[T any](ctx context.Context, c *Client, route string, body map[string]string) (*T, error) {
	values := url.Values{}
	for k, v := range body {
		values.Set(k, v)
	}
	return execute[T](ctx, c, fasthttp.MethodPost, route, route, values.Encode())
}

func execute[T any](ctx context.Context, c *Client, method, route, uri, body string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	if body != "" {
		req.Header.SetContentType("application/x-www-form-urlencoded")
		req.SetBodyString(body)
	}

	// correlation id ties the debug lines of one request together
	requestID, _ := gonanoid.New()

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("route", routePath(route)).
		Msg("request started")

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		c.logger.Debug().Str("request_id", requestID).Err(err).Msg("request failed")
		return nil, apierror.NewNetwork(fmt.Sprintf("request failed: %v", err), err)
	}

	status := resp.StatusCode()
	if status != fasthttp.StatusOK {
		msg := strings.TrimSpace(string(resp.Body()))
		if msg == "" {
			msg = fasthttp.StatusMessage(status)
		}
		apiErr := apierror.FromStatus(status, msg)
		if apiErr.Kind == apierror.KindRateLimit {
			if after, convErr := strconv.Atoi(string(resp.Header.Peek(fasthttp.HeaderRetryAfter))); convErr == nil {
				apiErr.RetryAfter = after
			}
		}
		c.logger.Debug().
			Str("request_id", requestID).
			Int("status", status).
			Str("kind", apiErr.Kind.String()).
			Msg("request rejected")
		return nil, apiErr
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, apierror.NewNetwork(fmt.Sprintf("decoding response: %v", err), err)
	}
	return &result, nil
}

// routePath strips scheme and host so log lines never carry query
// credentials.
func routePath(route string) string {
	if u, err := url.Parse(route); err == nil && u.Path != "" {
		return u.Path
	}
	return route
}
