package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status      int
		wantKind    Kind
		wantMessage string
	}{
		{400, KindAPI, "Bad Request: Invalid tournament parameters or item IDs"},
		{403, KindAPI, "Forbidden: Invalid Steam auth code - generate a new one at help.steampowered.com"},
		{404, KindAPI, "Not Found: Sticker item not owned by user or incorrect team/player ID"},
		{405, KindAPI, "Method Not Allowed: Endpoint not available for this tournament"},
		{409, KindConflict, "Predictions not allowed yet for this stage - wait for stage to unlock"},
		{410, KindGone, "Prediction window closed - matches have already started"},
		{412, KindPreconditionFailed, "Cannot place pick: conflicts with existing predictions from previous stages"},
		{429, KindRateLimit, "Too many requests - reduce API call frequency"},
		{500, KindAPI, "Internal Server Error"},
		{503, KindAPI, "Service Unavailable - Steam servers may be down or under maintenance"},
		{504, KindAPI, "Gateway Timeout - request may complete later, check predictions status"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := FromStatus(tt.status, "upstream text")
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.Equal(t, tt.wantMessage, err.Message)
			if tt.wantKind == KindAPI {
				assert.Equal(t, tt.status, err.StatusCode)
			}
		})
	}
}

func TestFromStatusUnknownCodePassesMessageThrough(t *testing.T) {
	err := FromStatus(418, "I'm a teapot")
	assert.Equal(t, KindAPI, err.Kind)
	assert.Equal(t, 418, err.StatusCode)
	assert.Equal(t, "I'm a teapot", err.Message)
}

func TestConvert(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name           string
		err            error
		wantMessage    string
		wantStatusCode int
		wantField      string
		wantRetryAfter int
	}{
		{
			name:           "api error keeps status code",
			err:            NewAPI(500, "Internal Server Error"),
			wantMessage:    "Internal Server Error",
			wantStatusCode: 500,
		},
		{
			name:        "network error has no status code",
			err:         NewNetwork("request failed", cause),
			wantMessage: "request failed",
		},
		{
			name:        "validation error keeps field",
			err:         NewValidation("Steam ID must be 17 digits (SteamID64 format)", "steamId"),
			wantMessage: "Steam ID must be 17 digits (SteamID64 format)",
			wantField:   "steamId",
		},
		{
			name:           "rate limit error keeps retry hint",
			err:            NewRateLimit("Too many requests - reduce API call frequency", 30),
			wantMessage:    "Too many requests - reduce API call frequency",
			wantRetryAfter: 30,
		},
		{
			name:        "conflict",
			err:         NewConflict("stage locked"),
			wantMessage: "stage locked",
		},
		{
			name:        "gone",
			err:         NewGone("window closed"),
			wantMessage: "window closed",
		},
		{
			name:        "precondition failed",
			err:         NewPreconditionFailed("conflicting pick"),
			wantMessage: "conflicting pick",
		},
		{
			name:        "unrecognized error is stringified",
			err:         errors.New("something else entirely"),
			wantMessage: "something else entirely",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Convert(tt.err)
			require.NotNil(t, p)
			assert.Equal(t, tt.wantMessage, p.Message)
			assert.Equal(t, tt.wantStatusCode, p.StatusCode)
			assert.Equal(t, tt.wantField, p.Field)
			assert.Equal(t, tt.wantRetryAfter, p.RetryAfter)
		})
	}
}

func TestConvertWrappedError(t *testing.T) {
	inner := NewGone("window closed")
	wrapped := fmt.Errorf("fetching predictions: %w", inner)

	p := Convert(wrapped)
	assert.Equal(t, "window closed", p.Message)
}

func TestConvertNil(t *testing.T) {
	assert.Nil(t, Convert(nil))
}

func TestIsRateLimit(t *testing.T) {
	assert.True(t, IsRateLimit(NewRateLimit("slow down", 0)))
	assert.True(t, IsRateLimit(fmt.Errorf("wrapped: %w", NewRateLimit("slow down", 5))))
	assert.False(t, IsRateLimit(NewAPI(500, "boom")))
	assert.False(t, IsRateLimit(errors.New("plain")))
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(NewConflict("locked"))
	assert.True(t, ok)
	assert.Equal(t, KindConflict, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}
