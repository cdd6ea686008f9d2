package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickem-tracker/internal/apierror"
	"pickem-tracker/internal/domain"
)

func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *apierror.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, apierror.KindValidation, vErr.Kind)
	assert.Equal(t, field, vErr.Field)
}

func TestSteamID(t *testing.T) {
	tests := []struct {
		name    string
		steamID string
		wantErr bool
	}{
		{"valid 17 digits", "76561198012345678", false},
		{"too short", "1234567890", true},
		{"too long", "765611980123456789", true},
		{"non-digits", "7656119801234567a", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SteamID(tt.steamID)
			if tt.wantErr {
				assertValidationField(t, err, "steamId")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"valid uppercase", "ABCD-12345-WXYZ", false},
		{"valid lowercase", "abcd-12345-wxyz", false},
		{"wrong grouping", "ABC-12345-WXYZ", true},
		{"missing dashes", "ABCD12345WXYZ", true},
		{"special characters", "ABC!-12345-WXYZ", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthCode(tt.code)
			if tt.wantErr {
				assertValidationField(t, err, "authCode")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventID(t *testing.T) {
	assert.NoError(t, EventID(25))
	assertValidationField(t, EventID(0), "eventId")
	assertValidationField(t, EventID(-3), "eventId")
}

func validAuth() domain.UserAuth {
	return domain.UserAuth{
		EventID:  25,
		SteamID:  "76561198012345678",
		AuthCode: "ABCD-12345-WXYZ",
	}
}

func TestUserAuthFailFast(t *testing.T) {
	// first failing check wins
	p := domain.UserAuth{EventID: 0, SteamID: "bad", AuthCode: "bad"}
	assertValidationField(t, UserAuth(p), "eventId")

	p.EventID = 25
	assertValidationField(t, UserAuth(p), "steamId")

	p.SteamID = "76561198012345678"
	assertValidationField(t, UserAuth(p), "authCode")

	assert.NoError(t, UserAuth(validAuth()))
}

func TestUploadPrediction(t *testing.T) {
	valid := domain.UploadPrediction{
		UserAuth:  validAuth(),
		SectionID: 1,
		GroupID:   101,
		Index:     0,
		PickID:    4,
		ItemID:    "item-1",
	}
	assert.NoError(t, UploadPrediction(valid))

	tests := []struct {
		name      string
		mutate    func(*domain.UploadPrediction)
		wantField string
	}{
		{"zero section", func(p *domain.UploadPrediction) { p.SectionID = 0 }, "sectionId"},
		{"negative group", func(p *domain.UploadPrediction) { p.GroupID = -1 }, "groupId"},
		{"negative index", func(p *domain.UploadPrediction) { p.Index = -1 }, "index"},
		{"zero pick", func(p *domain.UploadPrediction) { p.PickID = 0 }, "pickId"},
		{"blank item", func(p *domain.UploadPrediction) { p.ItemID = "   " }, "itemId"},
		{"bad steam id", func(p *domain.UploadPrediction) { p.SteamID = "123" }, "steamId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assertValidationField(t, UploadPrediction(p), tt.wantField)
		})
	}
}

func TestUploadPredictionIndexZeroIsValid(t *testing.T) {
	p := domain.UploadPrediction{
		UserAuth:  validAuth(),
		SectionID: 1,
		GroupID:   101,
		Index:     0,
		PickID:    1,
		ItemID:    "item-1",
	}
	assert.NoError(t, UploadPrediction(p))
}

func TestUploadMultiple(t *testing.T) {
	entry := domain.UploadEntry{SectionID: 1, GroupID: 101, Index: 0, PickID: 2, ItemID: "item-1"}

	valid := domain.UploadMultiple{UserAuth: validAuth(), Predictions: []domain.UploadEntry{entry, entry}}
	assert.NoError(t, UploadMultiple(valid))

	empty := domain.UploadMultiple{UserAuth: validAuth()}
	assertValidationField(t, UploadMultiple(empty), "predictions")

	bad := valid
	bad.Predictions = []domain.UploadEntry{entry, {SectionID: 1, GroupID: 101, PickID: 0, ItemID: "x"}}
	assertValidationField(t, UploadMultiple(bad), "predictions[1].pickId")
}

func TestUploadLineup(t *testing.T) {
	lineup := make([]domain.LineupEntry, 5)
	for i := range lineup {
		lineup[i] = domain.LineupEntry{PickID: i + 1, ItemID: "item"}
	}

	valid := domain.UploadLineup{UserAuth: validAuth(), SectionID: 3, Lineup: lineup}
	assert.NoError(t, UploadLineup(valid))

	short := valid
	short.Lineup = lineup[:4]
	assertValidationField(t, UploadLineup(short), "lineup")

	badPick := valid
	badPick.Lineup = append([]domain.LineupEntry{}, lineup...)
	badPick.Lineup[2].PickID = 0
	err := UploadLineup(badPick)
	assertValidationField(t, err, "lineup[2].pickId")
	assert.Contains(t, err.Error(), "Player 3")

	badItem := valid
	badItem.Lineup = append([]domain.LineupEntry{}, lineup...)
	badItem.Lineup[4].ItemID = ""
	assertValidationField(t, UploadLineup(badItem), "lineup[4].itemId")
}
