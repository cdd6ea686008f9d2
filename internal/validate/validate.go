package validate

import (
	"fmt"
	"regexp"
	"strings"

	"pickem-tracker/internal/apierror"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
)

var (
	steamIDRegex  = regexp.MustCompile(`^\d{17}$`)
	authCodeRegex = regexp.MustCompile(`(?i)^[A-Z0-9]{4}-[A-Z0-9]{5}-[A-Z0-9]{4}$`)
)

// SteamID checks SteamID64 format: exactly 17 digits.
func SteamID(steamID string) error {
	if !steamIDRegex.MatchString(steamID) {
		return apierror.NewValidation("Steam ID must be 17 digits (SteamID64 format)", "steamId")
	}
	return nil
}

// AuthCode checks the XXXX-XXXXX-XXXX tournament auth code format.
func AuthCode(authCode string) error {
	if !authCodeRegex.MatchString(authCode) {
		return apierror.NewValidation("Auth code must be in format XXXX-XXXXX-XXXX", "authCode")
	}
	return nil
}

func EventID(eventID int) error {
	if eventID <= 0 {
		return apierror.NewValidation("Event ID must be a positive integer", "eventId")
	}
	return nil
}

// UserAuth runs the auth checks in a fixed order and stops at the first
// failure.
func UserAuth(p domain.UserAuth) error {
	if err := EventID(p.EventID); err != nil {
		return err
	}
	if err := SteamID(p.SteamID); err != nil {
		return err
	}
	return AuthCode(p.AuthCode)
}

// UploadPrediction validates a single prediction submission.
func UploadPrediction(p domain.UploadPrediction) error {
	if err := UserAuth(p.UserAuth); err != nil {
		return err
	}
	if p.SectionID <= 0 {
		return apierror.NewValidation("Section ID must be a positive integer", "sectionId")
	}
	if p.GroupID <= 0 {
		return apierror.NewValidation("Group ID must be a positive integer", "groupId")
	}
	// index 0 denotes the first slot
	if p.Index < 0 {
		return apierror.NewValidation("Index must be a non-negative integer", "index")
	}
	if p.PickID <= 0 {
		return apierror.NewValidation("Pick ID must be a positive integer", "pickId")
	}
	if strings.TrimSpace(p.ItemID) == "" {
		return apierror.NewValidation("Item ID is required", "itemId")
	}
	return nil
}

// UploadMultiple validates a batch submission, reporting the offending
// slot in the field name.
func UploadMultiple(p domain.UploadMultiple) error {
	if err := UserAuth(p.UserAuth); err != nil {
		return err
	}
	if len(p.Predictions) == 0 {
		return apierror.NewValidation("At least one prediction is required", "predictions")
	}
	for idx, pred := range p.Predictions {
		if pred.SectionID <= 0 {
			return apierror.NewValidation(
				fmt.Sprintf("Prediction %d section ID must be a positive integer", idx+1),
				fmt.Sprintf("predictions[%d].sectionId", idx))
		}
		if pred.GroupID <= 0 {
			return apierror.NewValidation(
				fmt.Sprintf("Prediction %d group ID must be a positive integer", idx+1),
				fmt.Sprintf("predictions[%d].groupId", idx))
		}
		if pred.Index < 0 {
			return apierror.NewValidation(
				fmt.Sprintf("Prediction %d index must be a non-negative integer", idx+1),
				fmt.Sprintf("predictions[%d].index", idx))
		}
		if pred.PickID <= 0 {
			return apierror.NewValidation(
				fmt.Sprintf("Prediction %d pick ID must be a positive integer", idx+1),
				fmt.Sprintf("predictions[%d].pickId", idx))
		}
		if strings.TrimSpace(pred.ItemID) == "" {
			return apierror.NewValidation(
				fmt.Sprintf("Prediction %d item ID is required", idx+1),
				fmt.Sprintf("predictions[%d].itemId", idx))
		}
	}
	return nil
}

// UploadLineup validates a fantasy lineup submission: exactly five
// entries, each with a valid pick and item.
func UploadLineup(p domain.UploadLineup) error {
	if err := UserAuth(p.UserAuth); err != nil {
		return err
	}
	if p.SectionID <= 0 {
		return apierror.NewValidation("Section ID must be a positive integer", "sectionId")
	}
	if len(p.Lineup) != constants.FantasyLineupSize {
		return apierror.NewValidation("Fantasy lineup must have exactly 5 players", "lineup")
	}
	for idx, player := range p.Lineup {
		if player.PickID <= 0 {
			return apierror.NewValidation(
				fmt.Sprintf("Player %d pick ID must be a positive integer", idx+1),
				fmt.Sprintf("lineup[%d].pickId", idx))
		}
		if strings.TrimSpace(player.ItemID) == "" {
			return apierror.NewValidation(
				fmt.Sprintf("Player %d item ID is required", idx+1),
				fmt.Sprintf("lineup[%d].itemId", idx))
		}
	}
	return nil
}
