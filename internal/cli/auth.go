package cli

import (
	"fmt"
	"strconv"

	"pickem-tracker/internal/config"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/validate"
)

func parseEventID(arg string) (int, error) {
	eventID, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("event ID must be a number, got %q", arg)
	}
	return eventID, nil
}

// userAuth assembles credentials from config and checks them before any
// network call.
func userAuth(cfg *config.Config, eventID int) (domain.UserAuth, error) {
	auth := domain.UserAuth{
		EventID:  eventID,
		SteamID:  cfg.SteamID,
		AuthCode: cfg.AuthCode,
	}
	if auth.SteamID == "" || auth.AuthCode == "" {
		return auth, fmt.Errorf("STEAM_ID and STEAM_AUTH_CODE must be set (see help.steampowered.com for auth codes)")
	}
	if err := validate.UserAuth(auth); err != nil {
		return auth, err
	}
	return auth, nil
}
