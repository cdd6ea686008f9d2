package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	// FantasyLineupSize is fixed by the upstream: five players per lineup.
	FantasyLineupSize = 5

	InventoryPageSize = 500
)
