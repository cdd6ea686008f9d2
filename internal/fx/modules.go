package fx

import (
	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/logger"
	"pickem-tracker/internal/market"
	"pickem-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(api.NewClient),
	// svc
	fx.Provide(service.DefaultTierLadder),
	fx.Provide(service.NewScoreService),
	fx.Provide(service.DefaultTeamNames),
	fx.Provide(service.NewReconcileService),
	// market
	fx.Provide(market.DefaultTournamentNames),
)
