//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/vecmath/internal/check"
	"github.com/zeusync/vecmath/internal/core/observability/log"
)

func InitializeRunner(cfg check.Config) *check.Runner {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		check.NewRunner,
	)
	return nil
}
