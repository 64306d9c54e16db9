//go:build wireinject

package main

import (
	"github.com/google/wire"

	"giphy-gateway/internal/domain"
	"giphy-gateway/internal/infrastructure"
	"giphy-gateway/internal/interfaces"
	"giphy-gateway/internal/interfaces/httpserver/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.DomainProvider,
		infrastructure.InfrastructureProvider,
		routes.RoutesProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
