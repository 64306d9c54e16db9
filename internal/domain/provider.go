package domain

import (
	"github.com/google/wire"

	"giphy-gateway/internal/domain/gif"
)

// DomainProvider provides all domain services
var DomainProvider = wire.NewSet(
	gif.NewService,
)
