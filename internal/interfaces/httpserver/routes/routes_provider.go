package routes

import (
	"github.com/google/wire"

	v1 "giphy-gateway/internal/interfaces/httpserver/routes/v1"
)

// RoutesProvider provides all route dependencies
var RoutesProvider = wire.NewSet(
	v1.NewGifRoute,
)
