package v1

import (
	"net/http"
	"strconv"

	"giphy-gateway/internal/domain/gif"
	"giphy-gateway/internal/interfaces/httpserver/responses"
	"giphy-gateway/utils/platformerrors"

	"github.com/gin-gonic/gin"
)

// GifRoute exposes GIF lookup endpoints
type GifRoute struct {
	gifService *gif.Service
}

// NewGifRoute creates a new GIF route handler
func NewGifRoute(gifService *gif.Service) *GifRoute {
	return &GifRoute{
		gifService: gifService,
	}
}

// RegisterRouter attaches GIF routes to the given router group
func (r *GifRoute) RegisterRouter(router gin.IRouter) {
	group := router.Group("/gifs")
	group.GET("/search", r.Search)
	group.GET("/:id", r.GetByID)
}

// Search godoc
// @Summary      Search for a GIF
// @Description  Returns the top-ranked GIF matching the query, 404 when nothing matches.
// @Tags         gifs
// @Produce      json
// @Param        q       query  string  true   "Search terms"
// @Param        limit   query  int     false  "Result window requested upstream"
// @Param        rating  query  string  false  "Content rating (g, pg, pg-13, r)"
// @Success      200  {object}  gif.Gif
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/gifs/search [get]
func (r *GifRoute) Search(c *gin.Context) {
	query := gif.SearchQuery{
		Query:  c.Query("q"),
		Rating: c.Query("rating"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "limit must be a positive integer")
			return
		}
		query.Limit = limit
	}

	result, found, err := r.gifService.Search(c.Request.Context(), query)
	if err != nil {
		responses.HandleError(c, err, "gif search failed")
		return
	}
	if !found {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "no gif matched the query")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetByID godoc
// @Summary      Fetch a GIF by ID
// @Description  Returns the GIF with the given Giphy ID, 404 when the ID is unknown.
// @Tags         gifs
// @Produce      json
// @Param        id  path  string  true  "Giphy GIF ID"
// @Success      200  {object}  gif.Gif
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/gifs/{id} [get]
func (r *GifRoute) GetByID(c *gin.Context) {
	id := c.Param("id")

	result, found, err := r.gifService.GetByID(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, "gif lookup failed")
		return
	}
	if !found {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "no gif with this id")
		return
	}

	c.JSON(http.StatusOK, result)
}
