// Package healthz reports whether the backend can serve requests.
package healthz

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
	"github.com/rs/zerolog/log"
)

// Pinger is implemented by everything the backend depends on to serve requests.
type Pinger interface {
	Ping() error
}

func RegisterRoutes(r *gin.RouterGroup, p Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(p))
}

type HealthResponse struct {
	Error string `json:"error" example:"sql: database is closed"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	HealthResponse
// @Router			/healthz [get]
func Get(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := p.Ping()
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.JSON(http.StatusInternalServerError, HealthResponse{
				Error: err.Error(),
			})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
