package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/httputil"
)

func (co Controller) RegisterSeedRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSeed)
	r.POST("", co.Seed)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Seed
// @Success		204
// @Router			/v1/seed [options]
func (co Controller) OptionsSeed(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create sample data
// @Description	Creates the sample organization with its departments, managers, teams and budgets.
// @Description	Nothing is created if any organization exists.
// @Tags			Seed
// @Success		201
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/seed [post]
func (co Controller) Seed(c *gin.Context) {
	created, err := co.Store.Seed()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !created {
		c.Status(http.StatusNoContent)
		return
	}

	c.Status(http.StatusCreated)
}
