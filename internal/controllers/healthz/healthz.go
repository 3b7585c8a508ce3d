package healthz

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// timeout bounds the database checks of a single request.
const timeout = 2 * time.Second

var errSchemaMissing = errors.New("the ledger tables have not been migrated")

// ledgerTables must exist for the ledger to be usable.
var ledgerTables = []any{
	&models.Account{},
	&models.Transaction{},
	&models.RecurringBill{},
	&models.Budget{},
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", Get)
}

// check verifies that the database answers and holds the ledger schema.
func check(ctx context.Context) error {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	migrator := models.DB.WithContext(ctx).Migrator()
	for _, table := range ledgerTables {
		if !migrator.HasTable(table) {
			return errSchemaMissing
		}
	}

	return nil
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	err := check(ctx)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Healthz")
		c.JSON(http.StatusInternalServerError, httputil.HTTPError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
