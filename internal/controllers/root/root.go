// Package root serves the entrypoint of the API.
package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"`  // Swagger API documentation
	OpenAPI string `json:"openApi" example:"https://example.com/api/docs/doc.json"` // Machine readable API description
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`       // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"`       // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`       // Endpoint returning Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                 // Entrypoint of the ledger API
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", httputil.OptionsGet)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	base := c.GetString(string(models.DBContextURL))
	link := func(path string) string {
		return base + path
	}

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:    link("/docs/index.html"),
			OpenAPI: link("/docs/doc.json"),
			Healthz: link("/healthz"),
			Version: link("/version"),
			Metrics: link("/metrics"),
			V1:      link("/v1"),
		},
	})
}
