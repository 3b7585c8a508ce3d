package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Allow returns a handler that answers OPTIONS requests with an empty
// response and the methods in the "allow" header.
func Allow(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Render(http.StatusNoContent, render.JSON{})
	}
}

var (
	OptionsGet            = Allow(http.MethodGet)
	OptionsPost           = Allow(http.MethodPost)
	OptionsGetPost        = Allow(http.MethodGet, http.MethodPost)
	OptionsGetPatchPost   = Allow(http.MethodGet, http.MethodPatch, http.MethodPost)
	OptionsGetDelete      = Allow(http.MethodGet, http.MethodDelete)
	OptionsGetPatchDelete = Allow(http.MethodGet, http.MethodPatch, http.MethodDelete)
)
