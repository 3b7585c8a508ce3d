// Package version reports what build of the backend is running.
package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string `json:"version" example:"1.4.0"`                                   // The running version of the backend
	Commit    string `json:"commit" example:"4f9a1c0d7e3b2a5968f1e0c4d3b2a1908f7e6d5c"` // VCS revision the binary was built from, empty if unknown
	Modified  bool   `json:"modified" example:"false"`                                  // Was the working tree dirty at build time?
	GoVersion string `json:"goVersion" example:"go1.25.5"`                              // Go toolchain the binary was built with
}

// build reads the VCS information the Go toolchain embeds into the binary.
func build(version string) Object {
	o := Object{
		Version:   version,
		GoVersion: runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return o
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			o.Commit = s.Value
		case "vcs.modified":
			o.Modified = s.Value == "true"
		}
	}

	return o
}

// current is the build reported by Get.
var current = build("0.0.0")

// RegisterRoutes registers the version endpoint. version is set at build time
// with -ldflags, see the router package.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	current = build(version)

	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and the build it was compiled from
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: current})
}
