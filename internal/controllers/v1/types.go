package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	ez_uuid "github.com/pocket-ledger/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// userID returns the ID of the user the request is made for.
//
// The identity middleware guarantees that it is a valid UUID.
func userID(c *gin.Context) uuid.UUID {
	id, _ := uuid.Parse(c.GetString(string(models.ContextUserID)))
	return id
}

// apiURL returns the external base URL of the API.
func apiURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}
