package routes

import (
	"net/http"

	"netrca/internal/server/middleware"
	"netrca/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateEntityHandler resolves an entity into the graph. A repeated
// (label, canonical_name) pair returns the existing node id instead of
// creating a duplicate.
func CreateEntityHandler(c echo.Context) error {
	type createEntityBody struct {
		Label         string           `json:"label" validate:"required"`
		CanonicalName string           `json:"canonical_name" validate:"required"`
		Properties    graph.Properties `json:"properties"`
	}

	type createEntityResponse struct {
		Message string       `json:"message"`
		NodeID  graph.NodeID `json:"node_id,omitempty"`
		Created bool         `json:"created"`
	}

	data := new(createEntityBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createEntityResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createEntityResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App

	nodeID, created := app.Registry.ResolveCreated(data.Label, data.CanonicalName, data.Properties)

	return c.JSON(http.StatusOK, createEntityResponse{
		Message: "Entity resolved",
		NodeID:  nodeID,
		Created: created,
	})
}
