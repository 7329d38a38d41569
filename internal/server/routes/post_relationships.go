package routes

import (
	"errors"
	"net/http"

	"netrca/internal/server/middleware"
	"netrca/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateRelationshipHandler inserts a directed edge between two existing
// nodes. Referencing an unknown node fails without changing the graph; a
// reused edge id is a conflict.
func CreateRelationshipHandler(c echo.Context) error {
	type createRelationshipBody struct {
		EdgeID     graph.EdgeID     `json:"edge_id"`
		SourceID   graph.NodeID     `json:"source_id" validate:"required"`
		TargetID   graph.NodeID     `json:"target_id" validate:"required"`
		Label      string           `json:"label" validate:"required"`
		Properties graph.Properties `json:"properties"`
	}

	type createRelationshipResponse struct {
		Message string       `json:"message"`
		EdgeID  graph.EdgeID `json:"edge_id,omitempty"`
	}

	data := new(createRelationshipBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRelationshipResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App

	edgeID := data.EdgeID
	if edgeID == 0 {
		edgeID = app.Pipeline.NextEdgeID()
	}

	err := app.Store.AddEdge(edgeID, data.SourceID, data.TargetID, data.Label, data.Properties)
	switch {
	case errors.Is(err, graph.ErrDanglingReference):
		return c.JSON(http.StatusUnprocessableEntity, createRelationshipResponse{
			Message: "Source or target node does not exist",
		})
	case errors.Is(err, graph.ErrDuplicateID):
		return c.JSON(http.StatusConflict, createRelationshipResponse{
			Message: "Edge id already in use",
		})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, createRelationshipResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createRelationshipResponse{
		Message: "Relationship created",
		EdgeID:  edgeID,
	})
}
