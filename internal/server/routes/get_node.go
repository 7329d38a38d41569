package routes

import (
	"net/http"
	"strconv"

	"netrca/internal/server/middleware"
	"netrca/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetNodeHandler returns one node with its outgoing and incoming edges.
func GetNodeHandler(c echo.Context) error {
	type getNodeResponse struct {
		Message  string         `json:"message"`
		Node     *graph.Node    `json:"node,omitempty"`
		Outgoing []graph.EdgeID `json:"outgoing,omitempty"`
		Incoming []graph.EdgeID `json:"incoming,omitempty"`
	}

	rawID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, getNodeResponse{
			Message: "Invalid node id",
		})
	}
	nodeID := graph.NodeID(rawID)

	app := c.(*middleware.AppContext).App

	node, ok := app.Store.GetNode(nodeID)
	if !ok {
		return c.JSON(http.StatusNotFound, getNodeResponse{
			Message: "Node not found",
		})
	}

	return c.JSON(http.StatusOK, getNodeResponse{
		Message:  "OK",
		Node:     &node,
		Outgoing: app.Store.Outgoing(nodeID),
		Incoming: app.Store.Incoming(nodeID),
	})
}

// GetEdgeHandler returns one edge by id.
func GetEdgeHandler(c echo.Context) error {
	type getEdgeResponse struct {
		Message string      `json:"message"`
		Edge    *graph.Edge `json:"edge,omitempty"`
	}

	rawID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, getEdgeResponse{
			Message: "Invalid edge id",
		})
	}

	app := c.(*middleware.AppContext).App

	edge, ok := app.Store.GetEdge(graph.EdgeID(rawID))
	if !ok {
		return c.JSON(http.StatusNotFound, getEdgeResponse{
			Message: "Edge not found",
		})
	}

	return c.JSON(http.StatusOK, getEdgeResponse{
		Message: "OK",
		Edge:    &edge,
	})
}
