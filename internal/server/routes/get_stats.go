package routes

import (
	"net/http"

	"netrca/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// GetStatsHandler reports the current size of the graph.
func GetStatsHandler(c echo.Context) error {
	type getStatsResponse struct {
		Nodes    int `json:"nodes"`
		Edges    int `json:"edges"`
		Entities int `json:"entities"`
	}

	app := c.(*middleware.AppContext).App

	return c.JSON(http.StatusOK, getStatsResponse{
		Nodes:    app.Store.NodeCount(),
		Edges:    app.Store.EdgeCount(),
		Entities: app.Registry.Size(),
	})
}
