package routes

import (
	"net/http"
	"strconv"

	"netrca/internal/server/middleware"
	"netrca/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetPathHandler runs a shortest-path query between two nodes. Endpoints can
// be given as node ids (from/to) or as entity keys
// (from_label/from_name, to_label/to_name). An empty path means the target is
// unreachable or an endpoint is unknown.
func GetPathHandler(c echo.Context) error {
	type pathStep struct {
		NodeID        graph.NodeID `json:"node_id"`
		Label         string       `json:"label"`
		CanonicalName string       `json:"canonical_name,omitempty"`
	}

	type getPathResponse struct {
		Message string     `json:"message"`
		Found   bool       `json:"found"`
		Path    []pathStep `json:"path,omitempty"`
	}

	app := c.(*middleware.AppContext).App

	startID, ok, errMsg := resolveEndpoint(c, app, "from")
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, getPathResponse{Message: errMsg})
	}
	if !ok {
		return c.JSON(http.StatusOK, getPathResponse{Message: "OK", Found: false})
	}

	endID, ok, errMsg := resolveEndpoint(c, app, "to")
	if errMsg != "" {
		return c.JSON(http.StatusBadRequest, getPathResponse{Message: errMsg})
	}
	if !ok {
		return c.JSON(http.StatusOK, getPathResponse{Message: "OK", Found: false})
	}

	path := app.Store.FindPath(startID, endID)
	if len(path) == 0 {
		return c.JSON(http.StatusOK, getPathResponse{Message: "OK", Found: false})
	}

	steps := make([]pathStep, 0, len(path))
	for _, id := range path {
		step := pathStep{NodeID: id}
		if node, ok := app.Store.GetNode(id); ok {
			step.Label = node.Label
			if name, err := node.Properties[graph.CanonicalNameKey].AsString(); err == nil {
				step.CanonicalName = name
			}
		}
		steps = append(steps, step)
	}

	return c.JSON(http.StatusOK, getPathResponse{
		Message: "OK",
		Found:   true,
		Path:    steps,
	})
}

// resolveEndpoint reads either ?<side>=<node id> or the
// ?<side>_label / ?<side>_name pair. The bool result reports whether the
// endpoint names a known node.
func resolveEndpoint(c echo.Context, app *middleware.App, side string) (graph.NodeID, bool, string) {
	if raw := c.QueryParam(side); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, false, "Invalid " + side + " node id"
		}
		nodeID := graph.NodeID(id)
		if _, ok := app.Store.GetNode(nodeID); !ok {
			return 0, false, ""
		}
		return nodeID, true, ""
	}

	label := c.QueryParam(side + "_label")
	name := c.QueryParam(side + "_name")
	if label == "" || name == "" {
		return 0, false, "Missing " + side + " endpoint"
	}

	nodeID, ok := app.Registry.Lookup(label, name)
	return nodeID, ok, ""
}
