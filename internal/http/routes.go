package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a handler that mounts its own routes under the API group.
type RouteGroup interface {
	Register(rg *gin.RouterGroup)
}

var (
	_ RouteGroup = (*PackingHandler)(nil)
	_ RouteGroup = (*ProductHandler)(nil)
	_ RouteGroup = (*ProformaHandler)(nil)
)

// Handlers collects the route groups served under /api. A nil group is skipped.
type Handlers struct {
	Packing   *PackingHandler
	Products  *ProductHandler
	Proformas *ProformaHandler
}

// groups returns the configured route groups in registration order.
func (h Handlers) groups() []RouteGroup {
	var groups []RouteGroup
	if h.Packing != nil {
		groups = append(groups, h.Packing)
	}
	if h.Products != nil {
		groups = append(groups, h.Products)
	}
	if h.Proformas != nil {
		groups = append(groups, h.Proformas)
	}
	return groups
}
