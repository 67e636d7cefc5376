// Package handler holds the helpers shared by the resource handlers in its
// subpackages.
package handler

import "github.com/gin-gonic/gin"

// RouteRegistrar mounts a resource's endpoints on a router group.
type RouteRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}
