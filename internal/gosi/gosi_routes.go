package gosi

import (
	"ksa-hris/internal/domain"
	"ksa-hris/internal/middleware"
	"ksa-hris/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	g := r.Group("/gosi")
	g.Use(middleware.AuthMiddleware())
	{
		g.POST("/calculate",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceGOSI, domain.ActionRead),
			handler.Calculate,
		)
	}
}
