package nitaqat

import (
	"ksa-hris/internal/domain"
	"ksa-hris/internal/middleware"
	"ksa-hris/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	g := r.Group("/nitaqat")
	g.Use(middleware.AuthMiddleware())
	{
		g.POST("/calculate",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceNitaqat, domain.ActionCreate),
			handler.Calculate,
		)
		g.GET("/latest",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceNitaqat, domain.ActionRead),
			handler.GetLatest,
		)
		g.GET("/snapshots",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceNitaqat, domain.ActionRead),
			handler.GetHistory,
		)
	}
}
