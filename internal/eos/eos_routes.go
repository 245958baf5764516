package eos

import (
	"ksa-hris/internal/domain"
	"ksa-hris/internal/middleware"
	"ksa-hris/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	g := r.Group("/eos")
	g.Use(middleware.AuthMiddleware())
	{
		g.POST("/preview",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceEOS, domain.ActionRead),
			handler.Preview,
		)
		g.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEOS, domain.ActionCreate),
			handler.Create,
		)
		g.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceEOS, domain.ActionRead),
			handler.GetAll,
		)
		g.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourceEOS, domain.ActionRead),
			handler.GetByID,
		)
		g.POST("/:id/approve",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEOS, domain.ActionApprove),
			handler.Approve,
		)
		g.POST("/:id/mark-paid",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEOS, domain.ActionProcess),
			handler.MarkPaid,
		)
	}
}
