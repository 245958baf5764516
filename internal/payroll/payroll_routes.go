package payroll

import (
	"ksa-hris/internal/domain"
	"ksa-hris/internal/middleware"
	"ksa-hris/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	batches := r.Group("/payroll-batches")
	batches.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		batches.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionRead),
			handler.GetAll,
		)
		batches.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionRead),
			handler.GetByID,
		)
		batches.GET("/:id/payslips",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionRead),
			handler.GetPayslips,
		)
		if redisClient != nil {
			batches.POST("",
				middleware.RateLimitByUser(0.2, 1),
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionCreate),
				handler.Create,
			)
		} else {
			batches.POST("",
				middleware.RateLimitByUser(0.2, 1),
				middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionCreate),
				handler.Create,
			)
		}
		batches.POST("/:id/submit",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionUpdate),
			handler.Submit,
		)
		batches.POST("/:id/approve",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionApprove),
			handler.Approve,
		)
		batches.POST("/:id/process",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionProcess),
			handler.Process,
		)
		batches.POST("/:id/mark-paid",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionProcess),
			handler.MarkPaid,
		)
		batches.POST("/:id/payslips/generate",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourcePayroll, domain.ActionProcess),
			handler.GeneratePayslips,
		)
	}
}
