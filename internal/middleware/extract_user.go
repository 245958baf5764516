package middleware

import (
	"ksa-hris/internal/shared/apperror"
	"ksa-hris/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ExtractUserID copies the authenticated user id to user_id_validated, which
// the idempotency middleware and the actor lookup in handlers rely on.
func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			response.FromError(ctx, apperror.ErrUnauthorized)
			ctx.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.FromError(ctx, apperror.ErrInvalidToken)
			ctx.Abort()
			return
		}

		ctx.Set("user_id_validated", userIDStr)
		ctx.Next()
	}
}
