package payroll

import (
	"encoding/json"
	"net/http"

	"ksa-hris/internal/middleware"
	"ksa-hris/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}
	return actorID
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.CreateBatch(c.Request.Context(), c.GetString("company_id"), getActorID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, middleware.IdempotencyResultTTL).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var req ListBatchesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}


func (h *Handler) runTransition(c *gin.Context, fn func(companyID, actorID, id string) (BatchResponse, error)) {
	resp, err := fn(c.GetString("company_id"), getActorID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	h.runTransition(c, func(companyID, actorID, id string) (BatchResponse, error) {
		return h.service.Submit(c.Request.Context(), companyID, actorID, id)
	})
}

func (h *Handler) Approve(c *gin.Context) {
	h.runTransition(c, func(companyID, actorID, id string) (BatchResponse, error) {
		return h.service.Approve(c.Request.Context(), companyID, actorID, id)
	})
}

func (h *Handler) Process(c *gin.Context) {
	h.runTransition(c, func(companyID, actorID, id string) (BatchResponse, error) {
		return h.service.Process(c.Request.Context(), companyID, actorID, id)
	})
}

func (h *Handler) MarkPaid(c *gin.Context) {
	h.runTransition(c, func(companyID, actorID, id string) (BatchResponse, error) {
		return h.service.MarkPaid(c.Request.Context(), companyID, actorID, id)
	})
}

func (h *Handler) GetPayslips(c *gin.Context) {
	resp, err := h.service.GetPayslips(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GeneratePayslips(c *gin.Context) {
	rendered, err := h.service.GeneratePayslips(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rendered": rendered}, nil)
}
