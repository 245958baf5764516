package payroll_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ksa-hris/internal/middleware"
	"ksa-hris/internal/payroll"
	payrollerrors "ksa-hris/internal/payroll/errors"
	payrollMock "ksa-hris/internal/payroll/mock"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCompanyID = "3f1d8a52-1e0c-4a8f-9c2e-5b7a4d6e8f90"

func setupHandler(t *testing.T, rdb *redis.Client) (*gin.Engine, *payrollMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := payrollMock.NewMockService(ctrl)

	h := payroll.NewHandler(svc)
	if rdb != nil {
		h = payroll.NewHandlerWithRedis(svc, rdb)
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", testCompanyID)
		c.Set("user_id_validated", "user-1")
		c.Next()
	})
	r.POST("/payroll-batches", func(c *gin.Context) {
		if key := c.GetHeader(middleware.IdempotencyHeader); key != "" {
			c.Set("idempotency_cache_key", "idemp:"+key)
			c.Set("idempotency_lock_key", "idemp:"+key+":lock")
		}
		c.Next()
	}, h.Create)
	r.GET("/payroll-batches", h.GetAll)
	r.GET("/payroll-batches/:id", h.GetByID)
	r.GET("/payroll-batches/:id/payslips", h.GetPayslips)
	r.POST("/payroll-batches/:id/submit", h.Submit)
	r.POST("/payroll-batches/:id/approve", h.Approve)
	r.POST("/payroll-batches/:id/process", h.Process)
	r.POST("/payroll-batches/:id/mark-paid", h.MarkPaid)
	r.POST("/payroll-batches/:id/payslips/generate", h.GeneratePayslips)
	return r, svc
}

func do(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPayrollHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupHandler(t, nil)
		svc.EXPECT().CreateBatch(gomock.Any(), testCompanyID, "user-1", payroll.CreateBatchRequest{Month: "2025-01"}).
			Return(payroll.BatchResponse{ID: "batch-1", Month: "2025-01", Status: payroll.StatusDraft}, nil)

		w := do(r, http.MethodPost, "/payroll-batches", `{"month":"2025-01"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Ok   bool                  `json:"ok"`
			Data payroll.BatchResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.Equal(t, "batch-1", resp.Data.ID)
	})

	t.Run("missing month is a bind error", func(t *testing.T) {
		r, _ := setupHandler(t, nil)

		w := do(r, http.MethodPost, "/payroll-batches", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("duplicate month is a conflict", func(t *testing.T) {
		r, svc := setupHandler(t, nil)
		svc.EXPECT().CreateBatch(gomock.Any(), testCompanyID, "user-1", gomock.Any()).
			Return(payroll.BatchResponse{}, payrollerrors.ErrBatchAlreadyExists)

		w := do(r, http.MethodPost, "/payroll-batches", `{"month":"2025-01"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("caches result for the idempotency key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		r, svc := setupHandler(t, rdb)

		result := payroll.BatchResponse{ID: "batch-1", Month: "2025-01", Status: payroll.StatusDraft}
		svc.EXPECT().CreateBatch(gomock.Any(), testCompanyID, "user-1", gomock.Any()).Return(result, nil)
		payload, _ := json.Marshal(result)
		mock.ExpectSet("idemp:key-1", payload, middleware.IdempotencyResultTTL).SetVal("OK")
		mock.ExpectDel("idemp:key-1:lock").SetVal(1)

		w := do(r, http.MethodPost, "/payroll-batches", `{"month":"2025-01"}`, middleware.IdempotencyHeader, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure releases lock without caching", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		r, svc := setupHandler(t, rdb)

		svc.EXPECT().CreateBatch(gomock.Any(), testCompanyID, "user-1", gomock.Any()).
			Return(payroll.BatchResponse{}, payrollerrors.ErrBatchCreationInProgress)
		mock.ExpectDel("idemp:key-2:lock").SetVal(1)

		w := do(r, http.MethodPost, "/payroll-batches", `{"month":"2025-01"}`, middleware.IdempotencyHeader, "key-2")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPayrollHandler_GetAll(t *testing.T) {
	t.Run("passes filters and paginates", func(t *testing.T) {
		r, svc := setupHandler(t, nil)
		svc.EXPECT().GetAll(gomock.Any(), testCompanyID, payroll.ListBatchesRequest{Status: "approved", Year: "2025"}).
			Return([]payroll.BatchResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)

		w := do(r, http.MethodGet, "/payroll-batches?status=approved&year=2025&page=1&page_size=2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []payroll.BatchResponse `json:"data"`
			Meta struct {
				Total int `json:"total"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 2)
		assert.Equal(t, 3, resp.Meta.Total)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		r, _ := setupHandler(t, nil)

		w := do(r, http.MethodGet, "/payroll-batches?status=cancelled", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_Transitions(t *testing.T) {
	cases := []struct {
		path   string
		expect func(svc *payrollMock.MockService) *gomock.Call
	}{
		{"/payroll-batches/b-1/submit", func(svc *payrollMock.MockService) *gomock.Call {
			return svc.EXPECT().Submit(gomock.Any(), testCompanyID, "user-1", "b-1")
		}},
		{"/payroll-batches/b-1/approve", func(svc *payrollMock.MockService) *gomock.Call {
			return svc.EXPECT().Approve(gomock.Any(), testCompanyID, "user-1", "b-1")
		}},
		{"/payroll-batches/b-1/process", func(svc *payrollMock.MockService) *gomock.Call {
			return svc.EXPECT().Process(gomock.Any(), testCompanyID, "user-1", "b-1")
		}},
		{"/payroll-batches/b-1/mark-paid", func(svc *payrollMock.MockService) *gomock.Call {
			return svc.EXPECT().MarkPaid(gomock.Any(), testCompanyID, "user-1", "b-1")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			r, svc := setupHandler(t, nil)
			tc.expect(svc).Return(payroll.BatchResponse{ID: "b-1", Status: "next"}, nil)

			w := do(r, http.MethodPost, tc.path, "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"status":"next"`)
		})
	}

	t.Run("invalid transition", func(t *testing.T) {
		r, svc := setupHandler(t, nil)
		svc.EXPECT().Approve(gomock.Any(), testCompanyID, "user-1", "b-1").
			Return(payroll.BatchResponse{}, payrollerrors.ErrInvalidStatusTransition)

		w := do(r, http.MethodPost, "/payroll-batches/b-1/approve", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestPayrollHandler_Payslips(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, svc := setupHandler(t, nil)
		svc.EXPECT().GetPayslips(gomock.Any(), testCompanyID, "b-1").
			Return([]payroll.PayslipResponse{{ID: "p-1", PayslipNumber: "PS-202501-000001"}}, nil)

		w := do(r, http.MethodGet, "/payroll-batches/b-1/payslips", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "PS-202501-000001")
	})

	t.Run("generate", func(t *testing.T) {
		r, svc := setupHandler(t, nil)
		svc.EXPECT().GeneratePayslips(gomock.Any(), testCompanyID, "b-1").
			DoAndReturn(func(ctx context.Context, companyID, batchID string) (int, error) {
				return 4, nil
			})

		w := do(r, http.MethodPost, "/payroll-batches/b-1/payslips/generate", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"rendered":4`)
	})

	t.Run("not processed", func(t *testing.T) {
		r, svc := setupHandler(t, nil)
		svc.EXPECT().GeneratePayslips(gomock.Any(), testCompanyID, "b-1").
			Return(0, payrollerrors.ErrBatchNotProcessed)

		w := do(r, http.MethodPost, "/payroll-batches/b-1/payslips/generate", "")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("get by id not found", func(t *testing.T) {
		r, svc := setupHandler(t, nil)
		svc.EXPECT().GetByID(gomock.Any(), testCompanyID, "b-9").
			Return(payroll.BatchResponse{}, payrollerrors.ErrBatchNotFound)

		w := do(r, http.MethodGet, "/payroll-batches/b-9", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
