package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/Ivanvillan/front-820hd-sub000/internal/adapter/http/handlers/mocks"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/assignment"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/filter"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/materials"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/notelog"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase/interfaces"
)

var fieldTech = entities.Viewer{TechnicianID: "t-1", DisplayName: "Ana", Role: entities.RoleTechnician, Sector: entities.SectorField}

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", Identity())
	g.GET("/orders", h.ListOrders)
	g.GET("/orders/:id", h.GetOrder)
	g.POST("/orders", h.CreateOrder)
	g.PUT("/orders/:id", h.UpdateOrder)
	g.POST("/orders/:id/take", h.TakeOrder)
	g.POST("/orders/:id/notes", h.AppendNote)
	g.POST("/orders/:id/export", h.ExportOrder)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderTechnicianID, fieldTech.TechnicianID)
	req.Header.Set(HeaderTechnicianName, fieldTech.DisplayName)
	req.Header.Set(HeaderUserRole, string(fieldTech.Role))
	req.Header.Set(HeaderUserSector, string(fieldTech.Sector))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newOrderRouter(NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl)))

	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes viewer and criteria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().
			ListVisible(gomock.Any(), fieldTech, filter.Criteria{Status: entities.StatusFinalized, Query: "router"}).
			Return([]entities.Order{{ID: "o-1", Finalized: true}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders?status=finalizada&q=router", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["status"] != "Finalizada" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl)))

		w := doRequest(r, http.MethodGet, "/v1/orders?status=archivada", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", usecase.ErrOrderNotFound, http.StatusNotFound},
		{"not visible", usecase.ErrOrderNotVisible, http.StatusForbidden},
		{"internal", errors.New("db"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOrderUseCase(ctrl)
			r := newOrderRouter(NewOrderHandler(uc))

			uc.EXPECT().GetByID(gomock.Any(), fieldTech, "o-1").Return(usecase.OrderDetail{}, tc.err)

			w := doRequest(r, http.MethodGet, "/v1/orders/o-1", "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), fieldTech, "o-1").Return(usecase.OrderDetail{
			Order:  entities.Order{ID: "o-1"},
			Status: entities.StatusPending,
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders/o-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl)))

		w := doRequest(r, http.MethodPost, "/v1/orders", `{"sector":"Campo"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), fieldTech, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Viewer, in usecase.CreateOrderInput) (usecase.SaveResult, error) {
				if in.Status != entities.StatusInDiagnosis || in.Sector != entities.SectorField || len(in.Materials) != 1 || in.Materials[0].MaterialID != "m-1" {
					t.Fatalf("unexpected input %+v", in)
				}
				return usecase.SaveResult{Order: entities.Order{ID: "o-9", Status: in.Status}, Previous: entities.StatusPending}, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/orders",
			`{"description":"Sin señal","status":"en diagnostico","sector":"Campo","materials":[{"material_id":" m-1 ","quantity":2}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), fieldTech, gomock.Any()).Return(usecase.SaveResult{}, materials.ErrInvalidQuantity)

		w := doRequest(r, http.MethodPost, "/v1/orders", `{"description":"x","materials":[{"material_id":"m-1","quantity":0}]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog := []entities.Material{{ID: "m-1", Name: "Cable UTP"}}
	stored := entities.Order{
		ID:           "o-1",
		Status:       entities.StatusInProgress,
		Description:  "Router",
		Sector:       entities.SectorField,
		Responsibles: []entities.TechnicianRef{{ID: "t-1", Name: "Ana"}},
	}

	t.Run("finalize with export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().OpenEdit(gomock.Any(), fieldTech, "o-1").Return(usecase.NewEditSession(stored, catalog), nil)
		uc.EXPECT().SaveEdit(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *usecase.EditSession, p interfaces.IExportPrompter) (usecase.SaveResult, error) {
				if s.Draft.Status != entities.StatusFinalized {
					t.Fatalf("status not applied: %s", s.Draft.Status)
				}
				if len(s.Materials().Selections()) != 1 || len(s.Notes()) != 1 {
					t.Fatalf("materials or note not applied")
				}
				if !p.ConfirmExport(ctx, s.Draft) {
					t.Fatalf("expected export confirmation")
				}
				return usecase.SaveResult{
					Order:          s.Draft,
					Previous:       s.PreviousStatus(),
					Effects:        workflow.Effects{StampedWorkEnd: true, OfferExport: true},
					ExportOffered:  true,
					ExportLocation: "s3://bucket/orders/o-1.txt",
				}, nil
			})

		w := doRequest(r, http.MethodPut, "/v1/orders/o-1",
			`{"status":"Finalizada","materials":[{"material_id":"m-1","quantity":3}],"note":"listo","confirm_export":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["export_location"] != "s3://bucket/orders/o-1.txt" || body["status_changed"] != true {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().OpenEdit(gomock.Any(), fieldTech, "o-1").Return(usecase.NewEditSession(stored, catalog), nil)

		w := doRequest(r, http.MethodPut, "/v1/orders/o-1", `{"materials":[{"material_id":"m-404","quantity":1}]}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("blank description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().OpenEdit(gomock.Any(), fieldTech, "o-1").Return(usecase.NewEditSession(stored, catalog), nil)

		w := doRequest(r, http.MethodPut, "/v1/orders/o-1", `{"description":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("terminal order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		closed := stored.Clone()
		closed.Status = entities.StatusCancelled
		uc.EXPECT().OpenEdit(gomock.Any(), fieldTech, "o-1").Return(usecase.NewEditSession(closed, catalog), nil)
		uc.EXPECT().SaveEdit(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.SaveResult{}, workflow.ErrTerminalStatus)

		w := doRequest(r, http.MethodPut, "/v1/orders/o-1", `{"status":"Pendiente"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_TakeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"already assigned", assignment.ErrAlreadyAssigned, http.StatusConflict},
		{"sector not self assignable", assignment.ErrSectorNotSelfAssignable, http.StatusConflict},
		{"no technician id", assignment.ErrInvalidTechnician, http.StatusUnprocessableEntity},
		{"taken", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOrderUseCase(ctrl)
			r := newOrderRouter(NewOrderHandler(uc))

			res := usecase.SaveResult{}
			if tc.err == nil {
				res = usecase.SaveResult{Order: entities.Order{ID: "o-1", Status: entities.StatusInProgress, TechnicianIDs: "t-1"}, Previous: entities.StatusPending}
			}
			uc.EXPECT().Take(gomock.Any(), fieldTech, "o-1").Return(res, tc.err)

			w := doRequest(r, http.MethodPost, "/v1/orders/o-1/take", "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestOrderHandler_AppendNote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl)))

		w := doRequest(r, http.MethodPost, "/v1/orders/o-1/notes", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("whitespace content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().AppendNote(gomock.Any(), fieldTech, "o-1", "   ").Return(entities.Order{}, notelog.ErrEmptyContent)

		w := doRequest(r, http.MethodPost, "/v1/orders/o-1/notes", `{"content":"   "}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().AppendNote(gomock.Any(), fieldTech, "o-1", "revisado").Return(entities.Order{ID: "o-1"}, nil)

		w := doRequest(r, http.MethodPost, "/v1/orders/o-1/notes", `{"content":"revisado"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ExportOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().Export(gomock.Any(), fieldTech, "o-1").Return("s3://bucket/orders/o-1.txt", nil)

		w := doRequest(r, http.MethodPost, "/v1/orders/o-1/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().Export(gomock.Any(), fieldTech, "o-1").Return("", errors.New("s3 down"))

		w := doRequest(r, http.MethodPost, "/v1/orders/o-1/export", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
