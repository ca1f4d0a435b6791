package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/compasscar/internal/domain"
	"github.com/Gunvolt24/compasscar/internal/ports/mocks"
	rest "github.com/Gunvolt24/compasscar/internal/transport/http"
	"github.com/Gunvolt24/compasscar/pkg/validate"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newTestRouter(t *testing.T) (*mocks.MockCarService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svc := mocks.NewMockCarService(ctrl)
	h := rest.NewHandler(svc, noopLogger{}, 0)
	return svc, rest.NewRouter(h, "")
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var envelope struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid error envelope: %v, body=%s", err, w.Body.String())
	}
	return envelope.Errors
}

func TestCreateCar_Created(t *testing.T) {
	svc, r := newTestRouter(t)

	in := domain.NewCar{Brand: "Mercedes", Model: "C320", Plate: "ABC-1C34", Year: 2022}
	created := &domain.Car{
		ID: 1, Brand: "Mercedes", Model: "C320", Plate: "ABC-1C34", Year: 2022,
		CreatedAt: time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC),
		Items:     []domain.Item{},
	}
	svc.EXPECT().CreateCar(gomock.Any(), in).Return(created, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/cars",
		`{"brand":"Mercedes","model":"C320","plate":"ABC-1C34","year":2022}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Car
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != 1 || got.Plate != "ABC-1C34" {
		t.Fatalf("unexpected body: %+v", got)
	}
	// даже у нового автомобиля items сериализуется пустым массивом, не null
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array, body=%s", w.Body.String())
	}
}

func TestCreateCar_InvalidBody(t *testing.T) {
	svc, r := newTestRouter(t)
	svc.EXPECT().CreateCar(gomock.Any(), gomock.Any()).Times(0)

	w := doJSON(t, r, http.MethodPost, "/api/v1/cars", `{"brand":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestCreateCar_ValidationErrors(t *testing.T) {
	svc, r := newTestRouter(t)

	want := []string{validate.MsgBrandRequired, validate.MsgYearOutOfRange}
	svc.EXPECT().CreateCar(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ValidationError{Messages: want})

	w := doJSON(t, r, http.MethodPost, "/api/v1/cars",
		`{"model":"C320","plate":"ABC-1C34","year":2030}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := decodeErrors(t, w); !reflect.DeepEqual(got, want) {
		t.Fatalf("errors = %v, want %v", got, want)
	}
}

func TestCreateCar_Conflict(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().CreateCar(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ConflictError{Messages: []string{validate.MsgCarAlreadyRegistered}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/cars",
		`{"brand":"Mercedes","model":"C320","plate":"ABC-1C34","year":2022}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d, body=%s", w.Code, w.Body.String())
	}
	if got := decodeErrors(t, w); len(got) != 1 || got[0] != validate.MsgCarAlreadyRegistered {
		t.Fatalf("unexpected errors: %v", got)
	}
}

func TestListCars_OK(t *testing.T) {
	svc, r := newTestRouter(t)

	list := []*domain.Car{
		{ID: 1, Plate: "ABC-1C34", Items: []domain.Item{{ID: 1, Name: "sunroof", CarID: 1}}},
		{ID: 2, Plate: "XYZ-9J01", Items: []domain.Item{}},
	}
	svc.EXPECT().ListCars(gomock.Any()).Return(list, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/cars", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.Car
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].Items[0].Name != "sunroof" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetCar_Found_ItemsAsNames(t *testing.T) {
	svc, r := newTestRouter(t)

	car := &domain.Car{
		ID: 7, Brand: "Mercedes", Model: "C320", Plate: "ABC-1C34", Year: 2022,
		Items: []domain.Item{
			{ID: 1, Name: "sunroof", CarID: 7},
			{ID: 2, Name: "air conditioning", CarID: 7},
		},
	}
	svc.EXPECT().GetCar(gomock.Any(), int64(7)).Return(car, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/cars/7", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		ID    int64    `json:"id"`
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != 7 || !reflect.DeepEqual(got.Items, []string{"sunroof", "air conditioning"}) {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestGetCar_NotFound(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().GetCar(gomock.Any(), int64(99)).Return(nil, domain.ErrNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/v1/cars/99", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	if got := decodeErrors(t, w); len(got) != 1 || got[0] != "car not found" {
		t.Fatalf("unexpected errors: %v", got)
	}
}

// Нечисловой id неотличим от несуществующего: сервис не вызывается.
func TestGetCar_NonNumericID(t *testing.T) {
	svc, r := newTestRouter(t)
	svc.EXPECT().GetCar(gomock.Any(), gomock.Any()).Times(0)

	w := doJSON(t, r, http.MethodGet, "/api/v1/cars/abc", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestGetCar_InternalError(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().GetCar(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

	w := doJSON(t, r, http.MethodGet, "/api/v1/cars/1", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
	if got := decodeErrors(t, w); len(got) != 1 || got[0] != "an internal server error occurred" {
		t.Fatalf("unexpected errors: %v", got)
	}
}

func TestReplaceItems_NoContent(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().ReplaceItems(gomock.Any(), int64(1), []string{"sunroof", "gps"}).Return(nil)

	w := doJSON(t, r, http.MethodPut, "/api/v1/cars/1/items", `{"items":["sunroof","gps"]}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Fatalf("204 must have empty body, got %s", w.Body.String())
	}
}

func TestReplaceItems_InvalidSet(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().ReplaceItems(gomock.Any(), int64(1), gomock.Any()).
		Return(&domain.ValidationError{Messages: []string{validate.MsgItemsMaxFive, validate.MsgItemsRepeated}})

	w := doJSON(t, r, http.MethodPut, "/api/v1/cars/1/items",
		`{"items":["a","a","b","c","d","e"]}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	want := []string{validate.MsgItemsMaxFive, validate.MsgItemsRepeated}
	if got := decodeErrors(t, w); !reflect.DeepEqual(got, want) {
		t.Fatalf("errors = %v, want %v", got, want)
	}
}

func TestReplaceItems_CarNotFound(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().ReplaceItems(gomock.Any(), int64(5), gomock.Any()).Return(domain.ErrNotFound)

	w := doJSON(t, r, http.MethodPut, "/api/v1/cars/5/items", `{"items":["sunroof"]}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestUpdateCar_NoContent(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().UpdateCar(gomock.Any(), int64(1), domain.CarPatch{Model: "C180"}).Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/cars/1", `{"model":"C180"}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d, body=%s", w.Code, w.Body.String())
	}
}

// Пустой патч — успешный no-op на уровне сервиса, транспорт отвечает 204.
func TestUpdateCar_EmptyPatch(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().UpdateCar(gomock.Any(), int64(1), domain.CarPatch{}).Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/cars/1", `{}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", w.Code)
	}
}

func TestUpdateCar_BrandWithoutModel(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().UpdateCar(gomock.Any(), int64(1), domain.CarPatch{Brand: "BMW"}).
		Return(&domain.ValidationError{Messages: []string{validate.MsgModelMustBeInformed}})

	w := doJSON(t, r, http.MethodPatch, "/api/v1/cars/1", `{"brand":"BMW"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	if got := decodeErrors(t, w); len(got) != 1 || got[0] != validate.MsgModelMustBeInformed {
		t.Fatalf("unexpected errors: %v", got)
	}
}

func TestUpdateCar_PlateConflict(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().UpdateCar(gomock.Any(), int64(1), domain.CarPatch{Plate: "XYZ-9J01"}).
		Return(&domain.ConflictError{Messages: []string{validate.MsgCarAlreadyRegistered}})

	w := doJSON(t, r, http.MethodPatch, "/api/v1/cars/1", `{"plate":"XYZ-9J01"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("want 409, got %d", w.Code)
	}
}

func TestDeleteCar_NoContent(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().DeleteCar(gomock.Any(), int64(1)).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/cars/1", "")

	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", w.Code)
	}
}

func TestDeleteCar_NotFound(t *testing.T) {
	svc, r := newTestRouter(t)

	svc.EXPECT().DeleteCar(gomock.Any(), int64(42)).Return(domain.ErrNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/cars/42", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	_, r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/ping", "")

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}
