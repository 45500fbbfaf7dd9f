package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/inventory/pkg/logger"
	"github.com/ghuser/inventory/services/inventory/application/api"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
	"github.com/ghuser/inventory/services/inventory/domain/models"
	"github.com/ghuser/inventory/services/inventory/domain/repositories"
	"github.com/ghuser/inventory/services/inventory/infrastructure/persistence/memory"
)

const titleMsg = "Title must be a non-empty string and less than 30 characters!"

func newRouter(items repositories.ItemRepository, locations repositories.LocationRepository) http.Handler {
	log := logger.Nop()
	svcs := &appsvcs.Services{
		Item:     appsvcs.NewItemService(items, locations, log),
		Location: appsvcs.NewLocationService(locations, log),
	}
	r := chi.NewRouter()
	api.Mount(r, svcs, log)
	return r
}

func newMemoryRouter() http.Handler {
	store := memory.NewStore()
	return newRouter(store.Items(), store.Locations())
}

type response struct {
	status int
	body   string
}

func (r response) message(t *testing.T) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.body), &m), r.body)
	msg, _ := m["message"].(string)
	return msg
}

func do(t *testing.T, h http.Handler, method, path, body string) response {
	t.Helper()
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json"), "%s %s: content type %q", method, path, rr.Header().Get("Content-Type"))
	return response{status: rr.Code, body: rr.Body.String()}
}

func TestLocations_Lifecycle(t *testing.T) {
	h := newMemoryRouter()

	res := do(t, h, http.MethodGet, "/location", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `[]`, res.body)

	res = do(t, h, http.MethodPost, "/location", `{"title":"Origin","x_cor":0,"y_cor":0}`)
	require.Equal(t, http.StatusCreated, res.status, res.body)
	assert.JSONEq(t, `{"id":1,"title":"Origin","x_cor":0,"y_cor":0}`, res.body)

	res = do(t, h, http.MethodGet, "/location/1", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"id":1,"title":"Origin","x_cor":0,"y_cor":0}`, res.body)

	res = do(t, h, http.MethodPut, "/location/1", `{"title":"Home","x_cor":0,"y_cor":0}`)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Location updated successfully!", res.message(t))

	res = do(t, h, http.MethodGet, "/location", "")
	assert.JSONEq(t, `[{"id":1,"title":"Home","x_cor":0,"y_cor":0}]`, res.body)

	res = do(t, h, http.MethodDelete, "/location/1", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Location deleted successfully!", res.message(t))

	res = do(t, h, http.MethodGet, "/location/1", "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "Location not found!", res.message(t))
}

func TestLocations_Validation(t *testing.T) {
	h := newMemoryRouter()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/location", `{"title":"Taken","x_cor":3,"y_cor":4}`).status)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"empty body", http.MethodPost, "/location", "", http.StatusBadRequest, titleMsg},
		{"malformed body", http.MethodPost, "/location", `{"title":`, http.StatusBadRequest, "Invalid request body!"},
		{"array body", http.MethodPost, "/location", `[]`, http.StatusBadRequest, "Invalid request body!"},
		{"blank title", http.MethodPost, "/location", `{"title":"  ","x_cor":1,"y_cor":1}`, http.StatusBadRequest, titleMsg},
		{"numeric title", http.MethodPost, "/location", `{"title":5,"x_cor":1,"y_cor":1}`, http.StatusBadRequest, titleMsg},
		{"31 char title", http.MethodPost, "/location", `{"title":"` + strings.Repeat("a", 31) + `","x_cor":1,"y_cor":1}`, http.StatusBadRequest, titleMsg},
		{"title checked before coordinates", http.MethodPost, "/location", `{"x_cor":"a"}`, http.StatusBadRequest, titleMsg},
		{"missing y", http.MethodPost, "/location", `{"title":"A","x_cor":1}`, http.StatusBadRequest, "Invalid coordinates"},
		{"null x", http.MethodPost, "/location", `{"title":"A","x_cor":null,"y_cor":1}`, http.StatusBadRequest, "Invalid coordinates"},
		{"string coordinate", http.MethodPost, "/location", `{"title":"A","x_cor":"1","y_cor":1}`, http.StatusBadRequest, "Invalid coordinates"},
		{"fractional coordinate", http.MethodPost, "/location", `{"title":"A","x_cor":1.5,"y_cor":1}`, http.StatusBadRequest, "Invalid coordinates"},
		{"duplicate", http.MethodPost, "/location", `{"title":"A","x_cor":3,"y_cor":4}`, http.StatusBadRequest, "Location with these coordinates already exists!"},
		{"duplicate via 3.0", http.MethodPost, "/location", `{"title":"A","x_cor":3.0,"y_cor":4}`, http.StatusBadRequest, "Location with these coordinates already exists!"},
		{"put bad body on bad id", http.MethodPut, "/location/abc", `{}`, http.StatusBadRequest, titleMsg},
		{"put bad id", http.MethodPut, "/location/abc", `{"title":"A","x_cor":8,"y_cor":8}`, http.StatusNotFound, "Location not found!"},
		{"put unknown id", http.MethodPut, "/location/77", `{"title":"A","x_cor":8,"y_cor":8}`, http.StatusNotFound, "Location not found!"},
		{"get bad id", http.MethodGet, "/location/-1", "", http.StatusNotFound, "Location not found!"},
		{"delete unknown id", http.MethodDelete, "/location/77", "", http.StatusNotFound, "Location not found!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, res.status, res.body)
			assert.Equal(t, tt.wantMsg, res.message(t))
		})
	}
}

func TestLocations_UpdateUniqueness(t *testing.T) {
	h := newMemoryRouter()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/location", `{"title":"A","x_cor":1,"y_cor":1}`).status)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/location", `{"title":"B","x_cor":2,"y_cor":2}`).status)

	res := do(t, h, http.MethodPut, "/location/1", `{"title":"A","x_cor":2,"y_cor":2}`)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Location with these coordinates already exists!", res.message(t))

	res = do(t, h, http.MethodPut, "/location/1", `{"title":"A renamed","x_cor":1,"y_cor":1}`)
	assert.Equal(t, http.StatusOK, res.status, res.body)
}

func TestItems_Lifecycle(t *testing.T) {
	h := newMemoryRouter()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/location", `{"title":"Shelf","x_cor":1,"y_cor":1}`).status)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/location", `{"title":"Bin","x_cor":2,"y_cor":2}`).status)

	res := do(t, h, http.MethodGet, "/item", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `[]`, res.body)

	res = do(t, h, http.MethodPost, "/item", `{"title":"Hammer","location_id":1}`)
	require.Equal(t, http.StatusCreated, res.status, res.body)
	assert.JSONEq(t, `{"message":"Item created successfully!","itemId":1}`, res.body)

	res = do(t, h, http.MethodGet, "/item/1", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `{"id":1,"title":"Hammer","location_id":1}`, res.body)

	res = do(t, h, http.MethodPut, "/item/1", `{"title":"Mallet","location_id":2}`)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Item updated successfully!", res.message(t))

	res = do(t, h, http.MethodPut, "/item/1", `{"title":"Mallet","location_id":2}`)
	assert.Equal(t, http.StatusOK, res.status, "identical update")

	res = do(t, h, http.MethodGet, "/item", "")
	assert.JSONEq(t, `[{"id":1,"title":"Mallet","location_id":2}]`, res.body)

	res = do(t, h, http.MethodDelete, "/location/2", "")
	assert.Equal(t, http.StatusConflict, res.status)
	assert.Equal(t, "Location is still referenced by items!", res.message(t))

	res = do(t, h, http.MethodDelete, "/item/1", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Item deleted successfully!", res.message(t))

	res = do(t, h, http.MethodDelete, "/item/1", "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "Item not found!", res.message(t))

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodDelete, "/location/2", "").status)
}

func TestItems_Validation(t *testing.T) {
	h := newMemoryRouter()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/location", `{"title":"Shelf","x_cor":1,"y_cor":1}`).status)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/item", `{"title":"Hammer","location_id":1}`).status)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"empty body", http.MethodPost, "/item", "", http.StatusBadRequest, titleMsg},
		{"malformed body", http.MethodPost, "/item", `nope`, http.StatusBadRequest, "Invalid request body!"},
		{"trailing data", http.MethodPost, "/item", `{"title":"Saw","location_id":1} trailing`, http.StatusBadRequest, "Invalid request body!"},
		{"whitespace title", http.MethodPost, "/item", `{"title":"\t ","location_id":1}`, http.StatusBadRequest, titleMsg},
		{"title wins over location", http.MethodPost, "/item", `{"title":"","location_id":999}`, http.StatusBadRequest, titleMsg},
		{"31 runes", http.MethodPost, "/item", `{"title":"` + strings.Repeat("ü", 31) + `","location_id":1}`, http.StatusBadRequest, titleMsg},
		{"missing location", http.MethodPost, "/item", `{"title":"Saw"}`, http.StatusBadRequest, "Invalid location ID!"},
		{"string location", http.MethodPost, "/item", `{"title":"Saw","location_id":"1"}`, http.StatusBadRequest, "Invalid location ID!"},
		{"zero location", http.MethodPost, "/item", `{"title":"Saw","location_id":0}`, http.StatusBadRequest, "Invalid location ID!"},
		{"unknown location", http.MethodPost, "/item", `{"title":"Saw","location_id":999}`, http.StatusBadRequest, "Invalid location ID!"},
		{"get unknown", http.MethodGet, "/item/999", "", http.StatusNotFound, "Item not found!"},
		{"get bad id", http.MethodGet, "/item/x", "", http.StatusNotFound, "Item not found!"},
		{"put bad body on unknown id", http.MethodPut, "/item/999", `{"location_id":1}`, http.StatusBadRequest, titleMsg},
		{"put bad location on known id", http.MethodPut, "/item/1", `{"title":"Saw","location_id":999}`, http.StatusBadRequest, "Invalid location ID!"},
		{"put unknown id", http.MethodPut, "/item/999", `{"title":"Saw","location_id":1}`, http.StatusNotFound, "Item not found or no changes made!"},
		{"put bad id", http.MethodPut, "/item/0", `{"title":"Saw","location_id":1}`, http.StatusNotFound, "Item not found or no changes made!"},
		{"delete bad id", http.MethodDelete, "/item/1.0", "", http.StatusNotFound, "Item not found!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, res.status, res.body)
			assert.Equal(t, tt.wantMsg, res.message(t))
		})
	}

	res := do(t, h, http.MethodPost, "/item", `{"title":"`+strings.Repeat("ü", 30)+`","location_id":1.0}`)
	assert.Equal(t, http.StatusCreated, res.status, res.body)
}

func TestStoreFailuresUseFixedMessages(t *testing.T) {
	// Item writes look the location up first, so items fail behind a working location store.
	store := memory.NewStore()
	_, err := store.Locations().Create(context.Background(), models.NewLocation("Shelf", 1, 1))
	require.NoError(t, err)
	itemsDown := newRouter(brokenItems{}, store.Locations())
	locationsDown := newRouter(brokenItems{}, brokenLocations{})

	tests := []struct {
		h                        http.Handler
		method, path, body, want string
	}{
		{itemsDown, http.MethodGet, "/item", "", "Unable to get items!"},
		{itemsDown, http.MethodGet, "/item/1", "", "Unable to get item!"},
		{itemsDown, http.MethodPost, "/item", `{"title":"Saw","location_id":1}`, "Unable to create item!"},
		{itemsDown, http.MethodPut, "/item/1", `{"title":"Saw","location_id":1}`, "Unable to update item!"},
		{itemsDown, http.MethodDelete, "/item/1", "", "Unable to delete item!"},
		{locationsDown, http.MethodPost, "/item", `{"title":"Saw","location_id":1}`, "Unable to create item!"},
		{locationsDown, http.MethodGet, "/location", "", "Unable to get locations!"},
		{locationsDown, http.MethodGet, "/location/1", "", "Unable to get location!"},
		{locationsDown, http.MethodPost, "/location", `{"title":"A","x_cor":1,"y_cor":1}`, "Unable to create location!"},
		{locationsDown, http.MethodPut, "/location/1", `{"title":"A","x_cor":1,"y_cor":1}`, "Unable to update location!"},
		{locationsDown, http.MethodDelete, "/location/1", "", "Unable to delete location!"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			res := do(t, tt.h, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, res.status)
			assert.Equal(t, tt.want, res.message(t))
			assert.NotContains(t, res.body, errBroken.Error())
		})
	}
}

func TestValidationNeverTouchesStore(t *testing.T) {
	h := newRouter(brokenItems{}, brokenLocations{})

	res := do(t, h, http.MethodPost, "/item", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, res.status)
	res = do(t, h, http.MethodPost, "/location", `{"title":"A"}`)
	assert.Equal(t, http.StatusBadRequest, res.status)
	res = do(t, h, http.MethodGet, "/item/abc", "")
	assert.Equal(t, http.StatusNotFound, res.status)
}

var errBroken = errors.New("dial tcp 10.0.0.5:5432: connection refused")

type brokenItems struct{}

func (brokenItems) List(context.Context) ([]*models.Item, error)         { return nil, errBroken }
func (brokenItems) GetByID(context.Context, int64) (*models.Item, error) { return nil, errBroken }
func (brokenItems) Create(context.Context, *models.Item) (int64, error)  { return 0, errBroken }
func (brokenItems) Update(context.Context, *models.Item) (int64, error)  { return 0, errBroken }
func (brokenItems) Delete(context.Context, int64) (int64, error)         { return 0, errBroken }

type brokenLocations struct{}

func (brokenLocations) List(context.Context) ([]*models.Location, error) { return nil, errBroken }
func (brokenLocations) GetByID(context.Context, int64) (*models.Location, error) {
	return nil, errBroken
}
func (brokenLocations) GetByCoordinates(context.Context, models.Coordinates) (*models.Location, error) {
	return nil, errBroken
}
func (brokenLocations) Create(context.Context, *models.Location) (int64, error) {
	return 0, errBroken
}
func (brokenLocations) Update(context.Context, *models.Location) (int64, error) {
	return 0, errBroken
}
func (brokenLocations) Delete(context.Context, int64) (int64, error) { return 0, errBroken }
