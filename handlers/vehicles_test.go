package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dirk1989/ideal-car/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVehicle(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"title":        "Test Vehicle",
		"price":        50000,
		"year":         2023,
		"mileage":      10000,
		"fuelType":     "Petrol",
		"transmission": "Automatic",
		"color":        "Blue",
		"location":     "Johannesburg",
		"features":     []string{"Sunroof", "Leather Seats"},
		"isFeatured":   false,
		"dealerId":     nil,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var v models.Vehicle
	decodeBody(t, w, &v)

	assert.NotZero(t, v.ID)
	assert.Equal(t, "Test Vehicle", v.Title)
	assert.Equal(t, float64(50000), v.Price)
	assert.Equal(t, 2023, v.Year)
	assert.Equal(t, 10000, v.Mileage)
	assert.Equal(t, []string{"Sunroof", "Leather Seats"}, v.Features)
	assert.Equal(t, models.VehicleStatusActive, v.Status)
	assert.Equal(t, 0, v.Views)
	assert.Nil(t, v.DealerID)
	assert.NotEmpty(t, v.CreatedAt)
}

func TestCreateVehicleDefaults(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{})
	require.Equal(t, http.StatusCreated, w.Code)

	var v models.Vehicle
	decodeBody(t, w, &v)

	assert.Equal(t, "Untitled", v.Title)
	assert.Zero(t, v.Price)
	assert.Zero(t, v.Year)
	assert.Equal(t, []string{}, v.Features)
	assert.Equal(t, []string{}, v.Images)
	assert.Empty(t, v.Image)
	assert.False(t, v.IsFeatured)
}

func TestCreateVehicleMalformedBody(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"price": "not a number",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVehiclesNewestFirst(t *testing.T) {
	setupTest(t)
	r := testRouter()

	doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{"title": "Older"})
	pause()
	doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{"title": "Newer"})

	w := doJSON(t, r, http.MethodGet, "/api/vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var vehicles []models.Vehicle
	decodeBody(t, w, &vehicles)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "Newer", vehicles[0].Title)
	assert.Equal(t, "Older", vehicles[1].Title)
}

func TestVehicleDealerAssociation(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/dealers", map[string]interface{}{"name": "City Motors"})
	require.Equal(t, http.StatusCreated, w.Code)
	var dealer models.Dealer
	decodeBody(t, w, &dealer)

	pause()
	doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{"title": "Unlinked", "dealerId": nil})
	pause()
	doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{"title": "Linked", "dealerId": dealer.ID})

	w = doJSON(t, r, http.MethodGet, "/api/vehicles", nil)
	var vehicles []models.Vehicle
	decodeBody(t, w, &vehicles)
	require.Len(t, vehicles, 2)

	var linked []models.Vehicle
	for _, v := range vehicles {
		if v.DealerID != nil && *v.DealerID == dealer.ID {
			linked = append(linked, v)
		}
	}
	require.Len(t, linked, 1)
	assert.Equal(t, "Linked", linked[0].Title)
}

func TestUpdateVehicleMergesFields(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"title":    "Original",
		"price":    120000,
		"color":    "Red",
		"features": []string{"Aircon"},
	})
	var created models.Vehicle
	decodeBody(t, w, &created)

	w = doJSON(t, r, http.MethodPut, "/api/vehicles", map[string]interface{}{
		"id":    created.ID,
		"price": 99000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Vehicle
	decodeBody(t, w, &updated)
	assert.Equal(t, float64(99000), updated.Price)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "Red", updated.Color)
	assert.Equal(t, []string{"Aircon"}, updated.Features)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateVehicleNotFound(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPut, "/api/vehicles", map[string]interface{}{
		"id":    999999999,
		"title": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateVehicleMissingID(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPut, "/api/vehicles", map[string]interface{}{"title": "No id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteVehicle(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{"title": "Doomed"})
	var created models.Vehicle
	decodeBody(t, w, &created)

	w = doJSON(t, r, http.MethodDelete, "/api/vehicles", map[string]interface{}{"id": created.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, created.ID, resp.ID)

	w = doJSON(t, r, http.MethodGet, "/api/vehicles", nil)
	var vehicles []models.Vehicle
	decodeBody(t, w, &vehicles)
	assert.Empty(t, vehicles)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodDelete, "/api/vehicles", map[string]interface{}{"id": 999999999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVehicleMissingID(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodDelete, "/api/vehicles", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVehicleWithImages(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"title":        "With Photos",
		"imagesBase64": []string{pngBase64(t, 20, 20), pngBase64(t, 30, 30)},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var v models.Vehicle
	decodeBody(t, w, &v)
	require.Len(t, v.Images, 2)
	assert.Equal(t, v.Images[0], v.Image)

	for _, p := range v.Images {
		_, err := os.Stat(filepath.Join(uploads.UploadDir(), filepath.Base(p)))
		assert.NoError(t, err, p)
	}
}

func TestCreateVehicleLegacySingleImage(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"title":       "One Photo",
		"imageBase64": pngBase64(t, 16, 16),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var v models.Vehicle
	decodeBody(t, w, &v)
	require.Len(t, v.Images, 1)
	assert.Equal(t, v.Images[0], v.Image)
}

func TestCreateVehicleImageCap(t *testing.T) {
	setupTest(t)
	r := testRouter()

	payloads := make([]string, 12)
	for i := range payloads {
		payloads[i] = pngBase64(t, 4, 4)
	}

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"title":        "Too Many",
		"imagesBase64": payloads,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var v models.Vehicle
	decodeBody(t, w, &v)
	assert.Len(t, v.Images, 10, "excess images are silently truncated")
}

func TestUpdateVehiclePreservesImagesWithoutNewPayload(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"title":        "Keeps Photos",
		"imagesBase64": []string{pngBase64(t, 12, 12)},
	})
	var created models.Vehicle
	decodeBody(t, w, &created)
	require.Len(t, created.Images, 1)

	w = doJSON(t, r, http.MethodPut, "/api/vehicles", map[string]interface{}{
		"id":    created.ID,
		"title": "Renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Vehicle
	decodeBody(t, w, &updated)
	assert.Equal(t, created.Images, updated.Images)
	assert.Equal(t, created.Image, updated.Image)
}

func TestDeleteVehicleRemovesUploads(t *testing.T) {
	setupTest(t)
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"title":        "Cleanup",
		"imagesBase64": []string{pngBase64(t, 10, 10)},
	})
	var created models.Vehicle
	decodeBody(t, w, &created)
	require.Len(t, created.Images, 1)

	file := filepath.Join(uploads.UploadDir(), filepath.Base(created.Images[0]))
	_, err := os.Stat(file)
	require.NoError(t, err)

	doJSON(t, r, http.MethodDelete, "/api/vehicles", map[string]interface{}{"id": created.ID})

	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}
