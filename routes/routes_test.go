package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"agenda-salao-backend/models"
	"agenda-salao-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.AdminUser{},
		&models.Service{},
		&models.Slot{},
		&models.Appointment{},
	))

	return SetupRouter(db), db
}

func seedScenario(t *testing.T, db *gorm.DB) (models.Slot, models.Service) {
	t.Helper()

	service := models.Service{Name: "Corte", Price: "R$ 50,00"}
	require.NoError(t, db.Create(&service).Error)
	slot := models.Slot{Date: "2025-07-28", Time: "09:00", Available: true}
	require.NoError(t, db.Create(&slot).Error)
	return slot, service
}

func seedAdminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	admin, err := models.NewAdminUser("admin@salao.com", "senha_forte_123")
	require.NoError(t, err)
	require.NoError(t, db.Create(admin).Error)

	token, err := utils.GenerateToken(admin.ID)
	require.NoError(t, err)
	return token
}

func jsonID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingScenario(t *testing.T) {
	r, db := setupTestServer(t)
	slot, service := seedScenario(t, db)

	body := gin.H{"customerName": "Ana", "slotId": slot.ID, "serviceId": service.ID}
	w := doJSON(r, http.MethodPost, "/agendamentos", "", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	var stored models.Slot
	require.NoError(t, db.First(&stored, slot.ID).Error)
	assert.False(t, stored.Available)

	// Same call again: the slot is gone.
	w = doJSON(r, http.MethodPost, "/agendamentos", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingValidation(t *testing.T) {
	r, db := setupTestServer(t)
	slot, service := seedScenario(t, db)

	// Missing customerName is rejected before any write.
	w := doJSON(r, http.MethodPost, "/agendamentos", "", gin.H{"slotId": slot.ID, "serviceId": service.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/agendamentos", "", gin.H{"customerName": "Ana", "slotId": slot.ID, "serviceId": service.ID, "customerPhone": "not-a-phone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Slot
	require.NoError(t, db.First(&stored, slot.ID).Error)
	assert.True(t, stored.Available)

	// Unknown slot reads as a conflict, not a server error.
	w = doJSON(r, http.MethodPost, "/agendamentos", "", gin.H{"customerName": "Ana", "slotId": 999999, "serviceId": service.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSlotRoundTrip(t *testing.T) {
	r, db := setupTestServer(t)
	slot, service := seedScenario(t, db)
	token := seedAdminToken(t, db)

	listAvailable := func() []models.Slot {
		w := doJSON(r, http.MethodGet, "/horarios", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var slots []models.Slot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
		return slots
	}

	require.Len(t, listAvailable(), 1)

	w := doJSON(r, http.MethodPost, "/agendamentos", "", gin.H{"customerName": "Ana", "slotId": slot.ID, "serviceId": service.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, listAvailable())

	var appointment models.Appointment
	require.NoError(t, db.First(&appointment).Error)

	w = doJSON(r, http.MethodDelete, "/agendamentos/"+jsonID(appointment.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	again := listAvailable()
	require.Len(t, again, 1)
	assert.Equal(t, slot.ID, again[0].ID)
}

func TestLogin(t *testing.T) {
	r, db := setupTestServer(t)
	seedAdminToken(t, db)

	w := doJSON(r, http.MethodPost, "/login", "", gin.H{"email": "admin@salao.com", "password": "senha_forte_123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Auth  bool   `json:"auth"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Auth)
	require.NotEmpty(t, resp.Token)

	// The issued credential passes the admin gate.
	w = doJSON(r, http.MethodGet, "/agendamentos", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/login", "", gin.H{"email": "admin@salao.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/login", "", gin.H{"email": "nobody@salao.com", "password": "whatever"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminGate(t *testing.T) {
	r, db := setupTestServer(t)
	token := seedAdminToken(t, db)

	// No credential at all.
	w := doJSON(r, http.MethodGet, "/agendamentos", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Tampered credential.
	w = doJSON(r, http.MethodGet, "/agendamentos", token+"x", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Expired credential, signed with the right secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	})
	expiredString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for _, probe := range []struct {
		method, path string
	}{
		{http.MethodGet, "/agendamentos"},
		{http.MethodPost, "/servicos"},
		{http.MethodDelete, "/servicos/1"},
		{http.MethodPost, "/horarios/gerar-semana"},
		{http.MethodDelete, "/agendamentos/1"},
	} {
		w = doJSON(r, probe.method, probe.path, expiredString, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", probe.method, probe.path)
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	r, db := setupTestServer(t)
	slot, _ := seedScenario(t, db)
	token := seedAdminToken(t, db)

	w := doJSON(r, http.MethodDelete, "/agendamentos/999999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Slot
	require.NoError(t, db.First(&stored, slot.ID).Error)
	assert.True(t, stored.Available)
}

func TestServiceAdmin(t *testing.T) {
	r, db := setupTestServer(t)
	slot, service := seedScenario(t, db)
	token := seedAdminToken(t, db)

	// Create requires the credential.
	w := doJSON(r, http.MethodPost, "/servicos", "", gin.H{"name": "Barba", "price": "R$ 35,00"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/servicos", token, gin.H{"name": "Barba", "price": "R$ 35,00"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Barba", created.Name)

	// A referenced service cannot be deleted.
	w = doJSON(r, http.MethodPost, "/agendamentos", "", gin.H{"customerName": "Ana", "slotId": slot.ID, "serviceId": service.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodDelete, "/servicos/"+jsonID(service.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodDelete, "/servicos/"+jsonID(created.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/servicos/999999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSyncBootstrap(t *testing.T) {
	r, db := setupTestServer(t)
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	w := doJSON(r, http.MethodGet, "/sync", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var serviceCount, slotCount int64
	require.NoError(t, db.Model(&models.Service{}).Count(&serviceCount).Error)
	require.NoError(t, db.Model(&models.Slot{}).Count(&slotCount).Error)
	assert.EqualValues(t, 2, serviceCount)
	assert.EqualValues(t, 4, slotCount)

	// The seeded admin can log in, and the seed never stored cleartext.
	w = doJSON(r, http.MethodPost, "/login", "", gin.H{"email": "admin@salao.com", "password": "senha_forte_123"})
	assert.Equal(t, http.StatusOK, w.Code)

	var admin models.AdminUser
	require.NoError(t, db.First(&admin).Error)
	assert.NotEqual(t, "senha_forte_123", admin.PasswordHash)
}

func TestGenerateWeekEndpoint(t *testing.T) {
	r, db := setupTestServer(t)
	token := seedAdminToken(t, db)

	w := doJSON(r, http.MethodPost, "/horarios/gerar-semana", token, gin.H{"startDate": "2025-07-28"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Created int `json:"created"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 70, resp.Created)

	var count int64
	require.NoError(t, db.Model(&models.Slot{}).Count(&count).Error)
	assert.EqualValues(t, 70, count)

	w = doJSON(r, http.MethodPost, "/horarios/gerar-semana", token, gin.H{"startDate": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
