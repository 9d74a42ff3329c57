// internal/handlers/handlers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tienda/dispositivos-backend/internal/config"
	"github.com/tienda/dispositivos-backend/internal/database"
	"github.com/tienda/dispositivos-backend/internal/models"
	"github.com/tienda/dispositivos-backend/internal/router"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

var envSeq int64

// apiTestEnv spins up the full API against a private in-memory database.
// The seeded accounts are admin (id 1) and user (id 2).
type apiTestEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	adminToken string
	userToken  string
}

func newTestEnv(t *testing.T) *apiTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logrus.SetLevel(logrus.ErrorLevel)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&envSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.SeedInitialData(db))

	cfg := &config.Config{
		Environment: "test",
		AppName:     "dispositivosApp",
		JWT: config.JWTConfig{
			SecretKey: "test-secret-key",
			TokenTTL:  1,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:4200"},
		},
	}

	r := router.Initialize(db, cfg)

	adminToken, err := utils.GenerateJWT(1, "admin", []string{models.AuthorityAdmin, models.AuthorityUser}, 1)
	require.NoError(t, err)
	userToken, err := utils.GenerateJWT(2, "user", []string{models.AuthorityUser}, 1)
	require.NoError(t, err)

	return &apiTestEnv{
		router:     r,
		db:         db,
		adminToken: adminToken,
		userToken:  userToken,
	}
}

func (e *apiTestEnv) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(data)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
