package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping() error { return s.err }

func setupSystemRouter(p Pinger) *gin.Engine {
	r := gin.New()
	public := r.Group("/api/v1")
	admin := r.Group("/api/v1/admin")
	NewSystemHandler(p, "1.2.3").RegisterRoutes(public, admin)
	return r
}

func TestSystemHandler_HealthOK(t *testing.T) {
	r := setupSystemRouter(&stubPinger{})

	rec := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSystemHandler_HealthDatabaseDown(t *testing.T) {
	r := setupSystemRouter(&stubPinger{err: errors.New("connection refused")})

	rec := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unreachable")
}

func TestSystemHandler_Info(t *testing.T) {
	r := setupSystemRouter(&stubPinger{})

	rec := doJSON(t, r, http.MethodGet, "/api/v1/system/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Version   string `json:"version"`
			GoVersion string `json:"goVersion"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp.Data.Version)
	assert.NotEmpty(t, resp.Data.GoVersion)
}
