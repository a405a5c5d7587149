package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/database"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/models"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/services"
)

func setupStatusRouter(db *sqlx.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ledger := services.NewLedgerService(
		database.NewIntervalRepository(db),
		database.NewStatusRepository(db),
		testLogger(),
	)
	handler := NewStatusHandler(ledger, testLogger())

	router := gin.New()
	router.GET("/api/agent-status", handler.GetAgentStatus)
	router.GET("/api/employee-status", handler.GetEmployeeStatus)
	router.GET("/api/single-employee", handler.GetSingleEmployee)
	router.GET("/api/generate-report", handler.GenerateReport)
	return router
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetAgentStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		router := setupStatusRouter(db)

		mock.ExpectQuery(`SELECT e.employee_id`).
			WillReturnRows(sqlmock.NewRows([]string{
				"employee_id", "name", "status_name", "color_code",
				"duration", "start_date", "team",
			}).
				AddRow(int64(1), "John Doe", "Available", "#00FF00", int64(120), "2026-08-29", "Support").
				AddRow(int64(2), "Jane Smith", "Offline", "#808080", int64(3600), "2026-08-29", "Sales"))

		w := getJSON(router, "/api/agent-status")
		assert.Equal(t, http.StatusOK, w.Code)

		var entries []models.AgentStatusEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "Available", entries[0].StatusName)
		assert.Equal(t, "#808080", entries[1].ColorCode)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		router := setupStatusRouter(db)

		mock.ExpectQuery(`SELECT e.employee_id`).
			WillReturnError(fmt.Errorf("database error"))

		w := getJSON(router, "/api/agent-status")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		// Generic body, no driver details
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotContains(t, response.Message, "database error")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetEmployeeStatus(t *testing.T) {
	db, mock := setupTestDB(t)
	router := setupStatusRouter(db)

	start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`ORDER BY a.employee_id, a.start_time ASC`).
		WithArgs("2026-08-29").
		WillReturnRows(sqlmock.NewRows([]string{
			"employee_id", "name", "team", "status_name", "start_time", "end_time", "duration",
		}).
			AddRow(int64(1), "John Doe", "Support", "Available", start, nil, nil))

	w := getJSON(router, "/api/employee-status?date=2026-08-29")
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []models.DailyStatusEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.False(t, entries[0].EndTime.Valid)
	assert.False(t, entries[0].Duration.Valid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSingleEmployee(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		router := setupStatusRouter(db)

		start := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`ORDER BY a.start_time DESC`).
			WithArgs("2026-08-29", "john@empireonegroup.com").
			WillReturnRows(sqlmock.NewRows([]string{
				"employee_id", "name", "team", "status_name", "start_time", "end_time", "email", "duration",
			}).
				AddRow(int64(1), "John Doe", "Support", "Available", start, start.Add(time.Hour), "john@empireonegroup.com", int64(3600)))

		w := getJSON(router, "/api/single-employee?date=2026-08-29&email=john@empireonegroup.com")
		assert.Equal(t, http.StatusOK, w.Code)

		var entries []models.DailyStatusEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "john@empireonegroup.com", entries[0].Email)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Email", func(t *testing.T) {
		db, _ := setupTestDB(t)
		router := setupStatusRouter(db)

		w := getJSON(router, "/api/single-employee?date=2026-08-29")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenerateReport(t *testing.T) {
	columns := []string{
		"employee_id", "name", "status_name", "color_code", "team",
		"start_time", "end_time", "duration", "date",
	}

	t.Run("Filtered By Team", func(t *testing.T) {
		db, mock := setupTestDB(t)
		router := setupStatusRouter(db)

		mock.ExpectQuery(`AND e.team`).
			WithArgs("2026-08-29", "Sales").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(2), "Jane Smith", "Lunch", "#FFA500", "Sales",
					"12:00:00", "12:30:00", int64(1800), "2026-08-29"))

		w := getJSON(router, "/api/generate-report?team=Sales&date=2026-08-29")
		assert.Equal(t, http.StatusOK, w.Code)

		var entries []models.ReportEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "12:00:00", entries[0].StartTime)
		assert.Equal(t, int64(1800), entries[0].Duration)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("All Teams", func(t *testing.T) {
		db, mock := setupTestDB(t)
		router := setupStatusRouter(db)

		mock.ExpectQuery(`end_time IS NOT NULL`).
			WithArgs("2026-08-29").
			WillReturnRows(sqlmock.NewRows(columns))

		w := getJSON(router, "/api/generate-report?date=2026-08-29")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
