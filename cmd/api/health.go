package main

import (
	"context"
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// healthcheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Healthcheck endpoint. Only the database decides overall health; cache and queue are optional.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// check db
	dbStatus := "ok"
	if app.storage == nil || app.storage.Ping(ctx) != nil {
		dbStatus = "error"
	}

	cacheStatus := "disabled"
	if app.redis != nil {
		cacheStatus = "ok"
		if err := app.redis.Ping(ctx).Err(); err != nil {
			cacheStatus = "error"
		}
	}

	queueStatus := "disabled"
	if app.broker != nil {
		// a broken connection surfaces on publish; assume ok while running
		queueStatus = "ok"
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Services: map[string]string{
			"database": dbStatus,
			"cache":    cacheStatus,
			"queue":    queueStatus,
		},
	}

	if dbStatus != "ok" {
		response.Status = "unhealthy"
		if err := writeJson(w, http.StatusServiceUnavailable, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
