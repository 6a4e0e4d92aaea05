package main

import (
	"net/http"
)

type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// seedHandler godoc
//
//	@Summary		Reseed the catalog
//	@Description	Deletes every menu item and inserts the sample menu. Staff or admin only.
//	@Tags			ops
//	@Produce		json
//	@Success		201	{object}	SeedResponse
//	@Failure		401	{object}	map[string]string
//	@Failure		403	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/seed [post]
func (app *application) seedHandler(w http.ResponseWriter, r *http.Request) {
	count, err := app.catalogService.Seed(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Warnw("catalog reseeded over http", "actor_id", actorID(r), "count", count)

	if err := app.jsonRespone(w, http.StatusCreated, SeedResponse{Message: "Database seeded successfully", Count: count}); err != nil {
		app.internalServerError(w, r, err)
	}
}
