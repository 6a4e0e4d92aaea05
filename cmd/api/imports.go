package main

import (
	"net/http"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
)

type CreateMenuImportRequest struct {
	SpreadsheetID string `json:"spreadsheetId" validate:"required"`
}

type CreateMenuImportResponse struct {
	TaskID string                  `json:"taskId"`
	Status domain.ImportTaskStatus `json:"status"`
}

// createMenuImportHandler godoc
//
//	@Summary		Import menu items from Google Sheets
//	@Description	Queues an import of the sheet columns name, description, price, category, image_url
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuImportRequest	true	"Spreadsheet"
//	@Success		201		{object}	CreateMenuImportResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu-imports [post]
func (app *application) createMenuImportHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuImportRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	taskID, err := app.importService.CreateImportTask(r.Context(), req.SpreadsheetID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	response := CreateMenuImportResponse{
		TaskID: taskID.Hex(),
		Status: domain.ImportQueued,
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuImportHandler godoc
//
//	@Summary		Get menu import task
//	@Tags			menu
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.ImportTask
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu-imports/{task_id} [get]
func (app *application) getMenuImportHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := objectIDParam(r, "task_id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	task, err := app.importService.GetTask(r.Context(), taskID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
