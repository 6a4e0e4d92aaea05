package main

import (
	"net/http"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
)

type CreateMenuItemRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"imageURL"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageURL"`
}

func (req UpdateMenuItemRequest) toUpdate() domain.MenuItemUpdate {
	update := domain.MenuItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		update.Category = &c
	}
	return update
}

type MessageResponse struct {
	Message string `json:"message"`
}

// listMenuItemsHandler godoc
//
//	@Summary		List menu items
//	@Description	Returns the whole catalog, newest first
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}		domain.MenuItem
//	@Failure		500	{object}	map[string]string
//	@Router			/menu-items [get]
func (app *application) listMenuItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.catalogService.ListAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listMenuItemsByCategoryHandler godoc
//
//	@Summary		List menu items by category
//	@Description	Unknown categories yield an empty list
//	@Tags			menu
//	@Produce		json
//	@Param			category	path		string	true	"Category"
//	@Success		200			{array}		domain.MenuItem
//	@Failure		500			{object}	map[string]string
//	@Router			/menu-items/category/{category} [get]
func (app *application) listMenuItemsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.catalogService.ListByCategory(r.Context(), pathParam(r, "category"))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuItemHandler godoc
//
//	@Summary		Get menu item
//	@Tags			menu
//	@Produce		json
//	@Param			id	path		string	true	"Menu item ID"
//	@Success		200	{object}	domain.MenuItem
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/menu-items/{id} [get]
func (app *application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	item, err := app.catalogService.GetOne(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuItemRequest	true	"Menu item"
//	@Success		201		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu-items [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.catalogService.Create(r.Context(), &domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    domain.Category(req.Category),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary		Update menu item
//	@Description	Replaces the supplied fields; omitted fields keep their value
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Menu item ID"
//	@Param			request	body		UpdateMenuItemRequest	true	"Fields to change"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu-items/{id} [put]
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	var req UpdateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.catalogService.Update(r.Context(), id, req.toUpdate())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary		Delete menu item
//	@Tags			menu
//	@Produce		json
//	@Param			id	path		string	true	"Menu item ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/menu-items/{id} [delete]
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.catalogService.Delete(r.Context(), id); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, MessageResponse{Message: "Menu item deleted successfully"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
