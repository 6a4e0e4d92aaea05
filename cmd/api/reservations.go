package main

import (
	"context"
	"net/http"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateReservationRequest struct {
	UserID          string `json:"userId"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	PartySize       int    `json:"partySize" validate:"gte=1"`
	Name            string `json:"name"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
}

// createReservationHandler godoc
//
//	@Summary		Book a table
//	@Description	Availability is not checked. date is YYYY-MM-DD or RFC 3339.
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateReservationRequest	true	"Reservation"
//	@Success		201		{object}	domain.Reservation
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/reservations [post]
func (app *application) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = actorID(r)
	}

	reservation, err := app.reservationService.Create(r.Context(), service.CreateReservationInput{
		UserID:          userID,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.PartySize,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, reservation); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listReservationsHandler godoc
//
//	@Summary		List all reservations
//	@Description	Owners are expanded
//	@Tags			reservations
//	@Produce		json
//	@Success		200	{array}		domain.Reservation
//	@Failure		500	{object}	map[string]string
//	@Router			/reservations [get]
func (app *application) listReservationsHandler(w http.ResponseWriter, r *http.Request) {
	reservations, err := app.reservationService.ListAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reservations); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listReservationsByUserHandler godoc
//
//	@Summary		List reservations of an account
//	@Tags			reservations
//	@Produce		json
//	@Param			userId	path		string	true	"Account ID"
//	@Success		200		{array}		domain.Reservation
//	@Failure		500		{object}	map[string]string
//	@Router			/reservations/user/{userId} [get]
func (app *application) listReservationsByUserHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, err := primitive.ObjectIDFromHex(pathParam(r, "userId"))
	if err != nil {
		if err := app.jsonRespone(w, http.StatusOK, []domain.Reservation{}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	reservations, err := app.reservationService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reservations); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listReservationsByEmailHandler godoc
//
//	@Summary		List reservations by contact email
//	@Tags			reservations
//	@Produce		json
//	@Param			email	path		string	true	"Contact email"
//	@Success		200		{array}		domain.Reservation
//	@Failure		500		{object}	map[string]string
//	@Router			/reservations/email/{email} [get]
func (app *application) listReservationsByEmailHandler(w http.ResponseWriter, r *http.Request) {
	reservations, err := app.reservationService.ListByContactEmail(r.Context(), pathParam(r, "email"))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reservations); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getReservationHandler godoc
//
//	@Summary		Get reservation
//	@Tags			reservations
//	@Produce		json
//	@Param			id	path		string	true	"Reservation ID"
//	@Success		200	{object}	domain.Reservation
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/reservations/{id} [get]
func (app *application) getReservationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	reservation, err := app.reservationService.GetOne(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reservation); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateReservationStatusHandler godoc
//
//	@Summary		Set reservation status
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Reservation ID"
//	@Param			request	body		UpdateStatusRequest	true	"pending, confirmed or cancelled"
//	@Success		200		{object}	domain.Reservation
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/reservations/{id}/status [patch]
func (app *application) updateReservationStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	var req UpdateStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reservation, err := app.reservationService.UpdateStatus(r.Context(), id, req.Status, actorID(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reservation); err != nil {
		app.internalServerError(w, r, err)
	}
}

// reservationHistoryHandler godoc
//
//	@Summary		Reservation status history
//	@Description	Recorded status changes, newest first
//	@Tags			reservations
//	@Produce		json
//	@Param			id		path		string	true	"Reservation ID"
//	@Param			limit	query		int		false	"Maximum entries (default 50)"
//	@Success		200		{array}		domain.StatusAudit
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/reservations/{id}/history [get]
func (app *application) reservationHistoryHandler(w http.ResponseWriter, r *http.Request) {
	app.historyHandler(w, r, domain.EntityReservation, func(ctx context.Context, id primitive.ObjectID) error {
		_, err := app.reservationService.GetOne(ctx, id)
		return err
	})
}
