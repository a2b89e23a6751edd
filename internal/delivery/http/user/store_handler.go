package user_http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"userpost-service/internal/delivery/http/response"
	"userpost-service/internal/model"
	"userpost-service/internal/validation"
)

func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	var dto model.CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		// An unreadable body validates like an empty one.
		dto = model.CreateUserDTO{}
	}

	createdUser, err := h.userService.CreateUser(r.Context(), &dto)
	if err != nil {
		var fieldErrs *validation.Error
		if errors.As(err, &fieldErrs) {
			response.WriteJSON(w, http.StatusUnprocessableEntity, response.Envelope{
				"success": false,
				"message": "Validation error occurred",
				"errors":  fieldErrs.Fields,
			})
			return
		}
		response.WriteJSON(w, http.StatusInsufficientStorage, response.Envelope{
			"success": false,
			"message": "An error occurred while creating the user",
			"error":   err.Error(),
		})
		return
	}

	response.WriteJSON(w, http.StatusCreated, response.Envelope{
		"success": true,
		"message": fmt.Sprintf("New user created successfully (ID: %d, Name: %s)", createdUser.ID, createdUser.Name),
		"data":    createdUser,
	})
}
