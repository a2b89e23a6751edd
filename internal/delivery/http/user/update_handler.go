package user_http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/delivery/http/response"
	"userpost-service/internal/model"
	"userpost-service/internal/validation"
)

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, raw := pathID(r)

	var dto model.UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		// An unreadable body validates like an empty one.
		dto = model.UpdateUserDTO{}
	}

	result, err := h.userService.UpdateUser(r.Context(), id, &dto)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			response.WriteJSON(w, http.StatusGone, response.Envelope{
				"success": false,
				"message": fmt.Sprintf("User not found for update (ID: %s)", raw),
				"error":   "User not found for update",
			})
			return
		}
		var fieldErrs *validation.Error
		if errors.As(err, &fieldErrs) {
			response.WriteJSON(w, http.StatusUnprocessableEntity, response.Envelope{
				"success": false,
				"message": "Validation error during update",
				"errors":  fieldErrs.Fields,
			})
			return
		}
		response.WriteJSON(w, http.StatusLoopDetected, response.Envelope{
			"success": false,
			"message": "An error occurred while updating the user",
			"error":   err.Error(),
		})
		return
	}

	response.WriteJSON(w, http.StatusAccepted, response.Envelope{
		"success":        true,
		"message":        fmt.Sprintf("User updated successfully! (ID: %s, Old name: %s, New name: %s)", raw, result.OldName, result.User.Name),
		"data":           result.User,
		"updated_fields": result.UpdatedFields,
	})
}
