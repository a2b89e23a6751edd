package user_http

import (
	"errors"
	"fmt"
	"net/http"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/delivery/http/response"
)

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, raw := pathID(r)

	user, err := h.userService.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			response.WriteJSON(w, http.StatusGone, response.Envelope{
				"success": false,
				"message": fmt.Sprintf("User not found with the given ID: %s", raw),
				"error":   "User not found",
			})
			return
		}
		response.WriteJSON(w, http.StatusBadGateway, response.Envelope{
			"success": false,
			"message": "An error occurred while retrieving the user",
			"error":   err.Error(),
		})
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		"success": true,
		"message": fmt.Sprintf("User retrieved successfully (ID: %s)", raw),
		"data":    user,
	})
}
