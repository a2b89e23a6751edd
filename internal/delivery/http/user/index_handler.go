package user_http

import (
	"net/http"

	"userpost-service/internal/delivery/http/response"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		response.WriteJSON(w, http.StatusServiceUnavailable, response.Envelope{
			"success": false,
			"message": "An error occurred while retrieving users",
			"error":   err.Error(),
		})
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		"success": true,
		"message": "Users retrieved successfully",
		"data":    users,
		"count":   len(users),
	})
}
