package user_http

import (
	"errors"
	"fmt"
	"net/http"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/delivery/http/response"
)

func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, raw := pathID(r)

	deletedUser, err := h.userService.DeleteUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			response.WriteJSON(w, http.StatusGone, response.Envelope{
				"success": false,
				"message": fmt.Sprintf("User not found for deletion (ID: %s)", raw),
				"error":   "User not found for deletion",
			})
			return
		}
		response.WriteJSON(w, 509, response.Envelope{
			"success": false,
			"message": "An error occurred while deleting the user",
			"error":   err.Error(),
		})
		return
	}

	response.WriteJSON(w, http.StatusNoContent, response.Envelope{
		"success":      true,
		"message":      fmt.Sprintf("User deleted successfully! (ID: %s, Name: %s, Deleted posts: %d)", raw, deletedUser.Name, deletedUser.DeletedPostsCount),
		"deleted_user": deletedUser,
	})
}
