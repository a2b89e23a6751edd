package post_http

import (
	"errors"
	"fmt"
	"net/http"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/delivery/http/response"
)

func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, raw := pathID(r)

	deletedPost, err := h.postService.DeletePost(r.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			response.WriteJSON(w, http.StatusRequestEntityTooLarge, response.Envelope{
				"success": false,
				"message": fmt.Sprintf("Post not found for deletion (ID: %s)", raw),
				"error":   "Post not found for deletion",
			})
			return
		}
		response.WriteJSON(w, 512, response.Envelope{
			"success": false,
			"message": "An error occurred while deleting the post",
			"error":   err.Error(),
		})
		return
	}

	response.WriteJSON(w, http.StatusResetContent, response.Envelope{
		"success":      true,
		"message":      fmt.Sprintf("Post deleted successfully! (ID: %s, Title: %s, Author: %s, Views: %d)", raw, deletedPost.Title, deletedPost.Author, deletedPost.Views),
		"deleted_post": deletedPost,
	})
}
