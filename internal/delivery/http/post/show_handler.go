package post_http

import (
	"errors"
	"fmt"
	"net/http"

	"userpost-service/internal/custom_errors"
	"userpost-service/internal/delivery/http/response"
)

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, raw := pathID(r)

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			response.WriteJSON(w, http.StatusLengthRequired, response.Envelope{
				"success": false,
				"message": fmt.Sprintf("Post not found with the given ID: %s", raw),
				"error":   "Post not found",
			})
			return
		}
		response.WriteJSON(w, http.StatusHTTPVersionNotSupported, response.Envelope{
			"success": false,
			"message": "An error occurred while retrieving the post",
			"error":   err.Error(),
		})
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		"success": true,
		"message": fmt.Sprintf("Post retrieved successfully (ID: %s, Title: %s)", raw, post.Title),
		"data":    post,
	})
}
