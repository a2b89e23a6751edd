package post_http

import (
	"net/http"

	"userpost-service/internal/delivery/http/response"
)

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		response.WriteJSON(w, http.StatusGatewayTimeout, response.Envelope{
			"success": false,
			"message": "An error occurred while retrieving posts",
			"error":   err.Error(),
		})
		return
	}

	publishedCount := 0
	for _, post := range posts {
		if post.IsPublished {
			publishedCount++
		}
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		"success":         true,
		"message":         "Posts retrieved successfully",
		"data":            posts,
		"count":           len(posts),
		"published_count": publishedCount,
	})
}
