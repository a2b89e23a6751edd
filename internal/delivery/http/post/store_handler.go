package post_http

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
	var dto model.CreatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		// An unreadable body validates like an empty one.
		dto = model.CreatePostDTO{}
	}

	result, err := h.postService.CreatePost(r.Context(), &dto)
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
		response.WriteJSON(w, http.StatusNotExtended, response.Envelope{
			"success": false,
			"message": "An error occurred while creating the post",
			"error":   err.Error(),
		})
		return
	}

	response.WriteJSON(w, http.StatusCreated, response.Envelope{
		"success": true,
		"message": fmt.Sprintf("New post created successfully! (ID: %d, Title: %s, Author: %s)", result.Post.ID, result.Post.Title, result.AuthorName),
		"data":    result.Post,
	})
}
