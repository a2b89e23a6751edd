package post_http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"userpost-service/internal/logger"
	post_service "userpost-service/internal/service/post"
)

type Handler struct {
	postService post_service.Service
	log         *logger.Logger
}

func NewHandler(postService post_service.Service, log *logger.Logger) *Handler {
	return &Handler{
		postService: postService,
		log:         log,
	}
}

func (h *Handler) Register(router *mux.Router) {
	router.HandleFunc("/posts", h.Index).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", h.Show).Methods(http.MethodGet)
	router.HandleFunc("/posts", h.Store).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}", h.Update).Methods(http.MethodPut)
	router.HandleFunc("/posts/{id}", h.Destroy).Methods(http.MethodDelete)
}

// pathID parses the {id} route variable. A non-numeric value yields id 0,
// which no row carries, so the lookup falls through to not-found.
func pathID(r *http.Request) (int64, string) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, raw
	}
	return id, raw
}
