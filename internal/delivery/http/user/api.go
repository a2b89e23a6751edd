package user_http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"userpost-service/internal/logger"
	user_service "userpost-service/internal/service/user"
)

type Handler struct {
	userService user_service.Service
	log         *logger.Logger
}

func NewHandler(userService user_service.Service, log *logger.Logger) *Handler {
	return &Handler{
		userService: userService,
		log:         log,
	}
}

func (h *Handler) Register(router *mux.Router) {
	router.HandleFunc("/users", h.Index).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", h.Show).Methods(http.MethodGet)
	router.HandleFunc("/users", h.Store).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}", h.Update).Methods(http.MethodPut)
	router.HandleFunc("/users/{id}", h.Destroy).Methods(http.MethodDelete)
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
