package handler

import (
	"net/http"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/user"
)

// HandleRegisterUser registers a username and returns the new user id.
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := svc.RegisterUser(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, err, "Register user")
			return
		}

		respondJSON(w, http.StatusCreated, u)
	}
}
