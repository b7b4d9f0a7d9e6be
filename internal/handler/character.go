package handler

import (
	"net/http"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/character"
)

// HandleCreateCharacter creates a character owned by the caller.
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}

		c, err := svc.CreateCharacter(r.Context(), userID, req.Name)
		if err != nil {
			respondServiceError(w, r, err, "Create character")
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgCharacterCreated,
			Data:    CharacterCreatedResponse{CharacterID: c.ID},
		})
	}
}

// HandleGetCharacter returns the owner view to the owner and the public
// view to everyone else.
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathCharacterID(w, r)
		if !ok {
			return
		}

		view, err := svc.GetCharacter(r.Context(), id, optionalIdentity(r))
		if err != nil {
			respondServiceError(w, r, err, "Get character")
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleDeleteCharacter deletes an owned character.
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		id, ok := pathCharacterID(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteCharacter(r.Context(), id, userID); err != nil {
			respondServiceError(w, r, err, "Delete character")
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleted})
	}
}
