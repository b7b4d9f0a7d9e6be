package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Kind   string            `json:"kind"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written.
//
// Example usage:
//
//	var req EquipRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Equip"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	if err := decodeBody(r, w, req, actionName); err != nil {
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondValidationError(w, err)
		return err
	}
	return nil
}

// decodeLines decodes a JSON array of line items and validates each line.
func decodeLines(r *http.Request, w http.ResponseWriter, actionName string) ([]domain.LineItem, error) {
	var req []LineItemRequest
	if err := decodeBody(r, w, &req, actionName); err != nil {
		return nil, err
	}
	if len(req) > MaxLinesPerRequest {
		respondError(w, http.StatusBadRequest, ErrMsgTooManyLines, domain.KindValidation)
		return nil, fmt.Errorf("%d lines: %w", len(req), domain.ErrInvalidInput)
	}

	lines := make([]domain.LineItem, 0, len(req))
	for i := range req {
		if err := GetValidator().ValidateStruct(&req[i]); err != nil {
			respondValidationError(w, err)
			return nil, err
		}
		lines = append(lines, domain.LineItem{ItemCode: req[i].ItemCode, Count: req[i].Count})
	}
	return lines, nil
}

func decodeBody(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest, domain.KindValidation)
		return err
	}
	return nil
}

func respondValidationError(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  ErrMsgInvalidRequestSummary,
		Kind:   string(domain.KindValidation),
		Fields: FormatValidationError(err),
	})
}

// requireIdentity returns the caller's user id from the gateway header.
// If ok is false the response has already been written.
func requireIdentity(w http.ResponseWriter, r *http.Request) (string, *http.Request, bool) {
	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingIdentity, "")
		return "", r, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIdentity, domain.KindValidation)
		return "", r, false
	}
	userID := id.String()
	return userID, r.WithContext(logger.WithUserID(r.Context(), userID)), true
}

// optionalIdentity returns the caller's user id, or "" for anonymous or
// malformed identities.
func optionalIdentity(r *http.Request) string {
	id, err := uuid.Parse(r.Header.Get(HeaderUserID))
	if err != nil {
		return ""
	}
	return id.String()
}

func pathCharacterID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, ParamCharacterID), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID, domain.KindValidation)
		return 0, false
	}
	return id, true
}

func pathItemCode(w http.ResponseWriter, r *http.Request) (int, bool) {
	code, err := strconv.Atoi(chi.URLParam(r, ParamItemCode))
	if err != nil || !domain.ValidItemCode(code) {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemCode, domain.KindValidation)
		return 0, false
	}
	return code, true
}
