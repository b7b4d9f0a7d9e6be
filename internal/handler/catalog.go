package handler

import (
	"net/http"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/catalog"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

// HandleListItems lists every catalog item (code, name, price).
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "List items")
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem returns one item with its stats.
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := pathItemCode(w, r)
		if !ok {
			return
		}

		item, err := svc.GetItem(r.Context(), code)
		if err != nil {
			respondServiceError(w, r, err, "Get item")
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleCreateItem adds an item definition to the catalog.
func HandleCreateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		stats, err := domain.StatsFromMap(req.ItemStat)
		if err != nil {
			respondServiceError(w, r, err, "Create item")
			return
		}

		item, err := svc.CreateItem(r.Context(), domain.Item{
			Code:  req.ItemCode,
			Name:  req.ItemName,
			Stats: stats,
			Price: *req.ItemPrice,
		})
		if err != nil {
			respondServiceError(w, r, err, "Create item")
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemCreated, Data: item})
	}
}

// HandleUpdateItem changes an item's name and/or stats.
func HandleUpdateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := pathItemCode(w, r)
		if !ok {
			return
		}
		var req UpdateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
			return
		}

		upd := domain.ItemUpdate{Name: req.ItemName, Price: req.ItemPrice}
		if req.ItemStat != nil {
			stats, err := domain.StatsFromMap(req.ItemStat)
			if err != nil {
				respondServiceError(w, r, err, "Update item")
				return
			}
			upd.Stats = &stats
		}

		item, err := svc.UpdateItem(r.Context(), code, upd)
		if err != nil {
			respondServiceError(w, r, err, "Update item")
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}
