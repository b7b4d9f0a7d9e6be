package handler

import (
	"context"
	"net/http"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/economy"
)

// HandlePurchase buys a list of [{item_code, count}] for the character.
func HandlePurchase(svc economy.Service) http.HandlerFunc {
	return handleLines("Purchase", MsgItemsPurchased, svc.Purchase)
}

// HandleSell sells a list of [{item_code, count}] from the character's inventory.
func HandleSell(svc economy.Service) http.HandlerFunc {
	return handleLines("Sell", MsgItemsSold, svc.Sell)
}

type linesFunc func(ctx context.Context, characterID int64, userID string, lines []domain.LineItem) (*domain.BalanceResult, error)

func handleLines(action, msg string, fn linesFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		id, ok := pathCharacterID(w, r)
		if !ok {
			return
		}
		lines, err := decodeLines(r, w, action)
		if err != nil {
			return
		}

		res, err := fn(r.Context(), id, userID, lines)
		if err != nil {
			respondServiceError(w, r, err, action)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: msg, Data: res})
	}
}

// HandleEquip equips one unit of item_code.
func HandleEquip(svc economy.Service) http.HandlerFunc {
	return handleEquip("Equip", MsgItemEquipped, svc.Equip)
}

// HandleUnequip returns an equipped item to the inventory.
func HandleUnequip(svc economy.Service) http.HandlerFunc {
	return handleEquip("Unequip", MsgItemUnequipped, svc.Unequip)
}

type equipFunc func(ctx context.Context, characterID int64, userID string, itemCode int) (*domain.StatsResult, error)

func handleEquip(action, msg string, fn equipFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		id, ok := pathCharacterID(w, r)
		if !ok {
			return
		}
		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
			return
		}

		res, err := fn(r.Context(), id, userID, req.ItemCode)
		if err != nil {
			respondServiceError(w, r, err, action)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: msg, Data: res})
	}
}

// HandleEarnMoney credits the passive income amount.
func HandleEarnMoney(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		id, ok := pathCharacterID(w, r)
		if !ok {
			return
		}

		res, err := svc.EarnIncome(r.Context(), id, userID)
		if err != nil {
			respondServiceError(w, r, err, "Earn money")
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgMoneyEarned, Data: res})
	}
}

// HandleGetInventory lists the character's unequipped stacks. Owner only.
func HandleGetInventory(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, r, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		id, ok := pathCharacterID(w, r)
		if !ok {
			return
		}

		entries, err := svc.ListInventory(r.Context(), id, userID)
		if err != nil {
			respondServiceError(w, r, err, "List inventory")
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleGetEquipped lists the character's equipped items.
func HandleGetEquipped(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathCharacterID(w, r)
		if !ok {
			return
		}

		items, err := svc.ListEquipped(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err, "List equipped items")
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}
