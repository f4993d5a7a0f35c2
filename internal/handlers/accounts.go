package handlers

import (
	"net/http"

	"talent_crm/internal/middleware"
	"talent_crm/internal/models"
	"talent_crm/internal/schema"

	"github.com/rs/zerolog/log"
)

type AccountHandler struct {
	store Store
}

func NewAccountHandler(store Store) *AccountHandler {
	return &AccountHandler{store: store}
}

// List handles GET /accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ReadSheet(r.Context(), schema.Accounts.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read accounts sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondList(w, schema.Accounts.DecodeRows(rows))
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body schema.Record
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	creatorID := stringField(body, "creatorId")
	platform := stringField(body, "platform")
	if creatorID == "" {
		respondError(w, http.StatusBadRequest, "Creator ID is required")
		return
	}
	if platform == "" {
		respondError(w, http.StatusBadRequest, "Platform is required")
		return
	}

	row := schema.Accounts.Encode(body)
	if err := h.store.AppendSheet(r.Context(), schema.Accounts.Sheet, [][]interface{}{row}); err != nil {
		log.Error().Err(err).Msg("Failed to append account")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().
		Str("creator_id", creatorID).
		Str("platform", platform).
		Msg("Account created")
	respondMessage(w, "Account created successfully")
}

// Update handles PUT /accounts. The account is addressed by the composite key
// "{creatorId}-{platform}", decoded on the first hyphen.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAccountRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.AccountID == "" {
		respondError(w, http.StatusBadRequest, "Account ID is required")
		return
	}

	creatorID, platform, ok := schema.SplitAccountKey(req.AccountID)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	rows, err := h.store.ReadSheet(r.Context(), schema.Accounts.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read accounts sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	index := findRow(rows, func(row []interface{}) bool {
		return cellEquals(row, 0, creatorID) && cellEquals(row, 1, platform)
	})
	if index < 0 {
		respondError(w, http.StatusInternalServerError, "Account not found")
		return
	}

	updated := req.UpdatedData
	if updated == nil {
		updated = schema.Record{}
	}
	updated["creatorId"] = creatorID
	updated["platform"] = platform

	row := schema.Accounts.Encode(updated)
	rng := schema.Accounts.RowRange(index)
	if err := h.store.WriteSheet(r.Context(), schema.Accounts.Sheet, rng, [][]interface{}{row}); err != nil {
		log.Error().Err(err).Str("range", rng).Msg("Failed to write account row")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("account_id", req.AccountID).Str("range", rng).Msg("Account updated")
	respondMessage(w, "Account updated successfully")
}

// Delete handles DELETE /accounts.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteAccountRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.AccountID == "" {
		respondError(w, http.StatusBadRequest, "Account ID is required")
		return
	}

	creatorID, platform, ok := schema.SplitAccountKey(req.AccountID)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	rows, err := h.store.ReadSheet(r.Context(), schema.Accounts.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read accounts sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	index := findRow(rows, func(row []interface{}) bool {
		return cellEquals(row, 0, creatorID) && cellEquals(row, 1, platform)
	})
	if index < 0 {
		respondError(w, http.StatusInternalServerError, "Account not found")
		return
	}

	rng := schema.Accounts.RowRange(index)
	if err := h.store.ClearSheet(r.Context(), schema.Accounts.Sheet, rng); err != nil {
		log.Error().Err(err).Str("range", rng).Msg("Failed to clear account row")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("account_id", req.AccountID).Str("range", rng).Msg("Account deleted")
	respondMessage(w, "Account deleted successfully")
}
