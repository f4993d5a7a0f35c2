package handlers

import (
	"context"
	"math"
	"net/http"

	"talent_crm/internal/middleware"
	"talent_crm/internal/models"
	"talent_crm/internal/notifications"
	"talent_crm/internal/schema"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type DealHandler struct {
	store    Store
	notifier *notifications.Client
}

func NewDealHandler(store Store, notifier *notifications.Client) *DealHandler {
	return &DealHandler{store: store, notifier: notifier}
}

// List handles GET /deals.
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ReadSheet(r.Context(), schema.Deals.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read deals sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondList(w, schema.Deals.DecodeRows(rows))
}

// Create handles POST /deals. The amount must be present and numeric; zero is
// a valid amount. A missing dealId is generated server-side.
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body schema.Record
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	creatorID := stringField(body, "creatorId")
	partner := stringField(body, "partner")
	if creatorID == "" {
		respondError(w, http.StatusBadRequest, "Creator ID is required")
		return
	}
	if partner == "" {
		respondError(w, http.StatusBadRequest, "Partner is required")
		return
	}

	amount, ok := numericAmount(body)
	if !ok {
		respondError(w, http.StatusBadRequest, "Valid amount is required")
		return
	}

	dealID := stringField(body, "dealId")
	if dealID == "" {
		dealID = uuid.NewString()
		body["dealId"] = dealID
	}

	row := schema.Deals.Encode(body)
	if err := h.store.AppendSheet(r.Context(), schema.Deals.Sheet, [][]interface{}{row}); err != nil {
		log.Error().Err(err).Msg("Failed to append deal")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().
		Str("deal_id", dealID).
		Str("creator_id", creatorID).
		Str("partner", partner).
		Float64("amount", amount).
		Msg("Deal created")

	if h.notifier != nil {
		h.notifier.NotifyDealCreated(context.WithoutCancel(r.Context()), dealID, creatorID, partner, amount)
	}

	respondMessage(w, "Deal created successfully")
}

// Update handles PUT /deals.
func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateDealRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.DealID == "" {
		respondError(w, http.StatusBadRequest, "Deal ID is required")
		return
	}

	rows, err := h.store.ReadSheet(r.Context(), schema.Deals.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read deals sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	index := findRow(rows, func(row []interface{}) bool {
		return cellEquals(row, 0, req.DealID)
	})
	if index < 0 {
		respondError(w, http.StatusInternalServerError, "Deal not found")
		return
	}

	updated := req.UpdatedData
	if updated == nil {
		updated = schema.Record{}
	}
	updated["dealId"] = req.DealID

	row := schema.Deals.Encode(updated)
	rng := schema.Deals.RowRange(index)
	if err := h.store.WriteSheet(r.Context(), schema.Deals.Sheet, rng, [][]interface{}{row}); err != nil {
		log.Error().Err(err).Str("range", rng).Msg("Failed to write deal row")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("deal_id", req.DealID).Str("range", rng).Msg("Deal updated")
	respondMessage(w, "Deal updated successfully")
}

// Delete handles DELETE /deals.
func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteDealRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.DealID == "" {
		respondError(w, http.StatusBadRequest, "Deal ID is required")
		return
	}

	rows, err := h.store.ReadSheet(r.Context(), schema.Deals.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read deals sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	index := findRow(rows, func(row []interface{}) bool {
		return cellEquals(row, 0, req.DealID)
	})
	if index < 0 {
		respondError(w, http.StatusInternalServerError, "Deal not found")
		return
	}

	rng := schema.Deals.RowRange(index)
	if err := h.store.ClearSheet(r.Context(), schema.Deals.Sheet, rng); err != nil {
		log.Error().Err(err).Str("range", rng).Msg("Failed to clear deal row")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("deal_id", req.DealID).Str("range", rng).Msg("Deal deleted")
	respondMessage(w, "Deal deleted successfully")
}

// numericAmount checks that the payload carries a present, numeric, non-NaN
// amount. Zero passes; missing, null, and non-numeric values do not.
func numericAmount(rec schema.Record) (float64, bool) {
	v, ok := rec["amount"]
	if !ok || v == nil {
		return 0, false
	}
	f, isNum := v.(float64)
	if !isNum || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
