package handlers

import (
	"net/http"

	"talent_crm/internal/middleware"
	"talent_crm/internal/models"
	"talent_crm/internal/schema"

	"github.com/rs/zerolog/log"
)

type CreatorHandler struct {
	store Store
}

func NewCreatorHandler(store Store) *CreatorHandler {
	return &CreatorHandler{store: store}
}

// List handles GET /creators.
func (h *CreatorHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ReadSheet(r.Context(), schema.Creators.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read creators sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondList(w, schema.Creators.DecodeRows(rows))
}

// Create handles POST /creators.
func (h *CreatorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body schema.Record
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if stringField(body, "id") == "" {
		respondError(w, http.StatusBadRequest, "Creator ID is required")
		return
	}

	row := schema.Creators.Encode(body)
	if err := h.store.AppendSheet(r.Context(), schema.Creators.Sheet, [][]interface{}{row}); err != nil {
		log.Error().Err(err).Msg("Failed to append creator")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("creator_id", stringField(body, "id")).Msg("Creator created")
	respondMessage(w, "Creator created successfully")
}

// Update handles PUT /creators. The whole sheet is re-read to locate the row
// by its ID in column A, then the full row is rebuilt and written back.
func (h *CreatorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCreatorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "Creator ID is required")
		return
	}

	rows, err := h.store.ReadSheet(r.Context(), schema.Creators.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read creators sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	index := findRow(rows, func(row []interface{}) bool {
		return cellEquals(row, 0, req.ID)
	})
	if index < 0 {
		respondError(w, http.StatusInternalServerError, "Creator not found")
		return
	}

	updated := req.UpdatedData
	if updated == nil {
		updated = schema.Record{}
	}
	updated["id"] = req.ID

	row := schema.Creators.Encode(updated)
	rng := schema.Creators.RowRange(index)
	if err := h.store.WriteSheet(r.Context(), schema.Creators.Sheet, rng, [][]interface{}{row}); err != nil {
		log.Error().Err(err).Str("range", rng).Msg("Failed to write creator row")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("creator_id", req.ID).Str("range", rng).Msg("Creator updated")
	respondMessage(w, "Creator updated successfully")
}

// Delete handles DELETE /creators. The matched row's cells are cleared, not
// removed; the blank row fails the identity filter on the next read.
func (h *CreatorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteCreatorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "Creator ID is required")
		return
	}

	rows, err := h.store.ReadSheet(r.Context(), schema.Creators.Sheet, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read creators sheet")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	index := findRow(rows, func(row []interface{}) bool {
		return cellEquals(row, 0, req.ID)
	})
	if index < 0 {
		respondError(w, http.StatusInternalServerError, "Creator not found")
		return
	}

	rng := schema.Creators.RowRange(index)
	if err := h.store.ClearSheet(r.Context(), schema.Creators.Sheet, rng); err != nil {
		log.Error().Err(err).Str("range", rng).Msg("Failed to clear creator row")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info().Str("creator_id", req.ID).Str("range", rng).Msg("Creator deleted")
	respondMessage(w, "Creator deleted successfully")
}
