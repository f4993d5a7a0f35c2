// Package handlers implements the creators / accounts / deals resources on
// top of the spreadsheet record store. Every update and delete is a
// read-locate-write sequence against the remote sheet; it is not atomic, and
// two concurrent writes to the same row can race.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"talent_crm/internal/middleware"
	"talent_crm/internal/models"
	"talent_crm/internal/schema"
)

// Store is the record-store contract the handlers depend on. The production
// implementation is sheets.Store; tests substitute an in-memory fake.
type Store interface {
	ReadSheet(ctx context.Context, sheetName, rng string) ([][]interface{}, error)
	WriteSheet(ctx context.Context, sheetName, rng string, rows [][]interface{}) error
	AppendSheet(ctx context.Context, sheetName string, rows [][]interface{}) error
	ClearSheet(ctx context.Context, sheetName, rng string) error
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	middleware.JSONResponse(w, statusCode, models.ErrorResponse{Success: false, Error: message})
}

func respondMessage(w http.ResponseWriter, message string) {
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Success: true, Message: message})
}

func respondList(w http.ResponseWriter, records []schema.Record) {
	middleware.JSONResponse(w, http.StatusOK, models.ListResponse{
		Success: true,
		Data:    records,
		Total:   len(records),
	})
}

// stringField reads a payload field as a trimmed string, with missing and nil
// both mapping to empty.
func stringField(rec schema.Record, field string) string {
	v, ok := rec[field]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(schema.CellString(v))
}

// findRow scans the data rows (everything after the header) and returns the
// 0-based data index of the first match, or -1. The caller turns that index
// into a sheet row via Schema.RowRange.
func findRow(rows [][]interface{}, match func(row []interface{}) bool) int {
	if len(rows) < 2 {
		return -1
	}
	for i, row := range rows[1:] {
		if match(row) {
			return i
		}
	}
	return -1
}

func cellEquals(row []interface{}, index int, want string) bool {
	if index >= len(row) {
		return false
	}
	return strings.TrimSpace(schema.CellString(row[index])) == want
}
