package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"talent_crm/internal/schema"
)

// fakeStore keeps each tab as raw rows (header first) and mimics the
// spreadsheet's range semantics: writes replace a whole row, clears blank it
// in place.
type fakeStore struct {
	sheets   map[string][][]interface{}
	failRead bool
	appends  int
	writes   int
	clears   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sheets: make(map[string][][]interface{})}
}

func (f *fakeStore) ReadSheet(ctx context.Context, sheetName, rng string) ([][]interface{}, error) {
	if f.failRead {
		return nil, errors.New("store unavailable")
	}
	return f.sheets[sheetName], nil
}

func (f *fakeStore) WriteSheet(ctx context.Context, sheetName, rng string, rows [][]interface{}) error {
	f.writes++
	index, err := rowIndexFromRange(rng)
	if err != nil {
		return err
	}
	sheet := f.sheets[sheetName]
	if index >= len(sheet) {
		return fmt.Errorf("range %s beyond sheet %s", rng, sheetName)
	}
	sheet[index] = rows[0]
	return nil
}

func (f *fakeStore) AppendSheet(ctx context.Context, sheetName string, rows [][]interface{}) error {
	f.appends++
	f.sheets[sheetName] = append(f.sheets[sheetName], rows...)
	return nil
}

func (f *fakeStore) ClearSheet(ctx context.Context, sheetName, rng string) error {
	f.clears++
	index, err := rowIndexFromRange(rng)
	if err != nil {
		return err
	}
	sheet := f.sheets[sheetName]
	if index >= len(sheet) {
		return fmt.Errorf("range %s beyond sheet %s", rng, sheetName)
	}
	cleared := make([]interface{}, len(sheet[index]))
	for i := range cleared {
		cleared[i] = ""
	}
	sheet[index] = cleared
	return nil
}

// rowIndexFromRange turns "A5:P5" into the 0-based sheet slice index 4.
func rowIndexFromRange(rng string) (int, error) {
	first := strings.SplitN(rng, ":", 2)[0]
	digits := strings.TrimLeft(first, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	row, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("bad range %q: %w", rng, err)
	}
	return row - 1, nil
}

func headerRow(s *schema.Schema) []interface{} {
	row := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		row[i] = col.Header
	}
	return row
}

// Envelope shapes for decoding handler responses.

type listEnvelope struct {
	Success bool                     `json:"success"`
	Data    []map[string]interface{} `json:"data"`
	Total   int                      `json:"total"`
}

type messageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func doRequest(t *testing.T, handler http.HandlerFunc, method string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, "/", &buf)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}
