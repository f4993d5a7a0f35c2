package handlers

import (
	"net/http"
	"strings"
	"testing"

	"talent_crm/internal/models"
	"talent_crm/internal/schema"
)

func seedAccounts(store *fakeStore, dataRows ...[]interface{}) {
	rows := [][]interface{}{headerRow(&schema.Accounts)}
	rows = append(rows, dataRows...)
	store.sheets[schema.Accounts.Sheet] = rows
}

func TestAccountListParsesHumanEnteredNumbers(t *testing.T) {
	store := newFakeStore()
	seedAccounts(store,
		[]interface{}{"A1", "tiktok", "https://example.com/a1", "12,345", "¥1,200.50", "2026-08-01"},
	)
	handler := NewAccountHandler(store)

	rec := doRequest(t, handler.List, http.MethodGet, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp listEnvelope
	decodeResponse(t, rec, &resp)

	if resp.Total != 1 {
		t.Fatalf("Expected 1 account, got %d", resp.Total)
	}
	acct := resp.Data[0]
	if acct["followers"] != float64(12345) {
		t.Errorf("Expected followers 12345, got %v", acct["followers"])
	}
	if acct["price"] != 1200.50 {
		t.Errorf("Expected price 1200.50, got %v", acct["price"])
	}
}

func TestAccountListFiltersBlankCompositeKey(t *testing.T) {
	store := newFakeStore()
	seedAccounts(store,
		[]interface{}{"A1", "tiktok"},
		[]interface{}{"", "tiktok"},
		[]interface{}{"A2", ""},
	)
	handler := NewAccountHandler(store)

	rec := doRequest(t, handler.List, http.MethodGet, nil)

	var resp listEnvelope
	decodeResponse(t, rec, &resp)
	if resp.Total != 1 {
		t.Errorf("Expected 1 account after filtering, got %d", resp.Total)
	}
}

func TestAccountCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    schema.Record
		wantErr string
	}{
		{
			name:    "missing creatorId",
			body:    schema.Record{"platform": "tiktok"},
			wantErr: "Creator ID is required",
		},
		{
			name:    "missing platform",
			body:    schema.Record{"creatorId": "A1"},
			wantErr: "Platform is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			seedAccounts(store)
			handler := NewAccountHandler(store)

			rec := doRequest(t, handler.Create, http.MethodPost, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rec.Code)
			}

			var resp errorEnvelope
			decodeResponse(t, rec, &resp)
			if resp.Error != tt.wantErr {
				t.Errorf("Expected error %q, got %q", tt.wantErr, resp.Error)
			}
		})
	}
}

func TestAccountCreateAppendsFixedOrderRow(t *testing.T) {
	store := newFakeStore()
	seedAccounts(store)
	handler := NewAccountHandler(store)

	rec := doRequest(t, handler.Create, http.MethodPost, schema.Record{
		"creatorId": "A1",
		"platform":  "tiktok",
		"followers": 5000,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	row := store.sheets[schema.Accounts.Sheet][1]
	if len(row) != 6 {
		t.Fatalf("Expected 6 columns, got %d", len(row))
	}
	if row[0] != "A1" || row[1] != "tiktok" {
		t.Errorf("Key columns misplaced: %v", row)
	}
	if row[2] != "" {
		t.Errorf("Expected empty link default, got %v", row[2])
	}
}

func TestAccountUpdateByCompositeKey(t *testing.T) {
	store := newFakeStore()
	seedAccounts(store,
		[]interface{}{"A1", "tiktok", "https://old.example.com", "100", "50", "2026-01-01"},
	)
	handler := NewAccountHandler(store)

	rec := doRequest(t, handler.Update, http.MethodPut, models.UpdateAccountRequest{
		AccountID: schema.AccountKey("A1", "tiktok"),
		UpdatedData: schema.Record{
			"link":      "https://new.example.com",
			"followers": 200,
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	row := store.sheets[schema.Accounts.Sheet][1]
	// The decoded key must be written back even when updatedData omits it
	if row[0] != "A1" || row[1] != "tiktok" {
		t.Errorf("Composite key not preserved: %v", row)
	}
	if row[2] != "https://new.example.com" {
		t.Errorf("Expected updated link, got %v", row[2])
	}
}

func TestAccountUpdateUnknownID(t *testing.T) {
	store := newFakeStore()
	seedAccounts(store, []interface{}{"A1", "tiktok"})
	handler := NewAccountHandler(store)

	rec := doRequest(t, handler.Update, http.MethodPut, models.UpdateAccountRequest{
		AccountID:   "A9-weibo",
		UpdatedData: schema.Record{"link": "x"},
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}

	var resp errorEnvelope
	decodeResponse(t, rec, &resp)
	if !strings.Contains(resp.Error, "not found") {
		t.Errorf("Expected message containing 'not found', got %q", resp.Error)
	}
}

func TestAccountUpdateRequiresID(t *testing.T) {
	store := newFakeStore()
	handler := NewAccountHandler(store)

	rec := doRequest(t, handler.Update, http.MethodPut, models.UpdateAccountRequest{
		UpdatedData: schema.Record{"link": "x"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestAccountDeleteClearsRow(t *testing.T) {
	store := newFakeStore()
	seedAccounts(store,
		[]interface{}{"A1", "tiktok"},
		[]interface{}{"A1", "weibo"},
	)
	handler := NewAccountHandler(store)

	rec := doRequest(t, handler.Delete, http.MethodDelete, models.DeleteAccountRequest{
		AccountID: "A1-tiktok",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	listRec := doRequest(t, handler.List, http.MethodGet, nil)
	var resp listEnvelope
	decodeResponse(t, listRec, &resp)

	if resp.Total != 1 {
		t.Fatalf("Expected 1 account after delete, got %d", resp.Total)
	}
	if resp.Data[0]["platform"] != "weibo" {
		t.Errorf("Deleted the wrong account: %v", resp.Data[0])
	}
}
