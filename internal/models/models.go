// Package models holds the JSON envelope and request payload types shared by
// every resource handler.
package models

import "talent_crm/internal/schema"

// Response envelope: every endpoint answers {success, data|error, message?, total?}.

type ListResponse struct {
	Success bool            `json:"success"`
	Data    []schema.Record `json:"data"`
	Total   int             `json:"total"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Request payloads. Create bodies arrive as free-form records so that
// unspecified fields fall back to the schema defaults on encode.

type UpdateCreatorRequest struct {
	ID          string        `json:"id"`
	UpdatedData schema.Record `json:"updatedData"`
}

type DeleteCreatorRequest struct {
	ID string `json:"id"`
}

type UpdateAccountRequest struct {
	AccountID   string        `json:"accountId"`
	UpdatedData schema.Record `json:"updatedData"`
}

type DeleteAccountRequest struct {
	AccountID string `json:"accountId"`
}

type UpdateDealRequest struct {
	DealID      string        `json:"dealId"`
	UpdatedData schema.Record `json:"updatedData"`
}

type DeleteDealRequest struct {
	DealID string `json:"dealId"`
}
