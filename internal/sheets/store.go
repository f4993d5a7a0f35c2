// Package sheets wraps one Google Spreadsheet as a schema-less table store
// with read-range, write-range, append and clear primitives.
package sheets

import (
	"context"
	"fmt"

	"talent_crm/internal/config"
	"talent_crm/internal/retry"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Store is an authenticated handle on the backing spreadsheet. It is
// constructed once at startup and injected into the handlers; a failed
// construction is a startup error, never a deferred one.
type Store struct {
	service       *sheets.Service
	spreadsheetID string
	retryCfg      retry.Config
}

func NewStore(ctx context.Context, cfg config.Config) (*Store, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	service, err := sheets.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Store{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		retryCfg:      cfg.SheetsRetryConfig(),
	}, nil
}

// ReadSheet returns all rows of the named tab, header included, or the given
// sub-range when rng is non-empty. A tab with no data yields an empty slice.
func (s *Store) ReadSheet(ctx context.Context, sheetName, rng string) ([][]interface{}, error) {
	readRange := sheetName
	if rng != "" {
		readRange = sheetName + "!" + rng
	}

	values, err := retry.WithRetry(ctx, s.retryCfg, func(ctx context.Context) ([][]interface{}, error) {
		resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
		if err != nil {
			return nil, err
		}
		return resp.Values, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	log.Debug().Str("sheet", sheetName).Int("rows", len(values)).Msg("Read sheet data")
	return values, nil
}

// WriteSheet overwrites exactly the addressed range with the given values,
// raw, with no type coercion or formula evaluation.
func (s *Store) WriteSheet(ctx context.Context, sheetName, rng string, rows [][]interface{}) error {
	writeRange := sheetName + "!" + rng
	valueRange := &sheets.ValueRange{Values: rows}

	_, err := retry.WithRetry(ctx, s.retryCfg, func(ctx context.Context) (struct{}, error) {
		_, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, writeRange, valueRange).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		return struct{}{}, err
	})
	if err != nil {
		return fmt.Errorf("failed to write range %s: %w", writeRange, err)
	}

	log.Debug().Str("range", writeRange).Int("rows", len(rows)).Msg("Wrote sheet range")
	return nil
}

// AppendSheet inserts rows after the last populated row of the tab. Duplicate
// keys are not checked here; that is the caller's concern.
func (s *Store) AppendSheet(ctx context.Context, sheetName string, rows [][]interface{}) error {
	valueRange := &sheets.ValueRange{Values: rows}

	_, err := retry.WithRetry(ctx, s.retryCfg, func(ctx context.Context) (struct{}, error) {
		_, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, sheetName, valueRange).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).
			Do()
		return struct{}{}, err
	})
	if err != nil {
		return fmt.Errorf("failed to append rows to %s: %w", sheetName, err)
	}

	log.Debug().Str("sheet", sheetName).Int("rows", len(rows)).Msg("Appended rows")
	return nil
}

// ClearSheet blanks cell contents in the addressed range. The row itself
// stays in place; a cleared row reads back as a gap.
func (s *Store) ClearSheet(ctx context.Context, sheetName, rng string) error {
	clearRange := sheetName + "!" + rng

	_, err := retry.WithRetry(ctx, s.retryCfg, func(ctx context.Context) (struct{}, error) {
		_, err := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
			Context(ctx).
			Do()
		return struct{}{}, err
	})
	if err != nil {
		return fmt.Errorf("failed to clear range %s: %w", clearRange, err)
	}

	log.Debug().Str("range", clearRange).Msg("Cleared sheet range")
	return nil
}
