package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"tableflip.dev/moodlog/pkg/entry"
)

// The credential is a single service-account blob scoped to spreadsheets and
// drive; drive access is needed to open the spreadsheet by name.
var sheetScopes = []string{sheets.SpreadsheetsScope, drive.DriveScope}

// readRange covers the three data columns on the first sheet. The first row
// is the header and is skipped on read.
const readRange = "A:C"

type sheetStore struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

// NewSheets opens the named spreadsheet using the configured service
// credential. Any failure here is fatal to the session; there is no retry.
func NewSheets(ctx context.Context, cfg Config) (Persistence, error) {
	blob, err := credentials(cfg)
	if err != nil {
		return nil, err
	}
	jwt, err := google.JWTConfigFromJSON(blob, sheetScopes...)
	if err != nil {
		return nil, fmt.Errorf("store: parse credentials: %w", err)
	}
	client := jwt.Client(ctx)

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("store: sheets client: %w", err)
	}
	dsvc, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("store: drive client: %w", err)
	}

	id, err := resolveSpreadsheet(ctx, dsvc, cfg.Spreadsheet())
	if err != nil {
		return nil, err
	}

	return &sheetStore{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: id,
	}, nil
}

func credentials(cfg Config) ([]byte, error) {
	if blob := strings.TrimSpace(cfg.CredentialsJSON()); blob != "" {
		return []byte(blob), nil
	}
	if path := cfg.CredentialsFile(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("store: read credentials file: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("store: no credentials configured, set credentials or MOODLOG_CREDS_JSON")
}

func resolveSpreadsheet(ctx context.Context, dsvc *drive.Service, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("store: spreadsheet name required")
	}
	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`))
	list, err := dsvc.Files.List().Q(query).PageSize(1).Fields("files(id)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("store: look up spreadsheet %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("store: spreadsheet %q not found or not shared with the service account", name)
	}
	return list.Files[0].Id, nil
}

func (s *sheetStore) Append(ctx context.Context, e *entry.Entry) error {
	row := e.Row()
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{row[0], row[1], row[2]}},
	}
	_, err := s.values.Append(s.spreadsheetID, readRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("store: append row: %w", err)
	}
	return nil
}

func (s *sheetStore) ReadAll(ctx context.Context) ([]*entry.Entry, error) {
	resp, err := s.values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("store: read rows: %w", err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	all := make([]*entry.Entry, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		cols := make([]string, len(raw))
		for i, v := range raw {
			cols[i] = fmt.Sprint(v)
		}
		e, err := entry.ParseRow(cols, entry.Civil())
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: skipping row: %s\n", err)
			continue
		}
		all = append(all, e)
	}
	return all, nil
}
