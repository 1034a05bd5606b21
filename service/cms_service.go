package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"coaxdirect/catalog"
	"coaxdirect/models"
)

// CMSService fetches the catalog (cable series, cable types, connectors)
// from the headless CMS content API. The engine treats whatever comes back
// as a read-only snapshot; a fetch failure for any list degrades to an empty
// list rather than propagating an error into the core.
type CMSService struct {
	baseURL string
	client  *http.Client
}

// NewCMSService creates a new CMSService
// baseURL is the CMS content API root (e.g., "https://cms.example.com/api")
func NewCMSService(baseURL string) *CMSService {
	return &CMSService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Ensure CMSService implements catalog.Source
var _ catalog.Source = (*CMSService)(nil)

// fetchList performs a GET against a CMS content path and decodes the JSON
// array response into out.
func (s *CMSService) fetchList(ctx context.Context, path string, out interface{}) error {
	url := s.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build CMS request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from CMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("CMS returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read CMS response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse CMS response for %s: %w", path, err)
	}

	return nil
}

// FetchSnapshot pulls all three catalog lists from the CMS. Each list that
// fails to load is logged and left empty — a CMS outage must never crash the
// customizer, it just shrinks (or empties) the catalog until the caller
// falls back to the built-in snapshot.
func (s *CMSService) FetchSnapshot(ctx context.Context) (catalog.Snapshot, error) {
	var snap catalog.Snapshot

	var series []models.CableSeries
	if err := s.fetchList(ctx, "/catalog/cable-series", &series); err != nil {
		log.Printf("⚠️  FetchSnapshot: cable series unavailable: %v", err)
		series = nil
	}
	snap.Series = series

	var types []models.CableType
	if err := s.fetchList(ctx, "/catalog/cable-types", &types); err != nil {
		log.Printf("⚠️  FetchSnapshot: cable types unavailable: %v", err)
		types = nil
	}
	snap.Types = types

	var connectors []models.Connector
	if err := s.fetchList(ctx, "/catalog/connectors", &connectors); err != nil {
		log.Printf("⚠️  FetchSnapshot: connectors unavailable: %v", err)
		connectors = nil
	}
	snap.Connectors = connectors

	log.Printf("📦 FetchSnapshot: CMS returned %d series, %d cable types, %d connectors",
		len(snap.Series), len(snap.Types), len(snap.Connectors))
	return snap, nil
}
