package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tether-travel/tether/internal/domain"
)

var (
	errMissingResults = errors.New("response has no results")
	errNotAList       = errors.New("results is not a list")
	errNoCurrent      = errors.New("weather results carry no current conditions")
)

type searchWire struct {
	UserID  string          `json:"user_id"`
	Results json.RawMessage `json:"results"`
}

func (w searchWire) toResponse(d domain.Domain) (*domain.SearchResponse, error) {
	if isNull(w.Results) {
		return nil, errMissingResults
	}
	resp := &domain.SearchResponse{UserID: w.UserID, Domain: d}
	if d == domain.Weather {
		var probe struct {
			Current json.RawMessage `json:"current"`
		}
		if err := json.Unmarshal(w.Results, &probe); err != nil {
			return nil, fmt.Errorf("weather results: %w", err)
		}
		if isNull(probe.Current) {
			return nil, errNoCurrent
		}
		var report domain.WeatherReport
		if err := json.Unmarshal(w.Results, &report); err != nil {
			return nil, fmt.Errorf("weather results: %w", err)
		}
		resp.Weather = &report
		return resp, nil
	}
	items, err := decodeList(w.Results)
	if err != nil {
		return nil, err
	}
	resp.Results = items
	return resp, nil
}

type retrieveWire struct {
	UserID    string          `json:"user_id"`
	Results   json.RawMessage `json:"results"`
	Flights   json.RawMessage `json:"flights"`
	Itinerary json.RawMessage `json:"itinerary"`
}

// toResponse prefers "results" and falls back to the field named after the
// domain. A reply without any list means nothing is saved.
func (w retrieveWire) toResponse(d domain.Domain) (*domain.RetrieveResponse, error) {
	raw := w.Results
	if isNull(raw) {
		switch d {
		case domain.Flights:
			raw = w.Flights
		case domain.Itinerary:
			raw = w.Itinerary
		}
	}
	resp := &domain.RetrieveResponse{UserID: w.UserID, Domain: d, Items: []domain.SearchResult{}}
	if isNull(raw) {
		return resp, nil
	}
	items, err := decodeList(raw)
	if err != nil {
		return nil, err
	}
	resp.Items = items
	return resp, nil
}

func decodeList(raw json.RawMessage) ([]domain.SearchResult, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotAList
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("results: %w", err)
	}
	out := make([]domain.SearchResult, 0, len(items))
	for _, item := range items {
		out = append(out, domain.SearchResult(item))
	}
	return out, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null"
}
