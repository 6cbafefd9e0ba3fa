package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/adamaho/matchpoint/internal/logging"
	"github.com/adamaho/matchpoint/internal/models"
)

var ErrSearchDisabled = errors.New("search is not configured")

type SearchService struct {
	ES    *elasticsearch.Client
	Index string
}

// SearchMatches runs a fuzzy multi_match over match name and description.
func (s *SearchService) SearchMatches(ctx context.Context, query string, from, size int) (int64, []models.Match, error) {
	if s.ES == nil {
		return 0, nil, ErrSearchDisabled
	}
	l := logging.FromContext(ctx).With("svc", "matches.search")

	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, err
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		l.Error("search failed", "error", err)
		return 0, nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		l.Error("search failed", "status", res.Status())
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Match `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	matches := make([]models.Match, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		matches[i] = hit.Source
	}
	return r.Hits.Total.Value, matches, nil
}
