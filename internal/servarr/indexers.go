package servarr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
)

// --- Indexers ---

func (c *Client) GetIndexers(ctx context.Context) ([]models.Indexer, error) {
	return fetch[[]models.Indexer](ctx, c, "/indexer")
}

func (c *Client) DeleteIndexer(ctx context.Context, id int64) error {
	return c.del(ctx, indexerPath(id), nil)
}

// EditIndexer replaces the edited settings inside the server's indexer
// object, including the baseUrl, apiKey and seed ratio entries of its field
// list, and saves it without the server's connection test.
func (c *Client) EditIndexer(ctx context.Context, p network.EditIndexerParams) error {
	raw := p.Indexer.Raw
	if len(raw) == 0 {
		data, err := c.get(ctx, indexerPath(p.Indexer.ID))
		if err != nil {
			return fmt.Errorf("get indexer: %w", err)
		}
		raw = data
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("decode indexer: %w", err)
	}
	tags, err := c.ResolveTags(ctx, p.Tags)
	if err != nil {
		return err
	}

	body["name"] = p.Name
	body["enableRss"] = p.EnableRss
	body["enableAutomaticSearch"] = p.EnableAutomaticSearch
	body["enableInteractiveSearch"] = p.EnableInteractiveSearch
	body["priority"] = p.Priority
	body["tags"] = tags

	fields, _ := body["fields"].([]any)
	for _, f := range fields {
		field, ok := f.(map[string]any)
		if !ok {
			continue
		}
		switch field["name"] {
		case "baseUrl":
			field["value"] = p.URL
		case "apiKey":
			field["value"] = p.APIKey
		case "seedCriteria.seedRatio":
			if ratio := strings.TrimSpace(p.SeedRatio); ratio != "" {
				v, err := strconv.ParseFloat(ratio, 64)
				if err != nil {
					return fmt.Errorf("seed ratio %q: %w", ratio, err)
				}
				field["value"] = v
			}
		}
	}

	path := buildQuery(indexerPath(p.Indexer.ID), map[string]string{"forceSave": "true"})
	_, err = c.put(ctx, path, body)
	return err
}

// TestIndexer runs the server's connection test for one indexer. A failed
// test is not an error: its validation message is returned instead, and ""
// means the indexer passed.
func (c *Client) TestIndexer(ctx context.Context, id int64) (string, error) {
	raw, err := c.get(ctx, indexerPath(id))
	if err != nil {
		return "", fmt.Errorf("get indexer: %w", err)
	}
	_, _, err = c.do(ctx, http.MethodPost, "/indexer/test", json.RawMessage(raw))
	if err == nil {
		return "", nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
		return apiErr.Message, nil
	}
	return "", err
}

// TestAllIndexers runs every indexer's connection test. The servers answer
// 400 when any test fails but still return the full result list.
func (c *Client) TestAllIndexers(ctx context.Context) ([]models.IndexerTestResult, error) {
	data, _, err := c.do(ctx, http.MethodPost, "/indexer/testall", nil)
	var apiErr *APIError
	if err != nil && !(errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest) {
		return nil, err
	}
	return decode[[]models.IndexerTestResult](data)
}

func (c *Client) GetIndexerSettings(ctx context.Context) (models.IndexerSettings, error) {
	return fetch[models.IndexerSettings](ctx, c, "/config/indexer")
}

func (c *Client) EditIndexerSettings(ctx context.Context, settings models.IndexerSettings) error {
	_, err := c.put(ctx, "/config/indexer/"+strconv.FormatInt(settings.ID, 10), settings)
	return err
}

func indexerPath(id int64) string {
	return "/indexer/" + strconv.FormatInt(id, 10)
}
