package servarr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

// --- Seasons and episodes (Sonarr) ---

func (c *Client) GetEpisodes(ctx context.Context, p network.SeasonParams) ([]models.Episode, error) {
	if err := c.require(route.Sonarr); err != nil {
		return nil, err
	}
	path := buildQuery("/episode", map[string]string{
		"seriesId":     strconv.FormatInt(p.SeriesID, 10),
		"seasonNumber": strconv.FormatInt(p.SeasonNumber, 10),
	})
	return fetch[[]models.Episode](ctx, c, path)
}

func (c *Client) SetEpisodesMonitored(ctx context.Context, p network.MonitorParams) error {
	if err := c.require(route.Sonarr); err != nil {
		return err
	}
	_, err := c.put(ctx, "/episode/monitor", map[string]any{
		"episodeIds": p.IDs,
		"monitored":  p.Monitored,
	})
	return err
}

func (c *Client) TriggerEpisodeSearch(ctx context.Context, id int64) error {
	if err := c.require(route.Sonarr); err != nil {
		return err
	}
	return c.sendCommand(ctx, map[string]any{"name": "EpisodeSearch", "episodeIds": []int64{id}})
}

func (c *Client) TriggerSeasonSearch(ctx context.Context, p network.SeasonParams) error {
	if err := c.require(route.Sonarr); err != nil {
		return err
	}
	return c.sendCommand(ctx, map[string]any{
		"name":         "SeasonSearch",
		"seriesId":     p.SeriesID,
		"seasonNumber": p.SeasonNumber,
	})
}

// ToggleSeasonMonitoring flips one season's monitored flag and sends the
// series back.
func (c *Client) ToggleSeasonMonitoring(ctx context.Context, p network.ToggleSeasonMonitoringParams) error {
	if err := c.require(route.Sonarr); err != nil {
		return err
	}
	fields, err := p.Series.RawFields()
	if err != nil {
		return fmt.Errorf("decode series: %w", err)
	}
	seasons, _ := fields["seasons"].([]any)
	found := false
	for _, s := range seasons {
		season, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if n, _ := season["seasonNumber"].(float64); int64(n) == p.SeasonNumber {
			monitored, _ := season["monitored"].(bool)
			season["monitored"] = !monitored
			found = true
		}
	}
	if !found {
		return fmt.Errorf("season %d not found", p.SeasonNumber)
	}
	_, err = c.put(ctx, c.flavor.itemPath(p.Series.ID), fields)
	return err
}

// require rejects calls meant for another kind of server.
func (c *Client) require(b route.Backend) error {
	if c.backend != b {
		return fmt.Errorf("%s only: %w", b.Title(), ErrUnsupported)
	}
	return nil
}
