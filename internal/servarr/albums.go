package servarr

import (
	"context"
	"strconv"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

// --- Albums and tracks (Lidarr) ---

func (c *Client) GetAlbums(ctx context.Context, artistID int64) ([]models.Album, error) {
	if err := c.require(route.Lidarr); err != nil {
		return nil, err
	}
	path := buildQuery("/album", map[string]string{"artistId": strconv.FormatInt(artistID, 10)})
	return fetch[[]models.Album](ctx, c, path)
}

func (c *Client) GetTracks(ctx context.Context, p network.TracksParams) ([]models.Track, error) {
	if err := c.require(route.Lidarr); err != nil {
		return nil, err
	}
	path := buildQuery("/track", map[string]string{
		"artistId": strconv.FormatInt(p.ArtistID, 10),
		"albumId":  strconv.FormatInt(p.AlbumID, 10),
	})
	return fetch[[]models.Track](ctx, c, path)
}

func (c *Client) SetAlbumsMonitored(ctx context.Context, p network.MonitorParams) error {
	if err := c.require(route.Lidarr); err != nil {
		return err
	}
	_, err := c.put(ctx, "/album/monitor", map[string]any{
		"albumIds":  p.IDs,
		"monitored": p.Monitored,
	})
	return err
}

func (c *Client) TriggerAlbumSearch(ctx context.Context, id int64) error {
	if err := c.require(route.Lidarr); err != nil {
		return err
	}
	return c.sendCommand(ctx, map[string]any{"name": "AlbumSearch", "albumIds": []int64{id}})
}

func (c *Client) DeleteAlbum(ctx context.Context, p network.DeleteMediaParams) error {
	if err := c.require(route.Lidarr); err != nil {
		return err
	}
	path := buildQuery("/album/"+strconv.FormatInt(p.ID, 10), map[string]string{
		"deleteFiles":            strconv.FormatBool(p.DeleteFiles),
		"addImportListExclusion": strconv.FormatBool(p.AddListExclusion),
	})
	return c.del(ctx, path, nil)
}
