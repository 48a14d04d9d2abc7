package servarr

import (
	"context"
	"strconv"

	"github.com/atomicstack/servarr-dash/internal/models"
)

const (
	queuePageSize     = 1000
	blocklistPageSize = 10000
	historyPageSize   = 500
)

// --- Downloads ---

func (c *Client) GetDownloads(ctx context.Context) ([]models.QueueItem, error) {
	return fetchPage[models.QueueItem](ctx, c, buildQuery("/queue", map[string]string{
		"pageSize": strconv.Itoa(queuePageSize),
	}))
}

func (c *Client) DeleteDownload(ctx context.Context, id int64) error {
	return c.del(ctx, "/queue/"+strconv.FormatInt(id, 10), nil)
}

func (c *Client) UpdateDownloads(ctx context.Context) error {
	return c.sendCommand(ctx, map[string]any{"name": "RefreshMonitoredDownloads"})
}

// --- Blocklist ---

func (c *Client) GetBlocklist(ctx context.Context) ([]models.BlocklistItem, error) {
	return fetchPage[models.BlocklistItem](ctx, c, buildQuery("/blocklist", map[string]string{
		"page":     "1",
		"pageSize": strconv.Itoa(blocklistPageSize),
	}))
}

func (c *Client) DeleteBlocklistItem(ctx context.Context, id int64) error {
	return c.del(ctx, "/blocklist/"+strconv.FormatInt(id, 10), nil)
}

func (c *Client) ClearBlocklist(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return c.del(ctx, "/blocklist/bulk", map[string]any{"ids": ids})
}

// --- History ---

func (c *Client) GetHistory(ctx context.Context) ([]models.HistoryItem, error) {
	return fetchPage[models.HistoryItem](ctx, c, buildQuery("/history", map[string]string{
		"pageSize":      strconv.Itoa(historyPageSize),
		"sortDirection": "descending",
		"sortKey":       "date",
	}))
}

// --- Root folders ---

func (c *Client) GetRootFolders(ctx context.Context) ([]models.RootFolder, error) {
	return fetch[[]models.RootFolder](ctx, c, "/rootfolder")
}

func (c *Client) AddRootFolder(ctx context.Context, path string) error {
	_, err := c.post(ctx, "/rootfolder", map[string]string{"path": path})
	return err
}

func (c *Client) DeleteRootFolder(ctx context.Context, id int64) error {
	return c.del(ctx, "/rootfolder/"+strconv.FormatInt(id, 10), nil)
}
