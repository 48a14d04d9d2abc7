package servarr

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/servarr-dash/internal/models"
)

// --- System ---

func (c *Client) GetTasks(ctx context.Context) ([]models.Task, error) {
	return fetch[[]models.Task](ctx, c, "/system/task")
}

// StartTask queues a scheduled task by its command name.
func (c *Client) StartTask(ctx context.Context, taskName string) error {
	if taskName == "" {
		return fmt.Errorf("start task: empty task name")
	}
	return c.sendCommand(ctx, map[string]any{"name": taskName})
}

func (c *Client) GetQueuedEvents(ctx context.Context) ([]models.QueuedEvent, error) {
	return fetch[[]models.QueuedEvent](ctx, c, "/command")
}

func (c *Client) GetLogs(ctx context.Context, pageSize int) ([]models.LogEntry, error) {
	if pageSize <= 0 {
		pageSize = 500
	}
	return fetchPage[models.LogEntry](ctx, c, buildQuery("/log", map[string]string{
		"pageSize":      strconv.Itoa(pageSize),
		"sortDirection": "descending",
		"sortKey":       "time",
	}))
}

func (c *Client) GetUpdates(ctx context.Context) ([]models.Update, error) {
	return fetch[[]models.Update](ctx, c, "/update")
}

func (c *Client) GetStatus(ctx context.Context) (models.SystemStatus, error) {
	return fetch[models.SystemStatus](ctx, c, "/system/status")
}

// --- Metadata ---

func (c *Client) GetQualityProfiles(ctx context.Context) ([]models.QualityProfile, error) {
	return fetch[[]models.QualityProfile](ctx, c, "/qualityprofile")
}

func (c *Client) GetDiskSpace(ctx context.Context) ([]models.DiskSpace, error) {
	return fetch[[]models.DiskSpace](ctx, c, "/diskspace")
}

// GetMetadata fetches the reference data every view relies on in parallel.
// The first failure cancels the rest.
func (c *Client) GetMetadata(ctx context.Context) (models.Metadata, error) {
	var meta models.Metadata
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profiles, err := c.GetQualityProfiles(gctx)
		if err != nil {
			return fmt.Errorf("quality profiles: %w", err)
		}
		meta.QualityProfiles = profiles
		return nil
	})
	g.Go(func() error {
		tags, err := c.GetTags(gctx)
		if err != nil {
			return fmt.Errorf("tags: %w", err)
		}
		meta.Tags = tags
		return nil
	})
	g.Go(func() error {
		space, err := c.GetDiskSpace(gctx)
		if err != nil {
			return fmt.Errorf("disk space: %w", err)
		}
		meta.DiskSpace = space
		return nil
	})
	g.Go(func() error {
		folders, err := c.GetRootFolders(gctx)
		if err != nil {
			return fmt.Errorf("root folders: %w", err)
		}
		meta.RootFolders = folders
		return nil
	})
	g.Go(func() error {
		status, err := c.GetStatus(gctx)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		meta.Status = status
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Metadata{}, err
	}
	return meta, nil
}
