package servarr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
)

// --- Library ---

func (c *Client) GetLibrary(ctx context.Context) ([]models.MediaItem, error) {
	return fetch[[]models.MediaItem](ctx, c, "/"+c.flavor.resource)
}

func (c *Client) SearchNewMedia(ctx context.Context, query string) ([]models.MediaItem, error) {
	path := buildQuery("/"+c.flavor.resource+"/lookup", map[string]string{"term": query})
	return fetch[[]models.MediaItem](ctx, c, path)
}

func (c *Client) GetMediaHistory(ctx context.Context, id int64) ([]models.MediaHistoryItem, error) {
	path := buildQuery("/history/"+c.flavor.resource, map[string]string{
		c.flavor.idParam: strconv.FormatInt(id, 10),
	})
	return fetch[[]models.MediaHistoryItem](ctx, c, path)
}

func (c *Client) DeleteMedia(ctx context.Context, p network.DeleteMediaParams) error {
	path := buildQuery(c.flavor.itemPath(p.ID), map[string]string{
		"deleteFiles":           strconv.FormatBool(p.DeleteFiles),
		c.flavor.exclusionParam: strconv.FormatBool(p.AddListExclusion),
	})
	return c.del(ctx, path, nil)
}

// EditMedia sends the server's own object back with the edited fields
// replaced. Unknown tags are created first.
func (c *Client) EditMedia(ctx context.Context, p network.EditMediaParams) error {
	fields, err := p.Item.RawFields()
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.flavor.resource, err)
	}
	tags, err := c.ResolveTags(ctx, p.Tags)
	if err != nil {
		return err
	}
	fields["monitored"] = p.Monitored
	fields["tags"] = tags
	if p.QualityProfileID != 0 {
		fields["qualityProfileId"] = p.QualityProfileID
	}
	if p.Path != "" {
		fields["path"] = p.Path
	}
	path := buildQuery(c.flavor.itemPath(p.Item.ID), map[string]string{"moveFiles": "true"})
	_, err = c.put(ctx, path, fields)
	return err
}

func (c *Client) AddMedia(ctx context.Context, p network.AddMediaParams) error {
	fields, err := p.Item.RawFields()
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.flavor.resource, err)
	}
	tags, err := c.ResolveTags(ctx, p.Tags)
	if err != nil {
		return err
	}
	fields["rootFolderPath"] = p.RootFolderPath
	fields["qualityProfileId"] = p.QualityProfileID
	fields["monitored"] = p.Monitored
	fields["tags"] = tags
	fields["addOptions"] = c.flavor.addOptions
	if _, ok := fields["metadataProfileId"]; !ok && c.flavor.resource == "artist" {
		fields["metadataProfileId"] = 1
	}
	_, err = c.post(ctx, "/"+c.flavor.resource, fields)
	return err
}

func (c *Client) TriggerAutomaticSearch(ctx context.Context, id int64) error {
	return c.sendCommand(ctx, c.flavor.command(c.flavor.searchCommand, id))
}

func (c *Client) UpdateAndScan(ctx context.Context, id int64) error {
	return c.sendCommand(ctx, c.flavor.command(c.flavor.refreshCommand, id))
}

func (c *Client) UpdateAllLibrary(ctx context.Context) error {
	return c.sendCommand(ctx, c.flavor.command(c.flavor.refreshCommand, 0))
}

func (c *Client) sendCommand(ctx context.Context, body map[string]any) error {
	_, err := c.post(ctx, "/command", body)
	return err
}

// --- Tags ---

func (c *Client) GetTags(ctx context.Context) ([]models.Tag, error) {
	return fetch[[]models.Tag](ctx, c, "/tag")
}

func (c *Client) AddTag(ctx context.Context, label string) (models.Tag, error) {
	data, err := c.post(ctx, "/tag", map[string]string{"label": label})
	if err != nil {
		return models.Tag{}, err
	}
	return decode[models.Tag](data)
}

// ResolveTags maps a comma separated tag input to tag ids, creating labels
// the server does not know yet. Labels compare case-insensitively.
func (c *Client) ResolveTags(ctx context.Context, input string) ([]int64, error) {
	labels := models.ParseTags(input)
	ids := make([]int64, 0, len(labels))
	if len(labels) == 0 {
		return ids, nil
	}
	known, err := c.GetTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	byLabel := make(map[string]int64, len(known))
	for _, t := range known {
		byLabel[strings.ToLower(t.Label)] = t.ID
	}
	for _, label := range labels {
		key := strings.ToLower(label)
		if id, ok := byLabel[key]; ok {
			ids = append(ids, id)
			continue
		}
		tag, err := c.AddTag(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("add tag %q: %w", label, err)
		}
		byLabel[key] = tag.ID
		ids = append(ids, tag.ID)
	}
	return ids, nil
}
