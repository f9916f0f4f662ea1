package summarycache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

// ValkeyCache keeps summary responses in a Valkey-compatible database.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs a new cache backed by Valkey.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "news-summarizer"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

func (c *ValkeyCache) Get(ctx context.Context, digest string) (summarizer.Response, bool, error) {
	if digest == "" {
		return summarizer.Response{}, false, nil
	}
	payload, err := c.client.Do(ctx, c.client.B().Get().Key(c.entryKey(digest)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return summarizer.Response{}, false, nil
		}
		return summarizer.Response{}, false, err
	}
	var resp summarizer.Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return summarizer.Response{}, false, err
	}
	return resp, true, nil
}

func (c *ValkeyCache) Set(ctx context.Context, digest string, resp summarizer.Response, ttl time.Duration) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	builder := c.client.B().Set().Key(c.entryKey(digest)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) entryKey(digest string) string {
	return fmt.Sprintf("%s:summary:%s", c.prefix, digest)
}

var _ summarizer.Cache = (*ValkeyCache)(nil)
