package export

import (
	"context"
	"fmt"
	"time"

	"github.com/reusedev/mockup-hub/internal/modules/cache"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/internal/modules/storage/ali"
	"github.com/reusedev/mockup-hub/internal/modules/store"
	"github.com/reusedev/mockup-hub/tools"
)

// DefaultFetch tries the in-memory cache, then object storage, then the
// result's URL.
func DefaultFetch(ctx context.Context, result store.Result) ([]byte, error) {
	if data, err := cache.ImageCacheManager().GetValue(result.Id); err == nil && len(data) > 0 {
		return data, nil
	}
	if result.Key != "" && ali.OssClient != nil {
		data, err := ali.OssClient.Download(result.Key)
		if err == nil {
			cacheBytes(result.Id, data)
			return data, nil
		}
		logs.Logger.Warn().Err(err).Str("key", result.Key).Msg("oss download failed, falling back to URL")
	}
	if result.URL != "" {
		data, _, err := tools.GetOnlineImage(result.URL)
		if err != nil {
			return nil, err
		}
		cacheBytes(result.Id, data)
		return data, nil
	}
	return nil, fmt.Errorf("no source for result %s", result.Id)
}

func cacheBytes(id string, data []byte) {
	_ = cache.ImageCacheManager().SetWithExpiration(id, data, 30*time.Minute)
}
