package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	mem "vpgquote/pkg/memcache"
)

var Module = fx.Provide(provideSiteIDCache)

func provideSiteIDCache() *mem.SiteIDCache {
	return mem.NewSiteIDCache(10 * time.Minute)
}
