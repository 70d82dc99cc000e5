// Package catalog holds the in-process read cache for the public listing
// pages. Every listing mutation flushes it; entries also age out on TTL.
package catalog

import (
	"strconv"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/staymarket-dev/staymarket/internal/models"
)

const (
	cacheTTL     = 5 * time.Minute
	maxCacheSize = 1000
)

type Cache struct {
	lists   *ccache.Cache[[]models.Property]
	details *ccache.Cache[*models.Property]
}

func NewCache() *Cache {
	return &Cache{
		lists:   ccache.New(ccache.Configure[[]models.Property]().MaxSize(maxCacheSize)),
		details: ccache.New(ccache.Configure[*models.Property]().MaxSize(maxCacheSize)),
	}
}

func (c *Cache) GetList(city string) ([]models.Property, bool) {
	item := c.lists.Get(listKey(city))

	if item == nil || item.Expired() {
		return nil, false
	}

	return item.Value(), true
}

func (c *Cache) SetList(city string, properties []models.Property) {
	c.lists.Set(listKey(city), properties, cacheTTL)
}

func (c *Cache) GetDetail(id uint) (*models.Property, bool) {
	item := c.details.Get(detailKey(id))

	if item == nil || item.Expired() {
		return nil, false
	}

	return item.Value(), true
}

func (c *Cache) SetDetail(property *models.Property) {
	c.details.Set(detailKey(property.ID), property, cacheTTL)
}

// Flush drops everything. Called after create, update and delete; listing
// mutations are rare enough that invalidating per-key is not worth the
// bookkeeping.
func (c *Cache) Flush() {
	c.lists.Clear()
	c.details.Clear()
}

func listKey(city string) string {
	if city == "" {
		return "list:all"
	}
	return "list:city:" + city
}

func detailKey(id uint) string {
	return "detail:" + strconv.FormatUint(uint64(id), 10)
}
