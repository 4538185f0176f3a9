package useragent

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

const cacheKey = "user-agent"

// Cache holds a single composed agent. The first GetOrBuild builds it, every
// later call returns the stored value. Concurrent first callers share one
// build.
type Cache struct {
	group singleflight.Group
	mutex sync.RWMutex
	value string
	built bool
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) GetOrBuild(build func() string) string {
	if value, ok := c.get(); ok {
		return value
	}

	result, _, _ := c.group.Do(cacheKey, func() (interface{}, error) {
		// a build may have completed between get() and Do()
		if value, ok := c.get(); ok {
			return value, nil
		}

		value := build()

		c.mutex.Lock()
		defer c.mutex.Unlock()
		if !c.built {
			c.value = value
			c.built = true
		}
		return c.value, nil
	})

	return result.(string)
}

func (c *Cache) get() (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.value, c.built
}

// Reset drops the stored value so the next GetOrBuild builds again.
func (c *Cache) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.value = ""
	c.built = false
	c.group.Forget(cacheKey)
}
