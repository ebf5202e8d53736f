package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SwipeSessionKey returns the cache key for a swipe session
func (r *CacheKeyStruct) SwipeSessionKey(sessionID string) string {
	return fmt.Sprintf("swipe_session:%s", sessionID)
}

var CacheKey = NewCacheKeyStruct()
