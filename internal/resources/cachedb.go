package resources

import (
	"fmt"

	"github.com/GopalTomar/Cloud-Connect/internal/core"
	"github.com/GopalTomar/Cloud-Connect/internal/utils"
)

// KnownEvictionPolicies are the common choices offered in prompts. The field
// itself is an open enum: unknown policies are accepted so future cache
// backends can bring their own.
var KnownEvictionPolicies = []string{"LRU", "FIFO"}

// CacheDB is a managed cache database.
type CacheDB struct {
	core.BaseResource
	TTLSeconds     int
	CapacityMB     int
	EvictionPolicy string
}

// NewCacheDB validates the field bag and builds a CacheDB.
func NewCacheDB(name string, params map[string]interface{}) (core.Resource, error) {
	ttl, ok := intParam(params, "ttl_seconds")
	if !ok || !utils.IsPositive(ttl) {
		return nil, &core.ValidationError{Field: "ttl_seconds", Reason: "must be a positive integer"}
	}

	capacity, ok := intParam(params, "capacity_mb")
	if !ok || !utils.IsPositive(capacity) {
		return nil, &core.ValidationError{Field: "capacity_mb", Reason: "must be a positive integer"}
	}

	policy, ok := stringParam(params, "eviction_policy")
	if !ok || policy == "" {
		return nil, &core.ValidationError{Field: "eviction_policy", Reason: "must not be empty"}
	}

	return &CacheDB{
		BaseResource:   core.NewBase(name, "CacheDB"),
		TTLSeconds:     ttl,
		CapacityMB:     capacity,
		EvictionPolicy: policy,
	}, nil
}

func (c *CacheDB) Describe() string {
	return fmt.Sprintf("CacheDB: capacity=%dMB, policy=%s", c.CapacityMB, c.EvictionPolicy)
}
