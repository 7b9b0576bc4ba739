package resources

import (
	"github.com/GopalTomar/Cloud-Connect/internal/registry"
)

// RegisterBuiltins wires the built-in variants into reg. Called once at
// startup, before any console interaction.
func RegisterBuiltins(reg *registry.Registry) error {
	builtins := []struct {
		name    string
		factory registry.Factory
	}{
		{"AppService", NewAppService},
		{"StorageAccount", NewStorageAccount},
		{"CacheDB", NewCacheDB},
	}

	for _, b := range builtins {
		if err := reg.Register(b.name, b.factory); err != nil {
			return err
		}
	}
	return nil
}
