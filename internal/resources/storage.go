package resources

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/GopalTomar/Cloud-Connect/internal/core"
	"github.com/GopalTomar/Cloud-Connect/internal/utils"
)

// StorageAccount is a managed storage account.
type StorageAccount struct {
	core.BaseResource
	EncryptionEnabled bool
	MaxSizeGB         int

	// bcrypt hash of the access key. The clear key is dropped right after
	// construction and never shows up in Describe output or audit logs.
	accessKeyHash []byte
}

// NewStorageAccount validates the field bag and builds a StorageAccount.
func NewStorageAccount(name string, params map[string]interface{}) (core.Resource, error) {
	encryption, ok := boolParam(params, "encryption_enabled")
	if !ok {
		return nil, &core.ValidationError{Field: "encryption_enabled", Reason: "must be true or false"}
	}

	accessKey, ok := stringParam(params, "access_key")
	if !ok || accessKey == "" {
		return nil, &core.ValidationError{Field: "access_key", Reason: "must not be empty"}
	}

	maxSize, ok := intParam(params, "max_size_gb")
	if !ok || !utils.IsPositive(maxSize) {
		return nil, &core.ValidationError{Field: "max_size_gb", Reason: "must be a positive integer"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(accessKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash access key: %w", err)
	}

	return &StorageAccount{
		BaseResource:      core.NewBase(name, "StorageAccount"),
		EncryptionEnabled: encryption,
		MaxSizeGB:         maxSize,
		accessKeyHash:     hash,
	}, nil
}

// VerifyAccessKey reports whether key matches the one given at creation.
func (s *StorageAccount) VerifyAccessKey(key string) bool {
	return bcrypt.CompareHashAndPassword(s.accessKeyHash, []byte(key)) == nil
}

func (s *StorageAccount) Describe() string {
	return fmt.Sprintf("StorageAccount: encryption=%t, size=%dGB", s.EncryptionEnabled, s.MaxSizeGB)
}
