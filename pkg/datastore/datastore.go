/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package datastore

const (
	CredentialC    = "Credential"
	W3CCredentialC = "W3CCredential"
)

// Provider storage provider interface
type Provider interface {
	// OpenStore opens a store with given name space and returns the handle
	OpenStore(name string) (Store, error)

	// CloseStore closes store of given name space
	CloseStore(name string) error

	// Close closes all stores created under this store provider
	Close() error
}

//go:generate mockery -name=Store
type Store interface {
	InsertCredential(c *CredentialRecord) (string, error)
	GetCredential(id string) (*CredentialRecord, error)
	DeleteCredential(id string) error

	InsertW3CCredential(c *W3CCredentialRecord) (string, error)
	GetW3CCredential(id string) (*W3CCredentialRecord, error)
	DeleteW3CCredential(id string) error

	ListCredential(c *CredentialCriteria) (*CredentialList, error)

	// FindCredentialsByTag matches records of either representation whose
	// tag set carries the exact key/value pair.
	FindCredentialsByTag(key string, value interface{}) ([]Record, error)

	// FindCredentialsByAttribute matches records holding a claim with the
	// given name and raw value.
	FindCredentialsByAttribute(name, rawValue string) ([]Record, error)
}
