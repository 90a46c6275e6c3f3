/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package datastore

import (
	"github.com/scoir/corral/pkg/schema"
)

type Criteria map[string]interface{}

// Record is a stored credential in either representation. The two
// representations share no structure beyond an identity; consumers
// dispatch on the concrete type.
type Record interface {
	RecordID() string
}

// CredentialRecord is the native representation: the anoncreds payload
// plus its identifier fields held directly on the record.
type CredentialRecord struct {
	ID                     string
	Credential             *schema.Credential
	SchemaID               string
	CredentialDefinitionID string
	RevocationRegistryID   string
	CredentialRevocationID string
	MethodName             string
	LinkSecretID           string
	Tags                   map[string]interface{}
}

func (r *CredentialRecord) RecordID() string {
	return r.ID
}

// W3CCredentialRecord is the standards-based representation: a W3C
// credential document plus the flat tag mapping derived at store time.
// Method, link secret and revocation metadata live in a side table keyed
// by the record ID.
type W3CCredentialRecord struct {
	ID         string
	Credential *schema.W3CCredential
	Tags       map[string]interface{}
}

func (r *W3CCredentialRecord) RecordID() string {
	return r.ID
}

type CredentialCriteria struct {
	Start, PageSize int
	SchemaID        string
}

type CredentialList struct {
	Count       int
	Credentials []Record
}
