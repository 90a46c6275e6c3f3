/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"encoding/json"
)

// Schema is an anoncreds schema definition as written to a registry.
type Schema struct {
	IssuerID  string   `json:"issuerId"`
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	AttrNames []string `json:"attrNames,omitempty"`
}

// CredentialDefinition is an anoncreds credential definition. Value carries
// the CL public key material and is opaque to this layer.
type CredentialDefinition struct {
	IssuerID string          `json:"issuerId"`
	SchemaID string          `json:"schemaId"`
	Type     string          `json:"type"`
	Tag      string          `json:"tag"`
	Value    json.RawMessage `json:"value,omitempty"`
}

// RevocationRegistryDefinition is an anoncreds revocation registry
// definition. Only the identifier fields matter to this layer.
type RevocationRegistryDefinition struct {
	IssuerID  string          `json:"issuerId"`
	CredDefID string          `json:"credDefId"`
	Type      string          `json:"revocDefType"`
	Tag       string          `json:"tag"`
	Value     json.RawMessage `json:"value,omitempty"`
}
