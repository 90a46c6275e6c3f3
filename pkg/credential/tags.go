/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/scoir/corral/pkg/identifiers"
	"github.com/scoir/corral/pkg/schema"
	"github.com/scoir/corral/pkg/ursa"
)

// Exact tag key strings shared with every store that has ever written
// records under this scheme. Do not change them.
const (
	tagPrefix = "anonCreds"

	TagLinkSecretID           = "anonCredsLinkSecretId"
	TagMethodName             = "anonCredsMethodName"
	TagSchemaID               = "anonCredsSchemaId"
	TagSchemaName             = "anonCredsSchemaName"
	TagSchemaVersion          = "anonCredsSchemaVersion"
	TagSchemaIssuerID         = "anonCredsSchemaIssuerId"
	TagCredentialDefinitionID = "anonCredsCredentialDefinitionId"

	TagRevocationRegistryID   = "anonCredsRevocationRegistryId"
	TagCredentialRevocationID = "anonCredsCredentialRevocationId"

	TagUnqualifiedIssuerID               = "anonCredsUnqualifiedIssuerId"
	TagUnqualifiedSchemaID               = "anonCredsUnqualifiedSchemaId"
	TagUnqualifiedSchemaIssuerID         = "anonCredsUnqualifiedSchemaIssuerId"
	TagUnqualifiedCredentialDefinitionID = "anonCredsUnqualifiedCredentialDefinitionId"
	TagUnqualifiedRevocationRegistryID   = "anonCredsUnqualifiedRevocationRegistryId"

	attrTagPrefix    = "anonCredsAttr::"
	attrValueSuffix  = "::value"
	attrMarkerSuffix = "::marker"
)

// requiredTags must all be present for a record to count as tagged by
// this scheme.
var requiredTags = []string{
	TagLinkSecretID,
	TagMethodName,
	TagSchemaID,
	TagSchemaName,
	TagSchemaVersion,
	TagSchemaIssuerID,
	TagCredentialDefinitionID,
}

// ErrMalformedCredentialSubject is returned when a credential subject is a
// sequence of objects. Claims of multi-subject credentials cannot be
// indexed by name.
var ErrMalformedCredentialSubject = schema.ErrMalformedSubject

// CredentialTags is the flat tag mapping attached to a stored credential
// record. Values are strings except attribute markers, which are boolean
// true.
type CredentialTags map[string]interface{}

// AttrValueTag is the search key holding the raw value of the named claim.
func AttrValueTag(name string) string {
	return attrTagPrefix + name + attrValueSuffix
}

// AttrMarkerTag is the search key marking the named claim as present.
func AttrMarkerTag(name string) string {
	return attrTagPrefix + name + attrMarkerSuffix
}

// TagContext bundles everything tag derivation needs about a credential
// being stored.
type TagContext struct {
	Credential             *schema.W3CCredential
	Schema                 *schema.Schema
	SchemaID               string
	CredentialDefinitionID string
	RevocationRegistryID   string
	CredentialRevocationID string
	MethodName             string
	LinkSecretID           string
}

// QualifyContext returns a copy of ctx with every identifier, including
// those embedded in the credential document and schema, in qualified form
// under namespace. Store callers run this first so records are always
// indexed under the qualified convention regardless of the caller's.
func QualifyContext(ctx *TagContext, namespace string) (*TagContext, error) {
	out := *ctx

	cred := *ctx.Credential
	cred.Context = append([]string(nil), ctx.Credential.Context...)
	cred.Types = append([]string(nil), ctx.Credential.Types...)
	cred.CredentialSubject = append(json.RawMessage(nil), ctx.Credential.CredentialSubject...)
	cred.Proof = append(json.RawMessage(nil), ctx.Credential.Proof...)

	issuerID, err := identifiers.QualifyDID(ctx.Credential.Issuer, namespace)
	if err != nil {
		return nil, errors.Wrap(err, "unable to qualify credential issuer")
	}
	cred.Issuer = issuerID
	out.Credential = &cred

	out.Schema, err = identifiers.QualifySchema(ctx.Schema, namespace)
	if err != nil {
		return nil, err
	}

	out.SchemaID, err = identifiers.QualifySchemaID(ctx.SchemaID, namespace)
	if err != nil {
		return nil, err
	}

	out.CredentialDefinitionID, err = identifiers.QualifyCredentialDefinitionID(ctx.CredentialDefinitionID, namespace)
	if err != nil {
		return nil, err
	}

	if ctx.RevocationRegistryID != "" {
		out.RevocationRegistryID, err = identifiers.QualifyRevocationRegistryID(ctx.RevocationRegistryID, namespace)
		if err != nil {
			return nil, err
		}
	}

	return &out, nil
}

// DeriveTags builds the tag set written alongside a credential record:
// the seven structural tags, the optional revocation pair, unqualified
// mirrors when the issuer method has a legacy form, and one value/marker
// pair per claim.
func DeriveTags(ctx *TagContext) (CredentialTags, error) {
	claims, err := ctx.Credential.SubjectClaims()
	if err != nil {
		return nil, err
	}

	tags := CredentialTags{
		TagLinkSecretID:           ctx.LinkSecretID,
		TagMethodName:             ctx.MethodName,
		TagSchemaID:               ctx.SchemaID,
		TagSchemaName:             ctx.Schema.Name,
		TagSchemaVersion:          ctx.Schema.Version,
		TagSchemaIssuerID:         ctx.Schema.IssuerID,
		TagCredentialDefinitionID: ctx.CredentialDefinitionID,
	}

	if ctx.RevocationRegistryID != "" {
		tags[TagRevocationRegistryID] = ctx.RevocationRegistryID
		tags[TagCredentialRevocationID] = ctx.CredentialRevocationID
	}

	// Mirroring is gated on the issuer method alone. Individual ids that
	// fail to unqualify are skipped, not failed.
	if identifiers.HasLegacyForm(ctx.Credential.Issuer) {
		mirror(tags, TagUnqualifiedIssuerID, ctx.Credential.Issuer, identifiers.UnqualifyDID)
		mirror(tags, TagUnqualifiedSchemaID, ctx.SchemaID, identifiers.UnqualifySchemaID)
		mirror(tags, TagUnqualifiedSchemaIssuerID, ctx.Schema.IssuerID, identifiers.UnqualifyDID)
		mirror(tags, TagUnqualifiedCredentialDefinitionID, ctx.CredentialDefinitionID, identifiers.UnqualifyCredentialDefinitionID)
		if ctx.RevocationRegistryID != "" {
			mirror(tags, TagUnqualifiedRevocationRegistryID, ctx.RevocationRegistryID, identifiers.UnqualifyRevocationRegistryID)
		}
	}

	for name, value := range claims {
		tags[AttrValueTag(name)] = ursa.RawString(value)
		tags[AttrMarkerTag(name)] = true
	}

	return tags, nil
}

func mirror(tags CredentialTags, key, id string, unqualify func(string) (string, error)) {
	u, err := unqualify(id)
	if err != nil {
		return
	}

	tags[key] = u
}
