/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/scoir/corral/pkg/datastore"
	"github.com/scoir/corral/pkg/ursa"
)

// ErrMissingTags is returned when a W3C record carries metadata but was
// never tagged by this scheme, which points at data written by an
// incompatible version.
var ErrMissingTags = errors.New("missing credential tags")

// Info is the canonical read-side projection of a stored credential,
// rebuilt on every query from whichever representation the record uses.
// RevocationRegistryID and CredentialRevocationID are empty when the
// credential is not revocable.
type Info struct {
	CredentialID           string
	Attributes             map[string]string
	SchemaID               string
	CredentialDefinitionID string
	RevocationRegistryID   string
	CredentialRevocationID string
	MethodName             string
	LinkSecretID           string
}

// Projector rebuilds Info values from stored records. W3C records need
// the metadata side table; native records are self-contained.
type Projector struct {
	meta *MetadataStore
}

func NewProjector(prov Provider) (*Projector, error) {
	meta, err := NewMetadataStore(prov)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create projector")
	}

	return &Projector{meta: meta}, nil
}

// Metadata exposes the side table for store-time writes.
func (r *Projector) Metadata() *MetadataStore {
	return r.meta
}

// ProjectInfo extracts the canonical credential info from a stored record
// of either representation. An unrecognized record type is a programming
// error and panics.
func (r *Projector) ProjectInfo(rec datastore.Record) (*Info, error) {
	switch c := rec.(type) {
	case *datastore.CredentialRecord:
		return r.projectNative(c)
	case *datastore.W3CCredentialRecord:
		return r.projectW3C(c)
	default:
		panic(fmt.Sprintf("unknown credential record type %T", rec))
	}
}

func (r *Projector) projectNative(rec *datastore.CredentialRecord) (*Info, error) {
	attrs := make(map[string]string, len(rec.Credential.Values))
	for name, value := range rec.Credential.Values {
		attrs[name] = ursa.RawString(value.Raw)
	}

	return &Info{
		CredentialID:           rec.ID,
		Attributes:             attrs,
		SchemaID:               rec.SchemaID,
		CredentialDefinitionID: rec.CredentialDefinitionID,
		RevocationRegistryID:   rec.RevocationRegistryID,
		CredentialRevocationID: rec.CredentialRevocationID,
		MethodName:             rec.MethodName,
		LinkSecretID:           rec.LinkSecretID,
	}, nil
}

func (r *Projector) projectW3C(rec *datastore.W3CCredentialRecord) (*Info, error) {
	meta, err := r.meta.Get(rec.ID)
	if err != nil {
		return nil, err
	}

	tags, ok := extractTags(rec)
	if !ok {
		return nil, errors.Wrapf(ErrMissingTags, "record %s", rec.ID)
	}

	claims, err := rec.Credential.SubjectClaims()
	if err != nil {
		return nil, err
	}

	attrs := make(map[string]string, len(claims))
	for name, value := range claims {
		attrs[name] = ursa.RawString(value)
	}

	return &Info{
		CredentialID:           rec.ID,
		Attributes:             attrs,
		SchemaID:               tagString(tags, TagSchemaID),
		CredentialDefinitionID: tagString(tags, TagCredentialDefinitionID),
		RevocationRegistryID:   tagString(tags, TagRevocationRegistryID),
		MethodName:             meta.MethodName,
		LinkSecretID:           meta.LinkSecretID,
		CredentialRevocationID: meta.CredentialRevocationID,
	}, nil
}

// extractTags filters the record's raw tag mapping down to the anonCreds
// key space. The backing store may carry unrelated tags from other
// indexing concerns on the same record. Returns false if any required tag
// is absent, meaning the record was never tagged by this scheme.
func extractTags(rec *datastore.W3CCredentialRecord) (CredentialTags, bool) {
	tags := CredentialTags{}
	for k, v := range rec.Tags {
		if strings.HasPrefix(k, tagPrefix) {
			tags[k] = v
		}
	}

	for _, k := range requiredTags {
		if _, ok := tags[k]; !ok {
			return nil, false
		}
	}

	return tags, true
}

func tagString(tags CredentialTags, key string) string {
	s, _ := tags[key].(string)
	return s
}
