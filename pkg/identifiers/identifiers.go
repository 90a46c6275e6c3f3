/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identifiers

import (
	"regexp"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// ErrInvalidIdentifier is returned when a string matches neither the
// qualified nor the unqualified shape for its identifier kind.
var ErrInvalidIdentifier = errors.New("invalid identifier")

const (
	// MethodIndy is the DID method whose identifiers carry a legacy
	// unqualified form.
	MethodIndy = "indy"

	// MethodSov is the original Sovrin method. It belongs to the same
	// legacy family as indy and unqualifies the same way.
	MethodSov = "sov"

	indyPrefix = "did:indy:"
)

const (
	nymPattern       = `[1-9A-HJ-NP-Za-km-z]{21,22}`
	namespacePattern = `[a-z][a-z0-9_-]*(?::[a-z][a-z0-9_-]*)?`

	schemaPathPattern   = `/anoncreds/v0/SCHEMA/[^/\s]+/[^/\s]+`
	claimDefPathPattern = `/anoncreds/v0/CLAIM_DEF/[^/\s]+/[^/\s]+`
	revRegPathPattern   = `/anoncreds/v0/REV_REG_DEF/[^/\s]+/[^/\s]+/[^/\s]+`
)

var namespaceRegex = regexp.MustCompile(`^` + namespacePattern + `$`)

// kind describes the two shapes of one identifier kind. The qualified
// expression captures the bare identifier so unqualify can drop the
// method and namespace segments without guessing where they end.
type kind struct {
	name        string
	qualified   *regexp.Regexp
	unqualified *regexp.Regexp
}

func newKind(name, path string) kind {
	return kind{
		name:        name,
		qualified:   regexp.MustCompile(`^did:(?:indy:` + namespacePattern + `:|sov:)(` + nymPattern + path + `)$`),
		unqualified: regexp.MustCompile(`^(` + nymPattern + `)` + path + `$`),
	}
}

var (
	didKind      = newKind("DID", "")
	schemaKind   = newKind("schema ID", schemaPathPattern)
	claimDefKind = newKind("credential definition ID", claimDefPathPattern)
	revRegKind   = newKind("revocation registry ID", revRegPathPattern)
)

// isNym reports whether s is a base58 encoding of a 16 byte identifier,
// the self-certifying nym form used by legacy networks.
func isNym(s string) bool {
	d, err := base58.Decode(s)
	return err == nil && len(d) == 16
}

func nymOf(bare string) string {
	if i := strings.Index(bare, "/"); i > 0 {
		return bare[:i]
	}
	return bare
}

func (k kind) isQualified(id string) bool {
	m := k.qualified.FindStringSubmatch(id)
	return m != nil && isNym(nymOf(m[1]))
}

func (k kind) isUnqualified(id string) bool {
	m := k.unqualified.FindStringSubmatch(id)
	return m != nil && isNym(m[1])
}

func (k kind) qualify(id, namespace string) (string, error) {
	if k.isQualified(id) {
		return id, nil
	}

	if !k.isUnqualified(id) {
		return "", errors.Wrapf(ErrInvalidIdentifier, "%q is not a valid %s", id, k.name)
	}

	if !namespaceRegex.MatchString(namespace) {
		return "", errors.Wrapf(ErrInvalidIdentifier, "invalid namespace %q", namespace)
	}

	return indyPrefix + namespace + ":" + id, nil
}

func (k kind) unqualify(id string) (string, error) {
	if k.isUnqualified(id) {
		return id, nil
	}

	m := k.qualified.FindStringSubmatch(id)
	if m == nil || !isNym(nymOf(m[1])) {
		return "", errors.Wrapf(ErrInvalidIdentifier, "%q has no unqualified %s form", id, k.name)
	}

	return m[1], nil
}

// IsQualifiedDID reports whether did is a fully qualified DID of the
// legacy-capable method family.
func IsQualifiedDID(did string) bool { return didKind.isQualified(did) }

// IsUnqualifiedDID reports whether did is a bare legacy nym.
func IsUnqualifiedDID(did string) bool { return didKind.isUnqualified(did) }

// QualifyDID returns the did:indy qualified form of did under namespace.
// Already qualified input is returned unchanged.
func QualifyDID(did, namespace string) (string, error) { return didKind.qualify(did, namespace) }

// UnqualifyDID drops the method and namespace segments of did. Only
// defined for the indy/sov method family.
func UnqualifyDID(did string) (string, error) { return didKind.unqualify(did) }

func IsQualifiedSchemaID(id string) bool   { return schemaKind.isQualified(id) }
func IsUnqualifiedSchemaID(id string) bool { return schemaKind.isUnqualified(id) }

func QualifySchemaID(id, namespace string) (string, error) { return schemaKind.qualify(id, namespace) }
func UnqualifySchemaID(id string) (string, error)          { return schemaKind.unqualify(id) }

func IsQualifiedCredentialDefinitionID(id string) bool   { return claimDefKind.isQualified(id) }
func IsUnqualifiedCredentialDefinitionID(id string) bool { return claimDefKind.isUnqualified(id) }

func QualifyCredentialDefinitionID(id, namespace string) (string, error) {
	return claimDefKind.qualify(id, namespace)
}

func UnqualifyCredentialDefinitionID(id string) (string, error) {
	return claimDefKind.unqualify(id)
}

func IsQualifiedRevocationRegistryID(id string) bool   { return revRegKind.isQualified(id) }
func IsUnqualifiedRevocationRegistryID(id string) bool { return revRegKind.isUnqualified(id) }

func QualifyRevocationRegistryID(id, namespace string) (string, error) {
	return revRegKind.qualify(id, namespace)
}

func UnqualifyRevocationRegistryID(id string) (string, error) {
	return revRegKind.unqualify(id)
}

// HasLegacyForm reports whether did belongs to the indy/sov method family
// and therefore mirrors into an unqualified form. DIDs of other methods
// have no legacy form and are skipped during tag mirroring.
func HasLegacyForm(did string) bool {
	return didKind.isUnqualified(did) || didKind.isQualified(did)
}
