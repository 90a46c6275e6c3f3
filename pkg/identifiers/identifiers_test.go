/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package identifiers

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	nym      = "WgWxqztrNooG92RXvxSTWv"
	otherNym = "Th7MpTaRZVRYnPiabds81Y"
)

func TestQualifyDID(t *testing.T) {
	t.Run("qualifies a bare nym", func(t *testing.T) {
		did, err := QualifyDID(nym, "sovrin")
		require.NoError(t, err)
		require.Equal(t, "did:indy:sovrin:"+nym, did)
	})

	t.Run("is idempotent", func(t *testing.T) {
		did, err := QualifyDID(nym, "sovrin")
		require.NoError(t, err)

		again, err := QualifyDID(did, "sovrin")
		require.NoError(t, err)
		require.Equal(t, did, again)
	})

	t.Run("leaves a sov DID unchanged", func(t *testing.T) {
		did, err := QualifyDID("did:sov:"+nym, "sovrin")
		require.NoError(t, err)
		require.Equal(t, "did:sov:"+nym, did)
	})

	t.Run("supports two segment namespaces", func(t *testing.T) {
		did, err := QualifyDID(nym, "sovrin:staging")
		require.NoError(t, err)
		require.Equal(t, "did:indy:sovrin:staging:"+nym, did)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := QualifyDID("not a did", "sovrin")
		require.Error(t, err)
		require.Equal(t, ErrInvalidIdentifier, errors.Cause(err))
	})

	t.Run("rejects a bad namespace", func(t *testing.T) {
		_, err := QualifyDID(nym, "UPPER CASE")
		require.Error(t, err)
		require.Equal(t, ErrInvalidIdentifier, errors.Cause(err))
	})
}

func TestUnqualifyDID(t *testing.T) {
	t.Run("round trips through qualify", func(t *testing.T) {
		did, err := QualifyDID(nym, "sovrin")
		require.NoError(t, err)

		bare, err := UnqualifyDID(did)
		require.NoError(t, err)
		require.Equal(t, nym, bare)
	})

	t.Run("drops the sov prefix", func(t *testing.T) {
		bare, err := UnqualifyDID("did:sov:" + nym)
		require.NoError(t, err)
		require.Equal(t, nym, bare)
	})

	t.Run("drops a two segment namespace", func(t *testing.T) {
		bare, err := UnqualifyDID("did:indy:sovrin:staging:" + nym)
		require.NoError(t, err)
		require.Equal(t, nym, bare)
	})

	t.Run("is a no-op on a bare nym", func(t *testing.T) {
		bare, err := UnqualifyDID(nym)
		require.NoError(t, err)
		require.Equal(t, nym, bare)
	})

	t.Run("fails for methods with no legacy form", func(t *testing.T) {
		_, err := UnqualifyDID("did:web:example.org")
		require.Error(t, err)
		require.Equal(t, ErrInvalidIdentifier, errors.Cause(err))
	})
}

func TestDisjointness(t *testing.T) {
	ids := []string{
		nym,
		"did:indy:sovrin:" + nym,
		"did:sov:" + nym,
		nym + "/anoncreds/v0/SCHEMA/degree/1.0",
		"did:indy:sovrin:" + nym + "/anoncreds/v0/SCHEMA/degree/1.0",
		nym + "/anoncreds/v0/CLAIM_DEF/56495/default",
		"did:indy:sovrin:" + nym + "/anoncreds/v0/CLAIM_DEF/56495/default",
		nym + "/anoncreds/v0/REV_REG_DEF/56495/default/TAG1",
		"did:indy:sovrin:" + nym + "/anoncreds/v0/REV_REG_DEF/56495/default/TAG1",
		"did:web:example.org",
		"garbage",
		"",
	}

	checks := []struct {
		name        string
		qualified   func(string) bool
		unqualified func(string) bool
	}{
		{"DID", IsQualifiedDID, IsUnqualifiedDID},
		{"schema", IsQualifiedSchemaID, IsUnqualifiedSchemaID},
		{"cred def", IsQualifiedCredentialDefinitionID, IsUnqualifiedCredentialDefinitionID},
		{"rev reg", IsQualifiedRevocationRegistryID, IsUnqualifiedRevocationRegistryID},
	}

	for _, check := range checks {
		for _, id := range ids {
			if check.qualified(id) && check.unqualified(id) {
				t.Errorf("%s %q is both qualified and unqualified", check.name, id)
			}
		}
	}
}

func TestSchemaID(t *testing.T) {
	unqualified := nym + "/anoncreds/v0/SCHEMA/degree/1.0"
	qualified := "did:indy:sovrin:" + unqualified

	t.Run("predicates", func(t *testing.T) {
		require.True(t, IsUnqualifiedSchemaID(unqualified))
		require.False(t, IsQualifiedSchemaID(unqualified))
		require.True(t, IsQualifiedSchemaID(qualified))
		require.False(t, IsUnqualifiedSchemaID(qualified))

		// a schema id is not a DID and vice versa
		require.False(t, IsUnqualifiedDID(unqualified))
		require.False(t, IsQualifiedSchemaID("did:indy:sovrin:"+nym))
	})

	t.Run("round trip", func(t *testing.T) {
		q, err := QualifySchemaID(unqualified, "sovrin")
		require.NoError(t, err)
		require.Equal(t, qualified, q)

		u, err := UnqualifySchemaID(q)
		require.NoError(t, err)
		require.Equal(t, unqualified, u)
	})

	t.Run("idempotent", func(t *testing.T) {
		q, err := QualifySchemaID(qualified, "sovrin")
		require.NoError(t, err)
		require.Equal(t, qualified, q)
	})

	t.Run("rejects a nym that does not decode", func(t *testing.T) {
		_, err := QualifySchemaID("O0O0O0O0O0O0O0O0O0O0O0/anoncreds/v0/SCHEMA/degree/1.0", "sovrin")
		require.Error(t, err)
	})
}

func TestCredentialDefinitionID(t *testing.T) {
	unqualified := nym + "/anoncreds/v0/CLAIM_DEF/56495/default"
	qualified := "did:indy:sovrin:" + unqualified

	q, err := QualifyCredentialDefinitionID(unqualified, "sovrin")
	require.NoError(t, err)
	require.Equal(t, qualified, q)

	u, err := UnqualifyCredentialDefinitionID(q)
	require.NoError(t, err)
	require.Equal(t, unqualified, u)

	_, err = UnqualifyCredentialDefinitionID("did:web:example.org/cred-def/1")
	require.Error(t, err)
}

func TestRevocationRegistryID(t *testing.T) {
	unqualified := nym + "/anoncreds/v0/REV_REG_DEF/56495/default/TAG1"
	qualified := "did:indy:sovrin:" + unqualified

	q, err := QualifyRevocationRegistryID(unqualified, "sovrin")
	require.NoError(t, err)
	require.Equal(t, qualified, q)

	u, err := UnqualifyRevocationRegistryID(q)
	require.NoError(t, err)
	require.Equal(t, unqualified, u)
}

func TestHasLegacyForm(t *testing.T) {
	require.True(t, HasLegacyForm(nym))
	require.True(t, HasLegacyForm("did:sov:"+nym))
	require.True(t, HasLegacyForm("did:indy:sovrin:"+nym))
	require.True(t, HasLegacyForm("did:indy:sovrin:"+otherNym))
	require.False(t, HasLegacyForm("did:web:example.org"))
	require.False(t, HasLegacyForm("did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK"))
	require.False(t, HasLegacyForm(""))
}
