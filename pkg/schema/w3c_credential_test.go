package schema

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestW3CCredential_SubjectClaims(t *testing.T) {
	t.Run("single object subject", func(t *testing.T) {
		cred := &W3CCredential{
			CredentialSubject: json.RawMessage(`{"id":"did:sov:holder","name":"Alice","degree":"Maths","age":24}`),
		}

		claims, err := cred.SubjectClaims()
		require.NoError(t, err)
		require.Len(t, claims, 3)
		require.Equal(t, "Alice", claims["name"])
		require.Equal(t, "Maths", claims["degree"])
		require.EqualValues(t, 24, claims["age"])
		require.NotContains(t, claims, "id")
	})

	t.Run("array subject is malformed", func(t *testing.T) {
		cred := &W3CCredential{
			CredentialSubject: json.RawMessage(`[{"name":"Alice"},{"name":"Bob"}]`),
		}

		_, err := cred.SubjectClaims()
		require.Error(t, err)
		require.Equal(t, ErrMalformedSubject, errors.Cause(err))
	})

	t.Run("missing subject is malformed", func(t *testing.T) {
		cred := &W3CCredential{}

		_, err := cred.SubjectClaims()
		require.Error(t, err)
		require.Equal(t, ErrMalformedSubject, errors.Cause(err))
	})
}

func TestW3CCredential_SubjectID(t *testing.T) {
	cred := &W3CCredential{
		CredentialSubject: json.RawMessage(`{"id":"did:sov:holder","name":"Alice"}`),
	}
	require.Equal(t, "did:sov:holder", cred.SubjectID())

	cred.CredentialSubject = json.RawMessage(`{"name":"Alice"}`)
	require.Equal(t, "", cred.SubjectID())

	cred.CredentialSubject = json.RawMessage(`[{"id":"did:sov:holder"}]`)
	require.Equal(t, "", cred.SubjectID())
}
