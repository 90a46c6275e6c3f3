package credential

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMetadataStore(t *testing.T) {
	prov := NewProvider()
	ms, err := NewMetadataStore(prov)
	require.NoError(t, err)

	t.Run("get before put reports missing metadata", func(t *testing.T) {
		_, err := ms.Get("cred-1")
		require.Error(t, err)
		require.Equal(t, ErrMissingMetadata, errors.Cause(err))
	})

	t.Run("round trip", func(t *testing.T) {
		err := ms.Put("cred-1", &Metadata{
			MethodName:             "indy",
			LinkSecretID:           "default",
			CredentialRevocationID: "1",
		})
		require.NoError(t, err)

		meta, err := ms.Get("cred-1")
		require.NoError(t, err)
		require.Equal(t, "indy", meta.MethodName)
		require.Equal(t, "default", meta.LinkSecretID)
		require.Equal(t, "1", meta.CredentialRevocationID)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		err := ms.Delete("cred-1")
		require.NoError(t, err)

		_, err = ms.Get("cred-1")
		require.Error(t, err)
		require.Equal(t, ErrMissingMetadata, errors.Cause(err))
	})

	t.Run("corrupt entry fails to load", func(t *testing.T) {
		err := prov.store.Store.Put("cred-2", []byte("not json"))
		require.NoError(t, err)

		_, err = ms.Get("cred-2")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid credential metadata record")
	})
}
