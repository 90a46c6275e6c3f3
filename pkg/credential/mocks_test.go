package credential

import (
	storagemock "github.com/hyperledger/aries-framework-go/pkg/mock/storage"
	"github.com/hyperledger/aries-framework-go/pkg/storage"
)

type providerMock struct {
	store *storagemock.MockStoreProvider
}

func NewProvider() *providerMock {
	return &providerMock{
		store: &storagemock.MockStoreProvider{
			Store: &storagemock.MockStore{
				Store: map[string][]byte{},
			},
		},
	}
}

func (r *providerMock) StorageProvider() storage.Provider {
	return r.store
}
