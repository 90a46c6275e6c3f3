package credential

import (
	"github.com/hyperledger/aries-framework-go/pkg/storage"
)

//go:generate mockery -inpkg -name=Provider
type Provider interface {
	StorageProvider() storage.Provider
}
