/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package framework

import (
	"github.com/hyperledger/aries-framework-go/pkg/storage"
	"github.com/pkg/errors"

	"github.com/scoir/corral/pkg/aries/storage/mongodb/store"
)

// WalletStoreConfig resolves the wallet side-table storage used for
// credential metadata.
type WalletStoreConfig struct {
	Database string        `mapstructure:"database"`
	Mongo    *store.Config `mapstructure:"mongo"`
}

func (r *WalletStoreConfig) StorageProvider() (storage.Provider, error) {
	var sp storage.Provider
	var err error

	switch r.Database {
	case "mongo":
		sp, err = store.NewProvider(r.Mongo)

	default:
		return nil, errors.New("no walletstore configuration was provided")
	}

	if err != nil {
		return nil, errors.Wrap(err, "unable to create walletstore based on config")
	}

	return sp, nil
}
