/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/hyperledger/aries-framework-go/pkg/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scoir/corral/pkg/datastore"
	"github.com/scoir/corral/pkg/framework"
)

var cfgFile string
var ctx *Provider

var rootCmd = &cobra.Command{
	Use:   "corral",
	Short: "The corral CLI inspects the corral credential store.",
	Long: `The corral CLI inspects credentials held in the corral credential store,
regardless of which representation they were written under.`,
}

// Provider wires the datastore and the wallet side-table storage for the
// subcommands.
type Provider struct {
	store                 datastore.Store
	walletStorageProvider storage.Provider
}

// StorageProvider satisfies credential.Provider.
func (r *Provider) StorageProvider() storage.Provider {
	return r.walletStorageProvider
}

func (r *Provider) Store() datastore.Store {
	return r.store
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/corral/corral-config.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	vp := viper.New()
	if cfgFile != "" {
		vp.SetConfigFile(cfgFile)
	} else {
		vp.SetConfigType("yaml")
		vp.AddConfigPath("/etc/corral/")
		vp.AddConfigPath(".")
		vp.SetConfigName("corral-config")
	}

	vp.SetEnvPrefix("CORRAL")
	vp.AutomaticEnv() // read in environment variables that match
	_ = vp.BindPFlags(pflag.CommandLine)

	if err := vp.ReadInConfig(); err != nil {
		fmt.Println("unable to read config:", vp.ConfigFileUsed(), err)
		os.Exit(1)
	}

	dc := &framework.DatastoreConfig{}
	err := vp.UnmarshalKey("datastore", dc)
	if err != nil {
		logrus.Fatalln("invalid datastore key in configuration")
	}

	dp, err := dc.StorageProvider()
	if err != nil {
		logrus.Fatalln(err)
	}

	store, err := dp.OpenStore("corral")
	if err != nil {
		logrus.Fatalln("unable to open datastore")
	}

	wc := &framework.WalletStoreConfig{}
	err = vp.UnmarshalKey("walletstore", wc)
	if err != nil {
		logrus.Fatalln("invalid walletstore key in configuration")
	}

	wsp, err := wc.StorageProvider()
	if err != nil {
		logrus.Fatalln(err)
	}

	ctx = &Provider{
		store:                 store,
		walletStorageProvider: wsp,
	}
}
