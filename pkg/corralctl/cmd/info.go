package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/corral/pkg/credential"
	"github.com/scoir/corral/pkg/datastore"
)

var infoCmd = &cobra.Command{
	Use:   "info CREDENTIAL_ID",
	Short: "Print the canonical info projection of a stored credential.",
	Args:  cobra.ExactArgs(1),
	Run:   infoExec,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func infoExec(_ *cobra.Command, args []string) {
	rec := loadRecord(args[0])

	projector, err := credential.NewProjector(ctx)
	if err != nil {
		logrus.Fatalln("unable to create projector", err)
	}

	info, err := projector.ProjectInfo(rec)
	if err != nil {
		logrus.Fatalln("unable to project credential info", err)
	}

	d, _ := json.MarshalIndent(info, " ", " ")
	fmt.Println(string(d))
}

// loadRecord tries both representations under the same ID.
func loadRecord(id string) datastore.Record {
	rec, err := ctx.Store().GetCredential(id)
	if err == nil {
		return rec
	}

	w3c, err := ctx.Store().GetW3CCredential(id)
	if err != nil {
		logrus.Fatalln("no credential found with id", id)
	}

	return w3c
}
