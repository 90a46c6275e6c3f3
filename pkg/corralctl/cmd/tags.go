package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/corral/pkg/datastore"
)

var tagsCmd = &cobra.Command{
	Use:   "tags CREDENTIAL_ID",
	Short: "Print the search tags stored with a credential.",
	Args:  cobra.ExactArgs(1),
	Run:   tagsExec,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func tagsExec(_ *cobra.Command, args []string) {
	rec := loadRecord(args[0])

	var tags map[string]interface{}
	switch c := rec.(type) {
	case *datastore.CredentialRecord:
		tags = c.Tags
	case *datastore.W3CCredentialRecord:
		tags = c.Tags
	}

	if len(tags) == 0 {
		logrus.Fatalln("credential", args[0], "has no tags")
	}

	d, _ := json.MarshalIndent(tags, " ", " ")
	fmt.Println(string(d))
}
