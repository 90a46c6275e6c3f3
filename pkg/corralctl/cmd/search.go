package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoir/corral/pkg/credential"
)

var searchCmd = &cobra.Command{
	Use:   "search ATTR=VALUE",
	Short: "Find credentials by the raw value of a claim.",
	Args:  cobra.ExactArgs(1),
	Run:   searchExec,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func searchExec(_ *cobra.Command, args []string) {
	parts := strings.SplitN(args[0], "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		logrus.Fatalln("search term must be of the form ATTR=VALUE")
	}

	recs, err := ctx.Store().FindCredentialsByAttribute(parts[0], parts[1])
	if err != nil {
		logrus.Fatalln("unable to search credentials", err)
	}

	projector, err := credential.NewProjector(ctx)
	if err != nil {
		logrus.Fatalln("unable to create projector", err)
	}

	for _, rec := range recs {
		info, err := projector.ProjectInfo(rec)
		if err != nil {
			logrus.Warnln("unable to project credential", rec.RecordID(), err)
			continue
		}

		d, _ := json.MarshalIndent(info, " ", " ")
		fmt.Println(string(d))
	}
}
