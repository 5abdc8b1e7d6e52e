package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the store is reachable with the configured credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := setup(os.Stderr)
		if err != nil {
			return err
		}

		client := newStoreClient(cfg)
		service, err := newJobsService(cfg, client)
		if err != nil {
			return err
		}

		if !service.TestConnection(cmd.Context()) {
			return errors.New("store connection failed, see log for details")
		}

		log.Infof("Store connection ok, table %q is readable", client.TableName())
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "store connection ok (table %s)\n", client.TableName())
		return err
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
