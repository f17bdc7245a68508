package main

import (
	"os"

	"github.com/joshuapare/uwvalue/value"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "dump <store>",
		Short: "Pretty-print the store's underlying Map cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	})
}

func runDump(storePath string) error {
	m, err := loadStore(storePath)
	if err != nil {
		return err
	}
	defer value.Destroy(&m)

	value.Dump(os.Stdout, m, 0)
	return nil
}
