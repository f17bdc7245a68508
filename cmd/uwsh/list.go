package main

import (
	"fmt"

	"github.com/joshuapare/uwvalue/value"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list <store>",
		Short: "List every key/value pair in the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0])
		},
	})
}

func runList(storePath string) error {
	m, err := loadStore(storePath)
	if err != nil {
		return err
	}
	defer value.Destroy(&m)

	if jsonOut {
		out := make(map[string]string, value.MapLen(m))
		value.MapEach(m, func(key, val value.Value) {
			out[value.ToString(key)] = value.ToString(val)
		})
		return printJSON(out)
	}
	value.MapEach(m, func(key, val value.Value) {
		fmt.Printf("%s=%s\n", value.ToString(key), value.ToString(val))
	})
	return nil
}
