package main

import (
	"fmt"

	"github.com/joshuapare/uwvalue/value"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "del <store> <key>",
		Short: "Remove key from the store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDel(args[0], args[1])
		},
	})
}

func runDel(storePath, key string) error {
	m, err := loadStore(storePath)
	if err != nil {
		return err
	}
	defer value.Destroy(&m)

	keyVal, _ := value.NewString(key)
	if st := value.MapDelete(&m, keyVal); st.IsError() {
		return fmt.Errorf("%s: %s", key, st.Error())
	}
	return saveStore(storePath, m)
}
