package main

import (
	"fmt"

	"github.com/joshuapare/uwvalue/value"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "set <store> <key> <value>",
		Short: "Set key to value, creating the store if needed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], args[1], args[2])
		},
	})
}

func runSet(storePath, key, raw string) error {
	m, err := loadStore(storePath)
	if err != nil {
		return err
	}
	defer value.Destroy(&m)

	keyVal, _ := value.NewString(key)
	if st := value.MapUpdate(&m, keyVal, parseLiteral(raw)); st.IsError() {
		return fmt.Errorf("%s: %s", key, st.Error())
	}
	printVerbose("%s: %s = %s\n", storePath, key, raw)
	return saveStore(storePath, m)
}
