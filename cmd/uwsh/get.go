package main

import (
	"fmt"

	"github.com/joshuapare/uwvalue/value"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "get <store> <key>",
		Short: "Print the value stored under key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	})
}

func runGet(storePath, key string) error {
	printVerbose("Opening store: %s\n", storePath)
	m, err := loadStore(storePath)
	if err != nil {
		return err
	}
	defer value.Destroy(&m)

	keyVal, _ := value.NewString(key)
	val, st := value.MapLookup(m, keyVal)
	if st.IsError() {
		return fmt.Errorf("%s: %s", key, st.Error())
	}
	if jsonOut {
		return printJSON(map[string]string{key: value.ToString(val)})
	}
	fmt.Println(value.ToString(val))
	return nil
}
