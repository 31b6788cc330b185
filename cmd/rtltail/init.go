package main

import (
	"fmt"
	"io/ioutil"

	"github.com/giltho/CompCert/tailcall"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// initCmd: rtltail init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return err
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
		return nil
	},
}

func initConfigurationFile(path string) error {
	if path == "" {
		path = tailcall.DefaultConfigFile
	}
	d, err := tailcall.MarshalConfig(tailcall.DefaultConfig())
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, d, 0644)
}
