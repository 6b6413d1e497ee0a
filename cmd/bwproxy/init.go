package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bwproxy/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, err := config.WriteDefault(configPath, force)
		if err != nil {
			return err
		}
		fmt.Println(color.GreenString("Wrote %s", path))
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}
