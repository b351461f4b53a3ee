package main

import (
	"fmt"

	"github.com/mark3labs/modal/internal/descriptor"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <descriptor.yml>",
	Short: "Check a dialog descriptor",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	d, err := descriptor.Load(args[0])
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%s is invalid:\n%w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d actions)\n", args[0], len(d.Actions))
	return nil
}
