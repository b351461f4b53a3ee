package main

import (
	"errors"

	"github.com/mark3labs/modal/internal/descriptor"
	"github.com/spf13/cobra"
)

// descriptorFlags build or amend a descriptor from the command line
type descriptorFlags struct {
	title   string
	message string
	actions []string
}

func (f *descriptorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Dialog title")
	cmd.Flags().StringVarP(&f.message, "message", "m", "", "Dialog message")
	cmd.Flags().StringArrayVarP(&f.actions, "action", "a", nil, "Action button label (repeatable)")
}

// load reads the descriptor file when one is given and applies the flags on
// top of it. Flag actions are appended after the file's actions.
func (f *descriptorFlags) load(cmd *cobra.Command, args []string) (*descriptor.Descriptor, error) {
	var d *descriptor.Descriptor
	if len(args) > 0 {
		loaded, err := descriptor.Load(args[0])
		if err != nil {
			return nil, err
		}
		d = loaded
	} else {
		if f.title == "" && f.message == "" && len(f.actions) == 0 {
			return nil, errors.New("nothing to show: pass a descriptor file or --title, --message and --action")
		}
		d = descriptor.New("", "")
	}

	if cmd.Flags().Changed("title") {
		d.Title = f.title
	}
	if cmd.Flags().Changed("message") {
		d.Message = f.message
	}
	for _, label := range f.actions {
		if d.Actions == nil {
			d.Actions = []descriptor.Action{}
		}
		d.Actions = append(d.Actions, descriptor.Action{Label: label})
	}
	return d, nil
}
