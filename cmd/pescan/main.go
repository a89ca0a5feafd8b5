// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pescan "github.com/saferwall/pescan"
	"github.com/saferwall/pescan/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pescan",
		Short: "Inspect PE/COFF images and list their dependencies",
	}
	root.AddCommand(newInspectCmd(), newDepsCmd())
	return root
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>",
		Short: "Decode an image's headers and print them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := pescan.FullHeaders(args[0], nil)
			if err != nil {
				log.Errorf("inspect %s: %v", args[0], err)
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(img)
		},
	}
}

func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <path>",
		Short: "Print the dependency list an image's import tables declare",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := pescan.FullHeaders(args[0], nil)
			if err != nil {
				log.Errorf("deps %s: %v", args[0], err)
				return err
			}
			if img.Full == nil {
				return fmt.Errorf("%s is a COFF object, not a linked image; it has no import tables", args[0])
			}
			for _, name := range img.Full.Dependencies() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
