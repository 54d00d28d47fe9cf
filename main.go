// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	asciiLogo := `
████████╗██████╗ ███████╗███████╗██╗      █████╗ ██████╗
╚══██╔══╝██╔══██╗██╔════╝██╔════╝██║     ██╔══██╗██╔══██╗
   ██║   ██████╔╝█████╗  █████╗  ██║     ███████║██████╔╝
   ██║   ██╔══██╗██╔══╝  ██╔══╝  ██║     ██╔══██║██╔══██╗
   ██║   ██║  ██║███████╗███████╗███████╗██║  ██║██████╔╝
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝╚═════╝
Interactive workbench for a self-balancing (AVL) search tree [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Launches the line-oriented tree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads one action per line and prints the result`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Fatalf("Error loading configuration: %v", err)
			}
			sh := newShell(config, os.Stdout)
			if err := sh.run(os.Stdin); err != nil {
				log.Fatalf("Shell error: %v", err)
			}
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launches the full-screen tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a full-screen UI with the same actions as the shell`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, err := LoadConfig()
			if err != nil {
				log.Fatalf("Error loading configuration: %v", err)
			}
			if err := runExplorer(config); err != nil {
				log.Fatalf("Explorer error: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the Treelab usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the treelab usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getUsageMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the Treelab version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "treelab",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the shell when no subcommand is provided
			config, err := LoadConfig()
			if err != nil {
				log.Fatalf("Error loading configuration: %v", err)
			}
			sh := newShell(config, os.Stdout)
			if err := sh.run(os.Stdin); err != nil {
				log.Fatalf("Shell error: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdShell, cmdExplore, cmdUsage, cmdVersion)
	rootCmd.Execute()
}
