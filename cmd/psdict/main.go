package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/psdict/internal/cli"
	"codeberg.org/snonux/psdict/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Check if output file was set in config file
	if !cmd.Flags().Changed("output") {
		if out := viper.GetString("output.file"); out != "" {
			flags.Output = out
		}
	}
	if !cmd.Flags().Changed("verbose") && viper.GetBool("verbose") {
		flags.Verbose = true
	}

	// The command is quiet by default so the converted dictionary can be
	// piped; errors are printed by cobra on the way out.
	cmd.SilenceUsage = true

	proc := processor.NewProcessor(flags)
	return proc.Run(cli.ResolveInput(args))
}
