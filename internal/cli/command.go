package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/psdict/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "psdict [input]",
		Short: "Convert CMUdict to PocketSphinx format",
		Long: `psdict converts a CMU Pronouncing Dictionary to PocketSphinx format.

It strips stress markers (0, 1, 2) from phonemes and deduplicates
pronunciations that become identical after stress removal:

  interest    IH1 N T R AH0 S T  ->  interest    IH N T R AH S T
  interest(2) IH1 N T R IH0 S T  ->  interest(2) IH N T R IH S T

Examples:
  psdict                             # Convert ./cmudict.dict to stdout
  psdict cmudict.dict -o ps.dict     # Write converted dictionary to ps.dict
  psdict -v cmudict.dict             # Report progress on stderr`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.psdict.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print progress information to stderr")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".psdict" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".psdict")
	}

	// Environment variables
	viper.SetEnvPrefix("PSDICT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ResolveInput maps the positional argument to the input path. No argument
// or the conventional "-" placeholder selects the default dictionary file;
// there is no stdin fallback.
func ResolveInput(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return DefaultInput
	}
	return args[0]
}
