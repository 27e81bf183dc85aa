// Package cmd is for command line interactions with the genoma application
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/csalas-alarcon/genoma-humano/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// stderr is for warnings and errors, stdout is left to results
	stderr = log.New(os.Stderr, "", 0)

	// conf is the settings of the running command, see loadConfig
	conf config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "genoma",
	Short: `Query and edit lists of DNA sequences.
Sequences are read from FASTA files, YAML manifests or two line records`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// loadConfig reads the settings of the command about to run from its
// flags, the environment and the settings file
func loadConfig(cmd *cobra.Command, args []string) error {
	stderr.SetOutput(cmd.ErrOrStderr())

	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	config.Defaults(v)

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case "settings", "verbose", "strict", "format", "width":
			if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
			}
		}
	})
	if bindErr != nil {
		return bindErr
	}

	c, err := config.New(v)
	if err != nil {
		return err
	}
	conf = c
	return nil
}

// set flags
func init() {
	// settings is an optional parameter for a settings file
	rootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log files loaded and sequences skipped")
	rootCmd.PersistentFlags().Bool("strict", false, "fail on an invalid sequence rather than skip it")
	rootCmd.PersistentFlags().StringP("format", "f", "", "format of input files: fasta, yaml or record (default by extension)")
}
