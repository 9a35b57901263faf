package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/htmltrans/internal/cli"
	"codeberg.org/snonux/htmltrans/internal/logger"
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

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		_, err := logger.Init(viper.GetString("log.level"), viper.GetString("log.format"))
		return err
	}

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		// Flags parsed fine, further errors are not usage errors
		cmd.SilenceUsage = true

		runner := &cli.Runner{
			Flags: flags,
			In:    os.Stdin,
			Out:   os.Stdout,
		}
		return runner.Run(cmd.Context(), args)
	}

	// SIGINT and SIGTERM stop the sweep before the next task
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
