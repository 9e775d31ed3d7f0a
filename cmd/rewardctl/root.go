package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hvac_reward/internal/config"
	"hvac_reward/internal/logger"
	"hvac_reward/internal/reward"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "rewardctl",
		Short:         "Compute and inspect HVAC agent rewards",
		Long:          "rewardctl evaluates RewardInfo fixtures with the same reward function the service uses and decodes wire-encoded responses.",
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file with reward.* parameters (defaults apply when empty)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log", logger.WarnLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(newComputeCmd(opts), newDecodeCmd(opts))
	return cmd
}

// logger writes to stderr so stdout stays clean for piping.
func (o *rootOptions) logger(cmd *cobra.Command) *logger.Logger {
	return logger.NewTo(cmd.ErrOrStderr(), o.logLevel, logger.ConsoleEncoding)
}

func (o *rootOptions) params() (reward.Params, error) {
	if o.configPath == "" {
		return reward.DefaultParams(), nil
	}
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return reward.Params{}, err
	}
	return cfg.Reward.Params(), nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return nil, fmt.Errorf("an input file is required (-f)")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}
