package main

import (
	"github.com/spf13/cobra"

	"hvac_reward/internal/wire"
)

func newDecodeCmd(root *rootOptions) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Print a wire-encoded RewardResponse as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger(cmd)
			defer func() { _ = log.Sync() }()

			b, err := readInput(inPath)
			if err != nil {
				return err
			}
			resp, err := wire.UnmarshalResponse(b)
			if err != nil {
				log.Errorw("decode_failed", "err", err, "file", inPath)
				return err
			}
			return writeJSON(cmd, resp)
		},
	}
	cmd.Flags().StringVarP(&inPath, "file", "f", "", "Wire-encoded RewardResponse file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
