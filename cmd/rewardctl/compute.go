package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hvac_reward"
	"hvac_reward/internal/reward"
	"hvac_reward/internal/wire"
)

const (
	outputJSON = "json"
	outputWire = "wire"
)

func newComputeCmd(root *rootOptions) *cobra.Command {
	var (
		inPath string
		output string
	)
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the reward for a RewardInfo fixture",
		Long:  "Reads a RewardInfo from a YAML, JSON or wire-encoded (.bin, .pb) file and prints the RewardResponse.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputJSON && output != outputWire {
				return fmt.Errorf("unknown output %q (use %s or %s)", output, outputJSON, outputWire)
			}
			log := root.logger(cmd)
			defer func() { _ = log.Sync() }()

			b, err := readInput(inPath)
			if err != nil {
				return err
			}
			info, err := parseInfo(inPath, b)
			if err != nil {
				return err
			}
			params, err := root.params()
			if err != nil {
				return err
			}

			resp, err := reward.Compute(info, params)
			if err != nil {
				log.Errorw("compute_failed", "err", err, "agent_id", info.AgentID, "file", inPath)
				return err
			}
			log.Infow("reward_computed", "agent_id", info.AgentID, "reward", resp.AgentRewardValue)

			if output == outputWire {
				b, err := wire.MarshalResponse(resp)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			return writeJSON(cmd, resp)
		},
	}
	cmd.Flags().StringVarP(&inPath, "file", "f", "", "RewardInfo file (.yaml, .yml, .json, .bin, .pb)")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format: json or wire")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func parseInfo(path string, b []byte) (hvac_reward.RewardInfo, error) {
	var info hvac_reward.RewardInfo
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(b, &info); err != nil {
			return info, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".bin", ".pb":
		return wire.UnmarshalInfo(b)
	default:
		if err := yaml.Unmarshal(b, &info); err != nil {
			return info, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return info, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
