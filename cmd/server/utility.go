package main

import (
	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level <xp>",
	Short: "Print the level reached with the given experience",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		xp, err := parseUint(args[0], "xp")
		if err != nil {
			return err
		}
		eng, err := newEngine(cfg)
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]interface{}{
			"xp":    xp,
			"level": eng.LevelForXP(xp),
		})
	},
}

var xpCmd = &cobra.Command{
	Use:   "xp <level>",
	Short: "Print the experience needed to reach a level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseUint(args[0], "level")
		if err != nil {
			return err
		}
		eng, err := newEngine(cfg)
		if err != nil {
			return err
		}
		if level > uint64(^uint32(0)) {
			level = uint64(^uint32(0))
		}
		xp, err := eng.XPForLevel(uint32(level))
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]interface{}{
			"level": level,
			"xp":    xp,
		})
	},
}

var boostedTimeCmd = &cobra.Command{
	Use:   "boosted-time <action-start> <action-duration> <boost-start> <boost-duration>",
	Short: "Print how many seconds of an action a boost covers",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := []string{"action-start", "action-duration", "boost-start", "boost-duration"}
		values := make([]uint64, len(args))
		for i, arg := range args {
			v, err := parseUint(arg, names[i])
			if err != nil {
				return err
			}
			values[i] = v
		}
		eng, err := newEngine(cfg)
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]interface{}{
			"boosted_seconds": eng.BoostedTime(values[0], values[1], values[2], values[3]),
		})
	},
}
