package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Leaderboard commands",
	}

	cmd.AddCommand(newLeaderboardTopCmd())
	cmd.AddCommand(newLeaderboardSubmitCmd())
	cmd.AddCommand(newLeaderboardBestCmd())

	return cmd
}

func newLeaderboardTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the top scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/leaderboard"
			if limit > 0 {
				path += "?limit=" + strconv.Itoa(limit)
			}

			var result Leaderboard

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries to show")

	return cmd
}

func newLeaderboardSubmitCmd() *cobra.Command {
	var level, lines int

	cmd := &cobra.Command{
		Use:   "submit <player> <score>",
		Short: "Submit a score for a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player := args[0]

			score, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid score: %w", err)
			}

			req := map[string]any{
				"player": player,
				"score":  score,
				"level":  level,
				"lines":  lines,
			}
			var result SubmitResult

			if err := client.Post("/api/v1/scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 1, "Level reached")
	cmd.Flags().IntVar(&lines, "lines", 0, "Lines cleared")

	return cmd
}

func newLeaderboardBestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best <player>",
		Short: "Show a player's best score and rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player := args[0]

			var result ScoreEntry

			if err := client.Get(fmt.Sprintf("/api/v1/leaderboard/%s", player), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
