package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gameCommands = []string{"move_left", "move_right", "soft_drop", "rotate", "hard_drop", "pause"}

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameSendCmd())
	cmd.AddCommand(newGameTickCmd())
	cmd.AddCommand(newGameResetCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameResponse

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result GameResponse

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "send <id> <command>",
		Short:     "Send a command to a game",
		Long:      "Send a player command to a game.\n\nValid commands: move_left, move_right, soft_drop, rotate, hard_drop, pause.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: gameCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			command := args[1]

			req := map[string]string{"command": command}
			var result GameResponse

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/commands", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameTickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tick <id>",
		Short: "Advance the game's drop timer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result GameResponse

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/tick", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Reset a game to a fresh board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result GameResponse

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/reset", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}
