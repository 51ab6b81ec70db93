package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameScoresCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var word string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{}
			if word != "" {
				body["word"] = word
			}

			var result CreateGameResult

			if err := client.Post("/api/v1/games", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&word, "word", "w", "", "Custom solution word (default: random)")

	return cmd
}

func newGameJoinCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "join <game-id>",
		Short: "Join a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return fmt.Errorf("--username is required")
			}

			var result JoinGameResult

			path := fmt.Sprintf("/api/v1/games/%s/join", args[0])
			if err := client.Post(path, map[string]string{"username": username}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Display name to join as")

	return cmd
}

func newGameScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores <game-id>",
		Short: "Show the game leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ScoresResult

			path := fmt.Sprintf("/api/v1/games/%s/scores", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
