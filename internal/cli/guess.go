package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGuessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess commands",
	}

	cmd.AddCommand(newGuessSubmitCmd())
	cmd.AddCommand(newGuessListCmd())

	return cmd
}

func newGuessSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <player-id> <word>",
		Short: "Submit a guess for a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GuessResult

			path := fmt.Sprintf("/api/v1/players/%s/guesses", args[0])
			if err := client.Post(path, map[string]string{"guess": args[1]}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGuessListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <player-id>",
		Short: "List a player's guesses in submission order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GuessesResult

			path := fmt.Sprintf("/api/v1/players/%s/guesses", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
