package cmd

import (
	"fmt"

	"github.com/mavila/zodico/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open attempt log: %w", err)
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		attempts, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		for _, a := range attempts {
			saved := "saved"
			if !a.Delivered {
				saved = "not saved"
			}
			fmt.Printf("%s  %s %s  %s, age %d  score %d/6  (%s)\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				a.GivenName, a.PaternalSurname,
				a.ZodiacSign, a.Age, a.Score, saved)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show")
}
