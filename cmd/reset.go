package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wisdomquest/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("this erases every star and unlocked level; re-run with --yes to confirm")
		}

		cfg, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		kv, closeKV, err := openProgressKV(ctx, cfg, st)
		if err != nil {
			return fmt.Errorf("open progress storage: %w", err)
		}
		defer closeKV()

		if _, err := progress.NewStore(kv, nil).Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress reset. Only level 1 of each subject is unlocked.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
