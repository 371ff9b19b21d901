package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/progress"
	"github.com/abhisek/wisdomquest/internal/scoring"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stars and unlocked levels per subject",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		snap := progress.NewStore(kv, nil).Load(ctx)
		verbose, _ := cmd.Flags().GetBool("levels")

		fmt.Printf("%-10s  %-8s  %8s  %8s\n", "Subject", "Name", "Stars", "Unlocked")
		fmt.Println(strings.Repeat("─", 42))

		var total int
		for _, s := range curriculum.AllSubjects() {
			stars := snap.TotalStars(s)
			total += stars
			fmt.Printf("%-10s  %-8s  %4d/%-3d  %5d/%d\n",
				s, s.Name(), stars, curriculum.LevelCount*scoring.MaxStars,
				snap.Unlocked(s), curriculum.LevelCount)

			if verbose {
				for _, l := range snap.Levels(s) {
					if l.IsLocked {
						continue
					}
					fmt.Printf("    %2d  %-12s  %s\n", l.ID, curriculum.LevelTitle(l.ID), starString(l.Stars))
				}
			}
		}

		fmt.Println(strings.Repeat("─", 42))
		fmt.Printf("%-20s  %8d\n", "TOTAL", total)
		return nil
	},
}

func starString(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", scoring.MaxStars-n)
}

func init() {
	statsCmd.Flags().BoolP("levels", "l", false, "List every unlocked level")
}
