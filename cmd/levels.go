package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wisdomquest/internal/curriculum"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Browse the level catalog of a subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("subject")

		subjects := curriculum.AllSubjects()
		if key != "" {
			s, err := curriculum.ParseSubject(strings.ToUpper(key))
			if err != nil {
				return err
			}
			subjects = []curriculum.Subject{s}
		}

		for _, s := range subjects {
			fmt.Printf("%s %s (%s)\n", curriculum.Info(s).Icon, s.Name(), s)
			fmt.Println(strings.Repeat("─", 72))
			for id := 1; id <= curriculum.LevelCount; id++ {
				fmt.Printf("%3d  %-14s  %s\n", id, curriculum.LevelTitle(id), curriculum.Topic(s, id))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	levelsCmd.Flags().StringP("subject", "s", "", "Subject key: MATH, CHINESE, ENGLISH or LIFE")
}
