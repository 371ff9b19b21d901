package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wisdomquest/internal/content"
	"github.com/abhisek/wisdomquest/internal/curriculum"
	"github.com/abhisek/wisdomquest/internal/llm"
	"github.com/abhisek/wisdomquest/internal/phonetic"
	"github.com/abhisek/wisdomquest/internal/scoring"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated content for a level (no progress saved)",
	Long: `Generate the lesson and quiz for one level and answer it in the terminal.

This is a stateless developer tool: no progress is read or written and no
LLM events are recorded. Useful for evaluating content quality and prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("subject", "s", "", "Subject key: MATH, CHINESE, ENGLISH or LIFE (required)")
	previewCmd.Flags().IntP("level", "l", 1, "Level id (1-20)")
	previewCmd.Flags().Bool("phonetics", false, "Keep zhuyin readings in the output")
	_ = previewCmd.MarkFlagRequired("subject")
}

func runPreview(cmd *cobra.Command, args []string) error {
	key, _ := cmd.Flags().GetString("subject")
	levelID, _ := cmd.Flags().GetInt("level")
	keepReadings, _ := cmd.Flags().GetBool("phonetics")

	subject, err := curriculum.ParseSubject(strings.ToUpper(key))
	if err != nil {
		return err
	}
	if !curriculum.ValidLevel(levelID) {
		return fmt.Errorf("invalid level %d: must be 1-%d", levelID, curriculum.LevelCount)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// No EventRepo: logging skipped.
	ctx := context.Background()
	provider, err := llm.NewProvider(ctx, cfg.LLM, nil, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	text := phonetic.Strip
	if keepReadings {
		text = func(s string) string { return s }
	}

	req := content.Request{
		Subject: subject,
		Topic:   curriculum.Topic(subject, levelID),
		LevelID: levelID,
	}
	fmt.Printf("%s %s, level %d: %s\n", curriculum.Info(subject).Icon, subject.Name(), levelID, req.Topic)
	fmt.Println("Generating...")

	lc, err := content.NewService(provider, cfg.Content, nil).Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}

	fmt.Printf("\n== %s ==\n%s\n\n", text(lc.LessonTitle), text(lc.LessonText))

	scanner := bufio.NewScanner(os.Stdin)
	total := len(lc.Questions)
	var correct int

	for i, q := range lc.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, total)
		fmt.Println(text(q.Question))
		for _, o := range q.Options {
			fmt.Printf("  %s) %s\n", o.ID, text(o.Text))
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer == "" {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}

		if q.IsCorrect(answer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.CorrectOptionID)
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", text(q.Explanation))
		}
		fmt.Println()
	}

	if total == 0 {
		fmt.Println("── No questions generated ──")
		return nil
	}
	stars := scoring.Rate(correct, total)
	fmt.Printf("── Summary: %d/%d correct, %s ──\n", correct, total, starString(stars))
	fmt.Println(scoring.Message(stars))
	return nil
}
