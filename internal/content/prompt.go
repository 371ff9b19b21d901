package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/wisdomquest/internal/curriculum"
)

func systemPrompt() string {
	return fmt.Sprintf(`You are %s, a wise owl and the game designer of an adventure-style learning game for Taiwanese primary-school children. You follow the Taiwanese national primary curriculum. You write in Traditional Chinese with a lively, adventurous tone and plenty of emoji, like dialogue in an RPG.`,
		curriculum.Story.MascotName)
}

func buildUserMessage(req Request, questions int) string {
	var b strings.Builder

	stage := curriculum.Stage(req.LevelID)
	chapter := curriculum.Chapter(req.Subject, req.LevelID)
	if chapter == "" {
		chapter = req.Topic
	}
	focus := curriculum.StageFocus(stage)

	fmt.Fprintf(&b, "Subject: %s\n", req.Subject.Name())
	fmt.Fprintf(&b, "Chapter: %s\n", chapter)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Level: %d (stage %d of %d in this chapter)\n", req.LevelID, stage, curriculum.LevelsPerChapter)
	fmt.Fprintf(&b, "Stage focus: %s\n", focus)
	fmt.Fprintf(&b, "Target students: %s\n", curriculum.GradeContext(req.LevelID))

	easy := questions / 4
	hard := questions / 4
	medium := questions - easy - hard

	fmt.Fprintf(&b, `
Instructions:
1. Every Chinese character MUST carry its zhuyin in the form 字(注音), e.g. 大(ㄉㄚˋ)家(ㄐㄧㄚ)好(ㄏㄠˇ). Leave English words and digits unannotated. The client parses this exact format.
2. Match vocabulary, number sizes and character difficulty to the target students.
3. lessonTitle: a short battle-flavoured title for "%s" stage %d.
4. lessonText: dialogue lines from the mascot, starting with "%s %s：", that teach the stage focus for this chapter.
5. questions: exactly %d multiple-choice questions with 3-4 options each, ramping in difficulty: %d warm-up (easy), %d core (medium), %d boss (hard).
6. Option ids are single capital letters starting at "A". correctOptionId must be one of the option ids.
7. explanation: the mascot's encouragement explaining why the answer is right.`,
		chapter, stage,
		curriculum.Story.MascotEmoji, curriculum.Story.MascotName,
		questions, easy, medium, hard)

	return b.String()
}
