package content

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/abhisek/wisdomquest/internal/llm"
)

// FallbackContent returns the static "signal lost" stub shown when
// generation fails. It has no questions.
func FallbackContent() *LevelContent {
	return &LevelContent{
		LessonTitle: "訊(ㄒㄩㄣˋ)號(ㄏㄠˋ)中(ㄓㄨㄥ)斷(ㄉㄨㄢˋ)",
		LessonText:  "🦉 波(ㄅㄛ)波(ㄅㄛ)：連(ㄌㄧㄢˊ)線(ㄒㄧㄢˋ)失(ㄕ)敗(ㄅㄞˋ)了(˙ㄌㄜ)... 請(ㄑㄧㄥˇ)稍(ㄕㄠ)後(ㄏㄡˋ)再(ㄗㄞˋ)試(ㄕˋ)！",
		Questions:   []Question{},
		Degraded:    true,
	}
}

// Fallback is a Generator that never fails: errors from the wrapped
// generator are logged and replaced by FallbackContent. Cancellation is
// still reported so abandoned loads are not mistaken for content.
type Fallback struct {
	inner Generator
	log   *zap.Logger
}

// NewFallback wraps inner. A nil inner (no provider configured) always
// yields the stub.
func NewFallback(inner Generator, log *zap.Logger) *Fallback {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fallback{inner: inner, log: log.Named("content")}
}

func (f *Fallback) Generate(ctx context.Context, req Request) (*LevelContent, error) {
	if f.inner == nil {
		f.log.Warn("no content generator, serving fallback", zap.Error(llm.ErrNotConfigured))
		return FallbackContent(), nil
	}

	c, err := f.inner.Generate(ctx, req)
	if err == nil && c != nil {
		return c, nil
	}
	if errors.Is(err, context.Canceled) {
		return nil, err
	}
	f.log.Error("content generation failed, serving fallback",
		zap.String("subject", string(req.Subject)),
		zap.Int("level", req.LevelID),
		zap.String("kind", llm.ErrorKind(err)),
		zap.Error(err))
	return FallbackContent(), nil
}
