package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/wisdomquest/internal/llm"
)

// Service generates level content with an LLM provider. Concurrent requests
// for the same subject and level share a single provider call.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
	group    singleflight.Group
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Questions <= 0 {
		cfg.Questions = DefaultConfig().Questions
	}
	return &Service{provider: provider, cfg: cfg, log: log.Named("content")}
}

// Generate returns freshly generated content for req. A caller that joins
// an in-flight request for the same level waits on it; cancelling ctx only
// abandons this caller's wait, never the shared call.
func (s *Service) Generate(ctx context.Context, req Request) (*LevelContent, error) {
	key := fmt.Sprintf("%s:%d", req.Subject, req.LevelID)
	ch := s.group.DoChan(key, func() (any, error) {
		return s.generate(context.WithoutCancel(ctx), req)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		c := res.Val.(*LevelContent)
		if res.Shared {
			s.log.Debug("content request shared", zap.String("key", key))
			c = c.clone()
		}
		return c, nil
	}
}

func (s *Service) generate(ctx context.Context, req Request) (*LevelContent, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt(),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, s.cfg.Questions)},
		},
		Schema:      LevelSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("level content generation: %w", err)
	}

	var out LevelContent
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse level content: %w", err)
	}

	kept := sanitize(out.Questions)
	if dropped := len(out.Questions) - len(kept); dropped > 0 {
		s.log.Warn("dropped malformed questions",
			zap.String("subject", string(req.Subject)),
			zap.Int("level", req.LevelID),
			zap.Int("dropped", dropped))
	}
	out.Questions = kept

	s.log.Info("level content generated",
		zap.String("subject", string(req.Subject)),
		zap.Int("level", req.LevelID),
		zap.Int("questions", len(out.Questions)),
		zap.String("model", resp.Model))
	return &out, nil
}

// sanitize drops questions a player could not answer: blank text, fewer
// than two options, duplicate option ids, or a correct id not among the
// options.
func sanitize(qs []Question) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) < 2 {
			continue
		}
		seen := make(map[string]bool, len(q.Options))
		ok := true
		for _, o := range q.Options {
			if o.ID == "" || seen[o.ID] {
				ok = false
				break
			}
			seen[o.ID] = true
		}
		if !ok || !seen[q.CorrectOptionID] {
			continue
		}
		out = append(out, q)
	}
	return out
}
