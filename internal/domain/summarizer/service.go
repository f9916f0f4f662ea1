package summarizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/news-summarizer/pkg/errors"
	"github.com/yanqian/news-summarizer/pkg/metrics"
	"github.com/yanqian/news-summarizer/pkg/util"
)

const defaultRecentLimit = 20

// Service exposes summarization capabilities.
type Service interface {
	Summarize(ctx context.Context, req Request) (Response, error)
	Analyze(ctx context.Context, req Request) (Analysis, error)
	Get(ctx context.Context, id string) (Record, error)
	Recent(ctx context.Context, limit int) ([]Record, error)
	Source(ctx context.Context, id string) (string, error)
}

type service struct {
	cfg     Config
	cache   Cache
	repo    Repository
	sources SourceStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewService is a wire provider for the summarizer domain.
func NewService(cfg Config, cache Cache, repo Repository, sources SourceStore, logger *slog.Logger) Service {
	if cfg.DefaultSentences <= 0 {
		cfg.DefaultSentences = DefaultSentenceCount
	}
	return &service{
		cfg:     cfg,
		cache:   cache,
		repo:    repo,
		sources: sources,
		logger:  logger.With("component", "summarizer.service"),
		now:     util.NowUTC,
	}
}

func (s *service) Summarize(ctx context.Context, req Request) (Response, error) {
	start := time.Now()
	text, count, err := s.validate(req)
	if err != nil {
		return Response{}, err
	}

	digest := digestOf(text, count)
	if cached, ok, err := s.cache.Get(ctx, digest); err != nil {
		s.logger.Warn("summary cache lookup failed", "digest", digest, "error", err)
	} else if ok {
		cached.Cached = true
		cached.DurationMs = util.ElapsedMs(start)
		s.logger.Debug("summary cache hit", "digest", digest, "id", cached.ID)
		return cached, nil
	}

	result, err := Extract(text, count)
	if err != nil {
		s.logger.Error("summarization failed", "digest", digest, "error", err)
		return Response{}, err
	}

	record := Record{
		ID:         uuid.New(),
		Digest:     digest,
		Summary:    result.Summary,
		Requested:  count,
		Selected:   len(result.Selected),
		Candidates: result.Candidates,
		CreatedAt:  s.now(),
	}
	if s.cfg.ArchiveSources {
		key := sourceKey(text)
		if err := s.sources.Put(ctx, key, []byte(text)); err != nil {
			s.logger.Warn("source archive failed", "id", record.ID, "error", err)
		} else {
			record.SourceKey = key
		}
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeStorage, "failed to store summary", err)
	}

	resp := Response{
		ID:        record.ID,
		Summary:   result.Summary,
		Sentences: sentenceTexts(result.Selected),
		Stats:     metrics.NewSummaryStats(text, result.Summary, result.Candidates, len(result.Selected)),
	}
	if err := s.cache.Set(ctx, digest, resp, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("summary cache store failed", "digest", digest, "error", err)
	}

	resp.DurationMs = util.ElapsedMs(start)
	s.logger.Info("summary generated", "id", record.ID, "candidates", result.Candidates, "selected", len(result.Selected))
	return resp, nil
}

func (s *service) Analyze(_ context.Context, req Request) (Analysis, error) {
	text, count, err := s.validate(req)
	if err != nil {
		return Analysis{}, err
	}
	analysis, err := Analyze(text, count)
	if err != nil {
		s.logger.Error("analysis failed", "error", err)
		return Analysis{}, err
	}
	return analysis, nil
}

func (s *service) Get(ctx context.Context, id string) (Record, error) {
	parsed, err := parseID(id)
	if err != nil {
		return Record{}, err
	}
	record, ok, err := s.repo.Find(ctx, parsed)
	if err != nil {
		return Record{}, apperrors.Wrap(apperrors.CodeStorage, "summary lookup failed", err)
	}
	if !ok {
		return Record{}, apperrors.Wrap(apperrors.CodeNotFound, "summary not found", nil)
	}
	return record, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "summary listing failed", err)
	}
	return records, nil
}

func (s *service) Source(ctx context.Context, id string) (string, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if record.SourceKey == "" {
		return "", apperrors.Wrap(apperrors.CodeNotFound, "source not archived", nil)
	}
	data, ok, err := s.sources.Get(ctx, record.SourceKey)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeStorage, "source lookup failed", err)
	}
	if !ok {
		return "", apperrors.Wrap(apperrors.CodeNotFound, "source not archived", nil)
	}
	return string(data), nil
}

func (s *service) validate(req Request) (string, int, error) {
	text := normalize(req.Text)
	if text == "" {
		return "", 0, apperrors.Wrap(apperrors.CodeInvalidInput, "text cannot be empty", nil)
	}
	if s.cfg.MaxInputLen > 0 && utf8.RuneCountInString(text) > s.cfg.MaxInputLen {
		return "", 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("text exceeds %d characters", s.cfg.MaxInputLen), nil)
	}

	count := req.Sentences
	switch {
	case count == 0:
		count = s.cfg.DefaultSentences
	case count < 0:
		return "", 0, apperrors.Wrap(apperrors.CodeInvalidInput, "sentences must be positive", nil)
	case s.cfg.MaxSentences > 0 && count > s.cfg.MaxSentences:
		return "", 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("sentences cannot exceed %d", s.cfg.MaxSentences), nil)
	}
	return text, count, nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid summary id", err)
	}
	return parsed, nil
}

func digestOf(text string, count int) string {
	sum := sha256.Sum256([]byte(strconv.Itoa(count) + "\n" + text))
	return hex.EncodeToString(sum[:])
}

// sourceKey is content addressed; every archive of one text shares an object.
func sourceKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "sources/" + hex.EncodeToString(sum[:]) + ".txt"
}

func sentenceTexts(sentences []ScoredSentence) []string {
	texts := make([]string, len(sentences))
	for i, s := range sentences {
		texts[i] = s.Text
	}
	return texts
}

// normalize drops control characters other than line breaks and tabs, which
// the segmenter relies on for paragraph boundaries.
func normalize(text string) string {
	text = strings.TrimSpace(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, text)
}
