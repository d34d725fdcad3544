package service

import (
	"context"
	"fmt"
	"strings"

	"lexibot/internal/catalog"
	"lexibot/internal/domain"
	"lexibot/internal/generator"

	"go.uber.org/zap"
)

// ExampleGenerator produces an example sentence for a word
type ExampleGenerator interface {
	Example(ctx context.Context, word string) (string, error)
}

const (
	labelAdd        = "Добавить"
	labelSkip       = "Пропустить"
	labelDictionary = "📖 Словарь"

	textSkipped         = "Ок, пропускаем."
	textEmptyDictionary = "Словарь пуст."
)

// TrainerService drives the vocabulary conversation
type TrainerService struct {
	sessions  *SessionService
	catalog   *catalog.Catalog
	generator ExampleGenerator
	pick      catalog.Picker
	logger    *zap.Logger
}

// NewTrainerService creates a new trainer. generator may be nil to disable examples.
func NewTrainerService(
	sessions *SessionService,
	words *catalog.Catalog,
	gen ExampleGenerator,
	logger *zap.Logger,
) *TrainerService {
	return &TrainerService{
		sessions:  sessions,
		catalog:   words,
		generator: gen,
		logger:    logger,
	}
}

// Start returns the greeting with the level menu
func (s *TrainerService) Start(firstName string) Reply {
	greeting := "Привет!"
	if name := strings.TrimSpace(firstName); name != "" {
		greeting = fmt.Sprintf("Привет, %s!", name)
	}

	levels := domain.Levels()
	keyboard := make([][]Button, 0, len(levels)/2)
	for i := 0; i < len(levels); i += 2 {
		row := []Button{{Label: levels[i].String(), Action: domain.LevelAction(levels[i])}}
		if i+1 < len(levels) {
			row = append(row, Button{Label: levels[i+1].String(), Action: domain.LevelAction(levels[i+1])})
		}
		keyboard = append(keyboard, row)
	}

	return Reply{
		Text:     greeting + "\nВыбери уровень:",
		Keyboard: keyboard,
	}
}

// ChooseLevel stores the level and returns the acknowledgment.
// The first word is presented separately so the acknowledgment never waits on the generator.
func (s *TrainerService) ChooseLevel(userID int64, level domain.Level) (Reply, error) {
	if err := s.sessions.SelectLevel(userID, level); err != nil {
		return Reply{}, err
	}

	s.logger.Info("Level selected",
		zap.Int64("user_id", userID),
		zap.String("level", level.String()),
	)

	return Reply{
		Text:     fmt.Sprintf("Уровень установлен: %s", boldMarkdown(level.String())),
		Markdown: true,
	}, nil
}

// PresentWord picks a random word of level and renders it with action buttons.
// Generator failures are replaced by generator.Fallback.
func (s *TrainerService) PresentWord(ctx context.Context, level domain.Level) (Card, error) {
	entry, err := s.catalog.Random(level, s.pick)
	if err != nil {
		return Card{}, fmt.Errorf("present word: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Новое слово:\n🇬🇧 %s — 🇷🇺 %s",
		boldMarkdown(entry.Source), boldMarkdown(entry.Target))

	example := s.example(ctx, entry.Source)
	if example != "" {
		fmt.Fprintf(&b, "\n\n💬 %s", escapeMarkdown(example))
	}

	return Card{
		Entry:   entry,
		Example: example,
		Reply: Reply{
			Text:     b.String(),
			Markdown: true,
			Keyboard: [][]Button{
				{
					{Label: labelAdd, Action: domain.AddAction(entry.Source)},
					{Label: labelSkip, Action: domain.SkipAction(entry.Source)},
				},
				{
					{Label: labelDictionary, Action: domain.ShowDictionaryAction()},
				},
			},
		},
	}, nil
}

func (s *TrainerService) example(ctx context.Context, word string) string {
	if s.generator == nil {
		return ""
	}

	text, err := s.generator.Example(ctx, word)
	if err != nil {
		s.logger.Warn("Failed to generate example, using fallback",
			zap.String("word", word),
			zap.Error(err),
		)
		return generator.Fallback
	}
	return text
}

// NextWord presents a word for the user's current level.
// Returns false when no level is selected.
func (s *TrainerService) NextWord(ctx context.Context, userID int64) (Card, bool) {
	level, ok := s.sessions.Level(userID)
	if !ok {
		s.logger.Debug("Next word requested without level", zap.Int64("user_id", userID))
		return Card{}, false
	}

	card, err := s.PresentWord(ctx, level)
	if err != nil {
		s.logger.Error("Failed to present next word",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return Card{}, false
	}
	return card, true
}

// AddWord saves term and returns the acknowledgment
func (s *TrainerService) AddWord(userID int64, term string) Reply {
	added, err := s.sessions.SaveWord(userID, term)
	if err != nil {
		s.logger.Warn("Failed to save word", zap.Int64("user_id", userID), zap.Error(err))
	} else {
		s.logger.Info("Word saved",
			zap.Int64("user_id", userID),
			zap.String("word", term),
			zap.Bool("new", added),
		)
	}

	return Reply{
		Text:     "Добавлено: " + boldMarkdown(term),
		Markdown: true,
	}
}

// Skip returns the acknowledgment for a skipped word
func (s *TrainerService) Skip(userID int64) Reply {
	s.logger.Debug("Word skipped", zap.Int64("user_id", userID))
	return Reply{Text: textSkipped}
}

// Dictionary renders the user's saved words
func (s *TrainerService) Dictionary(userID int64) Reply {
	words := s.sessions.Dictionary(userID)
	if len(words) == 0 {
		return Reply{Text: textEmptyDictionary}
	}

	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = "• " + w
	}
	return Reply{Text: "Твой словарь:\n" + strings.Join(lines, "\n")}
}
