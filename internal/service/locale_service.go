package service

import (
	"context"
	"log"
	"mammacheck/internal/model"
	"mammacheck/internal/repository"
	"sort"
	"strings"
	"sync"
)

// LocaleService serves localization tables. Stored bundles override the
// built-in ones key by key; a language without any bundle falls back to
// English.
type LocaleService struct {
	repo repository.LocaleRepo

	mu     sync.RWMutex
	loaded map[string]map[string]string
}

func NewLocaleService(repo repository.LocaleRepo) *LocaleService {
	return &LocaleService{
		repo:   repo,
		loaded: make(map[string]map[string]string),
	}
}

// Bundle returns the merged table for a language. It never fails: when the
// store is unreachable the built-in table is served and not cached, so the
// next call retries the store.
func (s *LocaleService) Bundle(ctx context.Context, language string) *model.LocaleBundle {
	language = normalizeLanguage(language)
	return &model.LocaleBundle{
		Language: language,
		Entries:  s.table(ctx, language),
	}
}

// Resolve looks up a single key and substitutes {name} placeholders from
// params. Unknown keys resolve to the key itself so a missing translation is
// visible instead of blank.
func (s *LocaleService) Resolve(ctx context.Context, language, key string, params map[string]string) string {
	text, ok := s.table(ctx, normalizeLanguage(language))[key]
	if !ok {
		return key
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

// Upsert stores an override bundle and drops the cached merge for that
// language.
func (s *LocaleService) Upsert(ctx context.Context, language string, entries map[string]string) error {
	language = normalizeLanguage(language)
	if err := s.repo.Upsert(ctx, &model.LocaleBundle{Language: language, Entries: entries}); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.loaded, language)
	s.mu.Unlock()
	return nil
}

// Languages lists every language with a bundle, built-in or stored.
func (s *LocaleService) Languages(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool, len(builtinBundles))
	for lang := range builtinBundles {
		seen[lang] = true
	}
	stored, err := s.repo.Languages(ctx)
	if err != nil {
		return nil, err
	}
	for _, lang := range stored {
		seen[lang] = true
	}
	out := make([]string, 0, len(seen))
	for lang := range seen {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out, nil
}

func (s *LocaleService) table(ctx context.Context, language string) map[string]string {
	s.mu.RLock()
	table, ok := s.loaded[language]
	s.mu.RUnlock()
	if ok {
		return table
	}

	base, ok := builtinBundles[language]
	if !ok {
		base = builtinBundles[DefaultLanguage]
	}
	merged := make(map[string]string, len(base))
	for k, v := range base {
		merged[k] = v
	}

	stored, err := s.repo.Get(ctx, language)
	if err != nil {
		log.Printf("Failed to load locale bundle %q, serving built-in: %v", language, err)
		return merged
	}
	if stored != nil {
		for k, v := range stored.Entries {
			merged[k] = v
		}
	}

	s.mu.Lock()
	s.loaded[language] = merged
	s.mu.Unlock()
	return merged
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if i := strings.IndexAny(language, "-_"); i > 0 {
		language = language[:i]
	}
	if language == "" {
		return DefaultLanguage
	}
	return language
}
