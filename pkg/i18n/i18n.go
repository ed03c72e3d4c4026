package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hxo-dev/hxo/pkg/reactive"
)

// DefaultLocale is the locale a Translator starts in unless configured.
const DefaultLocale = "en"

// DefaultCacheSize bounds the number of resolved lookups kept per Translator.
const DefaultCacheSize = 512

// Messages is one locale's catalog. Values are strings or nested Messages.
type Messages map[string]any

// Data maps a locale to its catalog.
type Data map[string]Messages

// Option configures a Translator.
type Option func(*config)

type config struct {
	locale    string
	cacheSize int
}

// WithDefaultLocale sets the initial and fallback locale.
func WithDefaultLocale(locale string) Option {
	return func(c *config) {
		c.locale = locale
	}
}

// WithCacheSize sets the resolved-lookup cache size.
func WithCacheSize(n int) Option {
	return func(c *config) {
		c.cacheSize = n
	}
}

type cacheKey struct {
	locale string
	key    string
}

type entry struct {
	text string
	ok   bool
}

// Translator resolves message keys against the current locale.
// Catalogs must not be modified after New.
type Translator struct {
	data     Data
	fallback string
	locale   *reactive.Signal[string]
	cache    *lru.Cache[cacheKey, entry]
}

// New creates a Translator over data on rt.
func New(rt *reactive.Runtime, data Data, opts ...Option) (*Translator, error) {
	cfg := config{locale: DefaultLocale, cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.New[cacheKey, entry](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}
	if data == nil {
		data = Data{}
	}

	return &Translator{
		data:     data,
		fallback: cfg.locale,
		locale:   reactive.NewSignal(rt, cfg.locale),
		cache:    cache,
	}, nil
}

// Locale returns the current locale. Inside an effect the read is tracked.
func (t *Translator) Locale() string {
	return t.locale.Get()
}

// SetLocale switches the current locale. Effects that translated a key
// are scheduled to re-run.
func (t *Translator) SetLocale(locale string) {
	t.locale.Set(locale)
}

// Signal exposes the locale signal.
func (t *Translator) Signal() *reactive.Signal[string] {
	return t.locale
}

// Locales returns the locales that have a catalog, sorted.
func (t *Translator) Locales() []string {
	return slices.Sorted(maps.Keys(t.data))
}

// T translates key in the current locale.
func (t *Translator) T(key string) string {
	locale := t.locale.Get()
	if s, ok := t.lookup(locale, key); ok {
		return s
	}
	if locale != t.fallback {
		if s, ok := t.lookup(t.fallback, key); ok {
			return s
		}
	}
	return key
}

// Tf translates key and formats the result with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Has reports whether key resolves in the current locale, without falling
// back.
func (t *Translator) Has(key string) bool {
	_, ok := t.lookup(t.locale.Get(), key)
	return ok
}

func (t *Translator) lookup(locale, key string) (string, bool) {
	ck := cacheKey{locale: locale, key: key}
	if e, ok := t.cache.Get(ck); ok {
		return e.text, e.ok
	}
	s, ok := resolve(t.data[locale], key)
	t.cache.Add(ck, entry{text: s, ok: ok})
	return s, ok
}

// resolve finds key in m, first as a flat key and then as a dotted path.
// Only non-empty string leaves resolve.
func resolve(m Messages, key string) (string, bool) {
	if m == nil || key == "" {
		return "", false
	}
	if s, ok := m[key].(string); ok && s != "" {
		return s, true
	}

	var cur any = m
	for _, part := range strings.Split(key, ".") {
		next, ok := asMessages(cur)
		if !ok {
			return "", false
		}
		if cur, ok = next[part]; !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok && s != ""
}

func asMessages(v any) (Messages, bool) {
	switch m := v.(type) {
	case Messages:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}
