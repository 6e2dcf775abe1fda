// Package i18n implements the fallback-chain translator consulted by
// the diagnostic engine to render localized messages, grounded on
// original_source/src/i18n/base/translator.h.
package i18n

import "strings"

// Language identifies a locale, e.g. "en", "en-US", "ja".
type Language string

// DefaultLanguage is the final fallback of last resort.
const DefaultLanguage Language = "en"

// Config describes a translator's fallback chain.
type Config struct {
	Primary           Language
	Fallbacks         []Language
	SkipEmptyStrings  bool
}

// DefaultConfig returns a Config whose primary language is the
// default language and has no extra fallbacks.
func DefaultConfig() Config {
	return Config{Primary: DefaultLanguage}
}

// WithFallbacks returns a Config with primary plus up to four
// fallback languages, matching the original's kMaxFallbackLanguages
// bound.
func WithFallbacks(primary Language, fallbacks ...Language) Config {
	if len(fallbacks) > 4 {
		fallbacks = fallbacks[:4]
	}
	return Config{Primary: primary, Fallbacks: fallbacks}
}

// Regional builds a fallback chain for a region-qualified locale (e.g.
// "en-GB" falls back to "en" before the global default). Supplements
// spec.md's Translator description per SPEC_FULL §1.
func Regional(locale Language) Config {
	base, _, found := strings.Cut(string(locale), "-")
	if !found {
		return Config{Primary: locale}
	}
	return Config{Primary: locale, Fallbacks: []Language{Language(base)}}
}

// Table maps (language, key) to a message template containing
// positional "{}" placeholders. The key enum/table contents themselves
// are data, not part of this design (spec.md §1), so Table is exported
// for a host program to populate.
type Table map[Language]map[string]string

// Translator walks Config's chain to resolve a key to its template,
// then fills positional placeholders.
type Translator struct {
	cfg   Config
	table Table
}

// New returns a Translator over table using cfg's fallback chain.
func New(cfg Config, table Table) *Translator {
	return &Translator{cfg: cfg, table: table}
}

// Translate resolves key through primary -> fallbacks -> default,
// returning the raw (unformatted) template. If no entry is found
// anywhere in the chain it returns "<?>", matching the original's
// fallback-of-last-resort behavior.
func (t *Translator) Translate(key string) string {
	for _, lang := range t.chain() {
		if msgs, ok := t.table[lang]; ok {
			if msg, ok := msgs[key]; ok {
				if msg != "" || !t.cfg.SkipEmptyStrings {
					return msg
				}
			}
		}
	}
	return "<?>"
}

func (t *Translator) chain() []Language {
	chain := make([]Language, 0, 2+len(t.cfg.Fallbacks))
	chain = append(chain, t.cfg.Primary)
	chain = append(chain, t.cfg.Fallbacks...)
	chain = append(chain, DefaultLanguage)
	return chain
}

// TranslateFmt resolves key and substitutes up to 3 positional "{}"
// placeholders with args, in order.
func (t *Translator) TranslateFmt(key string, args ...string) string {
	tmpl := t.Translate(key)
	var b strings.Builder
	argIdx := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '{' && i+1 < len(tmpl) && tmpl[i+1] == '}' {
			if argIdx < len(args) {
				b.WriteString(args[argIdx])
				argIdx++
			}
			i++
			continue
		}
		b.WriteByte(tmpl[i])
	}
	return b.String()
}
