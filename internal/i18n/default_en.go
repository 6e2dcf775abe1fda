package i18n

// DefaultEnglishTable is a minimal English message table covering the
// translation keys the core packages reference directly (diagnostic
// short titles and a handful of annotation messages). The full key
// table is data, not design (spec.md §1); this is just enough for the
// engine to render something meaningful without a host-supplied table.
var DefaultEnglishTable = Table{
	DefaultLanguage: {
		"expected_but_found":        "expected {}, found {}",
		"use_of_undeclared_variable": "use of undeclared variable `{}`",
		"not_declared_in_scope":     "`{}` was not declared in this scope",
		"did_you_mean":              "did you mean `{}`?",
		"opening_quote_here":        "string starts here",
		"expected_closing_quote":    "expected a closing `\"`",
		"opening_comment_here":      "block comment starts here",
		"expected_closing_comment":  "expected a closing `*/`",
		"change_charset_to_utf8":    "re-save this file as valid UTF-8 and try again",
		"conflicting_specifiers":    "`{}` conflicts with `{}`",
		"undefined_symbol":          "undefined symbol",
		"redeclaration":             "name already declared in this scope",
	},
}
