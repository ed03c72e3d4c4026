package errors

import (
	"maps"
	"slices"
)

// Template defines a registered error code.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// Registered codes.
const (
	CodeFlushAborted  = "HXO-E001"
	CodeEffectFailed  = "HXO-E002"
	CodeNilRender     = "HXO-E003"
	CodeNoRender      = "HXO-E004"
	CodeUnknownKind   = "HXO-E010"
	CodeHostRejected  = "HXO-E011"
	CodeTreeSyntax    = "HXO-E020"
	CodeTreeInvalid   = "HXO-E021"
	CodeTreeNotFound  = "HXO-E022"
	CodeConfigSyntax  = "HXO-E030"
	CodeConfigInvalid = "HXO-E031"
	CodeConfigMissing = "HXO-E032"
	CodeBadArguments  = "HXO-E040"
)

var registry = map[string]Template{
	// Runtime (E001-E009)
	CodeFlushAborted: {
		Category: CategoryRuntime,
		Message:  "Flush aborted",
		Detail:   "A job returned an error, so the remaining jobs of the flush were dropped. The scheduler is usable again on the next tick.",
	},
	CodeEffectFailed: {
		Category: CategoryRuntime,
		Message:  "Effect failed on its initial run",
	},
	CodeNilRender: {
		Category: CategoryRuntime,
		Message:  "Component render returned nil",
		Detail:   "Render must return a node. Return an empty fragment to render nothing.",
	},
	CodeNoRender: {
		Category: CategoryRuntime,
		Message:  "Component has no render function",
	},

	// Render (E010-E019)
	CodeUnknownKind: {
		Category: CategoryRender,
		Message:  "Unknown node kind",
	},
	CodeHostRejected: {
		Category: CategoryRender,
		Message:  "Host rejected a mutation",
		Detail:   "The output tree refused an operation, usually an element operation on a text node.",
	},

	// Tree files (E020-E029)
	CodeTreeSyntax: {
		Category: CategoryTree,
		Message:  "Tree file is not valid JSON",
	},
	CodeTreeInvalid: {
		Category: CategoryTree,
		Message:  "Tree file describes an invalid node",
	},
	CodeTreeNotFound: {
		Category: CategoryTree,
		Message:  "Tree file not found",
	},

	// Config (E030-E039)
	CodeConfigSyntax: {
		Category: CategoryConfig,
		Message:  "Configuration file is not valid JSON",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	CodeConfigMissing: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},

	// CLI (E040-E049)
	CodeBadArguments: {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
	},
}

// Codes returns all registered codes, sorted.
func Codes() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces a template. It is not safe to call concurrently
// with New.
func Register(code string, t Template) {
	registry[code] = t
}
