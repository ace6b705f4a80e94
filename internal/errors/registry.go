package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// DOM Errors (VA001-VA009)
	// ============================================

	"VA001": {
		Category: CategoryDOM,
		Message:  "No root element of component found.",
		Detail:   "The rendered fragment contains only text, comments or nothing at all, so there is no element to assert on.",
	},
	"VA002": {
		Category: CategoryDOM,
		Message:  "No element matched selector",
		Detail:   "The selector compiled but did not match any element in the fragment.",
	},
	"VA003": {
		Category: CategoryDOM,
		Message:  "Invalid selector",
		Detail:   "The selector is not valid CSS.",
	},

	// ============================================
	// Markup Errors (VA010-VA019)
	// ============================================

	"VA010": {
		Category: CategoryMarkup,
		Message:  "Markup could not be parsed",
		Detail:   "The HTML tokenizer rejected the input.",
	},
	"VA011": {
		Category: CategoryMarkup,
		Message:  "Node could not be rendered",
		Detail:   "The virtual node tree contains a node kind the renderer does not support.",
	},

	// ============================================
	// Config Errors (VA020-VA029)
	// ============================================

	"VA020": {
		Category: CategoryConfig,
		Message:  "Invalid vassert.yaml",
		Detail:   "The configuration file could not be read or is not valid YAML.",
	},
	"VA021": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is outside its allowed set.",
	},
	"VA022": {
		Category: CategoryConfig,
		Message:  "No vassert.yaml found",
		Detail:   "No configuration file was found in the directory or any parent.",
	},

	// ============================================
	// CLI Errors (VA030-VA039)
	// ============================================

	"VA030": {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
		Detail:   "The command was called with missing or malformed arguments.",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered error codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
