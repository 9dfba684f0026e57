package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (Q001-Q019)
	// ============================================

	"Q001": {
		Category: CategoryRuntime,
		Message:  "Template not found",
		Detail:   "No template is registered under this ID. It may belong to a different registry instance.",
		DocURL:   "https://quill-ui.dev/docs/errors/Q001",
	},
	"Q002": {
		Category: CategoryRuntime,
		Message:  "Template node index out of range",
		Detail:   "The node index exceeds the template's node table. Use NodeCount to bound iteration.",
		DocURL:   "https://quill-ui.dev/docs/errors/Q002",
	},

	// ============================================
	// Compile Errors (Q020-Q039)
	// ============================================

	"Q020": {
		Category: CategoryCompile,
		Message:  "Dynamic slot indices are not dense",
		Detail:   "Slot validation is enabled and the tree's dynamic slot indices do not form a contiguous 0..N-1 range.",
		DocURL:   "https://quill-ui.dev/docs/errors/Q020",
	},
	"Q021": {
		Category: CategoryCompile,
		Message:  "Attribute item supplied as template root",
		Detail:   "Roots must be node-producing kinds (Text, DynamicText, DynamicNode, Element); attribute items only make sense inside an element.",
		DocURL:   "https://quill-ui.dev/docs/errors/Q021",
	},

	// ============================================
	// Config Errors (Q040-Q059)
	// ============================================

	"Q040": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No quill.json was found in this directory or any parent directory.",
		DocURL:   "https://quill-ui.dev/docs/errors/Q040",
	},
	"Q041": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "quill.json exists but could not be parsed as JSON.",
		DocURL:   "https://quill-ui.dev/docs/errors/Q041",
	},

	// ============================================
	// Archive Errors (Q060-Q079)
	// ============================================

	"Q060": {
		Category: CategoryArchive,
		Message:  "Snapshot export failed",
		Detail:   "The registry snapshot could not be written to the configured store.",
		DocURL:   "https://quill-ui.dev/docs/errors/Q060",
	},
	"Q061": {
		Category: CategoryArchive,
		Message:  "Snapshot too large",
		Detail:   "The serialized registry snapshot exceeds the store's configured size limit.",
		DocURL:   "https://quill-ui.dev/docs/errors/Q061",
	},
}
