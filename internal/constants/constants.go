package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "prosescan"

	// ConfigFileName is the default config file name
	ConfigFileName = ".prosescan.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "PROSESCAN"
)

// Severity level constants
const (
	SeverityPass = "PASS"
	SeverityWarn = "WARN"
	SeverityFail = "FAIL"
)

// Output format constants
const (
	OutputFormatText     = "text"
	OutputFormatJSON     = "json"
	OutputFormatMarkdown = "markdown"
	OutputFormatHTML     = "html"
)

// Document handling limits
const (
	// MaxFileSizeBytes is the largest document the walker will read
	MaxFileSizeBytes = 10 * 1024 * 1024
)
