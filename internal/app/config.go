package app

type Config struct {
	Port           string
	Model          string
	OpenAIBaseUrl  string
	AllowedOrigins []string
	LogLevel       string
	LogPretty      bool
	PHApiKey       string
	PHUrl          string
	MetaPromptFile string
}
