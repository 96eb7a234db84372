package domain

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type OptimizationReq struct {
	InputPrompt string `json:"inputPrompt"`
	MetaPrompt  string `json:"metaPrompt"`
	ApiKey      string `json:"apiKey" validate:"required"`
}

type OptimizationResp struct {
	OptimizedPrompt string `json:"optimizedPrompt"`
}

type ErrorResp struct {
	Error string `json:"error"`
}

type Message struct {
	Role    Role
	Content string
}

// CompletionReq is a single chat-completion call against the upstream provider.
type CompletionReq struct {
	ApiKey   string
	Model    string
	Messages []Message
}

type Event struct {
	Name       string
	DistinctId string
	Properties map[string]string
}
