package openai

// Config contains OpenAI answerer configuration.
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"`
	Model      string `env:"ANSWERER_MODEL"      envDefault:"gpt-4o-mini"`
	Timeout    int    `env:"ANSWERER_TIMEOUT"    envDefault:"60"`
	MaxRetries int    `env:"ANSWERER_MAX_RETRIES" envDefault:"3"`
}
