package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	Media  MediaConfig  `mapstructure:"media"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}

// LLMConfig contains all generative-AI integration settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// TextModelName generates tips and study plans; TTSModelName
	// synthesizes narration audio.
	TextModelName string `mapstructure:"text_model_name" validate:"required"`
	TTSModelName  string `mapstructure:"tts_model_name" validate:"required"`

	MaxRetries        int `mapstructure:"max_retries" validate:"gte=0"`
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// MediaConfig contains the optional Cloudinary settings used to host
// note images and intro videos. When CloudName is empty the media
// uploader is disabled and clients must supply pre-uploaded URLs.
type MediaConfig struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// MediaEnabled reports whether an upload backend is configured.
func (c MediaConfig) MediaEnabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}
