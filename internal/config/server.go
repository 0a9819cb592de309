package config

// ServerConfig holds configuration for the local store replica
type ServerConfig struct {
	Port string
	// TemplateDir holds the replica's HTML templates
	TemplateDir string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	templates := getenv("TEMPLATE_DIR")
	if templates == "" {
		templates = "templates"
	}

	return ServerConfig{
		Port:        port,
		TemplateDir: templates,
	}
}
