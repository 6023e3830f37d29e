package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solenne-labs/profilechat/internal/domain"
)

type personaFile struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
}

// LoadPersona resolves the chat persona. A persona YAML file takes precedence
// over the inline PERSONA_NAME / PERSONA_TITLE settings.
func (c *Config) LoadPersona() (domain.PersonaConfig, error) {
	persona := domain.PersonaConfig{
		Name:  c.PersonaName,
		Title: c.PersonaTitle,
	}

	if c.PersonaFile != "" {
		data, err := os.ReadFile(c.PersonaFile)
		if err != nil {
			return domain.PersonaConfig{}, fmt.Errorf("failed to read persona file: %w", err)
		}

		var pf personaFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return domain.PersonaConfig{}, fmt.Errorf("failed to parse persona file: %w", err)
		}

		if pf.Name != "" {
			persona.Name = pf.Name
		}
		if pf.Title != "" {
			persona.Title = pf.Title
		}
	}

	if persona.Name == "" {
		return domain.PersonaConfig{}, fmt.Errorf("persona name is required")
	}
	if persona.Title == "" {
		persona.Title = "Software Engineer"
	}

	return persona, nil
}
