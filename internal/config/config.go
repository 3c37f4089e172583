package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
	Mode string `toml:"mode"`
}

type Neo4jConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// OntologyConfig names the graph vocabulary used to recognise courses:
// the label of the ancestor class node, and the edge types that link an
// instance to its class and a class to its superclass.
type OntologyConfig struct {
	CourseAncestor string `toml:"course_ancestor"`
	InstanceEdge   string `toml:"instance_edge"`
	SubclassEdge   string `toml:"subclass_edge"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Neo4j    Neo4jConfig    `toml:"neo4j"`
	Ontology OntologyConfig `toml:"ontology"`
}

// Load reads TOML configuration from path, then applies environment
// overrides and defaults. A missing file is not an error so that a
// fully env-configured deployment needs no config file at all.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("SERVER_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USER"); v != "" {
		c.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Neo4j.Password = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Neo4j.URI == "" {
		c.Neo4j.URI = "bolt://localhost:7687"
	}
	if c.Ontology.CourseAncestor == "" {
		c.Ontology.CourseAncestor = "Course"
	}
	if c.Ontology.InstanceEdge == "" {
		c.Ontology.InstanceEdge = "INSTANCE_OF"
	}
	if c.Ontology.SubclassEdge == "" {
		c.Ontology.SubclassEdge = "SUBCLASS_OF"
	}
}
