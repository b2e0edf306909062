package util

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is herodex base configuration
type Config struct {
	Server Server `yaml:"server"`
}

type Server struct {
	Addr          string `yaml:"addr"`
	MongoURL      string `yaml:"mongoUrl"`
	MongoDatabase string `yaml:"mongoDatabase"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

// Load loads herodex config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Println("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		log.Println("failed to load configuration file:", err)
		return err
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.MongoDatabase == "" {
		c.Server.MongoDatabase = "heroesdb"
	}

	return nil
}
