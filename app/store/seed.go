package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed seed.json
var seedData []byte

// LoadSeed returns the seed fixture. Empty path means the embedded fixture, otherwise the file
// is read as JSON for *.json and as YAML for anything else.
func LoadSeed(path string) ([]Employee, error) {
	if path == "" {
		var res []Employee
		if err := json.Unmarshal(seedData, &res); err != nil {
			return nil, fmt.Errorf("failed to parse embedded seed: %w", err)
		}
		return res, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // seed path comes from cli option
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var res []Employee
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &res); err != nil {
			return nil, fmt.Errorf("failed to parse json seed %s: %w", path, err)
		}
		return res, nil
	}
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse yaml seed %s: %w", path, err)
	}
	return res, nil
}

// GenerateSchema returns JSON schema of the employee record
func GenerateSchema() *jsonschema.Schema {
	schema := jsonschema.Reflect(&Employee{})
	schema.Title = "Employee"
	schema.Description = "Employee record of the directory"
	return schema
}
