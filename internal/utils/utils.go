package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/trenlog/trenlog/internal/models"
)

// ParseProgramFromTOML loads the read-only exercise target configuration a
// session executes. Program editing happens elsewhere; this only reads.
func ParseProgramFromTOML(path string) (*models.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var program models.Program
	if err := toml.Unmarshal(data, &program); err != nil {
		return nil, err
	}

	return &program, nil
}
