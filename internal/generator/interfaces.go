package generator

import "github.com/toyz/testgen/internal/models"

// ModelBuilder turns source text into the model of its first class or interface
type ModelBuilder interface {
	Build(source string) (*models.ClassModel, error)
}

// TestAssembler renders a classified class model as test source text
type TestAssembler interface {
	Assemble(class *models.ClassModel, category models.ClassCategory) (string, error)
}

// TestGenerator defines the single operation the engine exposes
type TestGenerator interface {
	Generate(source string) (string, error)
}
