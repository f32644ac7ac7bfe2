package parser

import "github.com/toyz/testgen/internal/models"

// SourceModelBuilder derives the structural model of the first class or interface in a source unit
type SourceModelBuilder interface {
	Build(source string) (*models.ClassModel, error)
}

var _ SourceModelBuilder = (*JavaParser)(nil)
