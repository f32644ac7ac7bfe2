package classifier

import (
	"strings"

	"github.com/toyz/testgen/internal/models"
)

// ServiceMarker is the annotation that makes a class service-like
const ServiceMarker = "Service"

// StereotypeMarkers are the annotations that make a class a dependency-injection target
var StereotypeMarkers = []string{"Service", "Repository", "Component", "Controller"}

// repositoryPrefixes name the accessor conventions that select the repository template
var repositoryPrefixes = []string{"findBy", "save", "delete"}

const repositoryFindAll = "findAll"

// ClassifyClass derives the class category from annotation names.
// Matching is exact and case-sensitive; qualified names do not match.
func ClassifyClass(class *models.ClassModel) models.ClassCategory {
	category := models.ClassCategory{
		ServiceLike: class.HasAnnotation(ServiceMarker),
	}
	for _, marker := range StereotypeMarkers {
		if class.HasAnnotation(marker) {
			category.DependencyInjectionTarget = true
			break
		}
	}
	return category
}

// ClassifyMethod selects the template category for a single method of a class
func ClassifyMethod(method models.MethodModel, class models.ClassCategory) models.MethodCategory {
	if IsRepositoryMethod(method.Name) {
		return models.MethodCategoryRepository
	}
	if class.ServiceLike {
		return models.MethodCategoryService
	}
	return models.MethodCategoryDefault
}

// IsRepositoryMethod reports whether a method name follows a repository naming convention
func IsRepositoryMethod(name string) bool {
	for _, prefix := range repositoryPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return name == repositoryFindAll
}

// IsFinder reports whether a repository method looks up an entity by attribute
func IsFinder(name string) bool {
	return strings.HasPrefix(name, "findBy")
}
