package templates

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/toyz/testgen/internal/classifier"
	"github.com/toyz/testgen/internal/models"
)

// TestClassData feeds the test class header template
type TestClassData struct {
	ClassName           string
	InstanceName        string
	DependencyInjection bool
	Fields              []models.FieldModel
}

// TestMethodData feeds the test method wrapper template
type TestMethodData struct {
	Name string
	Body string
}

// MethodBodyData feeds the body templates
type MethodBodyData struct {
	Accessor   string // method name with a lower-case first letter
	ReturnType string
	Finder     bool // name starts with findBy
	HasResult  bool // return type is not void
	Call       string
	Parameters []models.Parameter
}

// ToLowerFirst lower-cases the first letter of s
func ToLowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// BuildCallExpression renders name(p1, p2, ...) from the method's parameter names
func BuildCallExpression(method models.MethodModel) string {
	return method.Name + "(" + strings.Join(method.ParameterNames(), ", ") + ")"
}

// BodyTemplateName returns the body template for a method category
func BodyTemplateName(category models.MethodCategory) string {
	switch category {
	case models.MethodCategoryRepository:
		return RepositoryBodyTemplate
	case models.MethodCategoryService:
		return ServiceBodyTemplate
	default:
		return DefaultBodyTemplate
	}
}

// NewTestClassData converts a class model to header template data
func NewTestClassData(class *models.ClassModel, category models.ClassCategory) TestClassData {
	return TestClassData{
		ClassName:           class.Name,
		InstanceName:        ToLowerFirst(class.Name),
		DependencyInjection: category.DependencyInjectionTarget,
		Fields:              class.Fields,
	}
}

// NewMethodBodyData converts a method model to body template data
func NewMethodBodyData(method models.MethodModel) MethodBodyData {
	return MethodBodyData{
		Accessor:   ToLowerFirst(method.Name),
		ReturnType: method.ReturnType,
		Finder:     classifier.IsFinder(method.Name),
		HasResult:  method.Returns(),
		Call:       BuildCallExpression(method),
		Parameters: method.Parameters,
	}
}
