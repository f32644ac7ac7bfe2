package templates

import (
	"strings"

	"github.com/toyz/testgen/internal/classifier"
	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/models"
)

// Assembler renders a classified class model into the text of a test class.
// It is safe for concurrent use; the registry is read-only after construction.
type Assembler struct {
	registry *TemplateRegistry
}

// NewAssembler creates a new assembler with the built-in templates
func NewAssembler() *Assembler {
	return &Assembler{registry: NewTemplateRegistry()}
}

// NewAssemblerWithRegistry creates an assembler over a custom registry
func NewAssemblerWithRegistry(registry *TemplateRegistry) *Assembler {
	return &Assembler{registry: registry}
}

// Assemble renders header, mocks, one test block per method and the closing brace, in that order
func (a *Assembler) Assemble(class *models.ClassModel, category models.ClassCategory) (string, error) {
	var out strings.Builder

	if err := a.execute(&out, TestClassHeaderTemplate, NewTestClassData(class, category)); err != nil {
		return "", err
	}

	for _, method := range class.Methods {
		if err := a.writeTestMethod(&out, method, category); err != nil {
			return "", err
		}
	}

	out.WriteString("}\n")
	return out.String(), nil
}

func (a *Assembler) writeTestMethod(out *strings.Builder, method models.MethodModel, category models.ClassCategory) error {
	var body strings.Builder
	name := BodyTemplateName(classifier.ClassifyMethod(method, category))
	if err := a.execute(&body, name, NewMethodBodyData(method)); err != nil {
		return err
	}

	return a.execute(out, TestMethodTemplate, TestMethodData{
		Name: method.Name,
		Body: body.String(),
	})
}

func (a *Assembler) execute(out *strings.Builder, name string, data interface{}) error {
	tmpl, ok := a.registry.Get(name)
	if !ok {
		return errors.TemplateError(name, "lookup", "template is not registered")
	}
	if err := tmpl.Execute(out, data); err != nil {
		return errors.WrapTemplateError(name, "execute", err)
	}
	return nil
}
