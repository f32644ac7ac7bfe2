package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/toyz/testgen/internal/annotations"
	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/models"
)

// JavaParser builds class models from Java source with tree-sitter.
// It holds no state between calls; every Build uses its own tree-sitter parser.
type JavaParser struct {
	annotations *annotations.Parser
}

// NewJavaParser creates a new Java source model builder
func NewJavaParser() *JavaParser {
	return &JavaParser{
		annotations: annotations.NewParser(),
	}
}

// Build parses source and returns the model of its first class or interface declaration
func (p *JavaParser) Build(source string) (*models.ClassModel, error) {
	content := []byte(source)

	sp := sitter.NewParser()
	defer sp.Close()
	sp.SetLanguage(java.GetLanguage())

	tree, err := sp.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, errors.NewMalformedInputError("source could not be parsed").WithCause(err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if err := NewSyntaxErrorReporter(content).Report(root); err != nil {
		return nil, err
	}

	declaration := findFirstDeclaration(root)
	if declaration == nil {
		return nil, errors.NewNoDeclarationFoundError()
	}

	return p.buildClass(declaration, content)
}

// findFirstDeclaration walks the tree in document order and returns the first class or interface
func findFirstDeclaration(n *sitter.Node) *sitter.Node {
	switch n.Type() {
	case nodeClassDeclaration, nodeInterfaceDeclaration:
		return n
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if found := findFirstDeclaration(n.NamedChild(i)); found != nil {
			return found
		}
	}
	return nil
}

func (p *JavaParser) buildClass(declaration *sitter.Node, content []byte) (*models.ClassModel, error) {
	nameNode := declaration.ChildByFieldName(fieldName)
	if nameNode == nil {
		return nil, errors.NewMalformedInputError(fmt.Sprintf("%s without a name", declaration.Type()))
	}

	class := &models.ClassModel{
		Name:        nameNode.Content(content),
		Annotations: make([]string, 0),
		Fields:      make([]models.FieldModel, 0),
		Methods:     make([]models.MethodModel, 0),
	}

	names, err := p.annotationNames(declaration, content)
	if err != nil {
		return nil, err
	}
	class.Annotations = names

	body := declaration.ChildByFieldName(fieldBody)
	if body == nil {
		return class, nil
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case nodeFieldDeclaration, nodeConstantDeclaration:
			if field, ok := buildField(member, content); ok {
				class.Fields = append(class.Fields, field)
			}
		case nodeMethodDeclaration:
			if method, ok := buildMethod(member, content); ok {
				class.Methods = append(class.Methods, method)
			}
		}
	}

	return class, nil
}

// annotationNames returns the names of the declaration's own annotations, in source order
func (p *JavaParser) annotationNames(declaration *sitter.Node, content []byte) ([]string, error) {
	names := make([]string, 0)

	for i := 0; i < int(declaration.NamedChildCount()); i++ {
		modifiers := declaration.NamedChild(i)
		if modifiers.Type() != nodeModifiers {
			continue
		}

		for j := 0; j < int(modifiers.NamedChildCount()); j++ {
			node := modifiers.NamedChild(j)
			if node.Type() != nodeMarkerAnnotation && node.Type() != nodeAnnotation {
				continue
			}

			annotation, err := p.annotations.Parse(node.Content(content))
			if err != nil {
				return nil, err
			}
			names = append(names, annotation.Name())
		}
	}

	return names, nil
}

func buildField(n *sitter.Node, content []byte) (models.FieldModel, bool) {
	typeNode := n.ChildByFieldName(fieldType)
	declarator := n.ChildByFieldName(fieldDeclarator)
	if typeNode == nil || declarator == nil {
		return models.FieldModel{}, false
	}

	nameNode := declarator.ChildByFieldName(fieldName)
	if nameNode == nil {
		return models.FieldModel{}, false
	}

	return models.FieldModel{
		Name: nameNode.Content(content),
		Type: typeNode.Content(content),
	}, true
}

func buildMethod(n *sitter.Node, content []byte) (models.MethodModel, bool) {
	nameNode := n.ChildByFieldName(fieldName)
	typeNode := n.ChildByFieldName(fieldType)
	if nameNode == nil || typeNode == nil {
		return models.MethodModel{}, false
	}

	method := models.MethodModel{
		Name:       nameNode.Content(content),
		ReturnType: typeNode.Content(content),
		Parameters: make([]models.Parameter, 0),
	}

	params := n.ChildByFieldName(fieldParameters)
	if params == nil {
		return method, true
	}

	for i := 0; i < int(params.NamedChildCount()); i++ {
		param := params.NamedChild(i)
		switch param.Type() {
		case nodeFormalParameter:
			nameNode := param.ChildByFieldName(fieldName)
			typeNode := param.ChildByFieldName(fieldType)
			if nameNode == nil || typeNode == nil {
				continue
			}
			method.Parameters = append(method.Parameters, models.Parameter{
				Name: nameNode.Content(content),
				Type: typeNode.Content(content),
			})
		case nodeSpreadParameter:
			if parameter, ok := buildSpreadParameter(param, content); ok {
				method.Parameters = append(method.Parameters, parameter)
			}
		}
	}

	return method, true
}

// buildSpreadParameter reads a varargs parameter; its type is the element type before "..."
func buildSpreadParameter(n *sitter.Node, content []byte) (models.Parameter, bool) {
	var parameter models.Parameter

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case nodeModifiers:
			continue
		case nodeVariableDeclarator:
			if nameNode := child.ChildByFieldName(fieldName); nameNode != nil {
				parameter.Name = nameNode.Content(content)
			}
		default:
			if parameter.Type == "" {
				parameter.Type = child.Content(content)
			}
		}
	}

	return parameter, parameter.Name != "" && parameter.Type != ""
}
