package models

// VoidType is the literal return type of methods that produce no result
const VoidType = "void"

// ClassModel is the structural view of the first class or interface in a source unit
type ClassModel struct {
	Name        string
	Annotations []string // names only, in source order
	Fields      []FieldModel
	Methods     []MethodModel
}

// HasAnnotation reports whether the class carries an annotation with exactly this name
func (c *ClassModel) HasAnnotation(name string) bool {
	for _, annotation := range c.Annotations {
		if annotation == name {
			return true
		}
	}
	return false
}

// FieldModel represents a field declaration
type FieldModel struct {
	Name string // first declared variable name
	Type string // declared type exactly as written
}

// MethodModel represents a method declaration
type MethodModel struct {
	Name       string
	ReturnType string // declared return type, VoidType when there is none
	Parameters []Parameter
}

// Returns reports whether the method declares a result
func (m MethodModel) Returns() bool {
	return m.ReturnType != VoidType
}

// ParameterNames returns the parameter names in declaration order
func (m MethodModel) ParameterNames() []string {
	names := make([]string, 0, len(m.Parameters))
	for _, param := range m.Parameters {
		names = append(names, param.Name)
	}
	return names
}

// Parameter represents a method parameter
type Parameter struct {
	Name string
	Type string // declared type exactly as written
}
