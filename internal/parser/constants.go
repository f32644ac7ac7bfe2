package parser

// tree-sitter-java node and field names read by the model builder
const (
	nodeClassDeclaration     = "class_declaration"
	nodeInterfaceDeclaration = "interface_declaration"
	nodeModifiers            = "modifiers"
	nodeMarkerAnnotation     = "marker_annotation"
	nodeAnnotation           = "annotation"
	nodeFieldDeclaration     = "field_declaration"
	nodeConstantDeclaration  = "constant_declaration"
	nodeMethodDeclaration    = "method_declaration"
	nodeFormalParameter      = "formal_parameter"
	nodeSpreadParameter      = "spread_parameter"
	nodeVariableDeclarator   = "variable_declarator"
	nodeError                = "ERROR"

	fieldName       = "name"
	fieldType       = "type"
	fieldBody       = "body"
	fieldDeclarator = "declarator"
	fieldParameters = "parameters"
)
