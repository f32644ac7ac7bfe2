package models

// MethodCategory selects the body template used for a method's test stub
type MethodCategory int

const (
	MethodCategoryDefault MethodCategory = iota
	MethodCategoryRepository
	MethodCategoryService
)

// String returns the string representation of the method category
func (c MethodCategory) String() string {
	switch c {
	case MethodCategoryRepository:
		return "repository"
	case MethodCategoryService:
		return "service"
	default:
		return "default"
	}
}

// ClassCategory is derived once per class from its marker annotations
type ClassCategory struct {
	// ServiceLike is set for classes marked @Service
	ServiceLike bool
	// DependencyInjectionTarget is set for classes carrying any framework stereotype
	DependencyInjectionTarget bool
}
