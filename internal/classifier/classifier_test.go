package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/testgen/internal/models"
)

func TestClassifyClass(t *testing.T) {
	tests := []struct {
		name        string
		annotations []string
		expected    models.ClassCategory
	}{
		{
			name:        "service",
			annotations: []string{"Service"},
			expected:    models.ClassCategory{ServiceLike: true, DependencyInjectionTarget: true},
		},
		{
			name:        "repository",
			annotations: []string{"Repository"},
			expected:    models.ClassCategory{DependencyInjectionTarget: true},
		},
		{
			name:        "component among others",
			annotations: []string{"Slf4j", "Component"},
			expected:    models.ClassCategory{DependencyInjectionTarget: true},
		},
		{
			name:        "controller",
			annotations: []string{"Controller"},
			expected:    models.ClassCategory{DependencyInjectionTarget: true},
		},
		{
			name:        "rest controller is not a marker",
			annotations: []string{"RestController"},
			expected:    models.ClassCategory{},
		},
		{
			name:        "qualified service is not a marker",
			annotations: []string{"org.springframework.stereotype.Service"},
			expected:    models.ClassCategory{},
		},
		{
			name:        "case sensitive",
			annotations: []string{"service"},
			expected:    models.ClassCategory{},
		},
		{
			name:     "no annotations",
			expected: models.ClassCategory{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := &models.ClassModel{Name: "Subject", Annotations: tt.annotations}
			assert.Equal(t, tt.expected, ClassifyClass(class))
		})
	}
}

func TestClassifyMethod(t *testing.T) {
	service := models.ClassCategory{ServiceLike: true, DependencyInjectionTarget: true}
	plain := models.ClassCategory{}
	component := models.ClassCategory{DependencyInjectionTarget: true}

	tests := []struct {
		method   string
		class    models.ClassCategory
		expected models.MethodCategory
	}{
		{"findAll", plain, models.MethodCategoryRepository},
		{"findByIdAndStatus", plain, models.MethodCategoryRepository},
		{"findBy", service, models.MethodCategoryRepository},
		{"save", service, models.MethodCategoryRepository},
		{"saveAndFlush", plain, models.MethodCategoryRepository},
		{"deleteAll", component, models.MethodCategoryRepository},
		{"findAllActive", service, models.MethodCategoryService},
		{"findSomething", plain, models.MethodCategoryDefault},
		{"FindByName", plain, models.MethodCategoryDefault},
		{"computeTotal", plain, models.MethodCategoryDefault},
		{"computeTotal", component, models.MethodCategoryDefault},
		{"computeTotal", service, models.MethodCategoryService},
	}

	for _, tt := range tests {
		t.Run(tt.method+"/"+tt.expected.String(), func(t *testing.T) {
			method := models.MethodModel{Name: tt.method, ReturnType: "void"}
			assert.Equal(t, tt.expected, ClassifyMethod(method, tt.class))
		})
	}
}

func TestClassifyMethod_MixedClass(t *testing.T) {
	class := &models.ClassModel{
		Name:        "OrderService",
		Annotations: []string{"Service"},
		Methods: []models.MethodModel{
			{Name: "findByCustomer", ReturnType: "Order"},
			{Name: "placeOrder", ReturnType: "Receipt"},
			{Name: "deleteExpired", ReturnType: "void"},
		},
	}

	category := ClassifyClass(class)
	var got []models.MethodCategory
	for _, method := range class.Methods {
		got = append(got, ClassifyMethod(method, category))
	}

	assert.Equal(t, []models.MethodCategory{
		models.MethodCategoryRepository,
		models.MethodCategoryService,
		models.MethodCategoryRepository,
	}, got)
}

func TestIsFinder(t *testing.T) {
	assert.True(t, IsFinder("findByEmail"))
	assert.False(t, IsFinder("findAll"))
	assert.False(t, IsFinder("save"))
}
