package templates

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/models"
)

const expectedUserServiceTest = `import org.junit.jupiter.api.Test;
import org.junit.jupiter.api.extension.ExtendWith;
import org.mockito.InjectMocks;
import org.mockito.Mock;
import org.mockito.Mockito;
import org.mockito.junit.jupiter.MockitoExtension;
import static org.mockito.Mockito.*;
import static org.junit.jupiter.api.Assertions.*;

import org.springframework.boot.test.context.SpringBootTest;
import org.springframework.boot.test.mock.mockito.MockBean;

@ExtendWith(MockitoExtension.class)
class UserServiceTest {

    @InjectMocks
    private UserService userService;

    @Mock
    private UserRepository userRepository;

    @Test
    void findById_ShouldSucceed() {
        // Given
        var expectedEntity = new User();
        when(findById(any()))
            .thenReturn(Optional.of(expectedEntity));

        // When
        var result = findById();

        // Then
        assertNotNull(result);
    }

    @Test
    void findAll_ShouldSucceed() {
        // Given
        // When
        var result = findAll();

        // Then
        assertNotNull(result);
    }

    @Test
    void placeOrder_ShouldSucceed() {
        // Given
        var expectedResult = new Receipt();
        var order = new Order();
        var quantity = new int();
        // When
        var result = placeOrder(order, quantity);

        // Then
        assertNotNull(result);
        verify(mockDependency, times(1)).someMethod();
    }

    @Test
    void notifyUser_ShouldSucceed() {
        // Given
        // When
        notifyUser(user);

        // Then
        verify(mockDependency, times(1)).someMethod();
    }

}
`

func userServiceModel() *models.ClassModel {
	return &models.ClassModel{
		Name:        "UserService",
		Annotations: []string{"Service"},
		Fields:      []models.FieldModel{{Name: "userRepository", Type: "UserRepository"}},
		Methods: []models.MethodModel{
			{Name: "findById", ReturnType: "User", Parameters: []models.Parameter{{Name: "id", Type: "Long"}}},
			{Name: "findAll", ReturnType: "List<User>"},
			{Name: "placeOrder", ReturnType: "Receipt", Parameters: []models.Parameter{
				{Name: "order", Type: "Order"},
				{Name: "quantity", Type: "int"},
			}},
			{Name: "notifyUser", ReturnType: "void", Parameters: []models.Parameter{{Name: "user", Type: "User"}}},
		},
	}
}

func TestAssemble_ServiceClass(t *testing.T) {
	category := models.ClassCategory{ServiceLike: true, DependencyInjectionTarget: true}

	got, err := NewAssembler().Assemble(userServiceModel(), category)
	require.NoError(t, err)
	assert.Equal(t, expectedUserServiceTest, got)
}

func TestAssemble_PlainClass(t *testing.T) {
	class := &models.ClassModel{
		Name: "PriceCalculator",
		Fields: []models.FieldModel{
			{Name: "repository", Type: "OrderRepository"},
			{Name: "mapper", Type: "OrderMapper"},
		},
		Methods: []models.MethodModel{
			{Name: "computeTotal", ReturnType: "BigDecimal", Parameters: []models.Parameter{{Name: "order", Type: "Order"}}},
		},
	}

	got, err := NewAssembler().Assemble(class, models.ClassCategory{})
	require.NoError(t, err)

	t.Run("no dependency injection imports", func(t *testing.T) {
		assert.NotContains(t, got, "SpringBootTest")
		assert.NotContains(t, got, "MockBean")
		assert.Contains(t, got, "import static org.junit.jupiter.api.Assertions.*;\n\n\n@ExtendWith(MockitoExtension.class)\n")
	})

	t.Run("mocks in declared order", func(t *testing.T) {
		repository := strings.Index(got, "    @Mock\n    private OrderRepository repository;\n\n")
		mapper := strings.Index(got, "    @Mock\n    private OrderMapper mapper;\n\n")
		require.NotEqual(t, -1, repository)
		require.NotEqual(t, -1, mapper)
		assert.Less(t, repository, mapper)
		assert.Contains(t, got, "    @InjectMocks\n    private PriceCalculator priceCalculator;\n\n")
	})

	t.Run("default body has only comments", func(t *testing.T) {
		expected := `    @Test
    void computeTotal_ShouldSucceed() {
        // Given
        // TODO: Set up test data

        // When
        // TODO: Call method under test

        // Then
        // TODO: Add assertions
    }

}
`
		assert.True(t, strings.HasSuffix(got, expected), "unexpected tail:\n%s", got)
		assert.NotContains(t, got, "var ")
		assert.NotContains(t, got, "assertNotNull")
	})
}

func TestAssemble_MethodBlockCount(t *testing.T) {
	class := userServiceModel()
	category := models.ClassCategory{ServiceLike: true, DependencyInjectionTarget: true}

	got, err := NewAssembler().Assemble(class, category)
	require.NoError(t, err)

	openers := 0
	for _, line := range strings.Split(got, "\n") {
		if strings.HasSuffix(line, " {") {
			openers++
		}
	}

	assert.Equal(t, len(class.Methods), strings.Count(got, "@Test\n"))
	assert.Equal(t, len(class.Methods)+1, openers)
}

func TestAssemble_RepositoryFindAll(t *testing.T) {
	class := &models.ClassModel{
		Name:    "UserRepositoryImpl",
		Methods: []models.MethodModel{{Name: "findAll", ReturnType: "List<User>"}},
	}

	got, err := NewAssembler().Assemble(class, models.ClassCategory{ServiceLike: true, DependencyInjectionTarget: true})
	require.NoError(t, err)

	assert.Contains(t, got, "        var result = findAll();\n")
	assert.Contains(t, got, "        assertNotNull(result);\n")
	assert.NotContains(t, got, "expectedResult")
	assert.NotContains(t, got, "expectedEntity")
	assert.NotContains(t, got, "verify(")
}

func TestAssemble_OverloadsCollide(t *testing.T) {
	class := &models.ClassModel{
		Name: "Counter",
		Methods: []models.MethodModel{
			{Name: "size", ReturnType: "int"},
			{Name: "size", ReturnType: "int", Parameters: []models.Parameter{{Name: "key", Type: "String"}}},
		},
	}

	got, err := NewAssembler().Assemble(class, models.ClassCategory{})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(got, "void size_ShouldSucceed() {"))
}

func TestAssemble_Deterministic(t *testing.T) {
	assembler := NewAssembler()
	category := models.ClassCategory{ServiceLike: true, DependencyInjectionTarget: true}

	first, err := assembler.Assemble(userServiceModel(), category)
	require.NoError(t, err)
	second, err := assembler.Assemble(userServiceModel(), category)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssemble_MissingTemplate(t *testing.T) {
	registry := &TemplateRegistry{templates: map[string]*template.Template{}}

	got, err := NewAssemblerWithRegistry(registry).Assemble(userServiceModel(), models.ClassCategory{})
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Equal(t, errors.TemplateErrorCode, errors.CodeOf(err))
}

func TestToLowerFirst(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"UserService": "userService",
		"userService": "userService",
		"URLBuilder":  "uRLBuilder",
		"Ölçer":       "ölçer",
		"X":           "x",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, ToLowerFirst(input), "input %q", input)
	}
}

func TestBuildCallExpression(t *testing.T) {
	assert.Equal(t, "run()", BuildCallExpression(models.MethodModel{Name: "run"}))
	assert.Equal(t, "transfer(from, to, amount)", BuildCallExpression(models.MethodModel{
		Name: "transfer",
		Parameters: []models.Parameter{
			{Name: "from", Type: "Account"},
			{Name: "to", Type: "Account"},
			{Name: "amount", Type: "BigDecimal"},
		},
	}))
}

func TestTemplateRegistry(t *testing.T) {
	registry := NewTemplateRegistry()

	for _, name := range []string{
		TestClassHeaderTemplate,
		TestMethodTemplate,
		RepositoryBodyTemplate,
		ServiceBodyTemplate,
		DefaultBodyTemplate,
	} {
		tmpl, ok := registry.Get(name)
		require.True(t, ok, "template %s", name)
		assert.Equal(t, name, tmpl.Name())
	}

	_, ok := registry.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, RepositoryBodyTemplate, BodyTemplateName(models.MethodCategoryRepository))
	assert.Equal(t, ServiceBodyTemplate, BodyTemplateName(models.MethodCategoryService))
	assert.Equal(t, DefaultBodyTemplate, BodyTemplateName(models.MethodCategoryDefault))
}
