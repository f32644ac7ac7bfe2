package testgen_test

import (
	"fmt"
	"strings"

	"github.com/toyz/testgen/pkg/testgen"
)

func ExampleGenerate() {
	source := `@Service
public class GreetingService {
    public String greet(String name) { return "hi " + name; }
}`

	out, err := testgen.Generate(source)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "class ") || strings.Contains(line, "greet(") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// class GreetingServiceTest {
	// var result = greet(name);
}

func ExampleCode() {
	_, err := testgen.Generate("enum Color { RED }")
	fmt.Println(err)
	fmt.Println(testgen.Code(err) == testgen.NoDeclarationFound)
	// Output:
	// Failed to generate tests: no class or interface declaration found
	// true
}
