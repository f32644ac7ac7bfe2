package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/generator"
)

const (
	userServiceSource = `@Service
public class UserService {
    private UserRepository userRepository;
    public User findById(Long id) { return null; }
}`
	orderRepositorySource = `@Repository
public interface OrderRepository {
    List<Order> findAll();
}`
)

func newTestGenerator(stdout *bytes.Buffer) (*Generator, *bytes.Buffer) {
	d, _, errOut := newBufferedDiagnostics(DiagnosticInfo)
	return NewGeneratorWith(generator.NewGenerator(), d, stdout, false), errOut
}

func TestGenerator_WritesNextToSources(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"UserService.java":          userServiceSource,
		"repo/OrderRepository.java": orderRepositorySource,
	})

	g, _ := newTestGenerator(&bytes.Buffer{})
	require.NoError(t, g.Run(context.Background(), Config{Inputs: []string{root + "/..."}, Jobs: 2}))

	expected, err := generator.NewGenerator().Generate(userServiceSource)
	require.NoError(t, err)
	written, err := os.ReadFile(filepath.Join(root, "UserServiceTest.java"))
	require.NoError(t, err)
	assert.Equal(t, expected, string(written))

	assert.FileExists(t, filepath.Join(root, "repo", "OrderRepositoryTest.java"))

	summary := g.GetSummary()
	assert.Equal(t, 2, summary.Processed)
	assert.Len(t, summary.GeneratedFiles, 2)
	assert.Empty(t, summary.Failed)
}

func TestGenerator_OutDir(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "generated", "tests")
	writeTree(t, root, map[string]string{"UserService.java": userServiceSource})

	g, _ := newTestGenerator(&bytes.Buffer{})
	require.NoError(t, g.Run(context.Background(), Config{Inputs: []string{root}, OutDir: out}))

	assert.FileExists(t, filepath.Join(out, "UserServiceTest.java"))
	assert.NoFileExists(t, filepath.Join(root, "UserServiceTest.java"))
}

func TestGenerator_Stdout(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"A.java": "class Alpha { void run() {} }",
		"B.java": "class Beta { void run() {} }",
	})

	var stdout bytes.Buffer
	g, _ := newTestGenerator(&stdout)
	require.NoError(t, g.Run(context.Background(), Config{Inputs: []string{root}, Stdout: true, Jobs: 4}))

	output := stdout.String()
	assert.Less(t, strings.Index(output, "class AlphaTest {"), strings.Index(output, "class BetaTest {"))
	assert.NoFileExists(t, filepath.Join(root, "AlphaTest.java"))
}

func TestGenerator_PartialFailure(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Broken.java":      "public class Broken {\n    void run() {\n",
		"Color.java":       "enum Color { RED }",
		"UserService.java": userServiceSource,
	})

	g, errOut := newTestGenerator(&bytes.Buffer{})
	err := g.Run(context.Background(), Config{Inputs: []string{root}})
	require.Error(t, err)

	var multi *errors.MultipleErrors
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, 2, multi.Count())
	assert.Contains(t, err.Error(), "Broken.java")
	assert.Contains(t, err.Error(), "Color.java")

	assert.FileExists(t, filepath.Join(root, "UserServiceTest.java"))
	assert.Contains(t, errOut.String(), "Type: Malformed Input")
	assert.Contains(t, errOut.String(), "Type: No Declaration Found")

	summary := g.GetSummary()
	assert.Equal(t, 3, summary.Processed)
	assert.Len(t, summary.Failed, 2)
}

func TestGenerator_DuplicateTargets(t *testing.T) {
	root := t.TempDir()
	out := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/UserService.java": userServiceSource,
		"b/UserService.java": "@Service\npublic class UserService {\n    public void other() {}\n}",
	})

	g, _ := newTestGenerator(&bytes.Buffer{})
	err := g.Run(context.Background(), Config{Inputs: []string{root + "/..."}, OutDir: out, Jobs: 2})
	require.Error(t, err)

	var multi *errors.MultipleErrors
	require.ErrorAs(t, err, &multi)
	assert.Equal(t, 1, multi.Count())
	assert.Contains(t, err.Error(), filepath.Join("b", "UserService.java"))
	assert.Contains(t, err.Error(), "was already generated from")

	expected, err := generator.NewGenerator().Generate(userServiceSource)
	require.NoError(t, err)
	written, err := os.ReadFile(filepath.Join(out, "UserServiceTest.java"))
	require.NoError(t, err)
	assert.Equal(t, expected, string(written))

	summary := g.GetSummary()
	assert.Len(t, summary.GeneratedFiles, 1)
	assert.Len(t, summary.Failed, 1)
}

func TestGenerator_NoSources(t *testing.T) {
	g, _ := newTestGenerator(&bytes.Buffer{})
	err := g.Run(context.Background(), Config{Inputs: []string{t.TempDir()}})
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}

func TestGenerator_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"UserService.java": userServiceSource})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := newTestGenerator(&bytes.Buffer{})
	err := g.Run(ctx, Config{Inputs: []string{root}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(root, "UserServiceTest.java"))
}

func TestOutputPath(t *testing.T) {
	result := &generator.Result{ClassName: "UserService"}
	assert.Equal(t, filepath.Join("src", "UserServiceTest.java"), OutputPath(filepath.Join("src", "Anything.java"), result, ""))
	assert.Equal(t, filepath.Join("out", "UserServiceTest.java"), OutputPath(filepath.Join("src", "Anything.java"), result, "out"))
}
