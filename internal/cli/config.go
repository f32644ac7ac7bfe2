package cli

// Config holds the configuration for a batch generation run
type Config struct {
	// Inputs are files, directories or "dir/..." patterns
	Inputs []string

	// OutDir receives the generated files; empty writes next to each input
	OutDir string

	// Stdout prints the generated classes instead of writing files
	Stdout bool

	// Jobs bounds the number of files processed concurrently
	Jobs int

	// Verbose enables detailed error reporting
	Verbose bool
}
