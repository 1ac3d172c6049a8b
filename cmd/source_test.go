package cmd

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every command file and the main entry point must parse with the
// package clause that follows the license header.
func TestSourcesParse(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	files = append(files, filepath.Join("..", "main.go"))

	fset := token.NewFileSet()
	for _, file := range files {
		f, err := parser.ParseFile(fset, file, nil, parser.ParseComments)
		require.NoError(t, err, file)

		want := "cmd"
		if filepath.Base(file) == "main.go" {
			want = "main"
		}
		assert.Equal(t, want, f.Name.Name, file)
		require.NotEmpty(t, f.Comments, file)
		assert.Contains(t, f.Comments[0].Text(), "Copyright", file)
	}
}
