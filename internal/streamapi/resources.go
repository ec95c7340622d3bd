package streamapi

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/deadlyengineer/gostreams"
)

// DiagnosticPrefix starts every message FilterResourceLines writes to its error channel.
const DiagnosticPrefix = "Ouch, that didn't work: \n"

//go:embed resources
var assets embed.FS

// Resources returns the text resources embedded with the program.
func Resources() fs.FS {
	sub, err := fs.Sub(assets, "resources")
	if err != nil {
		// only fails for an invalid directory name
		panic(err)
	}

	return sub
}

// FilterLines reads the resource name from fsys and returns all lines that start
// with "a" and are at least two characters long, each followed by "\n", in order.
// A resource that cannot be opened or read yields a *ResourceAccessError and no partial result.
func FilterLines(ctx context.Context, fsys fs.FS, name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &ResourceAccessError{
			Op:   "open",
			Name: name,
			Err:  fs.ErrInvalid,
		}
	}

	f, err := fsys.Open(name)
	if err != nil {
		return "", &ResourceAccessError{
			Op:   "open",
			Name: name,
			Err:  err,
		}
	}
	defer f.Close()

	lines := gostreams.Filter(gostreams.ProduceLines(f), gostreams.FuncPredicate(keepLine))

	lines = gostreams.Map(lines, gostreams.FuncMapper(func(line string) string {
		return line + "\n"
	}))

	result, err := gostreams.ReduceString(ctx, lines)
	if err != nil {
		return "", &ResourceAccessError{
			Op:   "read",
			Name: name,
			Err:  err,
		}
	}

	return result, nil
}

// FilterResourceLines is like FilterLines, but never fails: errors are written
// to errOut, prefixed with DiagnosticPrefix, and an empty string is returned.
func FilterResourceLines(ctx context.Context, fsys fs.FS, name string, errOut io.Writer) string {
	result, err := FilterLines(ctx, fsys, name)
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "%s%s\n", DiagnosticPrefix, err)
		return ""
	}

	return result
}

func keepLine(line string) bool {
	return strings.HasPrefix(line, "a") && len(line) >= 2
}
