// Package stylelint evaluates generated text against a style pack and produces a compliance report.
package stylelint

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/spot/internal/types"
)

// maxConcurrentLints bounds the fan-out when linting many files, so a
// large batch does not open every file at once.
const maxConcurrentLints = 8

// LintFiles reads each file and lints its contents against pack,
// fanning the work out across goroutines. Results come back in input
// order regardless of completion order. The first unreadable file
// cancels the batch and is returned as a FileReadError.
func LintFiles(ctx context.Context, paths []string, pack *types.StylePack) ([]types.FileResult, error) {
	results := make([]types.FileResult, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLints)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return &FileReadError{
					Message: fmt.Sprintf("failed to read content file: %s", path),
					Cause:   err,
				}
			}

			results[i] = types.FileResult{
				Path:   path,
				Result: Lint(string(data), pack),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
