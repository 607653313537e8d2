package driver

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TokenizeBatch токенизирует выражения параллельно; results[i] соответствует inputs[i].
func TokenizeBatch(ctx context.Context, inputs []string, maxDiagnostics, jobs int) ([]*TokenizeResult, error) {
	return runBatch(ctx, inputs, jobs, func(input string) *TokenizeResult {
		return Tokenize(input, maxDiagnostics)
	})
}

// ParseBatch парсит выражения параллельно; results[i] соответствует inputs[i].
// A failing expression does not stop the batch; only ctx cancellation does.
func ParseBatch(ctx context.Context, inputs []string, maxDiagnostics, jobs int) ([]*ParseResult, error) {
	return runBatch(ctx, inputs, jobs, func(input string) *ParseResult {
		return Parse(input, maxDiagnostics)
	})
}

func runBatch[R any](ctx context.Context, inputs []string, jobs int, run func(string) R) ([]R, error) {
	results := make([]R, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(inputs))
	slog.Debug("batch started", "inputs", len(inputs), "jobs", jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, input := range inputs {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален для каждой горутины, мьютекс не нужен
			results[i] = run(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
