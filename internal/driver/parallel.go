package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"sigil/internal/diag"
	"sigil/internal/source"
)

// CheckResult содержит результат проверки одного файла.
type CheckResult struct {
	Path      string        // Относительный путь к файлу
	FileID    source.FileID // ID файла в FileSet
	DefCount  int           // Сколько определений найдено
	Bag       *diag.Bag     // Диагностики
	FromCache bool          // Результат взят из дискового кэша
}

// CheckOptions configures CheckDir.
type CheckOptions struct {
	Ext            string // source extension, e.g. ".sx"
	Jobs           int    // 0 — runtime.NumCPU()
	MaxDiagnostics int
	Cache          *DiskCache // nil — без кэша
}

// listSourceFiles возвращает отсортированный список файлов с расширением ext.
func listSourceFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir параллельно проверяет все исходные файлы в директории.
// Файлы загружаются в FileSet последовательно (он не потокобезопасен),
// разбор идёт параллельно.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	if opts.Ext == "" {
		opts.Ext = ".sx"
	}
	jobs := safeJobs(opts.Jobs)
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = 100
	}

	files, err := listSourceFiles(dir, opts.Ext)
	if err != nil {
		return nil, nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	fileSet := source.NewFileSet()
	results := make([]CheckResult, len(files))
	for i, path := range files {
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			return nil, nil, fmt.Errorf("loading %s: %w", path, loadErr)
		}
		results[i] = CheckResult{Path: path, FileID: id}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i := range results {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			checkOne(fileSet, &results[i], maxDiags, opts.Cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

// checkOne проверяет один уже загруженный файл, с учётом кэша.
func checkOne(fileSet *source.FileSet, res *CheckResult, maxDiags int, cache *DiskCache) {
	file := fileSet.Get(res.FileID)

	if cache != nil {
		if payload, ok := cache.Load(file.Hash); ok {
			res.DefCount = payload.DefCount
			res.Bag = payload.toBag(res.FileID, maxDiags)
			res.FromCache = true
			return
		}
	}

	parsed := parseLoaded(fileSet, res.FileID, res.Path, maxDiags)
	res.Bag = parsed.Bag
	res.DefCount = len(parsed.Definitions())

	if cache != nil {
		payload := newPayload(file, res.DefCount, parsed.Bag)
		// ошибки записи кэша не фатальны для проверки
		_ = cache.Store(payload)
	}
}

// TotalErrors суммирует ошибки по всем результатам.
func TotalErrors(results []CheckResult) int {
	total := 0
	for i := range results {
		if results[i].Bag == nil {
			continue
		}
		for _, d := range results[i].Bag.Items() {
			if d.Severity >= diag.SevError {
				total++
			}
		}
	}
	return total
}

// safeJobs clamps a user-provided jobs flag.
func safeJobs(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	clamped, err := safecast.Conv[uint16](n)
	if err != nil {
		return runtime.NumCPU()
	}
	return int(clamped)
}
