package imageops

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/datolytix/oneimage/config"
	"github.com/datolytix/oneimage/logger"
	"github.com/datolytix/oneimage/validate"
)

// BatchSpec drives a directory conversion run.
type BatchSpec struct {
	// TargetExt is the output extension without the dot, e.g. "webp".
	TargetExt string
	Workers   int
	Quality   int
	Recursive bool
}

// Stats aggregates the outcome of a batch run.
type Stats struct {
	mu sync.Mutex

	TotalFiles      int
	ProcessedFiles  int
	SuccessfulFiles int
	FailedFiles     int

	TotalOriginalSize  int64
	TotalConvertedSize int64
}

// Batch converts every supported image under dir to spec.TargetExt using a
// bounded worker pool. Originals are left in place; converted files are
// written alongside them. Files already in the target format are skipped.
func (p *Processor) Batch(ctx context.Context, dir string, spec BatchSpec) (*Stats, error) {
	if err := validate.Workers(spec.Workers); err != nil {
		return nil, err
	}
	if err := validate.Quality(spec.Quality); err != nil {
		return nil, err
	}

	targetExt := "." + strings.TrimPrefix(strings.ToLower(spec.TargetExt), ".")
	if _, ok := config.SupportedFormats[targetExt]; !ok {
		return nil, validate.Errorf("unsupported target format %q, supported formats: %s",
			spec.TargetExt, config.FormatList())
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, validate.Errorf("cannot access directory: %v", err)
	}
	if !info.IsDir() {
		return nil, validate.Errorf("path is not a directory: %s", dir)
	}

	files, err := collectFiles(dir, targetExt, spec.Recursive)
	if err != nil {
		return nil, fmt.Errorf("collecting files: %w", err)
	}

	stats := &Stats{TotalFiles: len(files)}
	if len(files) == 0 {
		p.Console.Warn("No files found to process")
		return stats, nil
	}

	p.Console.Info("Converting %d files to %s (workers: %d)", len(files), targetExt, spec.Workers)
	p.convertParallel(ctx, files, targetExt, spec, stats)
	p.printSummary(stats)

	return stats, nil
}

// collectFiles walks dir for files with a whitelisted extension, skipping
// files already in the target format (.jpg counts as .jpeg).
func collectFiles(dir, targetExt string, recursive bool) ([]string, error) {
	targetFormat := config.SupportedFormats[targetExt]
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		format, ok := config.SupportedFormats[ext]
		if ok && format != targetFormat {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (p *Processor) convertParallel(ctx context.Context, files []string, targetExt string, spec BatchSpec, stats *Stats) {
	jobs := make(chan string, spec.Workers)
	bar := p.Console.NewProgressBar(int64(len(files)), "Converting images")

	var wg sync.WaitGroup
	for w := 0; w < spec.Workers; w++ {
		wg.Add(1)
		go p.batchWorker(ctx, w, jobs, targetExt, spec.Quality, stats, bar, &wg)
	}

	go func() {
		defer close(jobs)
		for _, file := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- file:
			}
		}
	}()

	wg.Wait()
	bar.Complete()
}

func (p *Processor) batchWorker(ctx context.Context, id int, jobs <-chan string, targetExt string,
	quality int, stats *Stats, bar *logger.ProgressBar, wg *sync.WaitGroup) {
	defer wg.Done()

	for path := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		origSize, convSize, err := p.convertOne(path, targetExt, quality)

		stats.mu.Lock()
		stats.ProcessedFiles++
		if err != nil {
			stats.FailedFiles++
			p.Console.Error("Worker %d: %s: %v", id+1, filepath.Base(path), err)
		} else {
			stats.SuccessfulFiles++
			stats.TotalOriginalSize += origSize
			stats.TotalConvertedSize += convSize
		}
		stats.mu.Unlock()

		bar.Increment(1)
	}
}

// convertOne converts a single file in place next to the original, returning
// the before and after byte sizes.
func (p *Processor) convertOne(path, targetExt string, quality int) (int64, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, fmt.Errorf("stat: %w", err)
	}
	origSize := info.Size()

	img, _, err := Decode(path)
	if err != nil {
		return origSize, 0, err
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + targetExt
	if err := Save(img, outPath, p.encodeOptions(quality)); err != nil {
		return origSize, 0, err
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return origSize, 0, fmt.Errorf("stat output: %w", err)
	}
	return origSize, outInfo.Size(), nil
}

func (p *Processor) printSummary(stats *Stats) {
	var ratio float64
	if stats.TotalOriginalSize > 0 {
		ratio = float64(stats.TotalConvertedSize) / float64(stats.TotalOriginalSize) * 100
	}

	table := p.Console.NewTable([]string{"Metric", "Value"})
	table.AddRow("Converted files", fmt.Sprintf("%d/%d", stats.SuccessfulFiles, stats.TotalFiles))
	table.AddRow("Failed files", fmt.Sprintf("%d", stats.FailedFiles))
	table.AddRow("Original size", fmt.Sprintf("%.2f MB", float64(stats.TotalOriginalSize)/1024/1024))
	table.AddRow("Converted size", fmt.Sprintf("%.2f MB", float64(stats.TotalConvertedSize)/1024/1024))
	table.AddRow("Size ratio", fmt.Sprintf("%.1f%%", ratio))

	p.Console.Info("\nBatch Summary:")
	table.Print()
}
