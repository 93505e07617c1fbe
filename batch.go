package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/datolytix/oneimage/imageops"
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Convert every supported image in a directory",
	Long: `Convert every supported image in a directory to a target format,
processing files concurrently. Originals are left in place; converted
files are written next to them.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("to", "webp", "target format (png, jpg, jpeg, webp, avif)")
	batchCmd.Flags().Int("workers", 0, "number of concurrent workers (0 uses all CPUs)")
	batchCmd.Flags().BoolP("recursive", "r", false, "descend into subdirectories")
	batchCmd.Flags().IntP("quality", "q", 0, "output quality for lossy formats (1-100)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("to")
	workers, _ := cmd.Flags().GetInt("workers")
	recursive, _ := cmd.Flags().GetBool("recursive")
	quality, _ := cmd.Flags().GetInt("quality")

	if workers == 0 {
		workers = cfg.Workers
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	stats, err := proc.Batch(cmd.Context(), args[0], imageops.BatchSpec{
		TargetExt: target,
		Workers:   workers,
		Quality:   quality,
		Recursive: recursive,
	})
	if err != nil {
		return err
	}

	if stats.SuccessfulFiles > 0 {
		console.Success("Batch conversion completed: %d/%d files",
			stats.SuccessfulFiles, stats.TotalFiles)
	}
	return nil
}
