package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/vision-annotate/internal/detection"
	"github.com/ironsheep/vision-annotate/internal/imaging"
	"github.com/ironsheep/vision-annotate/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// resultFile is the on-disk shape of a model's post-processed results.
type resultFile struct {
	Detections      []detection.Object         `json:"detections"`
	Segmentations   []detection.Segmentation   `json:"segmentations"`
	Classifications []detection.Classification `json:"classifications"`
}

// job pairs an input image with its results and output path for batch mode.
type job struct {
	Image   string `json:"image"`
	Results string `json:"results"`
	Out     string `json:"out"`
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("vision-annotate %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	imagePath := flag.String("image", "", "input image path")
	resultsPath := flag.String("results", "", "detection results JSON path")
	outPath := flag.String("out", "annotated.png", "output image path")
	withConfidence := flag.Bool("confidence", true, "append confidence percentages to labels")
	batchPath := flag.String("batch", "", "JSON file listing {image, results, out} jobs")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent jobs in batch mode")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *batchPath != "" {
		if err := runBatch(*batchPath, *withConfidence, *workers); err != nil {
			log.Fatalf("Batch failed: %v", err)
		}
		return
	}

	if *imagePath == "" || *resultsPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := annotate(*imagePath, *resultsPath, *outPath, *withConfidence); err != nil {
		log.Fatalf("Annotate failed: %v", err)
	}
	if os.Getenv("VISION_ANNOTATE_LOG_LEVEL") == "debug" {
		log.Printf("Wrote %s", *outPath)
	}
}

// runBatch annotates every job in the list, a bounded number at a time.
func runBatch(path string, withConfidence bool, workers int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}
	var jobs []job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return fmt.Errorf("failed to parse batch file: %w", err)
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := annotate(j.Image, j.Results, j.Out, withConfidence); err != nil {
				return fmt.Errorf("%s: %w", j.Image, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// annotate renders all result kinds onto the image and saves it. Masks go
// first so box outlines and labels stay on top.
func annotate(imagePath, resultsPath, outPath string, withConfidence bool) error {
	img, err := imaging.Load(imagePath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(resultsPath)
	if err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}
	var results resultFile
	if err := json.Unmarshal(data, &results); err != nil {
		return fmt.Errorf("failed to parse results: %w", err)
	}

	if err := render.Segmentation(img, results.Segmentations, withConfidence); err != nil {
		return err
	}
	if err := render.BoundingBoxes(img, results.Detections, withConfidence); err != nil {
		return err
	}
	if err := render.ClassificationLabels(img, results.Classifications, withConfidence); err != nil {
		return err
	}

	return imaging.Save(img, outPath)
}
