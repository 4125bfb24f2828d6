package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ytget/chemviz/internal/logging"
	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/platform"
)

// ExportAll renders every widget into dir as PNG and returns the written paths
// in widget order. It stops at the first failure.
func ExportAll(dir string, ds *model.Dataset, widgets []model.Widget, opts ...Option) ([]string, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	paths := make([]string, 0, len(widgets))
	for _, w := range widgets {
		path := filepath.Join(dir, platform.ExportFileName(w.ID, w.Title))
		if err := exportOne(path, ds, w, opts); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	logging.Infof("exported %d charts to %s", len(paths), dir)
	return paths, nil
}

func exportOne(path string, ds *model.Dataset, w model.Widget, opts []Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := RenderWidget(f, ds, w, opts...); err != nil {
		f.Close()
		return fmt.Errorf("widget %d: %w", w.ID, err)
	}
	return f.Close()
}
