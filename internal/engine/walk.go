package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/agentlint/agentlint/internal/types"
)

// Result aggregates a run over one or more documents.
type Result struct {
	Findings     []types.Finding
	FilesChecked int
	Duration     time.Duration
}

// CheckPath validates a single document file, or every architecture document
// under a directory root. In directory mode, files that fail to parse are
// skipped rather than aborting the walk; for a single file a parse failure
// is fatal.
func CheckPath(cfg Config) (Result, error) {
	start := time.Now()
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return Result{}, fmt.Errorf("file not found: %s", cfg.Root)
	}

	var res Result
	if !info.IsDir() {
		findings, err := CheckFile(cfg.Root, cfg)
		if err != nil {
			return Result{}, err
		}
		res.Findings = findings
		res.FilesChecked = 1
		res.Duration = time.Since(start)
		return res, nil
	}

	walkErr := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p == cfg.Root {
			return nil
		}
		if d.IsDir() {
			if isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !isArchDoc(rel) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		findings, err := CheckFile(p, cfg)
		if err != nil {
			return nil
		}
		for i := range findings {
			findings[i].Path = rel
		}
		res.Findings = append(res.Findings, findings...)
		res.FilesChecked++
		return nil
	})
	res.Duration = time.Since(start)
	return res, walkErr
}
