package config

import (
	"fmt"
	"path/filepath"

	"github.com/banshee-data/trajplot/internal/fsutil"
)

// Result file templates per split, relative to the experiment root. The
// single verb is the testset identifier.
var resultTemplates = map[Split]string{
	Test:  "log/test_results_wi_testset_%s.json",
	Train: "save/final_train_results_wi_testset_%s.json",
	Dev:   "save/final_dev_results_wi_testset_%s.json",
}

// ResultPath returns the result file path for split and testset, relative
// to the experiment root.
func ResultPath(split Split, testset TestsetID) (string, error) {
	tmpl, ok := resultTemplates[split]
	if !ok {
		return "", &InvalidSplitError{Value: string(split)}
	}
	return fmt.Sprintf(tmpl, testset), nil
}

// ResolveResultPath joins the templated result path onto root and falls back
// to a gzipped sibling when only that exists.
func ResolveResultPath(fsys fsutil.FileSystem, root string, split Split, testset TestsetID) (string, error) {
	rel, err := ResultPath(split, testset)
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, rel)
	if !fsys.Exists(path) && fsys.Exists(path+".gz") {
		return path + ".gz", nil
	}
	return path, nil
}
