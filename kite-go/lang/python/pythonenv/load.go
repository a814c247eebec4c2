package pythonenv

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// LoadDir parses every python file under root into a new source tree. Files
// with syntax errors are still added; their errors are collected in the
// returned error, which is an errors.Errors if non-nil.
func LoadDir(root string) (*SourceTree, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to resolve %s", root)
	}

	var paths []string
	err = filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && isPython(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error walking %s", root)
	}
	sort.Strings(paths)

	tree := NewSourceTree()
	var errs errors.Errors
	for _, p := range paths {
		src, err := ioutil.ReadFile(p)
		if err != nil {
			errs = errors.Append(errs, errors.Wrapf(err, "unable to read %s", p))
			continue
		}
		f, err := NewFile(filepath.ToSlash(p), src)
		if err != nil {
			errs = errors.Append(errs, errors.Wrapf(err, "%s", p))
		}
		if f != nil {
			tree.AddFile(f)
		}
	}
	if errs != nil {
		return tree, errs
	}
	return tree, nil
}
