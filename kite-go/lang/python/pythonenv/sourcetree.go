package pythonenv

import (
	"fmt"
	"path"
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
)

// Dir is a directory of python files; it is a package if it has an __init__ file
type Dir struct {
	Path    string
	Init    *File
	Files   map[string][]*File // Files maps module names to files, one per extension
	Subdirs map[string]*Dir

	element *DirElement
}

// SourceTree contains Files for each module and Dirs for each package
type SourceTree struct {
	Files map[string]*File // Files maps filenames to files
	Dirs  map[string]*Dir  // Dirs maps directory paths to directories

	externals map[string]*ExternalElement
}

// NewSourceTree construct an empty source tree
func NewSourceTree() *SourceTree {
	return &SourceTree{
		Files:     make(map[string]*File),
		Dirs:      make(map[string]*Dir),
		externals: make(map[string]*ExternalElement),
	}
}

// AddFile inserts a file into the source tree, which also creates parent
// directories as required. A file previously added under the same path is
// invalidated and replaced.
func (t *SourceTree) AddFile(f *File) {
	if old, found := t.Files[f.Path]; found && old != f {
		old.Invalidate()
		t.removeFromDir(old)
	}

	f.tree = t
	parent := t.AddDir(path.Dir(f.Path))
	if f.ModuleName() == "__init__" {
		if parent.Init == nil || path.Ext(f.Path) == ".py" {
			parent.Init = f
		}
	} else {
		name := f.ModuleName()
		parent.Files[name] = append(parent.Files[name], f)
	}

	t.Files[f.Path] = f
}

func (t *SourceTree) removeFromDir(f *File) {
	dir := t.Dirs[path.Dir(f.Path)]
	if dir == nil {
		return
	}
	if dir.Init == f {
		dir.Init = nil
	}
	name := f.ModuleName()
	files := dir.Files[name][:0]
	for _, other := range dir.Files[name] {
		if other != f {
			files = append(files, other)
		}
	}
	dir.Files[name] = files
}

// AddDir inserts a new directory into the source tree
func (t *SourceTree) AddDir(srcpath string) *Dir {
	// get or create package for this dir
	dir, found := t.Dirs[srcpath]
	if !found {
		dir = &Dir{
			Path:    srcpath,
			Files:   make(map[string][]*File),
			Subdirs: make(map[string]*Dir),
		}
		dir.element = &DirElement{tree: t, dir: dir}
		t.Dirs[srcpath] = dir
	}

	// link the parent directory to this one
	if path.Dir(srcpath) != srcpath {
		parent := t.AddDir(path.Dir(srcpath))
		parent.Subdirs[path.Base(srcpath)] = dir
	}

	return dir
}

// ImportAbs finds the element for the given top-level package (e.g. "kite" in "import kite.foo.bar")
// SRCPATH should be a path to the python source file that contained the import statement.
func (t *SourceTree) ImportAbs(srcpath string, name string, cython bool) Element {
	var found Element
	t.srcPkgSearch(srcpath, func(dir *Dir) bool {
		if el := dir.child(name, cython); el != nil {
			found = el
			return false // stop
		}
		return true
	})
	return found
}

// srcPkgSearch calls callback once for each directory in the (approximate) absolute import search path for srcpath,
// which may be a file or a directory.
// Earlier calls to callback take priority over later ones (i.e. the directories are emitted in order for search).
// If callback return false, no more directories are emitted.
func (t *SourceTree) srcPkgSearch(srcpath string, callback func(*Dir) bool) {
	if !path.IsAbs(srcpath) {
		panic(fmt.Sprintf("SourceTree received non-absolute path: `%s`", srcpath))
	}

	for {
		if dir, exists := t.Dirs[srcpath]; exists {
			if !callback(dir) {
				break
			}
		}
		if parent := path.Dir(srcpath); parent != srcpath {
			srcpath = parent
		} else {
			break
		}
	}
}

// ImportRel finds the directory corresponding to the given sequence of dots in a relative
// import such as "from ...foo import bar". SRCPATH should be a path to the python source
// file that contained the import statement.
func (t *SourceTree) ImportRel(srcpath string, dots int) *Dir {
	if !path.IsAbs(srcpath) {
		panic(fmt.Sprintf("SourceTree received non-absolute path: %s", srcpath))
	}
	for i := 0; i < dots; i++ {
		srcpath = path.Dir(srcpath)
	}
	return t.Dirs[srcpath]
}

// Import finds the module or package named by a possibly relative dotted path,
// as imported from the file at srcpath. It returns nil if the module is not
// part of the source tree. The cython flag prefers .pxd declaration files.
func (t *SourceTree) Import(srcpath string, dotted string, dots int, cython bool) Element {
	var parts []string
	if dotted != "" {
		parts = strings.Split(dotted, ".")
	}

	var cur Element
	if dots > 0 {
		dir := t.ImportRel(srcpath, dots)
		if dir == nil {
			return nil
		}
		cur = dir.element
	} else {
		if len(parts) == 0 {
			return nil
		}
		if cur = t.ImportAbs(srcpath, parts[0], cython); cur == nil {
			return nil
		}
		parts = parts[1:]
	}

	for _, part := range parts {
		dir, ok := cur.(*DirElement)
		if !ok {
			return nil
		}
		if cur = dir.dir.child(part, cython); cur == nil {
			return nil
		}
	}
	return cur
}

// Members finds the declarations of an attribute on a module or package
// element. For packages, submodules take priority over names bound in __init__.
func (t *SourceTree) Members(container Element, name string) []Element {
	switch c := container.(type) {
	case *FileElement:
		return c.file.Bindings(c.file.AST, name)
	case *DirElement:
		if el := c.dir.child(name, false); el != nil {
			return []Element{el}
		}
		if init := c.dir.Init; init != nil {
			return init.Bindings(init.AST, name)
		}
	}
	return nil
}

// External gets the element for a dotted path outside the source tree
func (t *SourceTree) External(dotted string) *ExternalElement {
	if el, ok := t.externals[dotted]; ok {
		return el
	}
	el := &ExternalElement{Path: dotted}
	t.externals[dotted] = el
	return el
}

// DirElement gets the element for a directory in the tree, or nil
func (t *SourceTree) DirElement(srcpath string) *DirElement {
	if dir, ok := t.Dirs[srcpath]; ok {
		return dir.element
	}
	return nil
}

// Package returns the directory that contains the specified path.
// If the path is to a module this returns the directory containing the
// module, if the path is to a directory this returns its parent directory.
func (t *SourceTree) Package(p string) (*Dir, error) {
	dir := t.Dirs[path.Dir(p)]
	if dir == nil {
		return nil, fmt.Errorf("unable to find package for path `%s`", p)
	}
	return dir, nil
}

// child finds a module or subpackage of this directory
func (d *Dir) child(name string, cython bool) Element {
	files := d.Files[name]
	if cython {
		for _, f := range files {
			if path.Ext(f.Path) == ".pxd" {
				return f.Element()
			}
		}
	}
	if sub, ok := d.Subdirs[name]; ok {
		return sub.element
	}
	for _, ext := range []string{".py", ".pyx", ".pxd"} {
		for _, f := range files {
			if path.Ext(f.Path) == ext {
				return f.Element()
			}
		}
	}
	return nil
}

// Element gets the element representing this directory
func (d *Dir) Element() *DirElement {
	return d.element
}

// moduleName strips the extension from the base name of a python file
func moduleName(srcpath string) string {
	base := path.Base(srcpath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// scopeName gets the name a scope binds in its parent, or "" for modules
func scopeName(s pythonast.Scope) string {
	switch s := s.(type) {
	case *pythonast.FunctionDefStmt:
		return s.Name.Ident.Literal
	case *pythonast.ClassDefStmt:
		return s.Name.Ident.Literal
	case *pythonast.LambdaExpr:
		return "<lambda>"
	}
	return ""
}
