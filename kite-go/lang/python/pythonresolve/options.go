package pythonresolve

import (
	"github.com/kiteco/pyresolve/kite-golib/envutil"
	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// DefaultOptions are the default options for the Engine
var DefaultOptions = Options{
	AllowDataFlow:  true,
	AllowStubToAST: true,
	CacheSize:      4096,
}

// Options represents the options for the Engine
type Options struct {
	// AllowDataFlow enables reaching-definition analysis for names assigned in
	// the same scope as the reference
	AllowDataFlow bool
	// AllowStubToAST permits reading assigned values from the syntax tree of
	// files that have a summary; without it the summary is used
	AllowStubToAST bool
	// CacheSize is the number of element types each context remembers
	CacheSize int
}

// OptionsFromEnv overrides the defaults with PYRESOLVE_DATAFLOW,
// PYRESOLVE_STUB_TO_AST and PYRESOLVE_CACHE_SIZE
func OptionsFromEnv() (Options, error) {
	opts := DefaultOptions
	var errs errors.Errors
	var err error

	opts.AllowDataFlow, err = envutil.GetenvDefaultBool("PYRESOLVE_DATAFLOW", opts.AllowDataFlow)
	errs = errors.Append(errs, err)
	opts.AllowStubToAST, err = envutil.GetenvDefaultBool("PYRESOLVE_STUB_TO_AST", opts.AllowStubToAST)
	errs = errors.Append(errs, err)
	opts.CacheSize, err = envutil.GetenvDefaultInt("PYRESOLVE_CACHE_SIZE", opts.CacheSize)
	errs = errors.Append(errs, err)
	if opts.CacheSize <= 0 {
		errs = errors.Append(errs, errors.Errorf("PYRESOLVE_CACHE_SIZE must be positive, got %d", opts.CacheSize))
		opts.CacheSize = DefaultOptions.CacheSize
	}

	if errs != nil {
		return opts, errs
	}
	return opts, nil
}
