//go:build !cgo

package signature

// newPythonExtractor returns nil without cgo, so Python files are
// reported as unsupported instead of failing the build.
func newPythonExtractor() Extractor {
	return nil
}
