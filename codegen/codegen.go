package codegen

import (
	"bytes"
	"go/token"
	"io"

	"github.com/bifrost-tools/hueicons"
	"github.com/bifrost-tools/hueicons/diagnostic"
	"github.com/pkg/errors"
)

// Target is the language constants are generated for.
type Target string

const (
	// Rust generates `pub const NAME: &str = "...";` declarations.
	Rust Target = "rust"
	// Go generates a gofmt-formatted file with a const block.
	Go Target = "go"
)

// Targets lists every supported target.
var Targets = []Target{Rust, Go}

// ParseTarget returns the target named s.
func ParseTarget(s string) (Target, error) {
	var names []string
	for _, target := range Targets {
		if string(target) == s {
			return target, nil
		}
		names = append(names, string(target))
	}
	if suggestion := diagnostic.Suggestion(s, names); suggestion != "" {
		return "", errors.Errorf("unknown target %q, did you mean %s?", s, suggestion)
	}
	return "", errors.Errorf("unknown target %q, must be one of %q", s, names)
}

// DefaultPackage is the package name of generated Go files.
const DefaultPackage = "hueicons"

type CodeGen struct {
	Target  Target
	Package string
	Banner  *Banner
}

type CodeGenOption func(*CodeGen) error

func WithTarget(target Target) CodeGenOption {
	return func(cg *CodeGen) error {
		_, err := ParseTarget(string(target))
		if err != nil {
			return err
		}
		cg.Target = target
		return nil
	}
}

// WithHeader prefixes the generated output with the attribution banner.
func WithHeader(banner Banner) CodeGenOption {
	return func(cg *CodeGen) error {
		cg.Banner = &banner
		return nil
	}
}

// WithPackage sets the package clause of generated Go files.
func WithPackage(name string) CodeGenOption {
	return func(cg *CodeGen) error {
		if !token.IsIdentifier(name) || name == "_" {
			return errors.Errorf("invalid package name %q", name)
		}
		cg.Package = name
		return nil
	}
}

func New(opts ...CodeGenOption) (*CodeGen, error) {
	cg := &CodeGen{
		Target:  Rust,
		Package: DefaultPackage,
	}
	for _, opt := range opts {
		err := opt(cg)
		if err != nil {
			return cg, err
		}
	}
	return cg, nil
}

// Generate writes one constant per record to w. Nothing is written unless
// the whole output could be generated.
func (cg *CodeGen) Generate(w io.Writer, records []hueicons.Record) error {
	var (
		buf bytes.Buffer
		err error
	)
	switch cg.Target {
	case Rust:
		err = cg.generateRust(&buf, records)
	case Go:
		err = cg.generateGo(&buf, records)
	default:
		err = errors.Errorf("unknown target %q", cg.Target)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())
	return errors.Wrap(err, "failed to write generated constants")
}

func (cg *CodeGen) bannerLines() ([]string, error) {
	if cg.Banner == nil {
		return nil, nil
	}
	lines, err := cg.Banner.Lines()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render banner")
	}
	return lines, nil
}
