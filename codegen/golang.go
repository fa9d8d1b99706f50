package codegen

import (
	"bytes"
	"fmt"

	"github.com/bifrost-tools/hueicons"
	"github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
)

func (cg *CodeGen) generateGo(buf *bytes.Buffer, records []hueicons.Record) error {
	lines, err := cg.bannerLines()
	if err != nil {
		return err
	}

	f := jen.NewFile(cg.Package)
	f.HeaderComment("Code generated by hueicons. DO NOT EDIT.")
	for _, line := range lines {
		if line == "" {
			line = "//"
		}
		f.PackageComment(line)
	}

	defs := make([]jen.Code, 0, 2*len(records))
	for _, record := range records {
		defs = append(defs,
			jen.Comment(fmt.Sprintf("%s is the path of the %q icon.", record.Name, record.Key)),
			jen.Id(record.Name).Op("=").Lit(record.Path),
		)
	}
	f.Const().Defs(defs...)

	return errors.Wrap(f.Render(buf), "failed to format go output")
}
