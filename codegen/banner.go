package codegen

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/lithammer/dedent"
	"github.com/pkg/errors"
)

// DefaultBannerTemplate renders the attribution required by the upstream
// icon set. Each line becomes one comment line in the target language.
var DefaultBannerTemplate = strings.TrimPrefix(dedent.Dedent(`
	GENERATED FILE - DO NOT EDIT

	This file is derived from {{ .Upstream }}

	  <{{ .URL }}>

	{{ .Notice }}

	  [{{ .License }}]({{ .LicenseURL }})
`), "\n")

// Banner describes the upstream icon set and its license.
type Banner struct {
	Upstream   string `yaml:"upstream"`
	URL        string `yaml:"url"`
	Notice     string `yaml:"notice"`
	License    string `yaml:"license"`
	LicenseURL string `yaml:"license_url"`

	// Template overrides DefaultBannerTemplate. Sprig functions are
	// available.
	Template string `yaml:"template"`
}

// DefaultBanner is the attribution of hass-hue-icons.
var DefaultBanner = Banner{
	Upstream:   "hass-hue-icons",
	URL:        "https://github.com/arallsopp/hass-hue-icons",
	Notice:     "These icons are licensed under Creative Commons:",
	License:    "CC BY-NC-SA 4.0",
	LicenseURL: "http://creativecommons.org/licenses/by-nc-sa/4.0/",
}

// Lines renders the banner without trailing blank lines.
func (b Banner) Lines() ([]string, error) {
	text := b.Template
	if text == "" {
		text = DefaultBannerTemplate
	}

	tmpl, err := template.New("banner").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "invalid banner template")
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, b)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rendered := strings.TrimRight(buf.String(), "\n")
	if rendered == "" {
		return nil, nil
	}

	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines, nil
}
