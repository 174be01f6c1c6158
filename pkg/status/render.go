package status

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

type templateData struct {
	Path    string
	Entries []string
}

type Renderer struct {
	found  *template.Template
	absent *template.Template
}

func NewRenderer(foundTemplate, absentTemplate string) (*Renderer, error) {
	found, err := template.New("found").Funcs(sprig.TxtFuncMap()).Parse(foundTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse found template")
	}

	absent, err := template.New("absent").Funcs(sprig.TxtFuncMap()).Parse(absentTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse absent template")
	}

	return &Renderer{found: found, absent: absent}, nil
}

func (r *Renderer) Found(path string, entries []string) (string, error) {
	return execute(r.found, templateData{Path: path, Entries: entries})
}

func (r *Renderer) Absent(path string) (string, error) {
	return execute(r.absent, templateData{Path: path, Entries: []string{}})
}

func execute(tpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, &data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s template", tpl.Name())
	}
	return buf.String(), nil
}
