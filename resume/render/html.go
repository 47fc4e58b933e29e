package render

import (
	"html/template"
	"strings"
)

// HTML renders the document into a standalone HTML page suitable as the
// capture source for PDF export. Styling is intentionally plain: white
// background, style-specific accent treatment, print-friendly fonts.
func HTML(doc Document) (string, error) {
	var b strings.Builder
	if err := pageTemplate.Execute(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

var pageTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { margin: 0; background: #ffffff; color: #1f2937; }
  #resume-preview { max-width: 800px; margin: 0 auto; padding: 48px; }
  .style-professional { font-family: Georgia, serif; }
  .style-modern { font-family: Helvetica, Arial, sans-serif; }
  .style-minimal { font-family: Georgia, serif; font-weight: 300; }
  .style-professional h1 { text-align: center; border-bottom: 2px solid #1f2937; padding-bottom: 12px; }
  .style-modern h1 { color: #2563eb; }
  .style-modern h2 { color: #2563eb; border-bottom: 2px solid #2563eb; }
  h2 { border-bottom: 1px solid #9ca3af; padding-bottom: 4px; }
  .contact { font-size: 0.9em; color: #4b5563; }
  .style-professional .contact { text-align: center; }
  .meta { color: #6b7280; font-size: 0.85em; }
  .sub { font-style: italic; color: #4b5563; }
  ul { margin: 6px 0; }
</style>
</head>
<body>
<div id="resume-preview" class="style-{{.Style}}">
{{- range .Sections}}
{{- if eq .ID "contact"}}
  <h1>{{.Title}}</h1>
  {{- range .Entries}}{{if .Body}}<div class="contact">{{.Body}}</div>{{end}}{{end}}
{{- else}}
  <section>
    <h2>{{.Title}}</h2>
    {{- range .Entries}}
    <div class="entry">
      {{- if .Heading}}<h3>{{.Heading}}</h3>{{end}}
      {{- if .Subheading}}<p class="sub">{{.Subheading}}</p>{{end}}
      {{- if .Meta}}<p class="meta">{{.Meta}}</p>{{end}}
      {{- if .Body}}<p>{{.Body}}</p>{{end}}
      {{- if .Bullets}}
      <ul>
        {{- range .Bullets}}
        <li>{{.}}</li>
        {{- end}}
      </ul>
      {{- end}}
    </div>
    {{- end}}
  </section>
{{- end}}
{{- end}}
</div>
</body>
</html>
`))
