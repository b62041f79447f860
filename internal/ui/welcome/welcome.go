// Package welcome renders the static welcome banner.
package welcome

import (
	"html/template"
	"strings"
)

const (
	Heading   = "Welcome to My Website!"
	Paragraph = "We're glad you're here. Explore and enjoy the content."
)

var banner = template.Must(template.New("welcome").Parse(
	`<div class="welcome-container"><h1>{{.Heading}}</h1><p>{{.Paragraph}}</p></div>`,
))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Heading}}</title>
</head>
<body>
{{.Banner}}
</body>
</html>
`))

var rendered = mustExecute(banner, struct{ Heading, Paragraph string }{Heading, Paragraph})

// Render returns the banner markup. The result never changes.
func Render() template.HTML {
	return rendered
}

// Page returns a complete HTML document containing the banner.
func Page() string {
	return string(mustExecute(page, struct {
		Heading string
		Banner  template.HTML
	}{Heading, Render()}))
}

func mustExecute(t *template.Template, data any) template.HTML {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}
	return template.HTML(b.String())
}
