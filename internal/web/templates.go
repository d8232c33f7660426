package web

import (
	"html/template"

	"github.com/thenoetrevino/issuetracker/internal/config"
	"github.com/thenoetrevino/issuetracker/internal/models"
)

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"eq": func(a, b string) bool { return a == b },
		// Theme colours are validated by Theme.ApplyDefaults in NewHandler
		"badgeFg": func(theme config.Theme, status models.Status) template.CSS {
			fg, _ := theme.StatusColors(status)
			return template.CSS(fg)
		},
		"badgeBg": func(theme config.Theme, status models.Status) template.CSS {
			_, bg := theme.StatusColors(status)
			return template.CSS(bg)
		},
	}
	return template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Issue Tracker</title>
  <style>
    body {
      margin: 0;
      font-family: system-ui, sans-serif;
      color: #1f2937;
      background: #f8fafc;
    }
    main {
      max-width: 760px;
      margin: 0 auto;
      padding: 24px;
    }
    h1 {
      margin: 0 0 16px 0;
      font-size: 24px;
    }
    form {
      display: grid;
      gap: 8px;
      padding: 16px;
      margin-bottom: 24px;
      border: 1px solid #e2e8f0;
      border-radius: 8px;
      background: #fff;
    }
    input, textarea, select {
      font: inherit;
      padding: 6px 8px;
    }
    button {
      justify-self: start;
      padding: 6px 16px;
      font: inherit;
    }
    ul {
      list-style: none;
      padding: 0;
      margin: 0;
    }
    li {
      padding: 12px 16px;
      margin-bottom: 12px;
      border: 1px solid #e2e8f0;
      border-radius: 8px;
      background: #fff;
    }
    li h2 {
      margin: 0 0 4px 0;
      font-size: 16px;
    }
    li p {
      margin: 4px 0;
      white-space: pre-wrap;
    }
    .badge {
      display: inline-block;
      padding: 2px 8px;
      border-radius: 999px;
      font-size: 12px;
      font-weight: 600;
    }
    .meta {
      color: #64748b;
      font-size: 12px;
    }
    .empty {
      color: #64748b;
    }
  </style>
</head>
<body>
<main>
  <h1>Issue Tracker</h1>
  <form method="post" action="/issues">
    <label for="title">Title</label>
    <input id="title" name="title" value="{{.Form.Title}}" required>
    <label for="description">Description</label>
    <textarea id="description" name="description" rows="4" required>{{.Form.Description}}</textarea>
    <label for="status">Status</label>
    <select id="status" name="status">
      {{- range .StatusOptions}}
      <option value="{{.Value}}"{{if eq .Value $.Form.Status}} selected{{end}}>{{.Label}}</option>
      {{- end}}
    </select>
    <button type="submit">Create issue</button>
  </form>
  {{- if .Issues}}
  <ul>
    {{- range .Issues}}
    <li data-id="{{.ID}}">
      <h2>{{.Title}}</h2>
      <span class="badge status-{{.Status}}" style="color: {{badgeFg $.Theme .Status}}; background: {{badgeBg $.Theme .Status}}">{{.Status.Label}}</span>
      <p>{{.Description}}</p>
      <span class="meta">created {{.Age}}</span>
    </li>
    {{- end}}
  </ul>
  {{- else}}
  <p class="empty">No issues yet.</p>
  {{- end}}
</main>
</body>
</html>
`
