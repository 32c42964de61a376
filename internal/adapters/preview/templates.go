package preview

import "html/template"

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>base47 themes</title>
<style>
body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:56rem;color:#222}
.set{border-left:4px solid #ccc;padding:.5rem 1rem;margin:1rem 0}
.badge{font-size:.75rem;padding:.1rem .4rem;border-radius:.25rem;background:#eee;margin-left:.5rem}
.off{opacity:.6}
</style>
</head>
<body>
<h1>Theme sets</h1>
<form method="post" action="/refresh"><button type="submit">Refresh</button></form>
{{range .Sets}}
<section class="set{{if not .Active}} off{{end}}"{{if .Accent}} style="border-color:{{.Accent}}"{{end}}>
<h2>{{.Label}}{{if .Version}} <small>{{.Version}}</small>{{end}}{{if .Default}}<span class="badge">default</span>{{end}}{{if .Active}}<span class="badge">active</span>{{else}}<span class="badge">inactive</span>{{end}}</h2>
<p><code>{{.Slug}}</code></p>
{{if .Thumbnail}}<img src="{{.Thumbnail}}" alt="" width="240">{{end}}
{{.DescriptionHTML}}
<ul>{{range .Shortcodes}}<li><a href="/s/{{.}}">[{{.}}]</a></li>{{end}}</ul>
</section>
{{else}}
<p>No theme sets found.</p>
{{end}}
</body>
</html>
`))

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{.Head}}</head>
<body>
{{.HTML}}
{{.Footer}}</body>
</html>
`))
