package report

// builtinTemplate is the fallback report template. It is entirely
// self-contained: no external stylesheets, fonts, or scripts, so the
// output file opens directly in a browser without network access.
const builtinTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Secret scan report</title>
<style>
  body { font-family: -apple-system, Segoe UI, Helvetica, Arial, sans-serif; margin: 2rem; color: #1b1f23; background: #fff; }
  h1 { font-size: 1.4rem; }
  h2 { font-size: 1.1rem; margin-top: 2rem; border-bottom: 1px solid #d0d7de; padding-bottom: .3rem; }
  .meta { color: #57606a; font-size: .9rem; margin-bottom: 1.5rem; }
  .meta span { margin-right: 1.5rem; }
  table { border-collapse: collapse; width: 100%; margin-top: .5rem; }
  th, td { text-align: left; padding: .4rem .6rem; border-bottom: 1px solid #eaecef; font-size: .85rem; }
  th { background: #f6f8fa; }
  code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }
  .empty { color: #57606a; font-style: italic; }
  .disclaimer { margin-top: 2rem; padding: .8rem 1rem; background: #fff8c5; border: 1px solid #d4a72c; border-radius: 6px; font-size: .85rem; }
</style>
</head>
<body>
<h1>Secret scan report</h1>
<p class="meta">
  <span>Repository: <strong>{{.Meta.RepoName}}</strong></span>
  <span>Branch: <strong>{{.Meta.Branch}}</strong></span>
  <span>Commit: <code>{{.Meta.CommitHash}}</code></span>
  <span>Author: {{.Meta.Author}}</span>
  <span>Generated: {{.GeneratedAt}}</span>
</p>

<h2>Files to be pushed ({{.DiffCount}})</h2>
{{if .DiffRows}}
<table>
  <tr><th>S.No</th><th>Filename</th><th>Line #</th><th>Secret</th><th>Kind</th><th>Detection</th></tr>
  {{range .DiffRows}}
  <tr>
    <td>{{.SNo}}</td>
    <td>{{.Path}}</td>
    <td>{{.LineNumber}}</td>
    <td><code>{{.MaskedLine}}</code></td>
    <td>{{.Kind}}</td>
    <td>{{.Detection}}</td>
  </tr>
  {{end}}
</table>
{{else}}
<p class="empty">No findings in the pending push.</p>
{{end}}

<h2>Repository scan ({{.RepoCount}})</h2>
{{if .RepoRows}}
<table>
  <tr><th>S.No</th><th>Filename</th><th>Line #</th><th>Secret</th><th>Kind</th><th>Detection</th></tr>
  {{range .RepoRows}}
  <tr>
    <td>{{.SNo}}</td>
    <td>{{.Path}}</td>
    <td>{{.LineNumber}}</td>
    <td><code>{{.MaskedLine}}</code></td>
    <td>{{.Kind}}</td>
    <td>{{.Detection}}</td>
  </tr>
  {{end}}
</table>
{{else}}
<p class="empty">No findings in the repository.</p>
{{end}}

<p class="disclaimer">
This report is produced by an automated heuristic scan. Matches are not
guaranteed to be real secrets, and the absence of a match is not a
guarantee the repository is clean. Review every finding before deciding
whether to rotate a credential.
</p>
</body>
</html>
`
