package server

import "html/template"

// Markup is intentionally minimal: the pages exist to carry the session
// and directory data flow, not to reproduce the product UI.
const pageTemplateText = `
{{define "head"}}<!doctype html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
</head>
<body>
<header>
  {{if .User}}<span class="user">{{.User.Name}}</span>{{else}}<a href="/auth">Sign in</a>{{end}}
</header>
{{end}}

{{define "foot"}}</body>
</html>
{{end}}

{{define "home"}}{{template "head" .}}
<main>
  <h1>{{.Title}}</h1>
  <a href="/companies">Browse companies</a>
</main>
{{template "foot" .}}{{end}}

{{define "auth"}}{{template "head" .}}
<main>
  <h1>{{.Title}}</h1>
  <form id="login" action="/api/auth/login" method="post">
    <input name="email" type="email" />
    <input name="password" type="password" />
    <button type="submit">Sign in</button>
  </form>
  <form id="register" action="/api/auth/register" method="post">
    <input name="name" type="text" />
    <input name="email" type="email" />
    <input name="password" type="password" />
    <button type="submit">Create account</button>
  </form>
  <a href="/reset_password">Forgot password?</a>
</main>
{{template "foot" .}}{{end}}

{{define "dashboard"}}{{template "head" .}}
<main>
  <h1>{{.Title}}</h1>
  {{with .User}}
  <section class="profile">
    <p>{{.Name}} &lt;{{.Email}}&gt;</p>
    {{if .Companies}}
    <ul>
      {{range .Companies}}<li><a href="/companies/{{.ID}}">{{.Name}}</a></li>{{end}}
    </ul>
    {{end}}
  </section>
  {{end}}
</main>
{{template "foot" .}}{{end}}

{{define "companies"}}{{template "head" .}}
<main>
  <h1>{{.Title}}</h1>
  {{with .Companies}}
  <ul>
    {{range .Result}}<li><a href="/companies/{{.ID}}">{{.Name}}</a></li>{{end}}
  </ul>
  <nav class="pagination">page {{.Pagination.Current}} of {{.Pagination.Total}}</nav>
  {{end}}
</main>
{{template "foot" .}}{{end}}

{{define "company"}}{{template "head" .}}
<main>
  {{with .Company}}
  <h1>{{.Name}}</h1>
  <p>{{.Description}}</p>
  {{end}}
  {{with .Items}}
  <ul>
    {{range .Result}}<li>{{.Name}} ({{.SellPrice}})</li>{{end}}
  </ul>
  <nav class="pagination">page {{.Pagination.Current}} of {{.Pagination.Total}}</nav>
  {{end}}
</main>
{{template "foot" .}}{{end}}

{{define "verification"}}{{template "head" .}}
<main>
  <h1>{{.Title}}</h1>
  <form action="/api/auth/verification" method="post">
    <input name="email" type="email" />
    <input name="activationToken" type="text" />
    <button type="submit">Verify</button>
  </form>
</main>
{{template "foot" .}}{{end}}

{{define "reset_password"}}{{template "head" .}}
<main>
  <h1>{{.Title}}</h1>
  <form action="/api/auth/create_reset_password_token" method="post">
    <input name="email" type="email" />
    <button type="submit">Send reset link</button>
  </form>
</main>
{{template "foot" .}}{{end}}

{{define "set_new_password"}}{{template "head" .}}
<main>
  <h1>{{.Title}}</h1>
  <form action="/api/auth/reset_password" method="post">
    <input name="email" type="email" />
    <input name="resetPasswordToken" type="text" />
    <input name="password" type="password" />
    <button type="submit">Save password</button>
  </form>
</main>
{{template "foot" .}}{{end}}

{{define "check_email"}}{{template "head" .}}
<main>
  <h1>{{.Title}}</h1>
  <p>We sent you an email with the next step.</p>
</main>
{{template "foot" .}}{{end}}
`

var pageTemplates = template.Must(template.New("pages").Parse(pageTemplateText))
