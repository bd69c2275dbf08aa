package components

import (
	"github.com/a-h/templ"
)

var recoveryTemplate = fromTemplate("recovery", `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Something went wrong</title>
<link rel="stylesheet" href="/static/site.css">
</head>
<body>
<main class="recovery">
  <div class="card">
    <h1>Something went wrong</h1>
    <p>An unexpected error occurred. You can try again or refresh the page.</p>
    {{if .Detail}}<pre class="error-detail">{{.Detail}}</pre>{{end}}
    <div class="recovery-actions">
      <a class="cta" href="/">Try Again</a>
      <a class="cta secondary" href="javascript:location.reload()">Refresh Page</a>
    </div>
  </div>
</main>
</body>
</html>`)

type recoveryData struct {
	Detail string
}

// Recovery renders the full-page error screen shown when rendering fails.
// detail carries the raw error message and must only be non-empty in
// development; production suppresses it.
func Recovery(detail string) templ.Component {
	return component(recoveryTemplate, recoveryData{Detail: detail})
}

var loadingTemplate = fromTemplate("loading", `<div class="loading-fallback" aria-hidden="true">
  <div class="skeleton skeleton-nav"></div>
  <div class="skeleton skeleton-hero"></div>
  <div class="skeleton skeleton-block"></div>
  <div class="skeleton skeleton-block"></div>
</div>`)

// LoadingFallback renders the skeleton placeholder shown while a section
// loads behind a lazy boundary.
func LoadingFallback() templ.Component {
	return component(loadingTemplate, nil)
}
