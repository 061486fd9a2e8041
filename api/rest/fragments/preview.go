package fragments

import (
	"html/template"
)

// the iframe only gets forms, scripts and same-origin; nothing else is allowed
var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · Vibe</title>
<style>
  html, body { margin: 0; height: 100%; font-family: system-ui, sans-serif; }
  body { display: flex; flex-direction: column; }
  .toolbar { display: flex; gap: 8px; align-items: center; padding: 8px; border-bottom: 1px solid #e5e5e5; }
  .truncate { flex: 1; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
  button, a.button { font: inherit; padding: 4px 10px; border: 1px solid #d4d4d4; border-radius: 6px; background: #fff; color: inherit; text-decoration: none; cursor: pointer; }
  button:disabled, a.button[aria-disabled="true"] { opacity: .5; pointer-events: none; }
  iframe { flex: 1; width: 100%; border: 0; }
</style>
</head>
<body>
<div class="toolbar">
  <a class="button" href="?key={{.NextKey}}" title="Refresh" aria-label="Refresh">Refresh</a>
  <button id="copy" class="truncate" title="Click to copy" {{if not .SandboxURL}}disabled{{end}}><span>{{.SandboxURL}}</span></button>
  <a class="button" href="{{.SandboxURL}}" target="_blank" rel="noopener noreferrer" title="Open in a new tab" aria-label="Open in a new tab" {{if not .SandboxURL}}aria-disabled="true"{{end}}>Open</a>
</div>
<iframe data-key="{{.Key}}" src="{{.SandboxURL}}" sandbox="allow-forms allow-scripts allow-same-origin" loading="lazy" title="{{.Title}}"></iframe>
<script>
  (function () {
    var btn = document.getElementById("copy");
    var url = {{.SandboxURL}};
    btn.addEventListener("click", function () {
      if (!url || btn.disabled) return;
      navigator.clipboard.writeText(url).then(function () {
        btn.disabled = true;
        setTimeout(function () { btn.disabled = false; }, 2000);
      });
    });
  })();
</script>
</body>
</html>
`))
