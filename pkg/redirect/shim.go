package redirect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/a-h/templ"
)

type shimParams struct {
	Desktop  string `json:"desktop"`
	Delay    int64  `json:"delay"`
	Fallback int64  `json:"fallback"`
	Param    string `json:"param"`
}

// shimPage measures window.innerWidth and reloads the root with it. It
// stays invisible so nothing flashes before the navigation.
func shimPage(cfg Config, param string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		params, err := json.Marshal(shimParams{
			Desktop:  cfg.DesktopPath,
			Delay:    cfg.ShimDelay.Milliseconds(),
			Fallback: cfg.FallbackDelay.Milliseconds(),
			Param:    param,
		})
		if err != nil {
			return err
		}
		desktop := templ.EscapeString(cfg.DesktopPath)
		_, err = fmt.Fprintf(w, shimTemplate, desktop, params)
		return err
	})
}

const shimTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="noindex">
<noscript><meta http-equiv="refresh" content="0; url=%[1]s"></noscript>
<style>html,body{opacity:0;margin:0}</style>
</head>
<body>
<script>
(function () {
  var cfg = %[2]s;
  var done = false;
  function go(path) {
    if (done) { return; }
    done = true;
    window.location.replace(path);
  }
  function fallback() { setTimeout(function () { go(cfg.desktop); }, cfg.fallback); }
  window.addEventListener("error", fallback);
  setTimeout(function () {
    try {
      var w = window.innerWidth || document.documentElement.clientWidth || 0;
      go("/?" + cfg.param + "=" + Math.round(w));
    } catch (e) {
      fallback();
    }
  }, cfg.delay);
})();
</script>
</body>
</html>
`

// refreshHeader builds a Refresh header value that loads path after d,
// rounded up to whole seconds.
func refreshHeader(d time.Duration, path string) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d; url=%s", secs, path)
}

func fallbackPage(path string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := templ.EscapeString(path)
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8"><title>Redirecionando…</title></head><body><p>Redirecionando… <a href="%s">Continuar</a></p></body></html>`, p)
		return err
	})
}
