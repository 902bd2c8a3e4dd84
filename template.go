package commutedash

import (
	"html/template"
	"strings"
)

var iconEmoji = map[string]string{
	"clear":         "☀️",
	"partly-cloudy": "⛅",
	"overcast":      "☁️",
	"fog":           "\U0001f32b️",
	"drizzle":       "\U0001f326️",
	"rain":          "\U0001f327️",
	"snow":          "\U0001f328️",
	"thunderstorm":  "⛈️",
	"clear-night":   "\U0001f319",
}

func parseBoardTemplate() *template.Template {
	funcs := template.FuncMap{
		"emoji": func(icon string) string {
			if e, ok := iconEmoji[icon]; ok {
				return e
			}
			return iconEmoji["partly-cloudy"]
		},
	}
	return template.Must(template.New("board").Funcs(funcs).Parse(boardTemplate))
}

var boardTemplate = strings.TrimSpace(`
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="60">
<title>Commute Dashboard</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:#1a1a2e;color:#eee;min-height:100vh}
.hdr{background:#16213e;padding:12px 16px;display:flex;justify-content:space-between;align-items:center}
.hdr h1{font-size:16px;font-weight:600}
.hdr .time{font-size:13px;opacity:.7}
.section{padding:8px 16px}
.section h2{font-size:14px;font-weight:600;color:#4ecca3;margin:12px 0 6px}
.platform{font-size:13px;font-weight:600;color:#e94560;margin:8px 0 4px}
table{width:100%;border-collapse:collapse;font-size:14px}
td,th{padding:6px 8px;text-align:left;border-bottom:1px solid rgba(255,255,255,.08)}
th{font-size:11px;text-transform:uppercase;opacity:.5}
.due{color:#4ecca3;font-weight:700;text-align:right}
.cancelled{color:#ff6b6b}
.line-pill{display:inline-block;padding:2px 8px;border-radius:4px;font-weight:700;font-size:12px;color:#fff}
.status-reason{font-size:12px;opacity:.6}
.summary{font-size:13px;color:#4ecca3;margin:6px 0}
.wx{display:flex;gap:12px;flex-wrap:wrap}
.wx .card{background:#16213e;border-radius:8px;padding:10px 14px;min-width:120px}
.wx .card .lbl{font-size:11px;text-transform:uppercase;opacity:.5}
.wx .card .big{font-size:22px;margin:4px 0}
.wx .card .small{font-size:12px;opacity:.7}
.empty{padding:16px;opacity:.5;font-size:13px}
</style>
</head>
<body>
<div class="hdr">
  <h1>Commute &mdash; {{.Station}}</h1>
  <span class="time">updated {{.Updated}}</span>
</div>

<div class="section">
  <h2>Trains</h2>
  {{if not .Trains}}<div class="empty">No departures</div>{{end}}
  {{range .Trains}}
  <div class="platform">Platform {{.Platform}}</div>
  <table>
    <tr><th>Time</th><th>Destination</th><th>Expected</th><th>Operator</th><th></th></tr>
    {{range .Departures}}
    <tr>
      <td>{{.Scheduled}}</td>
      <td>{{.Destination}}</td>
      <td{{if eq .Expected "Cancelled"}} class="cancelled"{{end}}>{{.Expected}}</td>
      <td>{{.Operator}}</td>
      <td class="due">{{if .DueIn}}{{.DueIn}}{{if ne .DueIn "Due"}} min{{end}}{{end}}</td>
    </tr>
    {{end}}
  </table>
  {{end}}
</div>

<div class="section">
  <h2>Buses</h2>
  {{if not .Buses}}<div class="empty">No arrivals</div>{{else}}
  <table>
    <tr><th>Route</th><th>Destination</th><th>Towards</th><th></th></tr>
    {{range .Buses}}
    <tr>
      <td><span class="line-pill" style="background:#e32017">{{.Line}}</span></td>
      <td>{{.Destination}}</td>
      <td>{{.Towards}}</td>
      <td class="due">{{if eq .ExpectedInMin 0}}Due{{else}}{{.ExpectedInMin}} min{{end}}</td>
    </tr>
    {{end}}
  </table>
  {{end}}
</div>

<div class="section">
  <h2>Tube</h2>
  {{if .Tubes.Summary}}<div class="summary">{{.Tubes.Summary}}</div>{{end}}
  {{if not .Tubes.Lines}}<div class="empty">No status</div>{{else}}
  <table>
    {{range .Tubes.Issues}}
    <tr>
      <td><span class="line-pill" style="background:{{.Colour}}">{{.Line}}</span></td>
      <td>{{.Status}}{{if .Reason}}<div class="status-reason">{{.Reason}}</div>{{end}}</td>
    </tr>
    {{end}}
    {{if not .Tubes.Issues}}
    {{range .Tubes.Good}}
    <tr>
      <td><span class="line-pill" style="background:{{.Colour}}">{{.Line}}</span></td>
      <td>{{.Status}}</td>
    </tr>
    {{end}}
    {{end}}
  </table>
  {{end}}
</div>

<div class="section">
  <h2>Weather &mdash; high {{.Weather.HighTemp}}&deg; / low {{.Weather.LowTemp}}&deg;</h2>
  <div class="wx">
    {{range $label := .SegmentOrder}}
    {{with index $.Weather.Segments $label}}
    <div class="card">
      <div class="lbl">{{$label}}</div>
      <div class="big">{{emoji .SkyIcon}}</div>
      <div class="small">rain {{.RainProbability}}% &middot; wind {{.WindSpeed}} {{.WindDir}}</div>
    </div>
    {{end}}
    {{end}}
  </div>
  <div class="small" style="opacity:.6;margin-top:6px">
    sunrise {{.Weather.Sunrise}} &middot; sunset {{.Weather.Sunset}}
  </div>
</div>
</body>
</html>
`)
