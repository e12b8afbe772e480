package view

import "html/template"

var pageTmpl = template.Must(template.New("view").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Shared Health Summary</title>
  <style>
    body{font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial; margin:24px; color:#0f172a; background:#ffffff}
    .card{max-width:760px; border:1px solid #e2e8f0; border-radius:12px; padding:18px; margin-bottom:16px; box-shadow:0 1px 2px rgba(0,0,0,.04)}
    .bad{background:#fee2e2; border-color:#fecaca}
    .muted{color:#475569; font-size:13px}
    h1{font-size:18px; margin:0 0 6px 0}
    h2{font-size:15px; margin:0 0 10px 0}
    .grid{display:grid; grid-template-columns:1fr 1fr; gap:10px}
    .k{font-weight:600; font-size:13px}
    .v{font-size:13px}
    .item{padding:8px 0; border-bottom:1px dashed #e2e8f0}
    .item:last-child{border-bottom:none}
  </style>
</head>
<body>
  {{if .Error}}
  <div class="card bad">
    <h1>Error</h1>
    <p class="v">{{.Error}}</p>
  </div>
  {{else}}
  <div class="card">
    <h1>Shared Health Summary</h1>
    <p class="muted">This is a temporary, read-only view of the health record.</p>
  </div>

  <div class="card">
    <h2>Personal Information</h2>
    <div class="grid">
      <div><span class="k">Name:</span> <span class="v">{{.Name}}</span></div>
      <div><span class="k">Age:</span> <span class="v">{{.Age}}</span></div>
      <div><span class="k">Height:</span> <span class="v">{{.Height}}</span></div>
      <div><span class="k">Weight:</span> <span class="v">{{.Weight}}</span></div>
    </div>
  </div>

  {{if .DoctorVisits}}
  <div class="card">
    <h2>Doctor Visits</h2>
    {{range .DoctorVisits}}
    <div class="item"><span class="k">{{.Title}} ({{.Date}})</span><br/><span class="muted">{{.Description}}</span></div>
    {{end}}
  </div>
  {{end}}

  {{if .Medications}}
  <div class="card">
    <h2>Medications</h2>
    {{range .Medications}}
    <div class="item"><span class="k">{{.Title}} ({{.Date}})</span><br/><span class="muted">{{.Description}}</span></div>
    {{end}}
  </div>
  {{end}}

  {{if .Diseases}}
  <div class="card">
    <h2>Diagnosed Diseases</h2>
    {{range .Diseases}}
    <div class="item"><span class="k">{{.Title}} ({{.Date}})</span><br/><span class="muted">{{.Description}}</span></div>
    {{end}}
  </div>
  {{end}}

  {{if .RiskFactors}}
  <div class="card">
    <h2>Family History Summary</h2>
    <p class="v">{{.RiskFactors}}</p>
  </div>
  {{end}}

  {{if .Travel}}
  <div class="card">
    <h2>Travel History</h2>
    {{range .Travel}}
    <div class="item"><span class="k">{{.Location}} - {{.Year}}</span><br/><span class="muted">{{.Notes}}</span></div>
    {{end}}
  </div>
  {{end}}
  {{end}}
</body>
</html>`))
