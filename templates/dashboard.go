// Package templates holds the server-rendered views. Components are written
// in plain Go against templ's Component interface, with html/template doing
// the escaping.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// DashboardData carries pre-formatted strings; all currency and percentage
// formatting happens before the view.
type DashboardData struct {
	TotalSold           int
	TotalProfit         string
	AvgProfitability    string
	TotalInvestment     string
	CarsInInventory     int
	AvgDaysInInventory  int
	Highlights          []DashboardHighlight
	Warnings            []string
	GeneratedAt         string
}

// DashboardHighlight is one standout-sale line on the dashboard.
type DashboardHighlight struct {
	Label   string
	Vehicle string
	Value   string
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Import Manager Dashboard</title>
	<link rel="stylesheet" href="/static/app.css">
</head>
<body>
	<main class="dashboard">
		<h1>Portfolio Dashboard</h1>
		<section class="stats">
			<div class="stat-card"><span class="label">Cars sold</span><span class="value">{{.TotalSold}}</span></div>
			<div class="stat-card"><span class="label">Total profit</span><span class="value">{{.TotalProfit}}</span></div>
			<div class="stat-card"><span class="label">Avg profitability</span><span class="value">{{.AvgProfitability}}</span></div>
			<div class="stat-card"><span class="label">Cars in inventory</span><span class="value">{{.CarsInInventory}}</span></div>
			<div class="stat-card"><span class="label">Capital invested</span><span class="value">{{.TotalInvestment}}</span></div>
			<div class="stat-card"><span class="label">Avg days in inventory</span><span class="value">{{.AvgDaysInInventory}}</span></div>
		</section>
		{{if .Highlights}}
		<section class="highlights">
			<h2>Highlights</h2>
			<ul>
				{{range .Highlights}}
				<li><strong>{{.Label}}:</strong> {{.Vehicle}} ({{.Value}})</li>
				{{end}}
			</ul>
		</section>
		{{end}}
		{{if .Warnings}}
		<section class="warnings">
			<h2>Data warnings</h2>
			<ul>
				{{range .Warnings}}
				<li>{{.}}</li>
				{{end}}
			</ul>
		</section>
		{{end}}
		<footer>Generated on {{.GeneratedAt}}</footer>
	</main>
</body>
</html>
`))

// DashboardPage renders the portfolio summary page.
func DashboardPage(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return dashboardTmpl.Execute(w, data)
	})
}
