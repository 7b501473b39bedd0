package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePortfolioPDF creates the inventory report PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePortfolioPDF(data ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, data)
	addCarTableHeader(m)
	for _, r := range data.Rows {
		addCarTableRow(m, r)
	}
	addStatsSummary(m, data)
	addHighlightsSection(m, data)
	addWarningsSection(m, data)
	addReportFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addReportHeader adds the title and generation date.
func addReportHeader(m core.Maroto, data ReportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedAt), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addCarTableHeader adds the column header row for the car table.
func addCarTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(
				text.New("Vehicle", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Purchased", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Status", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Sold", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Invested", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Profit", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Profit %", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Days", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addCarTableRow adds a single car row, shading unsold cars light gray.
func addCarTableRow(m core.Maroto, r ReportRow) {
	var cellStyle *props.Cell
	textStyle := fontstyle.Normal
	if r.Sold {
		textStyle = fontstyle.Bold
	} else {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  7,
		Style: textStyle,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	profitStr := "—"
	pctStr := "—"
	if r.Sold {
		profitStr = FormatEUR(r.Profit)
		if r.HasProfitPct {
			pctStr = FormatPercent(r.ProfitPct)
		}
	}

	colVehicle := col.New(3).Add(text.New(r.Vehicle, leftText))
	colPurchased := col.New(1).Add(text.New(r.DatePurchased, baseText))
	colStatus := col.New(1).Add(text.New(r.StatusLabel, baseText))
	colSold := col.New(1).Add(text.New(r.DateSold, baseText))
	colInvested := col.New(2).Add(text.New(FormatEUR(r.TotalInvested), rightText))
	colProfit := col.New(2).Add(text.New(profitStr, rightText))
	colPct := col.New(1).Add(text.New(pctStr, rightText))
	colDays := col.New(1).Add(text.New(fmt.Sprintf("%d", r.Days), rightText))

	if cellStyle != nil {
		colVehicle = colVehicle.WithStyle(cellStyle)
		colPurchased = colPurchased.WithStyle(cellStyle)
		colStatus = colStatus.WithStyle(cellStyle)
		colSold = colSold.WithStyle(cellStyle)
		colInvested = colInvested.WithStyle(cellStyle)
		colProfit = colProfit.WithStyle(cellStyle)
		colPct = colPct.WithStyle(cellStyle)
		colDays = colDays.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colVehicle,
			colPurchased,
			colStatus,
			colSold,
			colInvested,
			colProfit,
			colPct,
			colDays,
		),
	)
}

// addStatsSummary adds the portfolio totals section at the bottom.
func addStatsSummary(m core.Maroto, data ReportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	addSummaryLine := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addSummaryLine("Cars Sold", fmt.Sprintf("%d", data.Stats.TotalSold))
	addSummaryLine("Total Profit", FormatEUR(data.Stats.TotalProfit))
	addSummaryLine("Average Profitability", FormatPercent(data.Stats.AvgProfitability))
	addSummaryLine("Cars In Inventory", fmt.Sprintf("%d", data.Stats.CarsInInventory))
	addSummaryLine("Capital Invested", FormatEUR(data.Stats.TotalInvestment))
	addSummaryLine("Average Days In Inventory", fmt.Sprintf("%d", data.Stats.AvgDaysInInventory))
}

// addHighlightsSection lists the standout sales, when any exist.
func addHighlightsSection(m core.Maroto, data ReportData) {
	if len(data.Highlights) == 0 {
		return
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Highlights", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	for _, h := range data.Highlights {
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(
					text.New(h.Label, props.Text{Size: 8, Align: align.Left}),
				),
				col.New(6).Add(
					text.New(h.Vehicle, props.Text{Size: 8, Align: align.Left}),
				),
				col.New(3).Add(
					text.New(h.Value, props.Text{Size: 8, Align: align.Right, Style: fontstyle.Bold}),
				),
			),
		)
	}
}

// addWarningsSection lists data-integrity warnings so bad records are
// visible on the printed report instead of silently missing.
func addWarningsSection(m core.Maroto, data ReportData) {
	if len(data.Warnings) == 0 {
		return
	}

	m.AddRows(row.New(6))
	warnColor := &props.Color{Red: 180, Green: 60, Blue: 30}
	for _, w := range data.Warnings {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(
						fmt.Sprintf("Warning: car %s — %s", w.CarID, w.Detail),
						props.Text{Size: 7, Align: align.Left, Color: warnColor},
					),
				),
			),
		)
	}
}

// addReportFooter adds the generated-date line at the bottom.
func addReportFooter(m core.Maroto, data ReportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedAt),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
