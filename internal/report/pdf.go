package report

import (
	"fmt"
	"io"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// Page geometry in millimetres. The footer band takes the bottom margin.
const (
	pageMargin   = 15.0
	footerHeight = 18.0
	titleHeight  = 12.0
	rowHeight    = 7.0
)

// gridSizes spreads the seven columns over maroto's 12-column grid.
var gridSizes = []uint{2, 1, 1, 1, 3, 3, 1}

var (
	headerBackground = color.NewBlack()
	headerText       = color.NewWhite()
	bodyText         = color.NewBlack()
	evenBackground   = color.Color{Red: 245, Green: 245, Blue: 245}
	oddBackground    = color.Color{Red: 211, Green: 211, Blue: 211}
	totalBackground  = color.Color{Red: 245, Green: 245, Blue: 220}
)

// WritePDF renders doc as an A4 PDF report to w.
func WritePDF(w io.Writer, doc Document, opts Options) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(pageMargin, pageMargin, pageMargin)
	if doc.Title != "" {
		m.SetTitle(doc.Title, true)
	}
	if opts.Author != "" {
		m.SetAuthor(opts.Author, true)
	}

	m.RegisterFooter(func() {
		m.Row(footerHeight, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Page %d", m.GetCurrentPage()+1), props.Text{
					Top:   footerHeight - 6,
					Size:  9,
					Align: consts.Right,
				})
			})
		})
	})

	m.RegisterHeader(func() {
		// Page 1 opens with the title; later pages repeat the column header.
		if m.GetCurrentPage() > 0 {
			tableRow(m, doc.Header, headerAligns(len(doc.Header)), consts.Bold, 10, headerText, headerBackground)
		}
	})

	m.Row(titleHeight, func() {
		m.Col(12, func() {
			m.Text(doc.Title, props.Text{
				Top:   2,
				Style: consts.Bold,
				Align: consts.Center,
				Size:  18,
			})
		})
	})
	m.Row(6, func() {})

	tableRow(m, doc.Header, headerAligns(len(doc.Header)), consts.Bold, 10, headerText, headerBackground)
	aligns := bodyAligns(len(doc.Header))
	for i, cells := range doc.Body {
		bg := evenBackground
		if i%2 == 1 {
			bg = oddBackground
		}
		tableRow(m, cells, aligns, consts.Normal, 9, bodyText, bg)
	}
	tableRow(m, doc.Total, totalAligns(len(doc.Total)), consts.Bold, 9, bodyText, totalBackground)

	buf, err := m.Output()
	if err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// headerAligns centres every heading.
func headerAligns(n int) []consts.Align {
	aligns := make([]consts.Align, n)
	for i := range aligns {
		aligns[i] = consts.Center
	}
	return aligns
}

// bodyAligns centres every cell except the hours, which are right-aligned.
func bodyAligns(n int) []consts.Align {
	aligns := headerAligns(n)
	if n > 0 {
		aligns[n-1] = consts.Right
	}
	return aligns
}

// totalAligns right-aligns the TOTAL label and the total hours.
func totalAligns(n int) []consts.Align {
	aligns := bodyAligns(n)
	if n > 1 {
		aligns[n-2] = consts.Right
	}
	return aligns
}

// tableRow draws one bordered band of the report table on background bg.
// Background and border are set inside the row so a page break triggered by
// the row (footer, new page, repeated header) does not pick them up.
func tableRow(m pdf.Maroto, cells []string, aligns []consts.Align, style consts.Style, size float64, fg, bg color.Color) {
	m.Row(rowHeight, func() {
		m.SetBackgroundColor(bg)
		m.SetBorder(true)
		for i, cell := range cells {
			m.Col(gridSizes[i], func() {
				m.Text(cell, props.Text{
					Top:   1.5,
					Style: style,
					Size:  size,
					Align: aligns[i],
					Color: fg,
				})
			})
		}
	})
	m.SetBorder(false)
	m.SetBackgroundColor(color.NewWhite())
}
