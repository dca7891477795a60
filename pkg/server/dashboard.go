package server

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"bilreport/pkg/inventory"
	"bilreport/pkg/log"
	"bilreport/pkg/models"
	"bilreport/pkg/report"

	"github.com/labstack/echo/v4"
)

// dashboardData is the template payload for one render of the report page.
// When ErrorMessage is set nothing else is rendered.
type dashboardData struct {
	Title      string
	Version    string
	ReportDate string
	SourceURL  string

	Rows        []models.Row
	Collections []string
	Selected    string
	Filtered    []models.Row
	Slices      []models.PieSlice
	Legend      [][]models.PieSlice

	ErrorMessage string
}

func (rs *ReportServer) serveDashboard(ctx echo.Context) error {
	data := dashboardData{
		Title:      "Brain Image Library Inventory Report",
		Version:    rs.version,
		ReportDate: rs.now().Format("January 02, 2006"),
		SourceURL:  rs.client.URL(),
	}

	if err := rs.buildDashboard(ctx, &data); err != nil {
		log.Error().Err(err).Msg("Failed to load or process report")
		data.ErrorMessage = "Failed to load or process data: " + err.Error()
		return rs.render(ctx, http.StatusBadGateway, data)
	}

	return rs.render(ctx, http.StatusOK, data)
}

// buildDashboard fetches the snapshot and derives everything the page shows.
// The active collection is the explicit ?collection= query value, defaulting
// to the first entry of the sorted selector list.
func (rs *ReportServer) buildDashboard(ctx echo.Context, data *dashboardData) error {
	datasets, err := rs.client.Fetch(ctx.Request().Context())
	if err != nil {
		return err
	}

	rep := report.Build(datasets)
	data.Rows = rep.Rows
	data.Collections = rep.Collections

	selected := ctx.QueryParam("collection")
	if selected == "" && len(rep.Collections) > 0 {
		selected = rep.Collections[0]
	}
	if selected != "" && !rep.HasCollection(selected) {
		return &inventory.LoadError{
			Stage: inventory.StageTransform,
			Err:   fmt.Errorf("unknown collection %q", selected),
		}
	}

	data.Selected = selected
	if selected != "" {
		data.Filtered = rep.Filter(selected)
		data.Slices = report.Pie(data.Filtered)
		data.Legend = report.LegendColumns(data.Slices)
	}

	return nil
}

func (rs *ReportServer) render(ctx echo.Context, status int, data dashboardData) error {
	tmplPath := filepath.Join(rs.webDir, "dashboard.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Error().Err(err).Str("template_path", tmplPath).Msg("Failed to load template")
		return ctx.String(http.StatusInternalServerError, fmt.Sprintf("Failed to load template: %v", err))
	}

	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	ctx.Response().WriteHeader(status)
	return tmpl.Execute(ctx.Response().Writer, data)
}
