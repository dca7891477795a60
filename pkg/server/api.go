package server

import (
	"net/http"

	"bilreport/pkg/log"
	"bilreport/pkg/report"

	"github.com/labstack/echo/v4"
)

// loadReport fetches the snapshot and derives the report for one API call.
func (rs *ReportServer) loadReport(ctx echo.Context) (*report.Report, error) {
	datasets, err := rs.client.Fetch(ctx.Request().Context())
	if err != nil {
		return nil, err
	}
	return report.Build(datasets), nil
}

// getReport handles the GET /api/report endpoint.
func (rs *ReportServer) getReport(ctx echo.Context) error {
	rep, err := rs.loadReport(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load report")
		return ctx.JSON(http.StatusBadGateway, map[string]string{
			"error": err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"rows":        rep.Rows,
		"collections": rep.Collections,
	})
}

// getCollections handles the GET /api/collections endpoint.
func (rs *ReportServer) getCollections(ctx echo.Context) error {
	rep, err := rs.loadReport(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load report")
		return ctx.JSON(http.StatusBadGateway, map[string]string{
			"error": err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"collections": rep.Collections,
	})
}

// getCollection handles the GET /api/collections/:code endpoint.
func (rs *ReportServer) getCollection(ctx echo.Context) error {
	code := ctx.Param("code")

	rep, err := rs.loadReport(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load report")
		return ctx.JSON(http.StatusBadGateway, map[string]string{
			"error": err.Error(),
		})
	}

	if !rep.HasCollection(code) {
		return ctx.JSON(http.StatusNotFound, map[string]string{
			"error": "collection not found",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"collection": code,
		"rows":       rep.Filter(code),
	})
}
