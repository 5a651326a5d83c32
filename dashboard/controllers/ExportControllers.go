package controllers

import (
	"fmt"
	"path/filepath"

	"visa-console-backend/config"
	"visa-console-backend/dashboard/services"
	"visa-console-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// buildExportTable maps a dashboard/section pair to its print table. The
// table carries every matching row; exports never paginate.
func (dc *DashboardController) buildExportTable(c *fiber.Ctx, dashboard, section string) (services.Table, error) {
	snap, err := services.LoadSnapshot(c.Context(), dc.fetchers())
	if err != nil {
		return services.Table{}, err
	}
	at := asOf(c)

	switch dashboard {
	case "depth":
		buckets := services.ComputeDepthBuckets(snap, at, dc.Config)
		switch section {
		case "releasing-soon":
			return services.DepthTable("Permit Releasing Soon", buckets.ReleasingSoon), nil
		case "delays":
			return services.DepthTable("Permit Delays", buckets.Delays), nil
		case "office-applicants":
			return services.OfficeApplicantsTable(buckets.OfficeApplicants), nil
		}
	case "appointments":
		buckets := services.ComputeAppointmentBuckets(snap, at)
		switch section {
		case "today":
			return services.AppointmentsTable("Appointments Today", buckets.Today), nil
		case "this-month":
			return services.AppointmentsTable("Appointments This Month", buckets.ThisMonth), nil
		case "next-month":
			return services.AppointmentsTable("Appointments Next Month", buckets.NextMonth), nil
		case "all":
			return services.AppointmentsTable("All Appointments", buckets.All), nil
		}
	case "passport-validity":
		buckets := services.ComputePassportBuckets(snap, at)
		switch section {
		case "expired":
			return services.PassportTable("Expired Passports", buckets.Expired), nil
		case "expiring-soon":
			return services.PassportTable("Passports Expiring Soon", buckets.ExpiringSoon), nil
		}
	case "pcc-validity":
		if section == "" || section == "all" {
			return services.PccTable(services.ComputePccBuckets(snap, at).AllRecords), nil
		}
	case "ready":
		if section == "" || section == "ready" {
			return services.ReadyTable(services.ComputeReadyBuckets(snap, dc.Config).Ready), nil
		}
	}

	return services.Table{}, fmt.Errorf("unknown export section %q for dashboard %q", section, dashboard)
}

// ExportDashboardController writes one dashboard section to an xlsx file
// and streams it back. Passing shared=true strips the agent column for
// prints handed outside the office.
func (dc *DashboardController) ExportDashboardController() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dashboard := c.Params("dashboard")
		section := c.Query("section")

		table, err := dc.buildExportTable(c, dashboard, section)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Failed to build export",
				"error":   err.Error(),
			})
		}

		if c.Query("shared") == "true" {
			table = services.Project(table, []string{"Agent"})
		}

		filePath, err := utils.GenerateExcel(table.Title, table.Columns, table.Rows)
		if err != nil {
			config.Logger.Error("Failed to generate export",
				zap.Error(err),
				zap.String("dashboard", dashboard),
				zap.String("section", section))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to generate export",
				"error":   err.Error(),
			})
		}

		config.Logger.Info("Generated dashboard export",
			zap.String("dashboard", dashboard),
			zap.String("file", filePath))

		return c.Download(filePath, filepath.Base(filePath))
	}
}
