package controllers

import (
	"strconv"
	"time"

	agentrepos "visa-console-backend/agents/repositories"
	applicantrepos "visa-console-backend/applicants/repositories"
	"visa-console-backend/config"
	"visa-console-backend/dashboard/services"
	"visa-console-backend/db/models"
	paymentrepos "visa-console-backend/payments/repositories"
	pccrepos "visa-console-backend/pcc/repositories"
	recordrepos "visa-console-backend/records/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DefaultSectionSize is how many rows a dashboard section shows before the
// operator asks for more.
const DefaultSectionSize = 10

// DashboardController wires the five entity repositories into the snapshot
// loader and serves the derived dashboards.
type DashboardController struct {
	Applicants applicantrepos.ApplicantRepository
	Records    recordrepos.RecordRepository
	Payments   paymentrepos.PaymentRepository
	Agents     agentrepos.AgentRepository
	Pcc        pccrepos.PccRepository

	Config services.DashboardConfig
}

func NewDashboardController(
	applicants applicantrepos.ApplicantRepository,
	records recordrepos.RecordRepository,
	payments paymentrepos.PaymentRepository,
	agents agentrepos.AgentRepository,
	pcc pccrepos.PccRepository,
) *DashboardController {
	return &DashboardController{
		Applicants: applicants,
		Records:    records,
		Payments:   payments,
		Agents:     agents,
		Pcc:        pcc,
		Config:     services.DefaultDashboardConfig(),
	}
}

func (dc *DashboardController) fetchers() services.Fetchers {
	return services.Fetchers{
		Applicants: dc.Applicants.GetAllApplicants,
		Records:    dc.Records.GetAllRecords,
		Payments:   dc.Payments.GetAllPayments,
		Agents:     dc.Agents.GetAllAgents,
		Pcc:        dc.Pcc.GetAllPcc,
	}
}

// pageParams reads the shared section view-state query parameters.
func pageParams(c *fiber.Ctx) services.PageParams {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "0"))
	return services.PageParams{
		Query:    c.Query("q", ""),
		Page:     page,
		PageSize: pageSize,
		ShowAll:  c.Query("show_all") == "true",
	}
}

// asOf resolves the classification instant. Operators can pin it with
// ?as_of=2025-06-15 when reviewing a past day's prints.
func asOf(c *fiber.Ctx) time.Time {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Now()
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Now()
}

func (dc *DashboardController) loadSnapshot(c *fiber.Ctx) (*services.Snapshot, error) {
	snap, err := services.LoadSnapshot(c.Context(), dc.fetchers())
	if err != nil {
		config.Logger.Error("Failed to load dashboard snapshot", zap.Error(err))
		return nil, err
	}
	return snap, nil
}

func snapshotUnavailable(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"message": "Failed to load dashboard data",
		"error":   err.Error(),
	})
}

type section[T any] struct {
	Rows  []T `json:"rows"`
	Total int `json:"total"`
}

func sectionOf[T any](rows []T, p services.PageParams, fields func(T) []string) section[T] {
	page, total := services.SectionPage(rows, p, DefaultSectionSize, fields)
	return section[T]{Rows: page, Total: total}
}

// GetDepthDashboardController serves the permit-ageing dashboard: permits
// releasing soon, delayed permits, and the office applicant print list.
func (dc *DashboardController) GetDepthDashboardController() fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := dc.loadSnapshot(c)
		if err != nil {
			return snapshotUnavailable(c, err)
		}

		at := asOf(c)
		p := pageParams(c)
		buckets := services.ComputeDepthBuckets(snap, at, dc.Config)

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"data": fiber.Map{
				"releasing_soon":    sectionOf(buckets.ReleasingSoon, p, services.DepthRowSearchFields),
				"delays":            sectionOf(buckets.Delays, p, services.DepthRowSearchFields),
				"office_applicants": sectionOf(buckets.OfficeApplicants, p, services.OfficeApplicantSearchFields),
			},
			"meta": fiber.Map{
				"as_of":    at.Format(time.RFC3339),
				"degraded": snap.Degraded,
			},
		})
	}
}

// GetAppointmentsDashboardController serves the appointment windows.
func (dc *DashboardController) GetAppointmentsDashboardController() fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := dc.loadSnapshot(c)
		if err != nil {
			return snapshotUnavailable(c, err)
		}

		at := asOf(c)
		p := pageParams(c)
		buckets := services.ComputeAppointmentBuckets(snap, at)

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"data": fiber.Map{
				"today":      sectionOf(buckets.Today, p, services.AppointmentSearchFields),
				"this_month": sectionOf(buckets.ThisMonth, p, services.AppointmentSearchFields),
				"next_month": sectionOf(buckets.NextMonth, p, services.AppointmentSearchFields),
				"all":        sectionOf(buckets.All, p, services.AppointmentSearchFields),
			},
			"meta": fiber.Map{
				"as_of":    at.Format(time.RFC3339),
				"degraded": snap.Degraded,
			},
		})
	}
}

// GetPassportValidityDashboardController serves expired and expiring-soon
// passports. Valid and no-info applicants never surface here.
func (dc *DashboardController) GetPassportValidityDashboardController() fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := dc.loadSnapshot(c)
		if err != nil {
			return snapshotUnavailable(c, err)
		}

		at := asOf(c)
		p := pageParams(c)
		buckets := services.ComputePassportBuckets(snap, at)

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"data": fiber.Map{
				"expired":       sectionOf(buckets.Expired, p, services.PassportSearchFields),
				"expiring_soon": sectionOf(buckets.ExpiringSoon, p, services.PassportSearchFields),
			},
			"meta": fiber.Map{
				"as_of":    at.Format(time.RFC3339),
				"degraded": snap.Degraded,
			},
		})
	}
}

// GetPccValidityDashboardController serves the single ordered PCC list.
func (dc *DashboardController) GetPccValidityDashboardController() fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := dc.loadSnapshot(c)
		if err != nil {
			return snapshotUnavailable(c, err)
		}

		at := asOf(c)
		p := pageParams(c)
		buckets := services.ComputePccBuckets(snap, at)

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"data": fiber.Map{
				"records": sectionOf(buckets.AllRecords, p, services.PccSearchFields),
			},
			"meta": fiber.Map{
				"as_of":    at.Format(time.RFC3339),
				"degraded": snap.Degraded,
			},
		})
	}
}

// GetReadyDashboardController serves applicants cleared to apply: paid over
// the threshold and not past the entry stage.
func (dc *DashboardController) GetReadyDashboardController() fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := dc.loadSnapshot(c)
		if err != nil {
			return snapshotUnavailable(c, err)
		}

		p := pageParams(c)
		buckets := services.ComputeReadyBuckets(snap, dc.Config)

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"data": fiber.Map{
				"ready": sectionOf(buckets.Ready, p, services.ReadySearchFields),
			},
			"meta": fiber.Map{
				"threshold": dc.Config.ReadyThreshold,
				"degraded":  snap.Degraded,
			},
		})
	}
}

// StagesController lists the progress stages the record form accepts.
func StagesController() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Progress stages retrieved successfully",
			"data":    models.AllProgressStages,
		})
	}
}
