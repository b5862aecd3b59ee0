// Package scheduler runs periodic back-office jobs.
package scheduler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"text/template"
	"time"

	appreport "github.com/rentops/backend/internal/application/report"
	"github.com/rentops/backend/internal/infrastructure/notification"
	"go.uber.org/zap"
)

// cronTickerInterval is the interval at which the scheduler checks for execution
const cronTickerInterval = 1 * time.Minute

// ErrSchedulerNotRunning is returned when a trigger arrives while stopped
var ErrSchedulerNotRunning = errors.New("scheduler is not running")

// MonthlyReportSchedulerConfig holds the cron settings for the monthly
// commission report run.
type MonthlyReportSchedulerConfig struct {
	Enabled bool
	// CronDay is the day of month (1-28) to run
	CronDay int
	// CronHour is the hour (0-23) to run
	CronHour int
	// CronMinute is the minute (0-59) to run
	CronMinute int
	// MonthlyCronSchedule is the cron expression "minute hour day * *",
	// parsed into the fields above
	MonthlyCronSchedule string
	// JobTimeout bounds a single report generation run
	JobTimeout time.Duration
	// Recipients receive the report email
	Recipients []string
}

// DefaultMonthlyReportSchedulerConfig runs at 03:00 on the 1st of each month
func DefaultMonthlyReportSchedulerConfig() MonthlyReportSchedulerConfig {
	return MonthlyReportSchedulerConfig{
		Enabled:             true,
		CronDay:             1,
		CronHour:            3,
		CronMinute:          0,
		MonthlyCronSchedule: "0 3 1 * *",
		JobTimeout:          10 * time.Minute,
	}
}

// ParseMonthlyCronSchedule parses "minute hour day * *" into its parts.
// Missing or wildcard fields fall back to 03:00 on the 1st.
func ParseMonthlyCronSchedule(cronExpr string) (day, hour, minute int, err error) {
	day, hour, minute = 1, 3, 0

	parts := strings.Fields(cronExpr)
	if len(parts) < 3 {
		return day, hour, minute, nil
	}

	if parts[0] != "*" {
		if val, parseErr := strconv.Atoi(parts[0]); parseErr == nil {
			minute = val
		}
	}
	if parts[1] != "*" {
		if val, parseErr := strconv.Atoi(parts[1]); parseErr == nil {
			hour = val
		}
	}
	if parts[2] != "*" {
		if val, parseErr := strconv.Atoi(parts[2]); parseErr == nil {
			day = val
		}
	}

	if minute < 0 || minute > 59 {
		return 1, 3, 0, fmt.Errorf("minute must be 0-59, got %d", minute)
	}
	if hour < 0 || hour > 23 {
		return 1, 3, 0, fmt.Errorf("hour must be 0-23, got %d", hour)
	}
	// Capped at 28 so the job fires in February too
	if day < 1 || day > 28 {
		return 1, 3, 0, fmt.Errorf("day must be 1-28, got %d", day)
	}

	return day, hour, minute, nil
}

// MonthlyReportScheduler generates the previous month's commission report on
// a monthly cron and emails it to the configured recipients.
type MonthlyReportScheduler struct {
	config        MonthlyReportSchedulerConfig
	reportService *appreport.CommissionReportService
	emailSender   notification.EmailSender
	logger        *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool

	lastRunAt *time.Time
	nextRunAt *time.Time
}

// NewMonthlyReportScheduler creates a new scheduler. The cron expression in
// the config takes precedence over the individual day/hour/minute fields.
func NewMonthlyReportScheduler(
	config MonthlyReportSchedulerConfig,
	reportService *appreport.CommissionReportService,
	emailSender notification.EmailSender,
	logger *zap.Logger,
) (*MonthlyReportScheduler, error) {
	if config.MonthlyCronSchedule != "" {
		day, hour, minute, err := ParseMonthlyCronSchedule(config.MonthlyCronSchedule)
		if err != nil {
			return nil, err
		}
		config.CronDay = day
		config.CronHour = hour
		config.CronMinute = minute
	}
	if config.JobTimeout == 0 {
		config.JobTimeout = 10 * time.Minute
	}

	return &MonthlyReportScheduler{
		config:        config,
		reportService: reportService,
		emailSender:   emailSender,
		logger:        logger.Named("report-scheduler"),
	}, nil
}

// Start starts the cron loop
func (s *MonthlyReportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.calculateNextRunTime()

	s.wg.Add(1)
	go s.cronLoop(ctx)

	s.logger.Info("Monthly report scheduler started",
		zap.Int("cron_day", s.config.CronDay),
		zap.Int("cron_hour", s.config.CronHour),
		zap.Int("cron_minute", s.config.CronMinute),
		zap.Timep("next_run_at", s.nextRunAt),
	)

	return nil
}

// Stop stops the cron loop, waiting for an in-flight run to finish
func (s *MonthlyReportScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Monthly report scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Monthly report scheduler stop timed out")
		return ctx.Err()
	}
}

// cronLoop checks once a minute whether the scheduled instant has arrived
func (s *MonthlyReportScheduler) cronLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(cronTickerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if s.shouldRun(now) {
				s.runMonthlyReport(ctx)
				s.calculateNextRunTime()
			}
		}
	}
}

// shouldRun checks if the cron should fire at the given time
func (s *MonthlyReportScheduler) shouldRun(now time.Time) bool {
	return now.Day() == s.config.CronDay &&
		now.Hour() == s.config.CronHour &&
		now.Minute() == s.config.CronMinute
}

// calculateNextRunTime computes the next scheduled instant
func (s *MonthlyReportScheduler) calculateNextRunTime() {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), s.config.CronDay,
		s.config.CronHour, s.config.CronMinute, 0, 0, now.Location())
	if now.After(next) {
		next = next.AddDate(0, 1, 0)
	}

	s.mu.Lock()
	s.nextRunAt = &next
	s.mu.Unlock()
}

// runMonthlyReport generates and emails the previous month's report
func (s *MonthlyReportScheduler) runMonthlyReport(ctx context.Context) {
	now := time.Now()
	s.mu.Lock()
	s.lastRunAt = &now
	s.mu.Unlock()

	// The run on the 1st covers the month that just ended
	prev := now.AddDate(0, -1, 0)
	year, month := prev.Year(), prev.Month()

	s.logger.Info("Generating monthly commission report",
		zap.Int("year", year),
		zap.String("month", month.String()),
	)

	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()

	report, err := s.reportService.GenerateMonthly(jobCtx, year, month)
	if err != nil {
		s.logger.Error("Monthly commission report generation failed",
			zap.Int("year", year),
			zap.String("month", month.String()),
			zap.Error(err),
		)
		return
	}

	if len(s.config.Recipients) == 0 {
		s.logger.Warn("No report recipients configured, skipping email")
		return
	}

	subject := fmt.Sprintf("Commission report %s %d", month.String(), year)
	plainText, htmlContent, err := renderReportEmail(report, year, month)
	if err != nil {
		s.logger.Error("Failed to render report email", zap.Error(err))
		return
	}

	for _, recipient := range s.config.Recipients {
		if err := s.emailSender.Send(jobCtx, recipient, subject, plainText, htmlContent); err != nil {
			s.logger.Error("Failed to send report email",
				zap.String("recipient", recipient),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("Report email sent", zap.String("recipient", recipient))
	}
}

// TriggerManualRun runs the report generation outside the schedule.
// Uses a background context so an HTTP caller disconnecting does not
// cancel the run.
func (s *MonthlyReportScheduler) TriggerManualRun() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	go s.runMonthlyReport(context.Background())
	return nil
}

// GetStatus returns the current scheduler state
func (s *MonthlyReportScheduler) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":     s.config.Enabled,
		"is_running":  s.isRunning,
		"cron_day":    s.config.CronDay,
		"cron_hour":   s.config.CronHour,
		"cron_minute": s.config.CronMinute,
		"last_run_at": s.lastRunAt,
		"next_run_at": s.nextRunAt,
		"recipients":  len(s.config.Recipients),
	}
}

// GetNextRunAt returns when the next scheduled run will occur
func (s *MonthlyReportScheduler) GetNextRunAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRunAt
}

var reportEmailTemplate = template.Must(template.New("report-email").Parse(`<html>
<body style="font-family: Helvetica, Arial, sans-serif; font-size: 13px;">
<h2>Commission report {{.Month}} {{.Year}}</h2>
<table border="1" cellspacing="0" cellpadding="6" style="border-collapse: collapse;">
<tr>
<th>Plate</th><th>Depositor</th><th>Bookings</th><th>Income</th>
<th>Fixed costs</th><th>Net</th><th>Commission %</th><th>Commission</th><th>Operator share</th>
</tr>
{{range .Lines}}
<tr>
<td>{{.Plate}}</td>
<td>{{.DepositorName}}</td>
<td>{{.BookingCount}}</td>
<td>{{.TotalIncome.StringFixed 2}}</td>
<td>{{.FixedCosts.StringFixed 2}}</td>
<td>{{.NetIncome.StringFixed 2}}</td>
<td>{{.CommissionPercent.StringFixed 2}}</td>
<td>{{.CommissionAmount.StringFixed 2}}</td>
<td>{{.OperatorShare.StringFixed 2}}{{if .FetchFailed}} (incomplete){{end}}</td>
</tr>
{{end}}
<tr>
<td colspan="3"><strong>Totals ({{.Totals.TotalBookings}} bookings)</strong></td>
<td><strong>{{.Totals.TotalIncome.StringFixed 2}}</strong></td>
<td><strong>{{.Totals.TotalFixedCosts.StringFixed 2}}</strong></td>
<td><strong>{{.Totals.TotalNetIncome.StringFixed 2}}</strong></td>
<td></td>
<td><strong>{{.Totals.TotalCommission.StringFixed 2}}</strong></td>
<td><strong>{{.Totals.TotalOperatorShare.StringFixed 2}}</strong></td>
</tr>
</table>
</body>
</html>`))

type reportEmailData struct {
	Year   int
	Month  string
	Lines  []appreport.CommissionLineResponse
	Totals appreport.CommissionTotalsResponse
}

// renderReportEmail builds the plain text and HTML bodies of the report email
func renderReportEmail(report *appreport.CommissionReportResponse, year int, month time.Month) (string, string, error) {
	var html bytes.Buffer
	err := reportEmailTemplate.Execute(&html, reportEmailData{
		Year:   year,
		Month:  month.String(),
		Lines:  report.Lines,
		Totals: report.Totals,
	})
	if err != nil {
		return "", "", err
	}

	var plain strings.Builder
	fmt.Fprintf(&plain, "Commission report %s %d\n\n", month.String(), year)
	for _, line := range report.Lines {
		fmt.Fprintf(&plain, "%s: %d bookings, income %s, commission %s, operator share %s\n",
			line.Plate, line.BookingCount,
			line.TotalIncome.StringFixed(2),
			line.CommissionAmount.StringFixed(2),
			line.OperatorShare.StringFixed(2),
		)
	}
	fmt.Fprintf(&plain, "\nTotals: income %s, commission %s, operator share %s\n",
		report.Totals.TotalIncome.StringFixed(2),
		report.Totals.TotalCommission.StringFixed(2),
		report.Totals.TotalOperatorShare.StringFixed(2),
	)

	return plain.String(), html.String(), nil
}
