package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/contact"
	"github.com/shenergia/solarcalc/internal/estimate"
	"github.com/shenergia/solarcalc/internal/model"
)

// Estimator is the per-session context shared by every handler: the
// coefficient table and the preferences that bound and present input.
type Estimator struct {
	table  *estimate.Table
	cfg    config.Config
	logger *slog.Logger
}

// SavingsPlan is everything the presenter needs after a bill estimate.
type SavingsPlan struct {
	Input        model.EstimateInput
	Result       model.SavingsResult
	GaugePercent float64
	Chart        model.Dataset
	Link         string
}

// ROIPlan is everything the presenter needs after an ROI estimate.
type ROIPlan struct {
	Result  model.ROIResult
	Clamped bool
	Chart   model.Dataset
	Link    string
}

// NewEstimator builds the estimator from the embedded coefficient table with
// the config's overrides applied.
func NewEstimator(cfg config.Config, logger *slog.Logger) (*Estimator, error) {
	base, err := estimate.Default()
	if err != nil {
		return nil, err
	}
	table := base
	if len(cfg.Coefficients.Overrides) > 0 {
		table, err = base.WithOverrides(cfg.Coefficients.Overrides)
		if err != nil {
			return nil, fmt.Errorf("applying coefficient overrides: %w", err)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{table: table, cfg: cfg, logger: logger}, nil
}

// Table returns the coefficient table in use.
func (e *Estimator) Table() *estimate.Table {
	return e.table
}

// Config returns the preferences the estimator was built with.
func (e *Estimator) Config() config.Config {
	return e.cfg
}

// Savings validates a raw bill and tier and evaluates the savings formula.
// Invalid input returns an error before anything is computed.
func (e *Estimator) Savings(raw string, tier model.Tier) (SavingsPlan, error) {
	bill, err := ParseAmount(raw, e.cfg.General.MinBill)
	if err != nil {
		e.logger.Debug("rejected bill", "raw", raw, "err", err)
		return SavingsPlan{}, err
	}

	in := model.EstimateInput{Amount: bill, Tier: tier}
	result, err := e.table.Savings(in)
	if err != nil {
		return SavingsPlan{}, err
	}

	e.logger.Debug("savings estimate",
		"bill", bill,
		"tier", tier,
		"monthly", result.MonthlySavings,
		"kwp", result.SystemKWp,
		"payback", result.PaybackYears,
	)

	return SavingsPlan{
		Input:        in,
		Result:       result,
		GaugePercent: estimate.SavingsPercent(result),
		Chart:        e.table.PaybackChart(bill, tier),
		Link:         e.QuoteLink(bill),
	}, nil
}

// ROI validates a raw investment amount, clamps it to the slider range and
// evaluates the ROI projection.
func (e *Estimator) ROI(raw string) (ROIPlan, error) {
	amount, err := ParseAmount(raw, 1)
	if err != nil {
		return ROIPlan{}, err
	}
	return e.ROIAmount(amount)
}

// ROIAmount evaluates the ROI projection for an already-numeric amount,
// clamping it to the configured range first.
func (e *Estimator) ROIAmount(amount float64) (ROIPlan, error) {
	r := e.cfg.ROI
	clamped := Clamp(amount, r.Min, r.Max)

	result, err := e.table.ROI(clamped)
	if err != nil {
		return ROIPlan{}, err
	}
	c, _ := e.table.Lookup(model.TierStandard)

	e.logger.Debug("roi estimate", "amount", clamped, "revenue", result.Revenue, "multiple", result.Multiple)

	return ROIPlan{
		Result:  result,
		Clamped: clamped != amount,
		Chart:   estimate.ROIChart(clamped, r.Presets, c.RevenueMultiplier),
		Link:    e.QuoteLink(clamped),
	}, nil
}

// QuoteLink builds the WhatsApp link with amount embedded in the message.
func (e *Estimator) QuoteLink(amount float64) string {
	template := e.cfg.Contact.MessageTemplate
	if template == "" {
		template = contact.DefaultTemplate
	}
	msg := contact.Message(template, cli.FormatAmount(amount))
	return contact.Link(config.GetWhatsAppPhone(e.cfg), msg)
}
