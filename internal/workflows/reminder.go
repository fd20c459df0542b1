package workflows

import (
	"time"

	"librify/internal/activities"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

type DueReminderInput struct {
	WindowDays int `json:"window_days"`
}

type DueReminderResult struct {
	Scanned int `json:"scanned"`
	Written int `json:"written"`
	Failed  int `json:"failed"`
}

// DueReminderWorkflow runs on a cron schedule: collect loans due within the
// urgency window, then write one notification per loan. A failed write for
// one loan must not abort the sweep.
func DueReminderWorkflow(ctx workflow.Context, input DueReminderInput) (DueReminderResult, error) {
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    2,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var scan activities.ScanDueLoansOutput
	if err := workflow.ExecuteActivity(ctx, "ScanDueLoansActivity", activities.ScanDueLoansInput{WindowDays: input.WindowDays}).Get(ctx, &scan); err != nil {
		return DueReminderResult{}, err
	}

	res := DueReminderResult{Scanned: len(scan.Loans)}
	for _, l := range scan.Loans {
		var out activities.WriteReminderOutput
		if err := workflow.ExecuteActivity(ctx, "WriteReminderActivity", activities.WriteReminderInput{Loan: l}).Get(ctx, &out); err != nil {
			res.Failed++
			continue
		}
		if out.Written {
			res.Written++
		}
	}
	return res, nil
}
