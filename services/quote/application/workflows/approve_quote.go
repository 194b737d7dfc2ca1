// Package workflows runs quote approval as a Temporal workflow: validate the
// lines, then commit the stock exits as one batch.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/porcelarte/services/quote/application/services"
	inventorydomain "github.com/ghuser/porcelarte/services/inventory/domain"
	quotedomain "github.com/ghuser/porcelarte/services/quote/domain"
	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

// Application error types that stop the workflow without retries.
const (
	ErrTypeInvalidQuote      = "InvalidQuote"
	ErrTypeInsufficientStock = "InsufficientStock"
	ErrTypeAlreadySubmitted  = "AlreadySubmitted"
)

// ApproveQuoteResult is the workflow outcome. A blocked quote completes
// normally with Approved false.
type ApproveQuoteResult struct {
	Approved    bool        `json:"approved"`
	Errors      []string    `json:"errors"`
	MovementIDs []uuid.UUID `json:"movement_ids,omitempty"`
}

// Activities are the side-effecting steps of the approval workflow.
type Activities struct {
	Quotes *services.QuoteService
}

// ValidateQuote re-reads the products and returns the approval decision.
// A quote whose exits are already committed stops the workflow.
func (a *Activities) ValidateQuote(ctx context.Context, cmd services.ApproveCmd) (models.ApprovalDecision, error) {
	if err := a.Quotes.EnsureNotCommitted(ctx, cmd.QuoteID); err != nil {
		if errors.Is(err, quotedomain.ErrAlreadySubmitted) {
			return models.ApprovalDecision{}, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeAlreadySubmitted, err)
		}
		return models.ApprovalDecision{}, err
	}
	decision, _, err := a.Quotes.Validate(ctx, cmd.Lines)
	if err != nil {
		if errors.Is(err, quotedomain.ErrProductNotFound) ||
			errors.Is(err, quotedomain.ErrInvalidQuantity) ||
			errors.Is(err, quotedomain.ErrEmptyQuote) {
			return models.ApprovalDecision{}, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidQuote, err)
		}
		return models.ApprovalDecision{}, err
	}
	if !decision.Approved {
		a.Quotes.RecordDecision(ctx, false)
	}
	return decision, nil
}

// CommitQuote issues the strict exits and returns the new movement ids.
func (a *Activities) CommitQuote(ctx context.Context, cmd services.ApproveCmd) ([]uuid.UUID, error) {
	ms, err := a.Quotes.Commit(ctx, cmd)
	if err != nil {
		switch {
		case errors.Is(err, inventorydomain.ErrInsufficientStock):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInsufficientStock, err)
		case errors.Is(err, quotedomain.ErrAlreadySubmitted):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeAlreadySubmitted, err)
		}
		return nil, err
	}
	a.Quotes.RecordDecision(ctx, true)

	ids := make([]uuid.UUID, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids, nil
}

// ApproveQuoteWorkflow validates a quote and commits its exits when every
// line passes. Stock taken between the two steps turns into a blocked result.
func ApproveQuoteWorkflow(ctx workflow.Context, cmd services.ApproveCmd) (*ApproveQuoteResult, error) {
	logger := workflow.GetLogger(ctx)
	var a *Activities

	validateCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        30 * time.Second,
			MaximumAttempts:        3,
			NonRetryableErrorTypes: []string{ErrTypeInvalidQuote, ErrTypeAlreadySubmitted},
		},
	})

	var decision models.ApprovalDecision
	if err := workflow.ExecuteActivity(validateCtx, a.ValidateQuote, cmd).Get(ctx, &decision); err != nil {
		logger.Error("quote validation failed", "quote_id", cmd.QuoteID, "error", err)
		return nil, err
	}
	if !decision.Approved {
		logger.Info("quote approval blocked", "quote_id", cmd.QuoteID, "errors", decision.Errors)
		return &ApproveQuoteResult{Approved: false, Errors: decision.Errors}, nil
	}

	// A retried commit could issue the exits twice, so it runs once.
	commitCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	})

	var ids []uuid.UUID
	if err := workflow.ExecuteActivity(commitCtx, a.CommitQuote, cmd).Get(ctx, &ids); err != nil {
		var appErr *temporal.ApplicationError
		if errors.As(err, &appErr) && appErr.Type() == ErrTypeInsufficientStock {
			logger.Info("quote stock taken before commit", "quote_id", cmd.QuoteID)
			return &ApproveQuoteResult{Approved: false, Errors: []string{appErr.Message()}}, nil
		}
		logger.Error("quote commit failed", "quote_id", cmd.QuoteID, "error", err)
		return nil, err
	}

	logger.Info("quote approved", "quote_id", cmd.QuoteID, "movements", len(ids))
	return &ApproveQuoteResult{Approved: true, Errors: []string{}, MovementIDs: ids}, nil
}

type registry interface {
	RegisterWorkflow(w interface{})
	RegisterActivity(a interface{})
}

// Register adds the approval workflow and its activities to a worker.
func Register(w registry, acts *Activities) {
	w.RegisterWorkflow(ApproveQuoteWorkflow)
	w.RegisterActivity(acts)
}

// WorkflowID is stable per quote, so two approvals of one quote never run at
// the same time. Closed runs may be followed by a new one; the committed-exits
// check is what keeps an approved quote from committing twice.
func WorkflowID(cmd services.ApproveCmd) string {
	if cmd.QuoteID == uuid.Nil {
		return "approve-quote-" + uuid.NewString()
	}
	return "approve-quote-" + cmd.QuoteID.String()
}

// Run starts the approval workflow and waits for its result.
func Run(ctx context.Context, c client.Client, taskQueue string, cmd services.ApproveCmd) (*ApproveQuoteResult, error) {
	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:                       WorkflowID(cmd),
		TaskQueue:                taskQueue,
		WorkflowExecutionTimeout: 2 * time.Minute,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}, ApproveQuoteWorkflow, cmd)
	if err != nil {
		return nil, runError(cmd, "start approve quote workflow", err)
	}

	var result ApproveQuoteResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, runError(cmd, "approve quote workflow", err)
	}
	return &result, nil
}

// runError maps a run already in flight, or one stopped because the quote
// was committed before, to ErrAlreadySubmitted.
func runError(cmd services.ApproveCmd, op string, err error) error {
	var started *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &started) {
		return fmt.Errorf("%w: %s", quotedomain.ErrAlreadySubmitted, cmd.QuoteID)
	}
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() == ErrTypeAlreadySubmitted {
		return fmt.Errorf("%w: %s", quotedomain.ErrAlreadySubmitted, cmd.QuoteID)
	}
	return fmt.Errorf("%s: %w", op, err)
}
