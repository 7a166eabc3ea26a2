// Package agent implements the approval-gated planning workflow: generate a
// Markdown plan, wait for explicit approval, synthesize file specs from the
// approved plan, and write them to disk.
package agent

import (
	"errors"
	"fmt"

	"github.com/mark3labs/planwright/internal/logger"
	"github.com/mark3labs/planwright/internal/provider"
)

var (
	// ErrNoPlan indicates a transition that needs a current plan was
	// attempted without one.
	ErrNoPlan = errors.New("no plan")

	// ErrNotApproved indicates implementation was attempted before the plan
	// was approved.
	ErrNotApproved = errors.New("plan must be approved before implementation")
)

// Agent owns the planning workflow state. Exactly two fields are mutable:
// the current plan and its approval flag. The agent assumes single-threaded,
// single-session use; there is no internal synchronization.
type Agent struct {
	providerName string
	provider     provider.Provider

	currentPlan string
	approved    bool
}

// New builds an agent with a provider constructed from the selector token.
// Unknown selectors and missing credentials surface as errors here.
func New(providerName string, opts provider.Options) (*Agent, error) {
	p, err := provider.New(providerName, opts)
	if err != nil {
		return nil, err
	}
	return NewWithProvider(providerName, p), nil
}

// NewWithProvider builds an agent around an already-constructed provider.
// The selector token still matters: it decides the file synthesis policy.
func NewWithProvider(providerName string, p provider.Provider) *Agent {
	return &Agent{
		providerName: providerName,
		provider:     p,
	}
}

// ProviderName returns the selector token the agent was built with.
func (a *Agent) ProviderName() string {
	return a.providerName
}

// Plan returns the current plan and whether one is present.
func (a *Agent) Plan() (string, bool) {
	return a.currentPlan, a.currentPlan != ""
}

// Approved reports whether the current plan has been approved.
func (a *Agent) Approved() bool {
	return a.approved
}

// GeneratePlan asks the provider for a plan and stores it as the current,
// unapproved plan. Callable from any state; a new plan overwrites any prior
// plan or approval. On provider failure the previous state is preserved
// untouched.
func (a *Agent) GeneratePlan(requirement string) (string, error) {
	logger.Debug("generating plan via %s provider", a.providerName)
	plan, err := a.provider.GeneratePlan(requirement)
	if err != nil {
		return "", err
	}
	a.currentPlan = plan
	a.approved = false
	logger.Debug("plan generated: %d characters", len(plan))
	return plan, nil
}

// ApprovePlan marks the current plan as approved. Fails when no plan is
// present; idempotent when already approved.
func (a *Agent) ApprovePlan() error {
	if a.currentPlan == "" {
		return fmt.Errorf("%w to approve: generate a plan first", ErrNoPlan)
	}
	a.approved = true
	return nil
}

// RejectPlan discards the current plan and approval. Always succeeds, from
// any state.
func (a *Agent) RejectPlan() {
	a.currentPlan = ""
	a.approved = false
}

// ImplementPlan synthesizes file specs from the approved plan. State is not
// changed; repeated calls re-synthesize independently. The no-plan check is
// unreachable while the approval invariant holds, but is kept as a guard.
func (a *Agent) ImplementPlan(outputDir string) ([]FileSpec, error) {
	if !a.approved {
		return nil, ErrNotApproved
	}
	if a.currentPlan == "" {
		return nil, fmt.Errorf("%w to implement", ErrNoPlan)
	}

	files := a.filesFromPlan(a.currentPlan, outputDir)
	logger.Debug("synthesized %d file specs", len(files))
	return files, nil
}
