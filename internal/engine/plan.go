package engine

// StepType identifies a step of the bootstrap sequence.
type StepType string

const (
	// StepCreateEnv creates the isolated environment.
	StepCreateEnv StepType = "create-env"

	// StepInstall synchronizes dependencies from the manifest.
	StepInstall StepType = "install"

	// StepLaunch launches the application entry point.
	StepLaunch StepType = "launch"
)

// Step is one planned step of the bootstrap sequence.
type Step struct {
	// Type is the kind of step.
	Type StepType `json:"type"`

	// Detail describes the step (target path or command).
	Detail string `json:"detail"`

	// Skipped marks a step the sequence will not perform.
	Skipped bool `json:"skipped"`

	// Reason explains why a step is skipped.
	Reason string `json:"reason,omitempty"`
}

// Plan is the ordered sequence of steps a run would perform.
type Plan struct {
	Steps []Step `json:"steps"`
}

func (p *Plan) add(t StepType, detail string) {
	p.Steps = append(p.Steps, Step{Type: t, Detail: detail})
}

func (p *Plan) skip(t StepType, detail, reason string) {
	p.Steps = append(p.Steps, Step{Type: t, Detail: detail, Skipped: true, Reason: reason})
}
