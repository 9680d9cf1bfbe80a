package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"

	"github.com/google/uuid"
)

// Task is one pipeline stage: an agent (exposed as a completer) plus the
// prompt describing what the stage must produce.
type Task struct {
	Completer provider.Completer

	Description    string
	ExpectedOutput string
}

// Pipeline runs document validation, data extraction and underwriting in
// sequence. Each stage sees the previous stage's structured output.
type Pipeline struct {
	validate Task
	process  Task
	assess   Task
}

type Option func(*Pipeline)

func New(options ...Option) (*Pipeline, error) {
	p := &Pipeline{}

	for _, option := range options {
		option(p)
	}

	if p.validate.Completer == nil {
		return nil, errors.New("missing validation task completer")
	}

	if p.process.Completer == nil {
		return nil, errors.New("missing processing task completer")
	}

	if p.assess.Completer == nil {
		return nil, errors.New("missing assessment task completer")
	}

	return p, nil
}

func WithValidateTask(task Task) Option {
	return func(p *Pipeline) {
		p.validate = task
	}
}

func WithProcessTask(task Task) Option {
	return func(p *Pipeline) {
		p.process = task
	}
}

func WithAssessTask(task Task) Option {
	return func(p *Pipeline) {
		p.assess = task
	}
}

type RunOptions struct {
	// ValidationOnly stops the run after the document validation stage.
	ValidationOnly bool
}

type Result struct {
	ID string `json:"id"`

	Validation *ValidationResult     `json:"validation"`
	Applicant  *ApplicantData        `json:"applicant,omitempty"`
	Decision   *UnderwritingDecision `json:"decision,omitempty"`
}

func (p *Pipeline) Run(ctx context.Context, options *RunOptions) (*Result, error) {
	if options == nil {
		options = new(RunOptions)
	}

	result := &Result{
		ID: uuid.New().String(),
	}

	var history []provider.Message

	validation := new(ValidationResult)

	output, err := p.runTask(ctx, p.validate, validationSchema(), history, validation)

	if err != nil {
		return nil, fmt.Errorf("validate documents: %w", err)
	}

	result.Validation = validation

	if options.ValidationOnly {
		return result, nil
	}

	history = append(history, provider.AssistantMessage(output))

	applicant := new(ApplicantData)

	output, err = p.runTask(ctx, p.process, applicantSchema(), history, applicant)

	if err != nil {
		return nil, fmt.Errorf("process documents: %w", err)
	}

	result.Applicant = applicant

	history = append(history, provider.AssistantMessage(output))

	decision := new(UnderwritingDecision)

	if _, err := p.runTask(ctx, p.assess, decisionSchema(), history, decision); err != nil {
		return nil, fmt.Errorf("assess creditworthiness: %w", err)
	}

	result.Decision = decision

	return result, nil
}

func (p *Pipeline) runTask(ctx context.Context, task Task, schema *provider.Schema, history []provider.Message, output any) (string, error) {
	prompt := task.Description

	if task.ExpectedOutput != "" {
		prompt += "\n\nExpected output: " + task.ExpectedOutput
	}

	messages := append(append([]provider.Message{}, history...), provider.UserMessage(prompt))

	options := &provider.CompleteOptions{
		Format: provider.CompletionFormatJSON,
		Schema: schema,
	}

	completion, err := task.Completer.Complete(ctx, messages, options)

	if err != nil {
		return "", err
	}

	if completion.Message == nil {
		return "", errors.New("completion contained no message")
	}

	text := trimFences(completion.Message.Text())

	if err := json.Unmarshal([]byte(text), output); err != nil {
		return "", fmt.Errorf("decode %s: %w", schema.Name, err)
	}

	return text, nil
}

// trimFences strips a markdown code fence some models wrap around JSON output.
func trimFences(text string) string {
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
