package pipeline_test

import (
	"context"
	"testing"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/pipeline"
	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"

	"github.com/stretchr/testify/require"
)

type jsonCompleter struct {
	calls []jsonCall

	output string
}

type jsonCall struct {
	messages []provider.Message
	options  *provider.CompleteOptions
}

func (c *jsonCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	c.calls = append(c.calls, jsonCall{messages: messages, options: options})

	message := provider.AssistantMessage(c.output)

	return &provider.Completion{
		Message: &message,
	}, nil
}

func newTestPipeline(t *testing.T) (*pipeline.Pipeline, *jsonCompleter, *jsonCompleter, *jsonCompleter) {
	t.Helper()

	validator := &jsonCompleter{
		output: `{"is_valid": true, "missing_documents": [], "missing_fields": []}`,
	}

	processor := &jsonCompleter{
		output: `{"name": "Jane Doe", "dob": "1990-04-02", "address": "12 High Street", "income": 52000, "assets": 110000, "credit_score": 720, "property_value": 350000, "discrepancies": []}`,
	}

	underwriter := &jsonCompleter{
		output: `{"approved": true, "score": 82.5, "explanation": "strong capacity and collateral", "ltv_ratio": 80, "dti_ratio": 28}`,
	}

	p, err := pipeline.New(
		pipeline.WithValidateTask(pipeline.Task{
			Completer:      validator,
			Description:    "Validate the mortgage application package.",
			ExpectedOutput: "A validation report.",
		}),
		pipeline.WithProcessTask(pipeline.Task{
			Completer:   processor,
			Description: "Extract the applicant data.",
		}),
		pipeline.WithAssessTask(pipeline.Task{
			Completer:   underwriter,
			Description: "Assess creditworthiness.",
		}),
	)

	require.NoError(t, err)

	return p, validator, processor, underwriter
}

func TestNewRequiresTasks(t *testing.T) {
	_, err := pipeline.New()
	require.Error(t, err)

	_, err = pipeline.New(
		pipeline.WithValidateTask(pipeline.Task{Completer: &jsonCompleter{}}),
	)

	require.Error(t, err)
}

func TestRun(t *testing.T) {
	p, validator, processor, underwriter := newTestPipeline(t)

	result, err := p.Run(context.Background(), nil)
	require.NoError(t, err)

	require.NotEmpty(t, result.ID)

	require.NotNil(t, result.Validation)
	require.True(t, result.Validation.IsValid)

	require.NotNil(t, result.Applicant)
	require.Equal(t, "Jane Doe", result.Applicant.Name)
	require.Equal(t, 720, result.Applicant.CreditScore)

	require.NotNil(t, result.Decision)
	require.True(t, result.Decision.Approved)
	require.Equal(t, 82.5, result.Decision.Score)

	require.Len(t, validator.calls, 1)
	require.Len(t, processor.calls, 1)
	require.Len(t, underwriter.calls, 1)
}

func TestRunStagesSeeHistory(t *testing.T) {
	p, validator, processor, underwriter := newTestPipeline(t)

	_, err := p.Run(context.Background(), nil)
	require.NoError(t, err)

	// first stage starts from a clean slate
	require.Len(t, validator.calls[0].messages, 1)

	// later stages see the previous structured outputs
	require.Len(t, processor.calls[0].messages, 2)
	require.Len(t, underwriter.calls[0].messages, 3)

	require.Contains(t, underwriter.calls[0].messages[1].Text(), "Jane Doe")

	// every stage requests schema-constrained json
	for _, call := range []jsonCall{validator.calls[0], processor.calls[0], underwriter.calls[0]} {
		require.Equal(t, provider.CompletionFormatJSON, call.options.Format)
		require.NotNil(t, call.options.Schema)
	}
}

func TestRunValidationOnly(t *testing.T) {
	p, validator, processor, underwriter := newTestPipeline(t)

	result, err := p.Run(context.Background(), &pipeline.RunOptions{ValidationOnly: true})
	require.NoError(t, err)

	require.NotNil(t, result.Validation)
	require.Nil(t, result.Applicant)
	require.Nil(t, result.Decision)

	require.Len(t, validator.calls, 1)
	require.Empty(t, processor.calls)
	require.Empty(t, underwriter.calls)
}

func TestRunFencedOutput(t *testing.T) {
	p, validator, _, _ := newTestPipeline(t)

	validator.output = "```json\n{\"is_valid\": false, \"missing_documents\": [\"bank statement\"], \"missing_fields\": []}\n```"

	result, err := p.Run(context.Background(), &pipeline.RunOptions{ValidationOnly: true})
	require.NoError(t, err)

	require.False(t, result.Validation.IsValid)
	require.Equal(t, []string{"bank statement"}, result.Validation.MissingDocuments)
}

func TestRunDecodeError(t *testing.T) {
	p, validator, _, _ := newTestPipeline(t)

	validator.output = "the documents look fine to me"

	_, err := p.Run(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validate documents")
}

func TestRunPromptIncludesExpectedOutput(t *testing.T) {
	p, validator, _, _ := newTestPipeline(t)

	_, err := p.Run(context.Background(), &pipeline.RunOptions{ValidationOnly: true})
	require.NoError(t, err)

	prompt := validator.calls[0].messages[0].Text()
	require.Contains(t, prompt, "Validate the mortgage application package.")
	require.Contains(t, prompt, "Expected output: A validation report.")
}
