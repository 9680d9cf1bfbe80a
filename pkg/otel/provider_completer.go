package otel

import (
	"context"
	"time"

	"github.com/DCODE-ARMY/Automated-Mortgage-Loan-Approval/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	model    string
	provider string

	completer provider.Completer

	durationMetric metric.Float64Histogram
	tokenMetric    metric.Int64Counter
}

func NewCompleter(provider, model string, p provider.Completer) Completer {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("gen_ai.client.operation.duration", metric.WithUnit("s"))
	tokenMetric, _ := meter.Int64Counter("gen_ai.client.token.usage")

	return &observableCompleter{
		completer: p,

		model:    model,
		provider: provider,

		durationMetric: durationMetric,
		tokenMetric:    tokenMetric,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "chat "+p.model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.completer.Complete(ctx, messages, options)

	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	attrs := metric.WithAttributes(
		attribute.String("gen_ai.provider.name", p.provider),
		attribute.String("gen_ai.request.model", p.model),
	)

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), attrs)

	if result.Usage != nil {
		if result.Usage.InputTokens > 0 {
			p.tokenMetric.Add(ctx, int64(result.Usage.InputTokens), attrs, metric.WithAttributes(attribute.String("gen_ai.token.type", "input")))
		}

		if result.Usage.OutputTokens > 0 {
			p.tokenMetric.Add(ctx, int64(result.Usage.OutputTokens), attrs, metric.WithAttributes(attribute.String("gen_ai.token.type", "output")))
		}
	}

	return result, nil
}
