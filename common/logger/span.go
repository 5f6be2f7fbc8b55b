package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cardtracker.app/api"

// SpanContext is a started span plus the context that carries it.
type SpanContext struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan opens a child span of whatever trace ctx carries, tagged with attrs.
// Card fields found in ctx via WithLogFields are copied onto the span.
//
//	sc := logger.StartSpan(ctx, "history.ingest")
//	defer sc.End()
//	ctx = sc.Context()
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) *SpanContext {
	attrs = append(attrs, fieldAttributes(ctx)...)
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
	return &SpanContext{ctx: ctx, span: span}
}

func (sc *SpanContext) Context() context.Context {
	return sc.ctx
}

func (sc *SpanContext) SetAttributes(attrs ...attribute.KeyValue) {
	sc.span.SetAttributes(attrs...)
}

// RecordError marks the span failed. Nil errors are ignored.
func (sc *SpanContext) RecordError(err error) {
	if err == nil {
		return
	}
	sc.span.RecordError(err)
	sc.span.SetStatus(codes.Error, err.Error())
}

func (sc *SpanContext) End() {
	sc.span.End()
}

func fieldAttributes(ctx context.Context) []attribute.KeyValue {
	fields := GetLogFields(ctx)

	var attrs []attribute.KeyValue
	if fields.TrelloCardID != nil {
		attrs = append(attrs, attribute.String("trello.card_id", *fields.TrelloCardID))
	}
	if fields.BoardID != nil {
		attrs = append(attrs, attribute.String("trello.board_id", *fields.BoardID))
	}
	if fields.RequestID != nil {
		attrs = append(attrs, attribute.String("request.id", *fields.RequestID))
	}
	return attrs
}
