// Package scheduler はタグで指定されたEC2インスタンスを起動・停止するLambdaハンドラーを提供する
package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"ec2sched/internal/logging"
	ec2svc "ec2sched/internal/service/ec2"
	"ec2sched/internal/service/metrics"
)

// Result はLambdaの戻り値
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler は検索（Selector）と状態変更（Transitioner）を組み合わせる
type Handler struct {
	client  ec2svc.API
	tag     ec2svc.TagPredicate
	flow    Flow
	logger  *zap.SugaredLogger
	metrics metrics.Publisher
}

// Option はHandlerの任意設定
type Option func(*Handler)

// WithLogger はログ出力先を設定する
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithMetrics は実行結果のメトリクス送信先を設定する
func WithMetrics(publisher metrics.Publisher) Option {
	return func(h *Handler) {
		h.metrics = publisher
	}
}

// New はHandlerを作成する
func New(client ec2svc.API, tag ec2svc.TagPredicate, flow Flow, opts ...Option) *Handler {
	h := &Handler{
		client: client,
		tag:    tag,
		flow:   flow,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Flow はこのHandlerが実行する処理を返す
func (h *Handler) Flow() Flow {
	return h.flow
}

// Handle はLambdaのエントリーポイント。eventの内容は使用しない
// エラーは常にResultへ変換され、戻り値のerrorは常にnil
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (result Result, _ error) {
	log := logging.WithRequestID(ctx, h.logger).With("action", h.flow.Name)

	// 想定外のpanicも500として返す
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			log.Errorw("unexpected panic", "error", err)
			result = h.failure(err)
		}
	}()

	log.Infow(fmt.Sprintf("EC2 instances %s process initiated", h.flow.Name),
		"tagKey", h.tag.Key, "tagValue", h.tag.Value, "state", h.flow.SourceState)

	selected, transitioned, err := h.run(ctx, log)
	if err != nil {
		log.Errorw(fmt.Sprintf("Error %s EC2 instances", h.flow.Gerund), errorFields(err)...)
		return h.failure(err), nil
	}

	h.publish(ctx, log, selected, transitioned)

	log.Infow(fmt.Sprintf("EC2 instances %s process completed", h.flow.Name))
	return Result{StatusCode: http.StatusOK, Body: h.flow.completedMessage()}, nil
}

func (h *Handler) run(ctx context.Context, log *zap.SugaredLogger) (selected, transitioned int, err error) {
	ids, err := ec2svc.SelectInstances(ctx, h.client, h.flow.SourceState, h.tag)
	if err != nil {
		return 0, 0, err
	}

	if len(ids) == 0 {
		log.Infow(fmt.Sprintf("No %s instances found with the specified tag", h.flow.SourceState))
		return 0, 0, nil
	}

	log.Infow(fmt.Sprintf("Found %d instances to %s", len(ids), h.flow.Name), "instanceIds", ids)
	if err := ec2svc.TransitionInstances(ctx, h.client, ids, h.flow.Action); err != nil {
		return len(ids), 0, err
	}
	log.Infow(fmt.Sprintf("Successfully sent %s command to EC2 instances", h.flow.Name), "instanceIds", ids)

	return len(ids), len(ids), nil
}

// publish はメトリクス送信に失敗しても結果には影響させない
func (h *Handler) publish(ctx context.Context, log *zap.SugaredLogger, selected, transitioned int) {
	if h.metrics == nil {
		return
	}
	if err := h.metrics.Publish(ctx, h.flow.Name, selected, transitioned); err != nil {
		log.Warnw("failed to publish metrics", "error", err)
	}
}

func (h *Handler) failure(err error) Result {
	return Result{StatusCode: http.StatusInternalServerError, Body: h.flow.errorMessage(err)}
}

// errorFields はエラー種別とAPIエラーコードをログ用のフィールドにする
func errorFields(err error) []interface{} {
	fields := []interface{}{"error", err}

	var queryErr *ec2svc.QueryError
	var cmdErr *ec2svc.CommandError
	switch {
	case errors.As(err, &queryErr):
		fields = append(fields, "kind", "query")
	case errors.As(err, &cmdErr):
		fields = append(fields, "kind", "command", "instanceIds", cmdErr.InstanceIds)
	default:
		fields = append(fields, "kind", "unexpected")
	}

	if code := ec2svc.ErrorCode(err); code != "" {
		fields = append(fields, "errorCode", code)
	}
	return fields
}
