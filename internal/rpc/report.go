// Package rpc serves and calls shotdiff.report.v1.ReportService over the
// connect protocol.
package rpc

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"shotdiff/internal/reportv1"
	"shotdiff/internal/service"
	"shotdiff/internal/store"
)

const ReportServiceName = "shotdiff.report.v1.ReportService"

const (
	PutReportProcedure    = "/" + ReportServiceName + "/PutReport"
	GetReportProcedure    = "/" + ReportServiceName + "/GetReport"
	ListReportsProcedure  = "/" + ReportServiceName + "/ListReports"
	DeleteReportProcedure = "/" + ReportServiceName + "/DeleteReport"
)

func methodSchema(name string) connect.HandlerOption {
	return connect.WithSchema(reportv1.File().Services().ByName("ReportService").Methods().ByName(protoreflect.Name(name)))
}

type ReportHandler struct {
	svc *service.Service
	log *zap.Logger
}

func NewReportHandler(svc *service.Service, log *zap.Logger) *ReportHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportHandler{svc: svc, log: log}
}

// NewReportServiceHandler returns the mount path and handler for the report
// service, mirroring what protoc-gen-connect-go emits.
func NewReportServiceHandler(h *ReportHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecs(), opts...)
	with := func(method string) []connect.HandlerOption {
		return append([]connect.HandlerOption{methodSchema(method)}, opts...)
	}
	put := connect.NewUnaryHandler(PutReportProcedure, h.PutReport, with("PutReport")...)
	get := connect.NewUnaryHandler(GetReportProcedure, h.GetReport, with("GetReport")...)
	list := connect.NewUnaryHandler(ListReportsProcedure, h.ListReports, with("ListReports")...)
	del := connect.NewUnaryHandler(DeleteReportProcedure, h.DeleteReport, with("DeleteReport")...)
	return "/" + ReportServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PutReportProcedure:
			put.ServeHTTP(w, r)
		case GetReportProcedure:
			get.ServeHTTP(w, r)
		case ListReportsProcedure:
			list.ServeHTTP(w, r)
		case DeleteReportProcedure:
			del.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

func (h *ReportHandler) PutReport(ctx context.Context, req *connect.Request[reportv1.PutReportRequest]) (*connect.Response[reportv1.PutReportResponse], error) {
	if req.Msg.GetReport() == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("report is required"))
	}
	sum, err := h.svc.PutReport(ctx, req.Msg.GetReport())
	if err != nil {
		return nil, h.toConnectError("PutReport", err)
	}
	return connect.NewResponse(&reportv1.PutReportResponse{Summary: sum}), nil
}

func (h *ReportHandler) GetReport(ctx context.Context, req *connect.Request[reportv1.GetReportRequest]) (*connect.Response[reportv1.GetReportResponse], error) {
	report, err := h.svc.GetReport(ctx, strings.TrimSpace(req.Msg.GetId()))
	if err != nil {
		return nil, h.toConnectError("GetReport", err)
	}
	return connect.NewResponse(&reportv1.GetReportResponse{Report: report}), nil
}

func (h *ReportHandler) ListReports(ctx context.Context, req *connect.Request[reportv1.ListReportsRequest]) (*connect.Response[reportv1.ListReportsResponse], error) {
	sums, err := h.svc.ListReports(ctx, req.Msg.GetProject(), int(req.Msg.GetLimit()))
	if err != nil {
		return nil, h.toConnectError("ListReports", err)
	}
	return connect.NewResponse(&reportv1.ListReportsResponse{Reports: sums}), nil
}

func (h *ReportHandler) DeleteReport(ctx context.Context, req *connect.Request[reportv1.DeleteReportRequest]) (*connect.Response[reportv1.DeleteReportResponse], error) {
	deleted, err := h.svc.DeleteReport(ctx, req.Msg.GetId())
	if err != nil {
		return nil, h.toConnectError("DeleteReport", err)
	}
	return connect.NewResponse(&reportv1.DeleteReportResponse{Deleted: deleted}), nil
}

func (h *ReportHandler) toConnectError(method string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, store.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	h.log.Error("report rpc failed", zap.String("method", method), zap.Error(err))
	return connect.NewError(connect.CodeInternal, err)
}
