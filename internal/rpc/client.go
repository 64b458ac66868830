package rpc

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"shotdiff/internal/reportv1"
)

// Client calls ReportService. It speaks binary protobuf unless built with
// WithJSON.
type Client struct {
	putReport    *connect.Client[reportv1.PutReportRequest, reportv1.PutReportResponse]
	getReport    *connect.Client[reportv1.GetReportRequest, reportv1.GetReportResponse]
	listReports  *connect.Client[reportv1.ListReportsRequest, reportv1.ListReportsResponse]
	deleteReport *connect.Client[reportv1.DeleteReportRequest, reportv1.DeleteReportResponse]
}

func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(protoCodec{})}, opts...)
	return &Client{
		putReport:    connect.NewClient[reportv1.PutReportRequest, reportv1.PutReportResponse](httpClient, baseURL+PutReportProcedure, opts...),
		getReport:    connect.NewClient[reportv1.GetReportRequest, reportv1.GetReportResponse](httpClient, baseURL+GetReportProcedure, opts...),
		listReports:  connect.NewClient[reportv1.ListReportsRequest, reportv1.ListReportsResponse](httpClient, baseURL+ListReportsProcedure, opts...),
		deleteReport: connect.NewClient[reportv1.DeleteReportRequest, reportv1.DeleteReportResponse](httpClient, baseURL+DeleteReportProcedure, opts...),
	}
}

func (c *Client) PutReport(ctx context.Context, report *reportv1.ReportData) (*reportv1.ReportSummary, error) {
	res, err := c.putReport.CallUnary(ctx, connect.NewRequest(&reportv1.PutReportRequest{Report: report}))
	if err != nil {
		return nil, err
	}
	return res.Msg.GetSummary(), nil
}

func (c *Client) GetReport(ctx context.Context, id string) (*reportv1.ReportData, error) {
	res, err := c.getReport.CallUnary(ctx, connect.NewRequest(&reportv1.GetReportRequest{Id: id}))
	if err != nil {
		return nil, err
	}
	return res.Msg.GetReport(), nil
}

func (c *Client) ListReports(ctx context.Context, project string, limit uint32) ([]*reportv1.ReportSummary, error) {
	res, err := c.listReports.CallUnary(ctx, connect.NewRequest(&reportv1.ListReportsRequest{Project: project, Limit: limit}))
	if err != nil {
		return nil, err
	}
	return res.Msg.GetReports(), nil
}

func (c *Client) DeleteReport(ctx context.Context, id string) (bool, error) {
	res, err := c.deleteReport.CallUnary(ctx, connect.NewRequest(&reportv1.DeleteReportRequest{Id: id}))
	if err != nil {
		return false, err
	}
	return res.Msg.GetDeleted(), nil
}
